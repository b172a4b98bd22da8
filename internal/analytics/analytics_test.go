package analytics

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/nkhanna/examind/internal/exam"
)

func seedSession(t *testing.T, log *exam.MemoryLog, sessionID string, times []int, correct ...bool) {
	t.Helper()
	ctx := context.Background()
	for i, c := range correct {
		secs := 10
		if times != nil {
			secs = times[i]
		}
		err := log.Append(ctx, exam.Response{
			SessionID:       sessionID,
			StudentID:       1,
			QuestionID:      i + 1,
			DifficultyLevel: 2,
			Correct:         c,
			TimeTaken:       secs,
		})
		if err != nil {
			t.Fatalf("seed %s response %d: %v", sessionID, i, err)
		}
	}
}

func TestLearningCurve(t *testing.T) {
	log := exam.NewMemoryLog()
	seedSession(t, log, "s1", []int{10, 20, 30}, true, false, true)

	points, err := LearningCurve(context.Background(), log, "s1")
	if err != nil {
		t.Fatalf("LearningCurve: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("len = %d, want 3", len(points))
	}
	if points[0].QuestionNumber != 1 || points[2].QuestionNumber != 3 {
		t.Errorf("question numbers = %d..%d, want 1..3", points[0].QuestionNumber, points[2].QuestionNumber)
	}
	if points[0].RunningAccuracy != 1.0 {
		t.Errorf("accuracy after 1 = %v, want 1.0", points[0].RunningAccuracy)
	}
	if points[1].RunningAccuracy != 0.5 {
		t.Errorf("accuracy after 2 = %v, want 0.5", points[1].RunningAccuracy)
	}
	if points[2].TimeTaken != 30 {
		t.Errorf("time taken = %d, want 30", points[2].TimeTaken)
	}
}

func TestLearningCurve_UnknownSession(t *testing.T) {
	log := exam.NewMemoryLog()
	_, err := LearningCurve(context.Background(), log, "missing")
	if !errors.Is(err, exam.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestAdaptationEffectiveness(t *testing.T) {
	short := []exam.Response{{Correct: true}, {Correct: false}}
	if got := AdaptationEffectiveness(short); got != 0.5 {
		t.Errorf("short session effectiveness = %v, want neutral 0.5", got)
	}

	// 3 of 4 correct in the trailing window sits exactly on the 0.75
	// target.
	onTarget := []exam.Response{
		{Correct: true}, {Correct: true}, {Correct: true}, {Correct: false},
	}
	if got := AdaptationEffectiveness(onTarget); got != 1.0 {
		t.Errorf("on-target effectiveness = %v, want 1.0", got)
	}

	allCorrect := []exam.Response{
		{Correct: true}, {Correct: true}, {Correct: true}, {Correct: true}, {Correct: true},
	}
	if got := AdaptationEffectiveness(allCorrect); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("all-correct effectiveness = %v, want 0.75", got)
	}

	// Only the last five responses count.
	lateCollapse := []exam.Response{
		{Correct: true}, {Correct: true}, {Correct: true}, {Correct: true}, {Correct: true},
		{Correct: false}, {Correct: false}, {Correct: false}, {Correct: false}, {Correct: false},
	}
	if got := AdaptationEffectiveness(lateCollapse); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("late-collapse effectiveness = %v, want 0.25", got)
	}
}

func TestSummarize_EmptyLog(t *testing.T) {
	log := exam.NewMemoryLog()
	_, err := Summarize(context.Background(), log)
	if !errors.Is(err, exam.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSummarize(t *testing.T) {
	log := exam.NewMemoryLog()
	// s1: 5/5 correct (high), s2: 2/3 (medium), s3: 0/2 (low).
	seedSession(t, log, "s1", nil, true, true, true, true, true)
	seedSession(t, log, "s2", nil, true, true, false)
	seedSession(t, log, "s3", nil, false, false)

	agg, err := Summarize(context.Background(), log)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if agg.TotalSessions != 3 {
		t.Errorf("total sessions = %d, want 3", agg.TotalSessions)
	}
	if agg.TotalQuestions != 10 {
		t.Errorf("total questions = %d, want 10", agg.TotalQuestions)
	}
	if agg.MinSessionLen != 2 || agg.MaxSessionLen != 5 || agg.MedianSessionLen != 3 {
		t.Errorf("lengths min/median/max = %d/%d/%d, want 2/3/5",
			agg.MinSessionLen, agg.MedianSessionLen, agg.MaxSessionLen)
	}
	if agg.HighPerformers != 1 || agg.MediumPerformers != 1 || agg.LowPerformers != 1 {
		t.Errorf("performer buckets = %d/%d/%d, want 1/1/1",
			agg.HighPerformers, agg.MediumPerformers, agg.LowPerformers)
	}
	if agg.AvgTimeSecs != 10.0 {
		t.Errorf("avg time = %v, want 10.0", agg.AvgTimeSecs)
	}

	wantAcc := (1.0 + 2.0/3.0 + 0.0) / 3.0
	if math.Abs(agg.OverallAccuracy-wantAcc) > 1e-9 {
		t.Errorf("overall accuracy = %v, want %v", agg.OverallAccuracy, wantAcc)
	}
}
