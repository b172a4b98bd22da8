package report

import (
	"errors"
	"testing"

	"github.com/nkhanna/examind/internal/bank"
	"github.com/nkhanna/examind/internal/exam"
	"github.com/nkhanna/examind/internal/session"
)

func response(id, level int, correct bool, secs int) exam.Response {
	return exam.Response{
		SessionID:       "s1",
		StudentID:       1,
		QuestionID:      id,
		DifficultyLevel: level,
		Correct:         correct,
		TimeTaken:       secs,
	}
}

func TestGenerate_EmptySession(t *testing.T) {
	_, err := Generate("s1", 1, nil)
	if !errors.Is(err, exam.ErrNotFound) {
		t.Errorf("Generate with no responses: err = %v, want ErrNotFound", err)
	}
}

func TestGenerate_Summary(t *testing.T) {
	responses := []exam.Response{
		response(1, 1, true, 10),
		response(2, 2, true, 20),
		response(3, 3, false, 30),
		response(4, 2, false, 20),
	}

	rep, err := Generate("s1", 7, responses)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if rep.SessionID != "s1" || rep.StudentID != 7 {
		t.Errorf("identity = (%s, %d), want (s1, 7)", rep.SessionID, rep.StudentID)
	}
	if rep.Summary.TotalQuestions != 4 {
		t.Errorf("total questions = %d, want 4", rep.Summary.TotalQuestions)
	}
	if rep.Summary.OverallAccuracy != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", rep.Summary.OverallAccuracy)
	}
	if rep.Summary.TotalTimeSecs != 80 {
		t.Errorf("total time = %d, want 80", rep.Summary.TotalTimeSecs)
	}
	if rep.Summary.AvgTimeSecs != 20.0 {
		t.Errorf("avg time = %v, want 20.0", rep.Summary.AvgTimeSecs)
	}
	if len(rep.AbilityProgression) != 4 {
		t.Errorf("progression length = %d, want 4", len(rep.AbilityProgression))
	}
}

func TestGenerate_Breakdown(t *testing.T) {
	responses := []exam.Response{
		response(1, 1, true, 10),
		response(2, 1, true, 14),
		response(3, 3, false, 30),
		response(4, 3, false, 40),
		response(5, 3, true, 30),
	}

	rep, err := Generate("s1", 1, responses)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	easy, ok := rep.Breakdown[bank.Easy]
	if !ok {
		t.Fatal("missing Easy breakdown")
	}
	if easy.Count != 2 || easy.Accuracy != 1.0 || easy.AvgTimeSecs != 12.0 {
		t.Errorf("Easy stats = %+v", easy)
	}

	hard, ok := rep.Breakdown[bank.Hard]
	if !ok {
		t.Fatal("missing Hard breakdown")
	}
	if hard.Count != 3 || hard.Accuracy != 1.0/3.0 {
		t.Errorf("Hard stats = %+v", hard)
	}

	// No Medium responses: level must be absent, not zero-valued.
	if _, ok := rep.Breakdown[bank.Medium]; ok {
		t.Error("Medium breakdown present without any Medium responses")
	}
}

func TestGenerate_StrengthsAndWeaknesses(t *testing.T) {
	responses := []exam.Response{
		response(1, 1, true, 10),
		response(2, 1, true, 10),
		response(3, 3, false, 30),
		response(4, 3, false, 30),
	}

	rep, err := Generate("s1", 1, responses)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(rep.Strengths) != 1 || rep.Strengths[0] != bank.Easy {
		t.Errorf("strengths = %v, want [Easy]", rep.Strengths)
	}
	if len(rep.Weaknesses) != 1 || rep.Weaknesses[0] != bank.Hard {
		t.Errorf("weaknesses = %v, want [Hard]", rep.Weaknesses)
	}
}

func TestGenerate_BoundaryAccuracyIsNeither(t *testing.T) {
	// Exactly 0.5 accuracy is neither a strength nor a weakness.
	responses := []exam.Response{
		response(1, 2, true, 10),
		response(2, 2, false, 10),
	}

	rep, err := Generate("s1", 1, responses)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(rep.Strengths) != 0 || len(rep.Weaknesses) != 0 {
		t.Errorf("strengths = %v, weaknesses = %v, want both empty", rep.Strengths, rep.Weaknesses)
	}
}

func TestGenerate_TrendAndRecommendation(t *testing.T) {
	var responses []exam.Response
	for i := 0; i < 6; i++ {
		responses = append(responses, response(i+1, 2, i >= 3, 10))
	}

	rep, err := Generate("s1", 1, responses)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if rep.Trend != session.TrendImproving {
		t.Errorf("trend = %s, want %s", rep.Trend, session.TrendImproving)
	}
	if rep.Recommendation == "" {
		t.Error("recommendation must be set")
	}
}
