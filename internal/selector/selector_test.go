package selector

import (
	"context"
	"math/rand"
	"testing"

	"github.com/nkhanna/examind/internal/bank"
	"github.com/nkhanna/examind/internal/calibration"
	"github.com/nkhanna/examind/internal/exam"
)

func newTestSelector(seed int64) *Selector {
	return New(DefaultConfig(), rand.New(rand.NewSource(seed)), nil)
}

func response(id, level int, correct bool) exam.Response {
	return exam.Response{QuestionID: id, DifficultyLevel: level, Correct: correct}
}

func question(id int, d bank.Difficulty) bank.Question {
	return bank.Question{
		ID:            id,
		Text:          "q",
		Options:       [4]string{"w", "x", "y", "z"},
		CorrectOption: "a",
		Topic:         "general",
		Difficulty:    d,
	}
}

func TestTargetDifficulty_ColdStart(t *testing.T) {
	s := newTestSelector(1)
	histories := [][]exam.Response{
		nil,
		{response(1, 1, true)},
		{response(1, 1, true), response(2, 2, false)},
	}
	for _, h := range histories {
		if got := s.TargetDifficulty(1.5, h); got != bank.Easy {
			t.Errorf("history len %d: target = %s, want Easy", len(h), got)
		}
	}
}

func TestTargetDifficulty_PinnedScenario(t *testing.T) {
	// correct@Easy, correct@Medium, incorrect@Hard: recent accuracy 2/3,
	// weighted score 0.5 so theta is exactly 0. Theta fails the Hard gate
	// (needs > 0) but passes Medium (needs > -0.8).
	s := newTestSelector(1)
	history := []exam.Response{
		response(1, 1, true),
		response(2, 2, true),
		response(3, 3, false),
	}
	if got := s.TargetDifficulty(0.0, history); got != bank.Medium {
		t.Errorf("target = %s, want Medium", got)
	}
}

func TestTargetDifficulty_PromotesToHard(t *testing.T) {
	s := newTestSelector(1)
	history := []exam.Response{
		response(1, 2, true),
		response(2, 2, true),
		response(3, 2, true),
	}
	if got := s.TargetDifficulty(0.5, history); got != bank.Hard {
		t.Errorf("target = %s, want Hard", got)
	}
}

func TestTargetDifficulty_DropsToEasy(t *testing.T) {
	s := newTestSelector(1)
	history := []exam.Response{
		response(1, 2, false),
		response(2, 2, false),
		response(3, 2, true),
	}
	if got := s.TargetDifficulty(-1.0, history); got != bank.Easy {
		t.Errorf("target = %s, want Easy", got)
	}
}

func TestSelectNext_MaxQuestionsReached(t *testing.T) {
	s := newTestSelector(1)
	var history []exam.Response
	for i := 0; i < DefaultConfig().MaxQuestions; i++ {
		history = append(history, response(i+1, 2, true))
	}
	candidates := []bank.Question{question(100, bank.Medium)}

	sel, err := s.SelectNext(context.Background(), history, candidates, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel != nil {
		t.Errorf("want nil selection at max questions, got question %d", sel.Question.ID)
	}
}

func TestSelectNext_NoCandidates(t *testing.T) {
	s := newTestSelector(1)
	sel, err := s.SelectNext(context.Background(), nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel != nil {
		t.Errorf("want nil selection with empty candidate list")
	}
}

func TestSelectNext_ExcludesAnswered(t *testing.T) {
	s := newTestSelector(1)
	history := []exam.Response{response(1, 1, true)}
	candidates := []bank.Question{question(1, bank.Easy), question(2, bank.Easy)}

	sel, err := s.SelectNext(context.Background(), history, candidates, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel == nil || sel.Question.ID != 2 {
		t.Fatalf("want question 2, got %+v", sel)
	}
}

func TestSelectNext_ExcludesTopics(t *testing.T) {
	s := newTestSelector(1)
	q1 := question(1, bank.Easy)
	q1.Topic = "networking"
	q2 := question(2, bank.Easy)
	q2.Topic = "databases"

	sel, err := s.SelectNext(context.Background(), nil, []bank.Question{q1, q2},
		map[string]bool{"networking": true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel == nil || sel.Question.ID != 2 {
		t.Fatalf("want question 2, got %+v", sel)
	}
}

func TestSelectNext_PrefersTargetDifficulty(t *testing.T) {
	s := newTestSelector(1)
	// Cold start targets Easy.
	candidates := []bank.Question{
		question(1, bank.Hard),
		question(2, bank.Easy),
		question(3, bank.Medium),
	}

	sel, err := s.SelectNext(context.Background(), nil, candidates, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel == nil || sel.Question.Difficulty != bank.Easy {
		t.Fatalf("want an Easy question on cold start, got %+v", sel)
	}
	if sel.Target != bank.Easy {
		t.Errorf("target = %s, want Easy", sel.Target)
	}
}

func TestSelectNext_FallbackOrder(t *testing.T) {
	s := newTestSelector(1)
	// Cold start targets Easy; with no Easy candidates the fallback tries
	// Medium before Hard.
	candidates := []bank.Question{
		question(1, bank.Hard),
		question(2, bank.Medium),
	}

	sel, err := s.SelectNext(context.Background(), nil, candidates, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel == nil || sel.Question.Difficulty != bank.Medium {
		t.Fatalf("want Medium fallback, got %+v", sel)
	}
}

func TestSelectNext_LastResortAnyDifficulty(t *testing.T) {
	s := newTestSelector(1)
	candidates := []bank.Question{question(1, bank.Hard)}

	sel, err := s.SelectNext(context.Background(), nil, candidates, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel == nil || sel.Question.ID != 1 {
		t.Fatalf("want the only remaining question, got %+v", sel)
	}
}

func TestSelectNext_DeterministicWithSeed(t *testing.T) {
	candidates := []bank.Question{
		question(1, bank.Easy),
		question(2, bank.Easy),
		question(3, bank.Easy),
	}

	first, err := newTestSelector(42).SelectNext(context.Background(), nil, candidates, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := newTestSelector(42).SelectNext(context.Background(), nil, candidates, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Question.ID != second.Question.ID {
		t.Errorf("identical seeds picked %d then %d", first.Question.ID, second.Question.ID)
	}
}

func TestSelectNext_UsesCalibratedDiscrimination(t *testing.T) {
	store := calibration.NewMemoryStore()
	ctx := context.Background()
	// A steep calibrated item far from theta carries almost no
	// information, so the selector should prefer the uncalibrated one.
	store.Upsert(ctx, calibration.ItemCalibration{
		QuestionID:     1,
		Discrimination: 8.0,
		SampleSize:     10,
	})

	cfg := DefaultConfig()
	cfg.JitterMax = 0 // isolate the information term
	s := New(cfg, rand.New(rand.NewSource(1)), store)

	candidates := []bank.Question{
		question(1, bank.Hard),
		question(2, bank.Hard),
	}
	// History keeps theta near 0 while targeting Hard is irrelevant:
	// both candidates are Hard, only discrimination differs.
	history := []exam.Response{
		response(10, 1, true),
		response(11, 2, true),
		response(12, 2, false),
	}

	sel, err := s.SelectNext(ctx, history, candidates, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel == nil || sel.Question.ID != 2 {
		t.Fatalf("want question 2 (default discrimination), got %+v", sel)
	}
}
