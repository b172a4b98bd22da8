package simulate

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/nkhanna/examind/internal/bank"
	"github.com/nkhanna/examind/internal/engine"
	"github.com/nkhanna/examind/internal/exam"
)

func simBank(n int) *bank.MemoryBank {
	b := bank.NewMemoryBank()
	id := 0
	for _, d := range bank.Difficulties {
		for i := 0; i < n; i++ {
			id++
			b.Add(bank.Question{
				ID:            id,
				Text:          fmt.Sprintf("question %d", id),
				Options:       [4]string{"w", "x", "y", "z"},
				CorrectOption: "c",
				Topic:         "general",
				Difficulty:    d,
			})
		}
	}
	return b
}

func TestExaminee_Answer(t *testing.T) {
	q := &bank.Question{
		ID:            1,
		CorrectOption: "c",
		Difficulty:    bank.Easy,
	}

	// A very able examinee answers an easy question correctly nearly
	// always; a very weak one nearly never. 200 draws give plenty of
	// separation.
	strong := NewExaminee(1, 3.0, rand.New(rand.NewSource(1)))
	weak := NewExaminee(2, -3.0, rand.New(rand.NewSource(2)))

	strongCorrect, weakCorrect := 0, 0
	for i := 0; i < 200; i++ {
		if q.IsCorrect(strong.Answer(q)) {
			strongCorrect++
		}
		if q.IsCorrect(weak.Answer(q)) {
			weakCorrect++
		}
	}

	if strongCorrect < 150 {
		t.Errorf("strong examinee correct %d/200, want most", strongCorrect)
	}
	if weakCorrect > 80 {
		t.Errorf("weak examinee correct %d/200, want few", weakCorrect)
	}
}

func TestExaminee_AnswerIsValidOption(t *testing.T) {
	q := &bank.Question{ID: 1, CorrectOption: "a", Difficulty: bank.Medium}
	ex := NewExaminee(1, 0, rand.New(rand.NewSource(3)))
	for i := 0; i < 50; i++ {
		if opt := ex.Answer(q); !bank.ValidOption(opt) {
			t.Fatalf("Answer returned %q", opt)
		}
	}
}

func TestExaminee_TimeTaken(t *testing.T) {
	ex := NewExaminee(1, 0, rand.New(rand.NewSource(4)))
	easy := &bank.Question{Difficulty: bank.Easy}
	hard := &bank.Question{Difficulty: bank.Hard}

	for i := 0; i < 20; i++ {
		if secs := ex.TimeTaken(easy); secs < 20 || secs >= 40 {
			t.Fatalf("easy time %d outside [20,40)", secs)
		}
		if secs := ex.TimeTaken(hard); secs < 60 || secs >= 120 {
			t.Fatalf("hard time %d outside [60,120)", secs)
		}
	}
}

func TestRunSession(t *testing.T) {
	eng := engine.New(simBank(10), exam.NewMemoryLog(),
		engine.WithRand(rand.New(rand.NewSource(5))))
	ex := NewExaminee(1, 1.0, rand.New(rand.NewSource(6)))

	out, err := RunSession(context.Background(), eng, ex, "sim-1")
	if err != nil {
		t.Fatalf("RunSession: %v", err)
	}

	if out.SessionID != "sim-1" || out.StudentID != 1 {
		t.Errorf("identity = (%s, %d)", out.SessionID, out.StudentID)
	}
	if out.Questions == 0 {
		t.Fatal("session answered no questions")
	}
	if out.Questions > 20 {
		t.Errorf("answered %d questions, limit is 20", out.Questions)
	}
	if out.Correct > out.Questions {
		t.Errorf("correct %d exceeds questions %d", out.Correct, out.Questions)
	}
	if out.EstimatedTheta < -3 || out.EstimatedTheta > 3 {
		t.Errorf("estimated theta %v outside [-3,3]", out.EstimatedTheta)
	}

	// The session is complete; the engine must refuse further selects.
	if _, err := eng.SelectNextQuestion(context.Background(), 1, "sim-1", nil); err == nil {
		t.Error("select after a finished simulated session must fail")
	}
}

func TestRunSession_AbilityOrdering(t *testing.T) {
	// Across several simulated sessions, a strong examinee's estimates
	// should average higher than a weak one's.
	run := func(trueAbility float64, seed int64) float64 {
		sum := 0.0
		for i := 0; i < 5; i++ {
			eng := engine.New(simBank(10), exam.NewMemoryLog(),
				engine.WithRand(rand.New(rand.NewSource(seed+int64(i)))))
			ex := NewExaminee(1, trueAbility, rand.New(rand.NewSource(seed+100+int64(i))))
			out, err := RunSession(context.Background(), eng, ex, fmt.Sprintf("sim-%d", i))
			if err != nil {
				t.Fatalf("RunSession: %v", err)
			}
			sum += out.EstimatedTheta
		}
		return sum / 5
	}

	strong := run(2.5, 10)
	weak := run(-2.5, 20)
	if strong <= weak {
		t.Errorf("strong mean estimate %v not above weak %v", strong, weak)
	}
}
