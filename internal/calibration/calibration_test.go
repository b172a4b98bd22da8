package calibration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nkhanna/examind/internal/exam"
)

func responses(correct ...bool) []exam.Response {
	out := make([]exam.Response, len(correct))
	for i, c := range correct {
		out[i] = exam.Response{QuestionID: 7, DifficultyLevel: 2, Correct: c}
	}
	return out
}

func TestCompute_BelowMinimumSample(t *testing.T) {
	_, ok := Compute(7, responses(true, true, true, true), time.Now())
	if ok {
		t.Error("4 responses must not produce a calibration")
	}
}

func TestCompute_ObservedDifficulty(t *testing.T) {
	now := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	c, ok := Compute(7, responses(true, true, true, false, false), now)
	if !ok {
		t.Fatal("5 responses must produce a calibration")
	}
	if c.QuestionID != 7 {
		t.Errorf("question id = %d, want 7", c.QuestionID)
	}
	if c.ObservedDifficulty != 0.4 {
		t.Errorf("observed difficulty = %v, want 0.4", c.ObservedDifficulty)
	}
	if c.Discrimination != 1.0 {
		t.Errorf("discrimination = %v, want 1.0", c.Discrimination)
	}
	if c.SampleSize != 5 {
		t.Errorf("sample size = %d, want 5", c.SampleSize)
	}
	if !c.LastUpdated.Equal(now) {
		t.Errorf("last updated = %v, want %v", c.LastUpdated, now)
	}
}

func TestCompute_AllCorrect(t *testing.T) {
	c, ok := Compute(7, responses(true, true, true, true, true), time.Now())
	if !ok {
		t.Fatal("want a calibration")
	}
	if c.ObservedDifficulty != 0.0 {
		t.Errorf("observed difficulty = %v, want 0.0", c.ObservedDifficulty)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.Get(ctx, 1); !errors.Is(err, exam.ErrNotFound) {
		t.Errorf("Get on empty store: err = %v, want ErrNotFound", err)
	}

	c := ItemCalibration{QuestionID: 1, ObservedDifficulty: 0.6, Discrimination: 1.0, SampleSize: 5}
	if err := s.Upsert(ctx, c); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := s.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ObservedDifficulty != 0.6 {
		t.Errorf("observed difficulty = %v, want 0.6", got.ObservedDifficulty)
	}

	c.ObservedDifficulty = 0.2
	c.SampleSize = 12
	if err := s.Upsert(ctx, c); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	got, err = s.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get after replace: %v", err)
	}
	if got.ObservedDifficulty != 0.2 || got.SampleSize != 12 {
		t.Errorf("replacement not applied: %+v", got)
	}
}
