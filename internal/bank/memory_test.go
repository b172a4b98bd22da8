package bank

import (
	"context"
	"errors"
	"testing"

	"github.com/nkhanna/examind/internal/exam"
)

func memQuestion(id int, topic string, d Difficulty) Question {
	return Question{
		ID:            id,
		Text:          "q",
		Options:       [4]string{"w", "x", "y", "z"},
		CorrectOption: "a",
		Topic:         topic,
		Difficulty:    d,
	}
}

func TestMemoryBank_Candidates(t *testing.T) {
	b := NewMemoryBank(
		memQuestion(1, "networking", Easy),
		memQuestion(2, "networking", Hard),
		memQuestion(3, "databases", Medium),
		memQuestion(4, "databases", Easy),
	)
	ctx := context.Background()

	all, err := b.Candidates(ctx, nil, nil, nil)
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("len = %d, want 4", len(all))
	}

	got, err := b.Candidates(ctx, map[int]bool{1: true, 3: true}, nil, nil)
	if err != nil {
		t.Fatalf("Candidates with exclusions: %v", err)
	}
	for _, q := range got {
		if q.ID == 1 || q.ID == 3 {
			t.Errorf("excluded question %d returned", q.ID)
		}
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}

	got, err = b.Candidates(ctx, nil, map[string]bool{"networking": true}, nil)
	if err != nil {
		t.Fatalf("Candidates with topic exclusion: %v", err)
	}
	for _, q := range got {
		if q.Topic == "networking" {
			t.Errorf("excluded topic question %d returned", q.ID)
		}
	}

	easy := Easy
	got, err = b.Candidates(ctx, nil, nil, &easy)
	if err != nil {
		t.Fatalf("Candidates with preferred difficulty: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want the 2 Easy questions", len(got))
	}
	for _, q := range got {
		if q.Difficulty != Easy {
			t.Errorf("question %d difficulty = %s, want Easy", q.ID, q.Difficulty)
		}
	}
}

func TestMemoryBank_Get(t *testing.T) {
	b := NewMemoryBank(memQuestion(1, "t", Easy))
	ctx := context.Background()

	q, err := b.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if q.ID != 1 {
		t.Errorf("id = %d, want 1", q.ID)
	}

	if _, err := b.Get(ctx, 99); !errors.Is(err, exam.ErrNotFound) {
		t.Errorf("Get(99): err = %v, want ErrNotFound", err)
	}
}

func TestMemoryBank_AddReplaces(t *testing.T) {
	b := NewMemoryBank(memQuestion(1, "t", Easy))
	q := memQuestion(1, "t", Hard)
	b.Add(q)

	if b.Len() != 1 {
		t.Errorf("len = %d, want 1", b.Len())
	}
	got, err := b.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Difficulty != Hard {
		t.Errorf("difficulty = %s, want Hard after replace", got.Difficulty)
	}
}
