package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nkhanna/examind/internal/bank"
	"github.com/nkhanna/examind/internal/exam"
)

func testQuestion(id int, d bank.Difficulty) *bank.Question {
	return &bank.Question{
		ID:            id,
		Text:          "q",
		Options:       [4]string{"w", "x", "y", "z"},
		CorrectOption: "a",
		Topic:         "general",
		Difficulty:    d,
	}
}

func newTestTracker() *Tracker {
	tr := NewTracker(exam.NewMemoryLog())
	tr.SetClock(func() time.Time {
		return time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	})
	return tr
}

func TestTracker_GetOrCreate(t *testing.T) {
	tr := newTestTracker()

	s := tr.GetOrCreate("s1", 42)
	if s.Status != exam.StatusActive {
		t.Errorf("status = %s, want %s", s.Status, exam.StatusActive)
	}
	if s.StudentID != 42 {
		t.Errorf("student id = %d, want 42", s.StudentID)
	}
	if s.Ability != 0.0 {
		t.Errorf("initial ability = %v, want 0.0", s.Ability)
	}

	again := tr.GetOrCreate("s1", 99)
	if again != s {
		t.Error("second GetOrCreate returned a different session")
	}
	if again.StudentID != 42 {
		t.Errorf("student id changed to %d on repeated create", again.StudentID)
	}
}

func TestTracker_GetUnknown(t *testing.T) {
	tr := newTestTracker()
	if _, err := tr.Get("missing"); !errors.Is(err, exam.ErrNotFound) {
		t.Errorf("Get(missing) = %v, want ErrNotFound", err)
	}
}

func TestTracker_RecordCorrect(t *testing.T) {
	tr := newTestTracker()
	ctx := context.Background()
	sess := tr.GetOrCreate("s1", 1)
	q := testQuestion(7, bank.Medium)
	tr.MarkOffered("s1", 7)

	res, err := tr.Record(ctx, sess, q, "a", 15)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !res.Correct {
		t.Error("want correct result for the right option")
	}
	if res.CorrectOption != "a" {
		t.Errorf("correct option = %q, want %q", res.CorrectOption, "a")
	}
	if res.TotalResponses != 1 {
		t.Errorf("total responses = %d, want 1", res.TotalResponses)
	}
	if res.Accuracy != 1.0 {
		t.Errorf("accuracy = %v, want 1.0", res.Accuracy)
	}
	if res.Trend != TrendInsufficient {
		t.Errorf("trend = %s, want %s", res.Trend, TrendInsufficient)
	}
	if sess.Ability != res.NewAbility {
		t.Errorf("session ability %v not updated to %v", sess.Ability, res.NewAbility)
	}
}

func TestTracker_RecordCaseInsensitiveOption(t *testing.T) {
	tr := newTestTracker()
	ctx := context.Background()
	sess := tr.GetOrCreate("s1", 1)
	q := testQuestion(7, bank.Easy)
	tr.MarkOffered("s1", 7)

	res, err := tr.Record(ctx, sess, q, "A", 5)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !res.Correct {
		t.Error(`"A" should match correct option "a"`)
	}
}

func TestTracker_RecordDuplicateIsIdempotent(t *testing.T) {
	tr := newTestTracker()
	ctx := context.Background()
	sess := tr.GetOrCreate("s1", 1)
	q := testQuestion(7, bank.Medium)
	tr.MarkOffered("s1", 7)

	first, err := tr.Record(ctx, sess, q, "a", 15)
	if err != nil {
		t.Fatalf("first Record: %v", err)
	}

	// Retry with a different (wrong) answer must not change anything.
	second, err := tr.Record(ctx, sess, q, "b", 20)
	if err != nil {
		t.Fatalf("duplicate Record: %v", err)
	}
	if !second.Duplicate {
		t.Error("retry not flagged as duplicate")
	}
	if !second.Correct {
		t.Error("duplicate result must reflect the stored response, not the retry")
	}
	if second.NewAbility != first.NewAbility {
		t.Errorf("ability changed on retry: %v -> %v", first.NewAbility, second.NewAbility)
	}
	if second.TotalResponses != first.TotalResponses {
		t.Errorf("total responses changed on retry: %d -> %d", first.TotalResponses, second.TotalResponses)
	}
}

func TestTracker_RecordNotOffered(t *testing.T) {
	tr := newTestTracker()
	sess := tr.GetOrCreate("s1", 1)
	q := testQuestion(7, bank.Medium)

	_, err := tr.Record(context.Background(), sess, q, "a", 15)
	if !exam.IsInvalidArgument(err) {
		t.Errorf("recording an unoffered question: err = %v, want InvalidArgumentError", err)
	}
}

func TestTracker_RecordInvalidOption(t *testing.T) {
	tr := newTestTracker()
	sess := tr.GetOrCreate("s1", 1)
	q := testQuestion(7, bank.Medium)
	tr.MarkOffered("s1", 7)

	for _, opt := range []string{"", "e", "ab", "1"} {
		if _, err := tr.Record(context.Background(), sess, q, opt, 15); !exam.IsInvalidArgument(err) {
			t.Errorf("option %q: err = %v, want InvalidArgumentError", opt, err)
		}
	}
}

func TestTracker_RecordAfterComplete(t *testing.T) {
	tr := newTestTracker()
	sess := tr.GetOrCreate("s1", 1)
	q := testQuestion(7, bank.Medium)
	tr.MarkOffered("s1", 7)
	tr.Complete("s1")

	if _, err := tr.Record(context.Background(), sess, q, "a", 15); !errors.Is(err, exam.ErrInvalidState) {
		t.Errorf("recording into a completed session: err = %v, want ErrInvalidState", err)
	}
}

func TestTracker_CompleteIsIdempotent(t *testing.T) {
	tr := newTestTracker()
	sess := tr.GetOrCreate("s1", 1)

	tr.Complete("s1")
	tr.Complete("s1")
	if sess.Status != exam.StatusCompleted {
		t.Errorf("status = %s, want %s", sess.Status, exam.StatusCompleted)
	}
}
