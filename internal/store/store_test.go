package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nkhanna/examind/internal/bank"
	"github.com/nkhanna/examind/internal/calibration"
	"github.com/nkhanna/examind/internal/exam"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func storeQuestion(id int, topic string, d bank.Difficulty) bank.Question {
	return bank.Question{
		ID:            id,
		Text:          "q",
		Options:       [4]string{"w", "x", "y", "z"},
		CorrectOption: "a",
		Topic:         topic,
		Difficulty:    d,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases, so
		// journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestQuestionImportAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.Questions()
	ctx := context.Background()

	n, err := repo.Import(ctx, []bank.Question{
		storeQuestion(1, "networking", bank.Easy),
		storeQuestion(2, "databases", bank.Hard),
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 2 {
		t.Errorf("imported %d, want 2", n)
	}

	q, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if q.Topic != "networking" || q.Difficulty != bank.Easy {
		t.Errorf("unexpected question: %+v", q)
	}

	if _, err := repo.Get(ctx, 99); !errors.Is(err, exam.ErrNotFound) {
		t.Errorf("get missing: err = %v, want ErrNotFound", err)
	}
}

func TestQuestionImportReplacesExisting(t *testing.T) {
	s := openTestStore(t)
	repo := s.Questions()
	ctx := context.Background()

	if _, err := repo.Import(ctx, []bank.Question{storeQuestion(1, "t", bank.Easy)}); err != nil {
		t.Fatalf("first import: %v", err)
	}

	updated := storeQuestion(1, "t", bank.Hard)
	updated.Text = "revised"
	if _, err := repo.Import(ctx, []bank.Question{updated}); err != nil {
		t.Fatalf("second import: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1 after re-import", count)
	}

	q, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if q.Text != "revised" || q.Difficulty != bank.Hard {
		t.Errorf("replacement not applied: %+v", q)
	}
}

func TestQuestionCandidates(t *testing.T) {
	s := openTestStore(t)
	repo := s.Questions()
	ctx := context.Background()

	_, err := repo.Import(ctx, []bank.Question{
		storeQuestion(1, "networking", bank.Easy),
		storeQuestion(2, "networking", bank.Hard),
		storeQuestion(3, "databases", bank.Easy),
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	got, err := repo.Candidates(ctx, map[int]bool{1: true}, map[string]bool{"databases": true}, nil)
	if err != nil {
		t.Fatalf("candidates: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("candidates = %+v, want only question 2", got)
	}

	easy := bank.Easy
	got, err = repo.Candidates(ctx, nil, nil, &easy)
	if err != nil {
		t.Fatalf("candidates by difficulty: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("easy candidates = %d, want 2", len(got))
	}
}

func TestResponseAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.Responses()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Append(ctx, exam.Response{
			SessionID:       "s1",
			StudentID:       7,
			QuestionID:      i + 1,
			DifficultyLevel: 2,
			Correct:         i%2 == 0,
			TimeTaken:       10 + i,
			Timestamp:       base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	responses, err := repo.BySession(ctx, "s1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(responses) != 3 {
		t.Fatalf("len = %d, want 3", len(responses))
	}
	for i, r := range responses {
		if r.QuestionID != i+1 {
			t.Errorf("response %d question id = %d, want submission order preserved", i, r.QuestionID)
		}
	}

	byQ, err := repo.ByQuestion(ctx, 2)
	if err != nil {
		t.Fatalf("by question: %v", err)
	}
	if len(byQ) != 1 || byQ[0].SessionID != "s1" {
		t.Errorf("by question = %+v", byQ)
	}
}

func TestResponseDuplicateRejected(t *testing.T) {
	s := openTestStore(t)
	repo := s.Responses()
	ctx := context.Background()

	resp := exam.Response{
		SessionID:       "s1",
		StudentID:       1,
		QuestionID:      5,
		DifficultyLevel: 1,
		Correct:         true,
		TimeTaken:       8,
		Timestamp:       time.Now(),
	}
	if err := repo.Append(ctx, resp); err != nil {
		t.Fatalf("first append: %v", err)
	}

	resp.Correct = false
	if err := repo.Append(ctx, resp); !errors.Is(err, exam.ErrDuplicateResponse) {
		t.Fatalf("duplicate append: err = %v, want ErrDuplicateResponse", err)
	}

	// The stored response is the original one.
	responses, err := repo.BySession(ctx, "s1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(responses) != 1 || !responses[0].Correct {
		t.Errorf("stored responses = %+v, want the original only", responses)
	}

	// Same question in a different session is fine.
	resp.SessionID = "s2"
	if err := repo.Append(ctx, resp); err != nil {
		t.Errorf("append in second session: %v", err)
	}
}

func TestResponseSessionIDs(t *testing.T) {
	s := openTestStore(t)
	repo := s.Responses()
	ctx := context.Background()

	for i, sid := range []string{"s1", "s2", "s1"} {
		err := repo.Append(ctx, exam.Response{
			SessionID:       sid,
			StudentID:       1,
			QuestionID:      i + 1,
			DifficultyLevel: 2,
			Timestamp:       time.Now(),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	ids, err := repo.SessionIDs(ctx)
	if err != nil {
		t.Fatalf("session ids: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("session ids = %v, want the 2 distinct sessions", ids)
	}
}

func TestSessionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "s1", StudentID: 1, Action: ActionStarted},
		{SessionID: "s1", StudentID: 1, Action: ActionCompleted, QuestionsServed: 20, CorrectAnswers: 14, FinalAbility: 1.2},
		{SessionID: "s2", StudentID: 2, Action: ActionStarted},
		{SessionID: "s2", StudentID: 2, Action: ActionExpired, QuestionsServed: 4, CorrectAnswers: 1, FinalAbility: -0.6},
	}
	for i, e := range events {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	done, err := repo.Completed(ctx)
	if err != nil {
		t.Fatalf("completed: %v", err)
	}
	if len(done) != 2 {
		t.Fatalf("completed = %d events, want 2", len(done))
	}
	if done[0].SessionID != "s1" || done[0].Action != ActionCompleted || done[0].QuestionsServed != 20 {
		t.Errorf("first completion = %+v", done[0])
	}
	if done[1].SessionID != "s2" || done[1].Action != ActionExpired {
		t.Errorf("second completion = %+v", done[1])
	}
}

func TestCalibrationUpsertAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.Calibrations()
	ctx := context.Background()

	if _, err := repo.Get(ctx, 1); !errors.Is(err, exam.ErrNotFound) {
		t.Errorf("get missing: err = %v, want ErrNotFound", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	c := calibration.ItemCalibration{
		QuestionID:         1,
		ObservedDifficulty: 0.4,
		Discrimination:     1.0,
		SampleSize:         5,
		LastUpdated:        now,
	}
	if err := repo.Upsert(ctx, c); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ObservedDifficulty != 0.4 || got.SampleSize != 5 {
		t.Errorf("calibration = %+v", got)
	}

	c.ObservedDifficulty = 0.55
	c.SampleSize = 9
	if err := repo.Upsert(ctx, c); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("all = %d rows, want 1 after upsert", len(all))
	}
	if all[0].ObservedDifficulty != 0.55 || all[0].SampleSize != 9 {
		t.Errorf("replacement not applied: %+v", all[0])
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev {
			t.Fatalf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}
