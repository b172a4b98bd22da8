package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/nkhanna/examind/internal/bank"
	"github.com/nkhanna/examind/internal/calibration"
	"github.com/nkhanna/examind/internal/exam"
	"github.com/nkhanna/examind/internal/selector"
)

// testBank builds a bank with n questions per difficulty level.
func testBank(n int) *bank.MemoryBank {
	b := bank.NewMemoryBank()
	id := 0
	for _, d := range bank.Difficulties {
		for i := 0; i < n; i++ {
			id++
			b.Add(bank.Question{
				ID:            id,
				Text:          fmt.Sprintf("question %d", id),
				Options:       [4]string{"w", "x", "y", "z"},
				CorrectOption: "a",
				Topic:         "general",
				Difficulty:    d,
			})
		}
	}
	return b
}

func newTestEngine(b bank.Bank, opts ...Option) *Engine {
	opts = append([]Option{WithRand(rand.New(rand.NewSource(1)))}, opts...)
	return New(b, exam.NewMemoryLog(), opts...)
}

func TestEngine_SelectThenRecord(t *testing.T) {
	e := newTestEngine(testBank(10))
	ctx := context.Background()

	q, err := e.SelectNextQuestion(ctx, 1, "s1", nil)
	if err != nil {
		t.Fatalf("SelectNextQuestion: %v", err)
	}
	if q == nil {
		t.Fatal("want a question on a fresh session")
	}
	if q.Difficulty != bank.Easy {
		t.Errorf("first question difficulty = %s, want Easy", q.Difficulty)
	}

	res, err := e.RecordResponse(ctx, 1, "s1", q.ID, "a", 12)
	if err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}
	if !res.Correct {
		t.Error("want correct result")
	}
	if res.TotalResponses != 1 {
		t.Errorf("total responses = %d, want 1", res.TotalResponses)
	}
}

func TestEngine_RecordUnknownSession(t *testing.T) {
	e := newTestEngine(testBank(3))
	_, err := e.RecordResponse(context.Background(), 1, "nope", 1, "a", 5)
	if !errors.Is(err, exam.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestEngine_RecordUnknownQuestion(t *testing.T) {
	e := newTestEngine(testBank(3))
	ctx := context.Background()
	if _, err := e.SelectNextQuestion(ctx, 1, "s1", nil); err != nil {
		t.Fatalf("SelectNextQuestion: %v", err)
	}

	_, err := e.RecordResponse(ctx, 1, "s1", 9999, "a", 5)
	if !errors.Is(err, exam.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestEngine_RecordUnofferedQuestion(t *testing.T) {
	e := newTestEngine(testBank(3))
	ctx := context.Background()
	q, err := e.SelectNextQuestion(ctx, 1, "s1", nil)
	if err != nil {
		t.Fatalf("SelectNextQuestion: %v", err)
	}

	// Pick any id other than the offered one.
	other := q.ID%9 + 1
	_, err = e.RecordResponse(ctx, 1, "s1", other, "a", 5)
	if !exam.IsInvalidArgument(err) {
		t.Errorf("err = %v, want InvalidArgumentError", err)
	}
}

func TestEngine_DuplicateRecordIsIdempotent(t *testing.T) {
	e := newTestEngine(testBank(5))
	ctx := context.Background()

	q, err := e.SelectNextQuestion(ctx, 1, "s1", nil)
	if err != nil {
		t.Fatalf("SelectNextQuestion: %v", err)
	}
	first, err := e.RecordResponse(ctx, 1, "s1", q.ID, "a", 12)
	if err != nil {
		t.Fatalf("first RecordResponse: %v", err)
	}
	second, err := e.RecordResponse(ctx, 1, "s1", q.ID, "c", 3)
	if err != nil {
		t.Fatalf("duplicate RecordResponse: %v", err)
	}
	if !second.Duplicate {
		t.Error("retry not flagged as duplicate")
	}
	if second.NewAbility != first.NewAbility || second.TotalResponses != first.TotalResponses {
		t.Errorf("retry changed state: %+v vs %+v", second, first)
	}
}

func TestEngine_SessionCompletesAtMaxQuestions(t *testing.T) {
	e := newTestEngine(testBank(10))
	ctx := context.Background()
	max := selector.DefaultConfig().MaxQuestions

	served := 0
	for {
		q, err := e.SelectNextQuestion(ctx, 1, "s1", nil)
		if err != nil {
			t.Fatalf("SelectNextQuestion after %d: %v", served, err)
		}
		if q == nil {
			break
		}
		served++
		if served > max {
			t.Fatalf("served %d questions, limit is %d", served, max)
		}
		if _, err := e.RecordResponse(ctx, 1, "s1", q.ID, "a", 10); err != nil {
			t.Fatalf("RecordResponse: %v", err)
		}
	}

	if served != max {
		t.Errorf("served %d questions, want %d", served, max)
	}

	// The session is Completed now; both operations must refuse it.
	if _, err := e.SelectNextQuestion(ctx, 1, "s1", nil); !errors.Is(err, exam.ErrInvalidState) {
		t.Errorf("select after completion: err = %v, want ErrInvalidState", err)
	}
	if _, err := e.RecordResponse(ctx, 1, "s1", 1, "a", 5); !errors.Is(err, exam.ErrInvalidState) {
		t.Errorf("record after completion: err = %v, want ErrInvalidState", err)
	}
}

func TestEngine_SessionCompletesWhenBankExhausted(t *testing.T) {
	e := newTestEngine(testBank(2)) // 6 questions total
	ctx := context.Background()

	served := 0
	for {
		q, err := e.SelectNextQuestion(ctx, 1, "s1", nil)
		if err != nil {
			t.Fatalf("SelectNextQuestion: %v", err)
		}
		if q == nil {
			break
		}
		served++
		if _, err := e.RecordResponse(ctx, 1, "s1", q.ID, "b", 10); err != nil {
			t.Fatalf("RecordResponse: %v", err)
		}
	}

	if served != 6 {
		t.Errorf("served %d questions, want all 6", served)
	}
}

func TestEngine_NeverRepeatsQuestions(t *testing.T) {
	e := newTestEngine(testBank(10))
	ctx := context.Background()

	seen := make(map[int]bool)
	for {
		q, err := e.SelectNextQuestion(ctx, 1, "s1", nil)
		if err != nil {
			t.Fatalf("SelectNextQuestion: %v", err)
		}
		if q == nil {
			break
		}
		if seen[q.ID] {
			t.Fatalf("question %d served twice", q.ID)
		}
		seen[q.ID] = true
		if _, err := e.RecordResponse(ctx, 1, "s1", q.ID, "a", 10); err != nil {
			t.Fatalf("RecordResponse: %v", err)
		}
	}
}

func TestEngine_ExcludeTopics(t *testing.T) {
	b := bank.NewMemoryBank(
		bank.Question{ID: 1, Text: "q", Options: [4]string{"w", "x", "y", "z"}, CorrectOption: "a", Topic: "networking", Difficulty: bank.Easy},
		bank.Question{ID: 2, Text: "q", Options: [4]string{"w", "x", "y", "z"}, CorrectOption: "a", Topic: "databases", Difficulty: bank.Easy},
	)
	e := newTestEngine(b)

	q, err := e.SelectNextQuestion(context.Background(), 1, "s1", map[string]bool{"networking": true})
	if err != nil {
		t.Fatalf("SelectNextQuestion: %v", err)
	}
	if q == nil || q.Topic != "databases" {
		t.Fatalf("got %+v, want the databases question", q)
	}
}

func TestEngine_GenerateSessionReport(t *testing.T) {
	e := newTestEngine(testBank(5))
	ctx := context.Background()

	if _, err := e.GenerateSessionReport(ctx, 1, "s1"); !errors.Is(err, exam.ErrNotFound) {
		t.Errorf("report on empty session: err = %v, want ErrNotFound", err)
	}

	for i := 0; i < 3; i++ {
		q, err := e.SelectNextQuestion(ctx, 1, "s1", nil)
		if err != nil || q == nil {
			t.Fatalf("SelectNextQuestion %d: %v %v", i, q, err)
		}
		if _, err := e.RecordResponse(ctx, 1, "s1", q.ID, "a", 10); err != nil {
			t.Fatalf("RecordResponse: %v", err)
		}
	}

	rep, err := e.GenerateSessionReport(ctx, 1, "s1")
	if err != nil {
		t.Fatalf("GenerateSessionReport: %v", err)
	}
	if rep.Summary.TotalQuestions != 3 {
		t.Errorf("total questions = %d, want 3", rep.Summary.TotalQuestions)
	}
	if rep.Summary.OverallAccuracy != 1.0 {
		t.Errorf("accuracy = %v, want 1.0", rep.Summary.OverallAccuracy)
	}

	// A second read returns the same report.
	again, err := e.GenerateSessionReport(ctx, 1, "s1")
	if err != nil {
		t.Fatalf("second GenerateSessionReport: %v", err)
	}
	if again.Summary != rep.Summary {
		t.Errorf("report changed between reads: %+v vs %+v", again.Summary, rep.Summary)
	}
}

func TestEngine_ExpireSession(t *testing.T) {
	e := newTestEngine(testBank(5))
	ctx := context.Background()

	q, err := e.SelectNextQuestion(ctx, 1, "s1", nil)
	if err != nil || q == nil {
		t.Fatalf("SelectNextQuestion: %v %v", q, err)
	}

	e.ExpireSession("s1")

	if _, err := e.SelectNextQuestion(ctx, 1, "s1", nil); !errors.Is(err, exam.ErrInvalidState) {
		t.Errorf("select after expiry: err = %v, want ErrInvalidState", err)
	}
	if _, err := e.RecordResponse(ctx, 1, "s1", q.ID, "a", 5); !errors.Is(err, exam.ErrInvalidState) {
		t.Errorf("record after expiry: err = %v, want ErrInvalidState", err)
	}
}

func TestEngine_CalibrationFeedsFromResponses(t *testing.T) {
	store := calibration.NewMemoryStore()
	b := bank.NewMemoryBank(
		bank.Question{ID: 1, Text: "q", Options: [4]string{"w", "x", "y", "z"}, CorrectOption: "a", Topic: "general", Difficulty: bank.Easy},
	)
	e := New(b, exam.NewMemoryLog(),
		WithRand(rand.New(rand.NewSource(1))),
		WithCalibrationStore(store))
	ctx := context.Background()

	// Five sessions answering the same question crosses the calibration
	// sample threshold.
	for i := 0; i < calibration.MinSampleSize; i++ {
		sid := fmt.Sprintf("s%d", i)
		q, err := e.SelectNextQuestion(ctx, i, sid, nil)
		if err != nil || q == nil {
			t.Fatalf("session %s: SelectNextQuestion: %v %v", sid, q, err)
		}
		opt := "a"
		if i%2 == 0 {
			opt = "b"
		}
		if _, err := e.RecordResponse(ctx, i, sid, q.ID, opt, 10); err != nil {
			t.Fatalf("session %s: RecordResponse: %v", sid, err)
		}
	}

	c, err := store.Get(ctx, 1)
	if err != nil {
		t.Fatalf("calibration missing after %d responses: %v", calibration.MinSampleSize, err)
	}
	if c.SampleSize != calibration.MinSampleSize {
		t.Errorf("sample size = %d, want %d", c.SampleSize, calibration.MinSampleSize)
	}
	if c.ObservedDifficulty != 0.6 {
		t.Errorf("observed difficulty = %v, want 0.6 (2 of 5 correct)", c.ObservedDifficulty)
	}
}

func TestEngine_ConcurrentSessions(t *testing.T) {
	e := newTestEngine(testBank(30))
	ctx := context.Background()

	// Independent sessions only share the bank, the log, and the selection
	// random source; full select/record cycles from many goroutines must be
	// race-free (run with -race).
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sid := fmt.Sprintf("s%d", n)
			for {
				q, err := e.SelectNextQuestion(ctx, n, sid, nil)
				if err != nil {
					errs <- fmt.Errorf("session %s: select: %w", sid, err)
					return
				}
				if q == nil {
					return
				}
				opt := "a"
				if n%2 == 0 {
					opt = "b"
				}
				if _, err := e.RecordResponse(ctx, n, sid, q.ID, opt, 10); err != nil {
					errs <- fmt.Errorf("session %s: record: %w", sid, err)
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	for i := 0; i < 8; i++ {
		rep, err := e.GenerateSessionReport(ctx, i, fmt.Sprintf("s%d", i))
		if err != nil {
			t.Fatalf("report s%d: %v", i, err)
		}
		if rep.Summary.TotalQuestions != selector.DefaultConfig().MaxQuestions {
			t.Errorf("session s%d answered %d questions, want %d",
				i, rep.Summary.TotalQuestions, selector.DefaultConfig().MaxQuestions)
		}
	}
}

func TestEngine_SessionsAreIndependent(t *testing.T) {
	e := newTestEngine(testBank(5))
	ctx := context.Background()

	q1, err := e.SelectNextQuestion(ctx, 1, "s1", nil)
	if err != nil || q1 == nil {
		t.Fatalf("s1 select: %v %v", q1, err)
	}
	q2, err := e.SelectNextQuestion(ctx, 2, "s2", nil)
	if err != nil || q2 == nil {
		t.Fatalf("s2 select: %v %v", q2, err)
	}

	// A question offered to s1 cannot be recorded against s2 unless s2 was
	// offered the same one.
	if q1.ID != q2.ID {
		if _, err := e.RecordResponse(ctx, 2, "s2", q1.ID, "a", 5); !exam.IsInvalidArgument(err) {
			t.Errorf("cross-session record: err = %v, want InvalidArgumentError", err)
		}
	}

	if _, err := e.RecordResponse(ctx, 1, "s1", q1.ID, "a", 5); err != nil {
		t.Errorf("s1 record: %v", err)
	}
	if _, err := e.RecordResponse(ctx, 2, "s2", q2.ID, "b", 5); err != nil {
		t.Errorf("s2 record: %v", err)
	}
}
