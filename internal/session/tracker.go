// Package session tracks the runtime state of adaptive exam sessions:
// the Active → Completed state machine, response recording with
// duplicate-submission idempotence, and performance trend analysis.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nkhanna/examind/internal/ability"
	"github.com/nkhanna/examind/internal/bank"
	"github.com/nkhanna/examind/internal/exam"
)

// Result is the analysis returned after recording a response.
type Result struct {
	Correct        bool           `json:"correct"`
	CorrectOption  string         `json:"correct_option"`
	NewAbility     float64        `json:"new_ability"`
	TotalResponses int            `json:"total_responses"`
	Accuracy       float64        `json:"accuracy"`
	Trend          Trend          `json:"trend"`
	Recommendation Recommendation `json:"recommendation"`

	// Duplicate is true when this submission repeated an already-recorded
	// question and was absorbed as a no-op.
	Duplicate bool `json:"duplicate,omitempty"`
}

// Tracker owns the in-memory session registry. Persistence of responses
// goes through the injected ResponseLog; the tracker itself only keeps
// lifecycle state and the set of questions offered to each session.
//
// The tracker serializes access to its registry but does not serialize
// whole record/select cycles; the engine holds a per-session lock around
// those.
type Tracker struct {
	mu       sync.Mutex
	sessions map[string]*exam.Session
	offered  map[string]map[int]bool

	log exam.ResponseLog
	now func() time.Time
}

// NewTracker creates a Tracker over the given response log.
func NewTracker(log exam.ResponseLog) *Tracker {
	return &Tracker{
		sessions: make(map[string]*exam.Session),
		offered:  make(map[string]map[int]bool),
		log:      log,
		now:      time.Now,
	}
}

// SetClock overrides the tracker's clock, for tests.
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}

// GetOrCreate returns the session with the given id, creating it in the
// Active state on first use.
func (t *Tracker) GetOrCreate(sessionID string, studentID int) *exam.Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s, ok := t.sessions[sessionID]; ok {
		return s
	}
	s := &exam.Session{
		ID:        sessionID,
		StudentID: studentID,
		Status:    exam.StatusActive,
		StartedAt: t.now(),
		Ability:   ability.Initial,
	}
	t.sessions[sessionID] = s
	return s
}

// Get returns the session with the given id, or exam.ErrNotFound.
func (t *Tracker) Get(sessionID string) (*exam.Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[sessionID]
	if !ok {
		return nil, exam.ErrNotFound
	}
	return s, nil
}

// MarkOffered records that a question was served to a session, making it
// a legal target for RecordResponse.
func (t *Tracker) MarkOffered(sessionID string, questionID int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	set := t.offered[sessionID]
	if set == nil {
		set = make(map[int]bool)
		t.offered[sessionID] = set
	}
	set[questionID] = true
}

// Complete transitions a session to Completed. The transition happens at
// most once; completing an already-completed session is a no-op.
func (t *Tracker) Complete(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s, ok := t.sessions[sessionID]; ok {
		s.Status = exam.StatusCompleted
	}
}

// wasOffered reports whether the question was served to the session.
func (t *Tracker) wasOffered(sessionID string, questionID int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.offered[sessionID][questionID]
}

// Record validates and appends a response, then recomputes the session's
// ability, trend, and recommendation.
//
// A submission for a question already answered in this session is
// absorbed: the stored history is left untouched and the returned Result
// reflects it unchanged, so retries are safe.
func (t *Tracker) Record(ctx context.Context, sess *exam.Session, q *bank.Question, selectedOption string, timeTaken int) (*Result, error) {
	if sess.Completed() {
		return nil, exam.ErrInvalidState
	}
	if !bank.ValidOption(selectedOption) {
		return nil, &exam.InvalidArgumentError{Field: "selected_option", Value: selectedOption}
	}
	if !t.wasOffered(sess.ID, q.ID) {
		return nil, &exam.InvalidArgumentError{
			Field: "question_id",
			Value: fmt.Sprintf("%d was not offered in session %s", q.ID, sess.ID),
		}
	}

	correct := q.IsCorrect(strings.ToLower(selectedOption))

	resp := exam.Response{
		SessionID:       sess.ID,
		StudentID:       sess.StudentID,
		QuestionID:      q.ID,
		DifficultyLevel: q.Difficulty.Level(),
		Correct:         correct,
		TimeTaken:       timeTaken,
		Timestamp:       t.now(),
	}

	duplicate := false
	if err := t.log.Append(ctx, resp); err != nil {
		if !errors.Is(err, exam.ErrDuplicateResponse) {
			return nil, fmt.Errorf("append response: %w", err)
		}
		duplicate = true
	}

	history, err := t.log.BySession(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("load session history: %w", err)
	}

	theta := ability.Estimate(history)
	sess.Ability = theta
	acc := ability.Accuracy(history)

	res := &Result{
		CorrectOption:  q.CorrectOption,
		NewAbility:     theta,
		TotalResponses: len(history),
		Accuracy:       acc,
		Trend:          AnalyzeTrend(history),
		Recommendation: Recommend(theta, acc, len(history)),
		Duplicate:      duplicate,
	}

	if duplicate {
		// Report the correctness of the stored response, not this retry.
		for _, r := range history {
			if r.QuestionID == q.ID {
				res.Correct = r.Correct
				break
			}
		}
	} else {
		res.Correct = correct
	}
	return res, nil
}
