package exam

import (
	"context"
	"time"
)

// Status is the lifecycle state of a session.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Response records a single answer within a session.
// Responses are append-only: once written they are never modified,
// and no two responses in a session share a question id.
type Response struct {
	SessionID       string    `json:"session_id"`
	StudentID       int       `json:"student_id"`
	QuestionID      int       `json:"question_id"`
	DifficultyLevel int       `json:"difficulty_level"` // 1=Easy, 2=Medium, 3=Hard
	Correct         bool      `json:"correct"`
	TimeTaken       int       `json:"time_taken"` // seconds
	Timestamp       time.Time `json:"timestamp"`
}

// Session tracks one examinee's pass through an adaptive exam.
// A session moves Active → Completed exactly once and never reverses.
type Session struct {
	ID        string
	StudentID int
	Status    Status
	StartedAt time.Time

	// Ability is the cached estimate after the most recent response.
	// It is derived state: recomputable from the response list at any time.
	Ability float64
}

// Completed reports whether the session has finished.
func (s *Session) Completed() bool {
	return s.Status == StatusCompleted
}

// ResponseLog is the append-only store of responses, partitioned by session.
// Append must reject a duplicate (session_id, question_id) pair with
// ErrDuplicateResponse, and a response must be durably written before
// Append returns nil.
type ResponseLog interface {
	// Append durably records a response.
	Append(ctx context.Context, r Response) error

	// BySession returns all responses for a session in submission order.
	BySession(ctx context.Context, sessionID string) ([]Response, error)

	// ByQuestion returns all responses ever recorded for a question,
	// across sessions. Used for item calibration.
	ByQuestion(ctx context.Context, questionID int) ([]Response, error)
}
