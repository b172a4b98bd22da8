package store

import (
	"context"
	"fmt"
	"time"

	"github.com/nkhanna/examind/ent"
	"github.com/nkhanna/examind/ent/sessionevent"
)

// Session lifecycle actions.
const (
	ActionStarted   = "started"
	ActionCompleted = "completed"
	ActionExpired   = "expired"
)

// SessionEventData captures one session lifecycle transition.
type SessionEventData struct {
	SessionID       string
	StudentID       int
	Action          string
	QuestionsServed int
	CorrectAnswers  int
	FinalAbility    float64
}

// SessionSummary is a completed session as read back for analytics.
type SessionSummary struct {
	SessionID       string
	StudentID       int
	Action          string
	QuestionsServed int
	CorrectAnswers  int
	FinalAbility    float64
	Timestamp       time.Time
}

// SessionRepo appends and queries session lifecycle events.
type SessionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

// Append records a session lifecycle event.
func (r *SessionRepo) Append(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStudentID(data.StudentID).
		SetAction(data.Action).
		SetQuestionsServed(data.QuestionsServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetFinalAbility(data.FinalAbility).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

// Completed returns the completion events of all finished sessions in
// chronological order.
func (r *SessionRepo) Completed(ctx context.Context) ([]SessionSummary, error) {
	rows, err := r.client.SessionEvent.Query().
		Where(sessionevent.ActionIn(ActionCompleted, ActionExpired)).
		Order(ent.Asc(sessionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completed sessions: %w", err)
	}

	out := make([]SessionSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, SessionSummary{
			SessionID:       row.SessionID,
			StudentID:       row.StudentID,
			Action:          row.Action,
			QuestionsServed: row.QuestionsServed,
			CorrectAnswers:  row.CorrectAnswers,
			FinalAbility:    row.FinalAbility,
			Timestamp:       row.Timestamp,
		})
	}
	return out, nil
}
