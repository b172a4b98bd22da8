package store

import (
	"context"
	"fmt"

	"github.com/nkhanna/examind/ent"
	"github.com/nkhanna/examind/ent/responseevent"
	"github.com/nkhanna/examind/internal/exam"
)

// ResponseRepo implements exam.ResponseLog over the response event table.
// The unique (session_id, question_id) index makes duplicate detection a
// storage-level guarantee rather than a read-check race.
type ResponseRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *ResponseRepo) Append(ctx context.Context, resp exam.Response) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	err = r.client.ResponseEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(resp.Timestamp).
		SetSessionID(resp.SessionID).
		SetStudentID(resp.StudentID).
		SetQuestionID(resp.QuestionID).
		SetDifficultyLevel(resp.DifficultyLevel).
		SetCorrect(resp.Correct).
		SetTimeTaken(resp.TimeTaken).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return exam.ErrDuplicateResponse
		}
		return fmt.Errorf("save response event: %w", err)
	}
	return nil
}

func (r *ResponseRepo) BySession(ctx context.Context, sessionID string) ([]exam.Response, error) {
	rows, err := r.client.ResponseEvent.Query().
		Where(responseevent.SessionID(sessionID)).
		Order(ent.Asc(responseevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session responses: %w", err)
	}
	return fromEntResponses(rows), nil
}

func (r *ResponseRepo) ByQuestion(ctx context.Context, questionID int) ([]exam.Response, error) {
	rows, err := r.client.ResponseEvent.Query().
		Where(responseevent.QuestionID(questionID)).
		Order(ent.Asc(responseevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query question responses: %w", err)
	}
	return fromEntResponses(rows), nil
}

// SessionIDs returns the distinct session ids present in the log.
func (r *ResponseRepo) SessionIDs(ctx context.Context) ([]string, error) {
	ids, err := r.client.ResponseEvent.Query().
		GroupBy(responseevent.FieldSessionID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session ids: %w", err)
	}
	return ids, nil
}

func fromEntResponses(rows []*ent.ResponseEvent) []exam.Response {
	out := make([]exam.Response, 0, len(rows))
	for _, row := range rows {
		out = append(out, exam.Response{
			SessionID:       row.SessionID,
			StudentID:       row.StudentID,
			QuestionID:      row.QuestionID,
			DifficultyLevel: row.DifficultyLevel,
			Correct:         row.Correct,
			TimeTaken:       row.TimeTaken,
			Timestamp:       row.Timestamp,
		})
	}
	return out
}
