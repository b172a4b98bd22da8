package store

import (
	"context"
	"fmt"

	"github.com/nkhanna/examind/ent"
	"github.com/nkhanna/examind/ent/question"
	"github.com/nkhanna/examind/internal/bank"
	"github.com/nkhanna/examind/internal/exam"
)

// QuestionRepo implements bank.Bank over the persistent question table.
type QuestionRepo struct {
	client *ent.Client
}

func (r *QuestionRepo) Candidates(ctx context.Context, excludeIDs map[int]bool, excludeTopics map[string]bool, preferred *bank.Difficulty) ([]bank.Question, error) {
	q := r.client.Question.Query()

	if len(excludeIDs) > 0 {
		ids := make([]int, 0, len(excludeIDs))
		for id := range excludeIDs {
			ids = append(ids, id)
		}
		q = q.Where(question.IDNotIn(ids...))
	}
	if len(excludeTopics) > 0 {
		topics := make([]string, 0, len(excludeTopics))
		for t := range excludeTopics {
			topics = append(topics, t)
		}
		q = q.Where(question.TopicNotIn(topics...))
	}
	if preferred != nil {
		q = q.Where(question.Difficulty(string(*preferred)))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}

	out := make([]bank.Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromEntQuestion(row))
	}
	return out, nil
}

func (r *QuestionRepo) Get(ctx context.Context, id int) (*bank.Question, error) {
	row, err := r.client.Question.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, exam.ErrNotFound
		}
		return nil, fmt.Errorf("get question %d: %w", id, err)
	}
	q := fromEntQuestion(row)
	return &q, nil
}

// Import inserts or replaces questions from an import file.
// Returns the number of questions written.
func (r *QuestionRepo) Import(ctx context.Context, questions []bank.Question) (int, error) {
	written := 0
	for _, q := range questions {
		exists, err := r.client.Question.Query().
			Where(question.ID(q.ID)).
			Exist(ctx)
		if err != nil {
			return written, fmt.Errorf("check question %d: %w", q.ID, err)
		}

		if exists {
			err = r.client.Question.UpdateOneID(q.ID).
				SetText(q.Text).
				SetOptions(q.Options[:]).
				SetCorrectOption(q.CorrectOption).
				SetTopic(q.Topic).
				SetDifficulty(string(q.Difficulty)).
				SetDiscrimination(q.EffectiveDiscrimination()).
				Exec(ctx)
		} else {
			err = r.client.Question.Create().
				SetID(q.ID).
				SetText(q.Text).
				SetOptions(q.Options[:]).
				SetCorrectOption(q.CorrectOption).
				SetTopic(q.Topic).
				SetDifficulty(string(q.Difficulty)).
				SetDiscrimination(q.EffectiveDiscrimination()).
				Exec(ctx)
		}
		if err != nil {
			return written, fmt.Errorf("write question %d: %w", q.ID, err)
		}
		written++
	}
	return written, nil
}

// Count returns the number of questions in the bank.
func (r *QuestionRepo) Count(ctx context.Context) (int, error) {
	return r.client.Question.Query().Count(ctx)
}

// IDs returns every question id in the bank.
func (r *QuestionRepo) IDs(ctx context.Context) ([]int, error) {
	ids, err := r.client.Question.Query().
		Order(ent.Asc(question.FieldID)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("query question ids: %w", err)
	}
	return ids, nil
}

func fromEntQuestion(row *ent.Question) bank.Question {
	q := bank.Question{
		ID:             row.ID,
		Text:           row.Text,
		CorrectOption:  row.CorrectOption,
		Topic:          row.Topic,
		Difficulty:     bank.Difficulty(row.Difficulty),
		Discrimination: row.Discrimination,
	}
	copy(q.Options[:], row.Options)
	return q
}
