// Package simulate drives full engine sessions with a synthetic
// examinee whose answers are sampled from the IRT model at a fixed true
// ability. Used by the simulate command and end-to-end tests.
package simulate

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/nkhanna/examind/internal/bank"
	"github.com/nkhanna/examind/internal/engine"
	"github.com/nkhanna/examind/internal/irt"
)

// Examinee is a synthetic test-taker with a known true ability.
type Examinee struct {
	StudentID   int
	TrueAbility float64
	rng         *rand.Rand
}

// NewExaminee creates an examinee answering from the given random source.
func NewExaminee(studentID int, trueAbility float64, rng *rand.Rand) *Examinee {
	return &Examinee{StudentID: studentID, TrueAbility: trueAbility, rng: rng}
}

// Answer picks an option for the question: the correct one with the
// probability the IRT model assigns to the examinee's true ability, and a
// random wrong option otherwise.
func (e *Examinee) Answer(q *bank.Question) string {
	p, err := irt.Probability(e.TrueAbility, q.Difficulty.Level(), q.EffectiveDiscrimination())
	if err != nil {
		p = 0.5
	}

	if e.rng.Float64() < p {
		return q.CorrectOption
	}

	options := []string{"a", "b", "c", "d"}
	wrong := make([]string, 0, 3)
	for _, o := range options {
		if !q.IsCorrect(o) {
			wrong = append(wrong, o)
		}
	}
	return wrong[e.rng.Intn(len(wrong))]
}

// TimeTaken samples a plausible answer time in seconds, slower for
// harder questions.
func (e *Examinee) TimeTaken(q *bank.Question) int {
	base := 20 * q.Difficulty.Level()
	return base + e.rng.Intn(base)
}

// Outcome summarizes one simulated session.
type Outcome struct {
	SessionID      string
	StudentID      int
	TrueAbility    float64
	EstimatedTheta float64
	Questions      int
	Correct        int
}

// RunSession plays one full adaptive session against the engine: select,
// answer, record, repeat until the engine signals completion.
func RunSession(ctx context.Context, eng *engine.Engine, ex *Examinee, sessionID string) (*Outcome, error) {
	out := &Outcome{
		SessionID:   sessionID,
		StudentID:   ex.StudentID,
		TrueAbility: ex.TrueAbility,
	}

	for {
		q, err := eng.SelectNextQuestion(ctx, ex.StudentID, sessionID, nil)
		if err != nil {
			return nil, fmt.Errorf("select question: %w", err)
		}
		if q == nil {
			return out, nil
		}

		res, err := eng.RecordResponse(ctx, ex.StudentID, sessionID, q.ID, ex.Answer(q), ex.TimeTaken(q))
		if err != nil {
			return nil, fmt.Errorf("record response: %w", err)
		}

		out.Questions = res.TotalResponses
		if res.Correct {
			out.Correct++
		}
		out.EstimatedTheta = res.NewAbility
	}
}
