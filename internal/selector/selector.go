// Package selector chooses the next question for an active session by
// combining a target-difficulty heuristic with Fisher-information
// maximization over the remaining candidates.
package selector

import (
	"context"
	"math/rand"
	"sync"

	"github.com/nkhanna/examind/internal/ability"
	"github.com/nkhanna/examind/internal/bank"
	"github.com/nkhanna/examind/internal/calibration"
	"github.com/nkhanna/examind/internal/exam"
	"github.com/nkhanna/examind/internal/irt"
)

// Config holds the tunable parameters of the selection heuristic.
type Config struct {
	// MaxQuestions is the hard stop for a session.
	MaxQuestions int

	// ColdStartCount is how many responses must exist before the target
	// difficulty adapts; below it the target is always Easy.
	ColdStartCount int

	// HardAccuracy and HardTheta gate promotion to Hard questions.
	HardAccuracy float64
	HardTheta    float64

	// MediumAccuracy and MediumTheta gate promotion to Medium questions.
	MediumAccuracy float64
	MediumTheta    float64

	// JitterMax bounds the random boost added to each candidate's
	// information score so identical histories don't always repeat the
	// same pick.
	JitterMax float64

	// UseCalibration enables calibrated per-item discrimination when a
	// calibration store is attached.
	UseCalibration bool
}

// DefaultConfig returns the standard selection parameters.
func DefaultConfig() Config {
	return Config{
		MaxQuestions:   20,
		ColdStartCount: 3,
		HardAccuracy:   0.7,
		HardTheta:      0.0,
		MediumAccuracy: 0.5,
		MediumTheta:    -0.8,
		JitterMax:      0.1,
		UseCalibration: true,
	}
}

// Selection is the chosen question plus the scoring context that picked
// it, for logging and diagnostics.
type Selection struct {
	Question            bank.Question
	Theta               float64
	Target              bank.Difficulty
	ExpectedProbability float64
	Information         float64
}

// Selector picks questions. It holds no per-session state: every call is a
// pure function of the inputs plus the injected random source. The random
// source is shared across sessions and *rand.Rand is not safe for
// concurrent use, so draws go through a mutex.
type Selector struct {
	cfg          Config
	rngMu        sync.Mutex
	rng          *rand.Rand
	calibrations calibration.Store // nil disables calibrated discrimination
}

// New creates a Selector. The random source must be non-nil; seed it for
// deterministic selection in tests.
func New(cfg Config, rng *rand.Rand, calibrations calibration.Store) *Selector {
	return &Selector{cfg: cfg, rng: rng, calibrations: calibrations}
}

// TargetDifficulty determines the difficulty to aim for given the current
// ability and recent performance. Fewer than ColdStartCount responses
// always targets Easy.
func (s *Selector) TargetDifficulty(theta float64, history []exam.Response) bank.Difficulty {
	if len(history) < s.cfg.ColdStartCount {
		return bank.Easy
	}

	recent := history[len(history)-3:]
	correct := 0
	for _, r := range recent {
		if r.Correct {
			correct++
		}
	}
	recentAccuracy := float64(correct) / float64(len(recent))

	switch {
	case recentAccuracy >= s.cfg.HardAccuracy && theta > s.cfg.HardTheta:
		return bank.Hard
	case recentAccuracy >= s.cfg.MediumAccuracy && theta > s.cfg.MediumTheta:
		return bank.Medium
	default:
		return bank.Easy
	}
}

// fallbackOrder is the fixed search order when no candidate matches the
// target difficulty.
var fallbackOrder = map[bank.Difficulty][]bank.Difficulty{
	bank.Hard:   {bank.Medium, bank.Easy},
	bank.Medium: {bank.Hard, bank.Easy},
	bank.Easy:   {bank.Medium, bank.Hard},
}

// SelectNext returns the best next question, or nil when the session is
// naturally complete: either the history reached MaxQuestions or no
// unanswered candidate remains. A nil result is not an error.
func (s *Selector) SelectNext(ctx context.Context, history []exam.Response, candidates []bank.Question, excludeTopics map[string]bool) (*Selection, error) {
	if len(history) >= s.cfg.MaxQuestions {
		return nil, nil
	}

	answered := make(map[int]bool, len(history))
	for _, r := range history {
		answered[r.QuestionID] = true
	}

	var remaining []bank.Question
	for _, q := range candidates {
		if answered[q.ID] || excludeTopics[q.Topic] {
			continue
		}
		remaining = append(remaining, q)
	}
	if len(remaining) == 0 {
		return nil, nil
	}

	theta := ability.Estimate(history)
	target := s.TargetDifficulty(theta, history)

	pool := filterByDifficulty(remaining, target)
	if len(pool) == 0 {
		for _, d := range fallbackOrder[target] {
			pool = filterByDifficulty(remaining, d)
			if len(pool) > 0 {
				break
			}
		}
	}
	if len(pool) == 0 {
		pool = remaining
	}

	best, err := s.maxInformation(ctx, theta, pool)
	if err != nil {
		return nil, err
	}
	best.Target = target
	return best, nil
}

// maxInformation scores each candidate by Fisher information at theta,
// plus a small bounded jitter, and returns the highest scorer.
func (s *Selector) maxInformation(ctx context.Context, theta float64, pool []bank.Question) (*Selection, error) {
	var best *Selection
	bestScore := -1.0

	for _, q := range pool {
		disc := s.discrimination(ctx, &q)

		level := q.Difficulty.Level()
		p, err := irt.Probability(theta, level, disc)
		if err != nil {
			return nil, err
		}

		info := p * (1 - p)
		score := info + s.jitter()

		if score > bestScore {
			bestScore = score
			best = &Selection{
				Question:            q,
				Theta:               theta,
				ExpectedProbability: p,
				Information:         info,
			}
		}
	}
	return best, nil
}

// jitter draws the bounded random boost added to a candidate's score.
func (s *Selector) jitter() float64 {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Float64() * s.cfg.JitterMax
}

// discrimination resolves the discrimination parameter for a question,
// preferring its stored calibration when enabled and present.
func (s *Selector) discrimination(ctx context.Context, q *bank.Question) float64 {
	if !s.cfg.UseCalibration || s.calibrations == nil {
		return q.EffectiveDiscrimination()
	}
	// A missing or failing calibration lookup must not block selection.
	c, err := s.calibrations.Get(ctx, q.ID)
	if err != nil || c.Discrimination <= 0 {
		return q.EffectiveDiscrimination()
	}
	return c.Discrimination
}

func filterByDifficulty(qs []bank.Question, d bank.Difficulty) []bank.Question {
	var out []bank.Question
	for _, q := range qs {
		if q.Difficulty == d {
			out = append(out, q)
		}
	}
	return out
}
