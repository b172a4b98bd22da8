// Package analytics computes cross-session statistics from the response
// log: learning curves, adaptation effectiveness, and aggregate stats
// over all completed sessions.
package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/nkhanna/examind/internal/ability"
	"github.com/nkhanna/examind/internal/exam"
)

// targetAccuracy is the running-accuracy sweet spot the adaptive
// algorithm steers toward; effectiveness measures distance from it.
const targetAccuracy = 0.75

// SessionLog is the slice of the response log analytics needs.
type SessionLog interface {
	BySession(ctx context.Context, sessionID string) ([]exam.Response, error)
	SessionIDs(ctx context.Context) ([]string, error)
}

// CurvePoint is one step of a session's learning curve.
type CurvePoint struct {
	QuestionNumber  int     `json:"question_number"`
	Ability         float64 `json:"ability"`
	RunningAccuracy float64 `json:"accuracy"`
	DifficultyLevel int     `json:"difficulty_level"`
	TimeTaken       int     `json:"time_taken"`
}

// LearningCurve returns the per-question progression of a session.
func LearningCurve(ctx context.Context, log SessionLog, sessionID string) ([]CurvePoint, error) {
	responses, err := log.BySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	if len(responses) == 0 {
		return nil, exam.ErrNotFound
	}

	points := make([]CurvePoint, len(responses))
	correct := 0
	for i, r := range responses {
		if r.Correct {
			correct++
		}
		points[i] = CurvePoint{
			QuestionNumber:  i + 1,
			Ability:         ability.Estimate(responses[:i+1]),
			RunningAccuracy: float64(correct) / float64(i+1),
			DifficultyLevel: r.DifficultyLevel,
			TimeTaken:       r.TimeTaken,
		}
	}
	return points, nil
}

// AdaptationEffectiveness scores how well the selector held the examinee
// near the target accuracy: 1.0 means the last responses sat exactly on
// it. Sessions under 3 responses score a neutral 0.5.
func AdaptationEffectiveness(responses []exam.Response) float64 {
	if len(responses) < 3 {
		return 0.5
	}

	window := responses
	if len(window) > 5 {
		window = window[len(window)-5:]
	}
	correct := 0
	for _, r := range window {
		if r.Correct {
			correct++
		}
	}
	recent := float64(correct) / float64(len(window))

	effectiveness := 1.0 - math.Abs(recent-targetAccuracy)
	return clamp(effectiveness, 0, 1)
}

// Aggregate summarizes all sessions present in the response log.
type Aggregate struct {
	TotalSessions   int     `json:"total_sessions"`
	TotalQuestions  int     `json:"total_questions_administered"`
	AvgSessionLen   float64 `json:"average_session_length"`
	OverallAccuracy float64 `json:"overall_accuracy"`
	AvgTimeSecs     float64 `json:"average_time_per_question"`

	MinSessionLen    int `json:"min_session_length"`
	MaxSessionLen    int `json:"max_session_length"`
	MedianSessionLen int `json:"median_session_length"`

	// Performer counts bucket sessions by accuracy: >0.8 high,
	// 0.6..0.8 medium, <0.6 low.
	HighPerformers   int `json:"high_performers"`
	MediumPerformers int `json:"medium_performers"`
	LowPerformers    int `json:"low_performers"`
}

// Summarize walks every session in the log and aggregates the stats.
// Returns exam.ErrNotFound when the log is empty.
func Summarize(ctx context.Context, log SessionLog) (*Aggregate, error) {
	ids, err := log.SessionIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	if len(ids) == 0 {
		return nil, exam.ErrNotFound
	}

	agg := &Aggregate{TotalSessions: len(ids)}
	var lengths []int
	var accuracySum float64
	totalTime := 0

	for _, id := range ids {
		responses, err := log.BySession(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load session %s: %w", id, err)
		}
		if len(responses) == 0 {
			continue
		}

		lengths = append(lengths, len(responses))
		agg.TotalQuestions += len(responses)

		correct := 0
		for _, r := range responses {
			totalTime += r.TimeTaken
			if r.Correct {
				correct++
			}
		}
		acc := float64(correct) / float64(len(responses))
		accuracySum += acc
		switch {
		case acc > 0.8:
			agg.HighPerformers++
		case acc >= 0.6:
			agg.MediumPerformers++
		default:
			agg.LowPerformers++
		}
	}

	if len(lengths) == 0 {
		return nil, exam.ErrNotFound
	}

	sort.Ints(lengths)
	agg.TotalSessions = len(lengths)
	agg.MinSessionLen = lengths[0]
	agg.MaxSessionLen = lengths[len(lengths)-1]
	agg.MedianSessionLen = lengths[len(lengths)/2]
	agg.AvgSessionLen = float64(agg.TotalQuestions) / float64(len(lengths))
	agg.OverallAccuracy = accuracySum / float64(len(lengths))
	agg.AvgTimeSecs = float64(totalTime) / float64(agg.TotalQuestions)
	return agg, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
