// Package report aggregates a completed session's response history into a
// structured performance report.
package report

import (
	"github.com/nkhanna/examind/internal/ability"
	"github.com/nkhanna/examind/internal/bank"
	"github.com/nkhanna/examind/internal/exam"
	"github.com/nkhanna/examind/internal/session"
)

// Summary holds the whole-session aggregates.
type Summary struct {
	TotalQuestions  int     `json:"total_questions"`
	OverallAccuracy float64 `json:"overall_accuracy"`
	FinalAbility    float64 `json:"final_ability_estimate"`
	TotalTimeSecs   int     `json:"total_time"`
	AvgTimeSecs     float64 `json:"avg_time_per_question"`
}

// DifficultyStats is the per-difficulty-level breakdown. Only levels with
// at least one response appear in a report.
type DifficultyStats struct {
	Accuracy    float64 `json:"accuracy"`
	Count       int     `json:"count"`
	AvgTimeSecs float64 `json:"avg_time"`
}

// Report is the final performance report for a session.
type Report struct {
	SessionID string `json:"session_id"`
	StudentID int    `json:"student_id"`

	Summary   Summary                             `json:"session_summary"`
	Breakdown map[bank.Difficulty]DifficultyStats `json:"difficulty_breakdown"`

	// Strengths and Weaknesses are the difficulty levels where accuracy
	// exceeded 0.7 or fell below 0.5 respectively.
	Strengths  []bank.Difficulty `json:"strengths"`
	Weaknesses []bank.Difficulty `json:"weaknesses"`

	Trend              session.Trend          `json:"performance_trend"`
	Recommendation     session.Recommendation `json:"recommendation"`
	AbilityProgression []float64              `json:"ability_progression"`
}

const (
	strengthThreshold = 0.7
	weaknessThreshold = 0.5
)

// Generate builds a report from a session's ordered response history.
// A session with no responses cannot be reported on and yields
// exam.ErrNotFound.
func Generate(sessionID string, studentID int, responses []exam.Response) (*Report, error) {
	if len(responses) == 0 {
		return nil, exam.ErrNotFound
	}

	theta := ability.Estimate(responses)
	totalTime := 0
	for _, r := range responses {
		totalTime += r.TimeTaken
	}

	breakdown := make(map[bank.Difficulty]DifficultyStats)
	var strengths, weaknesses []bank.Difficulty
	for _, d := range bank.Difficulties {
		stats, ok := statsForLevel(responses, d.Level())
		if !ok {
			continue
		}
		breakdown[d] = stats
		if stats.Accuracy > strengthThreshold {
			strengths = append(strengths, d)
		} else if stats.Accuracy < weaknessThreshold {
			weaknesses = append(weaknesses, d)
		}
	}

	acc := ability.Accuracy(responses)
	return &Report{
		SessionID: sessionID,
		StudentID: studentID,
		Summary: Summary{
			TotalQuestions:  len(responses),
			OverallAccuracy: acc,
			FinalAbility:    theta,
			TotalTimeSecs:   totalTime,
			AvgTimeSecs:     float64(totalTime) / float64(len(responses)),
		},
		Breakdown:          breakdown,
		Strengths:          strengths,
		Weaknesses:         weaknesses,
		Trend:              session.AnalyzeTrend(responses),
		Recommendation:     session.Recommend(theta, acc, len(responses)),
		AbilityProgression: ability.Progression(responses),
	}, nil
}

// statsForLevel aggregates the responses at one difficulty level.
func statsForLevel(responses []exam.Response, level int) (DifficultyStats, bool) {
	var count, correct, totalTime int
	for _, r := range responses {
		if r.DifficultyLevel != level {
			continue
		}
		count++
		totalTime += r.TimeTaken
		if r.Correct {
			correct++
		}
	}
	if count == 0 {
		return DifficultyStats{}, false
	}
	return DifficultyStats{
		Accuracy:    float64(correct) / float64(count),
		Count:       count,
		AvgTimeSecs: float64(totalTime) / float64(count),
	}, true
}
