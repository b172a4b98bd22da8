// Package ability estimates examinee proficiency (theta) from a session's
// response history.
package ability

import (
	"math"

	"github.com/nkhanna/examind/internal/exam"
)

const (
	// Initial is the prior belief for an examinee with no responses.
	Initial = 0.0

	// MinTheta and MaxTheta bound the estimate.
	MinTheta = -3.0
	MaxTheta = 3.0

	// saturationTheta is returned when the weighted accuracy is at either
	// extreme, keeping the estimate off the hard bounds.
	saturationTheta = 2.5
)

// Estimate derives a scalar ability estimate from the ordered response
// history. Each response is weighted by its difficulty level, so a single
// correct answer on a hard item does not saturate the scale the way raw
// accuracy would.
func Estimate(responses []exam.Response) float64 {
	if len(responses) == 0 {
		return Initial
	}

	var weightedScore, totalWeight float64
	for _, r := range responses {
		weight := float64(r.DifficultyLevel)
		totalWeight += weight
		if r.Correct {
			weightedScore += weight
		}
	}
	if totalWeight == 0 {
		return Initial
	}

	weighted := weightedScore / totalWeight

	var theta float64
	switch {
	case weighted >= 0.99:
		theta = saturationTheta
	case weighted <= 0.01:
		theta = -saturationTheta
	default:
		theta = math.Log(weighted / (1 - weighted))
	}

	return clamp(theta, MinTheta, MaxTheta)
}

// Progression returns the estimate recomputed after each response in turn,
// for charting how the estimate converged over the session.
func Progression(responses []exam.Response) []float64 {
	out := make([]float64, len(responses))
	for i := range responses {
		out[i] = Estimate(responses[:i+1])
	}
	return out
}

// Accuracy returns the fraction of correct responses, or 0 for an empty
// history.
func Accuracy(responses []exam.Response) float64 {
	if len(responses) == 0 {
		return 0
	}
	correct := 0
	for _, r := range responses {
		if r.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(responses))
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
