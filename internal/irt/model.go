// Package irt implements the 1-parameter logistic (Rasch) item response
// model used for ability-aware question scoring.
package irt

import (
	"math"

	"github.com/nkhanna/examind/internal/exam"
)

const (
	// MinProbability and MaxProbability clamp the model output away from
	// degenerate certainty.
	MinProbability = 0.01
	MaxProbability = 0.99

	// LogitSpacing is the distance between adjacent difficulty levels on
	// the logit scale: Easy=-1.5, Medium=0, Hard=+1.5.
	LogitSpacing = 1.5

	// overflowCutoff bounds the exponent fed to math.Exp. Beyond this the
	// result is saturated anyway, so skip the evaluation entirely.
	overflowCutoff = 40.0
)

// LogitPosition maps a categorical difficulty level (1..3) to its
// continuous position on the ability scale.
func LogitPosition(level int) float64 {
	return float64(level-2) * LogitSpacing
}

// Probability returns the probability that an examinee of ability theta
// answers an item of the given difficulty level correctly.
// The result is clamped to [MinProbability, MaxProbability].
func Probability(theta float64, level int, discrimination float64) (float64, error) {
	if level < 1 || level > 3 {
		return 0, &exam.InvalidArgumentError{Field: "difficulty_level", Value: level}
	}
	if discrimination <= 0 {
		discrimination = 1.0
	}

	b := LogitPosition(level)
	exponent := discrimination * (theta - b)

	// Saturate directly for large |exponent| rather than risking overflow
	// in math.Exp.
	if exponent > overflowCutoff {
		return MaxProbability, nil
	}
	if exponent < -overflowCutoff {
		return MinProbability, nil
	}

	p := 1.0 / (1.0 + math.Exp(-exponent))
	return clamp(p, MinProbability, MaxProbability), nil
}

// FisherInformation returns the information an item yields about an
// examinee at ability theta: I = P(1-P), maximal where P = 0.5.
func FisherInformation(theta float64, level int, discrimination float64) (float64, error) {
	p, err := Probability(theta, level, discrimination)
	if err != nil {
		return 0, err
	}
	return p * (1 - p), nil
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
