// Package calibration maintains empirically observed per-item parameters
// from aggregate response statistics.
package calibration

import (
	"context"
	"time"

	"github.com/nkhanna/examind/internal/exam"
)

// MinSampleSize is the minimum number of observed responses before an
// item's parameters are considered reliable enough to record.
const MinSampleSize = 5

// ItemCalibration holds the observed parameters for one question.
type ItemCalibration struct {
	QuestionID int
	// ObservedDifficulty is 1 - success rate: high values mean few
	// examinees answered correctly.
	ObservedDifficulty float64
	Discrimination     float64
	SampleSize         int
	LastUpdated        time.Time
}

// Store persists item calibrations keyed by question id.
type Store interface {
	// Get returns the calibration for a question, or exam.ErrNotFound.
	Get(ctx context.Context, questionID int) (*ItemCalibration, error)

	// Upsert inserts or replaces a calibration.
	Upsert(ctx context.Context, c ItemCalibration) error
}

// Compute derives the calibration for a question from its observed
// responses. Returns false when the sample is below MinSampleSize.
//
// Discrimination is held at the default 1.0: the observed data gives no
// estimation procedure for it, so only difficulty is fitted.
func Compute(questionID int, responses []exam.Response, now time.Time) (ItemCalibration, bool) {
	if len(responses) < MinSampleSize {
		return ItemCalibration{}, false
	}

	correct := 0
	for _, r := range responses {
		if r.Correct {
			correct++
		}
	}

	return ItemCalibration{
		QuestionID:         questionID,
		ObservedDifficulty: 1 - float64(correct)/float64(len(responses)),
		Discrimination:     1.0,
		SampleSize:         len(responses),
		LastUpdated:        now,
	}, true
}
