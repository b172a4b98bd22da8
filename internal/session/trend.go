package session

import "github.com/nkhanna/examind/internal/exam"

// Trend describes the direction of recent performance relative to the
// earlier part of the session.
type Trend string

const (
	TrendImproving    Trend = "improving"
	TrendDeclining    Trend = "declining"
	TrendStable       Trend = "stable"
	TrendInsufficient Trend = "insufficient_data"
)

// trendWindow is how many trailing responses count as "recent".
const trendWindow = 3

// trendThreshold is the accuracy delta needed before a trend is called.
const trendThreshold = 0.1

// AnalyzeTrend compares accuracy over the last three responses against
// the accuracy of everything before them. Fewer than six responses is not
// enough signal for a comparison.
func AnalyzeTrend(responses []exam.Response) Trend {
	if len(responses) < 2*trendWindow {
		return TrendInsufficient
	}

	recent := responses[len(responses)-trendWindow:]
	earlier := responses[:len(responses)-trendWindow]

	recentAcc := accuracy(recent)
	earlierAcc := accuracy(earlier)

	switch {
	case recentAcc > earlierAcc+trendThreshold:
		return TrendImproving
	case recentAcc < earlierAcc-trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func accuracy(responses []exam.Response) float64 {
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
