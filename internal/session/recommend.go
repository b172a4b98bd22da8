package session

// Recommendation is qualitative guidance derived from ability and
// accuracy at a point in the session.
type Recommendation string

const (
	RecommendStartMedium      Recommendation = "start_with_medium_questions"
	RecommendTryHarder        Recommendation = "try_harder_questions"
	RecommendReviewBasics     Recommendation = "review_basics_first"
	RecommendGoodProgress     Recommendation = "good_progress_continue"
	RecommendAdjustDifficulty Recommendation = "adjust_difficulty_level"
)

// Recommend maps the current ability estimate and overall accuracy to a
// qualitative recommendation.
func Recommend(theta, accuracy float64, totalResponses int) Recommendation {
	if totalResponses == 0 {
		return RecommendStartMedium
	}

	switch {
	case accuracy > 0.8 && theta > 1.0:
		return RecommendTryHarder
	case accuracy < 0.4 && theta < -1.0:
		return RecommendReviewBasics
	case accuracy > 0.6 && accuracy < 0.8:
		return RecommendGoodProgress
	default:
		return RecommendAdjustDifficulty
	}
}
