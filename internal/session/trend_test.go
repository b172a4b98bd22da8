package session

import (
	"testing"

	"github.com/nkhanna/examind/internal/exam"
)

func boolResponses(correct ...bool) []exam.Response {
	out := make([]exam.Response, len(correct))
	for i, c := range correct {
		out[i] = exam.Response{QuestionID: i + 1, DifficultyLevel: 2, Correct: c}
	}
	return out
}

func TestAnalyzeTrend_InsufficientData(t *testing.T) {
	for n := 0; n < 6; n++ {
		responses := boolResponses(make([]bool, n)...)
		if got := AnalyzeTrend(responses); got != TrendInsufficient {
			t.Errorf("%d responses: trend = %s, want %s", n, got, TrendInsufficient)
		}
	}
}

func TestAnalyzeTrend_Improving(t *testing.T) {
	// Earlier 1/3 correct, recent 3/3.
	responses := boolResponses(false, false, true, true, true, true)
	if got := AnalyzeTrend(responses); got != TrendImproving {
		t.Errorf("trend = %s, want %s", got, TrendImproving)
	}
}

func TestAnalyzeTrend_Declining(t *testing.T) {
	// Earlier 3/3 correct, recent 0/3.
	responses := boolResponses(true, true, true, false, false, false)
	if got := AnalyzeTrend(responses); got != TrendDeclining {
		t.Errorf("trend = %s, want %s", got, TrendDeclining)
	}
}

func TestAnalyzeTrend_StableWithinThreshold(t *testing.T) {
	// Earlier 2/3, recent 2/3: delta 0 is inside the threshold.
	responses := boolResponses(true, true, false, true, false, true)
	if got := AnalyzeTrend(responses); got != TrendStable {
		t.Errorf("trend = %s, want %s", got, TrendStable)
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name     string
		theta    float64
		accuracy float64
		total    int
		want     Recommendation
	}{
		{"no responses", 0, 0, 0, RecommendStartMedium},
		{"strong performer", 1.5, 0.9, 10, RecommendTryHarder},
		{"struggling", -1.5, 0.3, 10, RecommendReviewBasics},
		{"steady progress", 0.2, 0.7, 10, RecommendGoodProgress},
		{"mismatch", 0.0, 0.5, 10, RecommendAdjustDifficulty},
		{"high accuracy low theta", 0.5, 0.9, 10, RecommendAdjustDifficulty},
	}
	for _, tt := range tests {
		if got := Recommend(tt.theta, tt.accuracy, tt.total); got != tt.want {
			t.Errorf("%s: Recommend(%v, %v, %d) = %s, want %s",
				tt.name, tt.theta, tt.accuracy, tt.total, got, tt.want)
		}
	}
}
