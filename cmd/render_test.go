package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/nkhanna/examind/internal/bank"
	"github.com/nkhanna/examind/internal/calibration"
	"github.com/nkhanna/examind/internal/report"
	"github.com/nkhanna/examind/internal/session"
	"github.com/nkhanna/examind/internal/store"
)

func TestRenderReport(t *testing.T) {
	rep := &report.Report{
		SessionID: "abc123",
		StudentID: 7,
		Summary: report.Summary{
			TotalQuestions:  6,
			OverallAccuracy: 0.5,
			FinalAbility:    0.4,
			TotalTimeSecs:   120,
			AvgTimeSecs:     20,
		},
		Breakdown: map[bank.Difficulty]report.DifficultyStats{
			bank.Hard: {Accuracy: 0.25, Count: 4, AvgTimeSecs: 25},
			bank.Easy: {Accuracy: 1.0, Count: 2, AvgTimeSecs: 10},
		},
		Strengths:          []bank.Difficulty{bank.Easy},
		Weaknesses:         []bank.Difficulty{bank.Hard},
		Trend:              session.TrendStable,
		Recommendation:     session.RecommendAdjustDifficulty,
		AbilityProgression: []float64{0.0, 0.2, 0.4},
	}

	out := renderReport(rep)

	for _, want := range []string{"abc123", "Easy", "Hard", "stable", "adjust_difficulty_level"} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q", want)
		}
	}

	// Breakdown rows render in ascending difficulty order.
	if strings.Index(out, "Easy") > strings.Index(out, "Hard") {
		t.Error("Easy breakdown must render before Hard")
	}

	// No Medium responses, so no Medium row in the breakdown section.
	if strings.Count(out, "Medium") != 0 {
		t.Error("Medium row rendered without any Medium responses")
	}
}

func TestSparkline(t *testing.T) {
	if got := sparkline(nil); got != "" {
		t.Errorf("sparkline(nil) = %q, want empty", got)
	}
	out := sparkline([]float64{-3, 0, 3, -10, 10})
	if n := len([]rune(out)); n != 5 {
		t.Errorf("sparkline length = %d runes, want 5", n)
	}
}

func TestRenderCompletedSessions(t *testing.T) {
	out := renderCompletedSessions([]store.SessionSummary{
		{SessionID: "aaaabbbbcccc", StudentID: 1, Action: store.ActionCompleted,
			QuestionsServed: 20, CorrectAnswers: 14, FinalAbility: 1.2},
		{SessionID: "dddd", StudentID: 2, Action: store.ActionExpired,
			QuestionsServed: 4, CorrectAnswers: 1, FinalAbility: -0.6},
	})

	for _, want := range []string{"aaaabbbb", "completed: 14/20 correct", "expired: 1/4 correct", "+1.20", "-0.60"} {
		if !strings.Contains(out, want) {
			t.Errorf("completed-sessions output missing %q", want)
		}
	}
}

func TestRenderCalibrations(t *testing.T) {
	if out := renderCalibrations(nil); !strings.Contains(out, "no calibrations") {
		t.Errorf("empty list output = %q", out)
	}

	out := renderCalibrations([]calibration.ItemCalibration{
		{QuestionID: 3, ObservedDifficulty: 0.4, Discrimination: 1.0, SampleSize: 8,
			LastUpdated: time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)},
	})
	for _, want := range []string{"question 3", "0.40", "8 responses", "2026-08-27"} {
		if !strings.Contains(out, want) {
			t.Errorf("calibration output missing %q", want)
		}
	}
}
