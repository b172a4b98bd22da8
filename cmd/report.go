package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nkhanna/examind/internal/bank"
	"github.com/nkhanna/examind/internal/report"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
)

var reportCmd = &cobra.Command{
	Use:   "report <session-id>",
	Short: "Print the performance report for a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		responses, err := s.Responses().BySession(cmd.Context(), sessionID)
		if err != nil {
			return err
		}

		studentID := 0
		if len(responses) > 0 {
			studentID = responses[0].StudentID
		}

		rep, err := report.Generate(sessionID, studentID, responses)
		if err != nil {
			return fmt.Errorf("session %s: %w", sessionID, err)
		}

		fmt.Println(renderReport(rep))
		return nil
	},
}

func renderReport(r *report.Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Session report: "+r.SessionID) + "\n")

	b.WriteString(sectionStyle.Render("Summary") + "\n")
	writeRow(&b, "Questions", fmt.Sprintf("%d", r.Summary.TotalQuestions))
	writeRow(&b, "Accuracy", fmt.Sprintf("%.1f%%", r.Summary.OverallAccuracy*100))
	writeRow(&b, "Final ability", fmt.Sprintf("%+.2f", r.Summary.FinalAbility))
	writeRow(&b, "Trend", string(r.Trend))
	writeRow(&b, "Total time", fmt.Sprintf("%ds", r.Summary.TotalTimeSecs))
	writeRow(&b, "Avg time/question", fmt.Sprintf("%.1fs", r.Summary.AvgTimeSecs))

	b.WriteString(sectionStyle.Render("By difficulty") + "\n")
	for level := 1; level <= 3; level++ {
		d, err := bank.FromLevel(level)
		if err != nil {
			continue
		}
		stats, ok := r.Breakdown[d]
		if !ok {
			continue
		}
		writeRow(&b, string(d), fmt.Sprintf("%.1f%% over %d (avg %.1fs)",
			stats.Accuracy*100, stats.Count, stats.AvgTimeSecs))
	}

	if len(r.Strengths) > 0 {
		b.WriteString(sectionStyle.Render("Strengths") + "\n")
		for _, d := range r.Strengths {
			b.WriteString("  " + goodStyle.Render(string(d)) + "\n")
		}
	}
	if len(r.Weaknesses) > 0 {
		b.WriteString(sectionStyle.Render("Weaknesses") + "\n")
		for _, d := range r.Weaknesses {
			b.WriteString("  " + badStyle.Render(string(d)) + "\n")
		}
	}

	b.WriteString(sectionStyle.Render("Ability progression") + "\n")
	b.WriteString("  " + sparkline(r.AbilityProgression) + "\n")

	b.WriteString(sectionStyle.Render("Recommendation") + "\n")
	b.WriteString("  " + valueStyle.Render(string(r.Recommendation)) + "\n")

	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("  %s %s\n",
		labelStyle.Render(fmt.Sprintf("%-18s", label)),
		valueStyle.Render(value)))
}

// sparkline renders a theta progression as a compact bar strip over the
// [-3, 3] ability range.
func sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	bars := []rune("▁▂▃▄▅▆▇█")
	var b strings.Builder
	for _, v := range values {
		idx := int((v + 3.0) / 6.0 * float64(len(bars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(bars) {
			idx = len(bars) - 1
		}
		b.WriteRune(bars[idx])
	}
	return b.String()
}
