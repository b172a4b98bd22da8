package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nkhanna/examind/internal/analytics"
	"github.com/nkhanna/examind/internal/exam"
	"github.com/nkhanna/examind/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics over all recorded sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		agg, err := analytics.Summarize(ctx, s.Responses())
		if err != nil {
			if errors.Is(err, exam.ErrNotFound) {
				fmt.Println("no sessions recorded yet")
				return nil
			}
			return err
		}

		fmt.Println(titleStyle.Render("Exam statistics"))
		writeRowStats("Sessions", fmt.Sprintf("%d", agg.TotalSessions))
		writeRowStats("Questions served", fmt.Sprintf("%d", agg.TotalQuestions))
		writeRowStats("Avg session length", fmt.Sprintf("%.1f", agg.AvgSessionLen))
		writeRowStats("Session length", fmt.Sprintf("min %d / median %d / max %d",
			agg.MinSessionLen, agg.MedianSessionLen, agg.MaxSessionLen))
		writeRowStats("Overall accuracy", fmt.Sprintf("%.1f%%", agg.OverallAccuracy*100))
		writeRowStats("Avg time/question", fmt.Sprintf("%.1fs", agg.AvgTimeSecs))
		writeRowStats("Performers", fmt.Sprintf("%d high / %d medium / %d low",
			agg.HighPerformers, agg.MediumPerformers, agg.LowPerformers))

		// Per-session adaptation effectiveness.
		ids, err := s.Responses().SessionIDs(ctx)
		if err != nil {
			return err
		}
		fmt.Println(sectionStyle.Render("Adaptation effectiveness"))
		for _, id := range ids {
			responses, err := s.Responses().BySession(ctx, id)
			if err != nil {
				return err
			}
			eff := analytics.AdaptationEffectiveness(responses)
			writeRowStats(shortID(id), fmt.Sprintf("%.2f", eff))
		}

		// Finished sessions with their recorded outcomes.
		done, err := s.Sessions().Completed(ctx)
		if err != nil {
			return err
		}
		if len(done) > 0 {
			fmt.Print(renderCompletedSessions(done))
		}
		return nil
	},
}

func renderCompletedSessions(done []store.SessionSummary) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Completed sessions") + "\n")
	for _, d := range done {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-20s", shortID(d.SessionID))),
			valueStyle.Render(fmt.Sprintf("%s: %d/%d correct, final ability %+.2f",
				d.Action, d.CorrectAnswers, d.QuestionsServed, d.FinalAbility))))
	}
	return b.String()
}

func writeRowStats(label, value string) {
	fmt.Printf("  %s %s\n",
		labelStyle.Render(fmt.Sprintf("%-20s", label)),
		valueStyle.Render(value))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
