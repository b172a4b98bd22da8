package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nkhanna/examind/internal/calibration"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Recompute item calibrations from the response log",
	Long: `Calibrate walks every question in the bank and refreshes its observed
difficulty from the accumulated responses. Items with fewer than the
minimum sample are skipped. With --list, prints the stored calibrations
instead of recomputing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()

		if list, _ := cmd.Flags().GetBool("list"); list {
			all, err := s.Calibrations().All(ctx)
			if err != nil {
				return err
			}
			fmt.Print(renderCalibrations(all))
			return nil
		}

		ids, err := s.Questions().IDs(ctx)
		if err != nil {
			return err
		}

		updated, skipped := 0, 0
		for _, id := range ids {
			responses, err := s.Responses().ByQuestion(ctx, id)
			if err != nil {
				return err
			}

			c, ok := calibration.Compute(id, responses, time.Now())
			if !ok {
				skipped++
				continue
			}
			if err := s.Calibrations().Upsert(ctx, c); err != nil {
				return err
			}
			updated++
			fmt.Printf("question %d: observed difficulty %.2f over %d responses\n",
				id, c.ObservedDifficulty, c.SampleSize)
		}

		fmt.Printf("calibrated %d items, skipped %d below the %d-response minimum\n",
			updated, skipped, calibration.MinSampleSize)
		return nil
	},
}

func renderCalibrations(all []calibration.ItemCalibration) string {
	if len(all) == 0 {
		return "no calibrations stored yet\n"
	}
	var b strings.Builder
	for _, c := range all {
		b.WriteString(fmt.Sprintf("question %d: observed difficulty %.2f, discrimination %.2f, %d responses (updated %s)\n",
			c.QuestionID, c.ObservedDifficulty, c.Discrimination, c.SampleSize,
			c.LastUpdated.Format(time.DateOnly)))
	}
	return b.String()
}

func init() {
	calibrateCmd.Flags().Bool("list", false, "List stored calibrations instead of recomputing")
}
