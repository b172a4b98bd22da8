package cmd

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nkhanna/examind/internal/engine"
	"github.com/nkhanna/examind/internal/simulate"
	"github.com/nkhanna/examind/internal/store"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run simulated adaptive sessions against the bank",
	Long: `Simulate plays full adaptive sessions with synthetic examinees whose
answers are sampled from the IRT model at a chosen true ability. Useful
for exercising selection behavior and growing calibration samples.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, _ := cmd.Flags().GetInt("sessions")
		trueAbility, _ := cmd.Flags().GetFloat64("ability")
		seed, _ := cmd.Flags().GetInt64("seed")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		logger, err := buildLogger(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		count, err := s.Questions().Count(cmd.Context())
		if err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("question bank is empty; run 'examind import' first")
		}

		rng := rand.New(rand.NewSource(seed))
		eng := engine.New(s.Questions(), s.Responses(),
			engine.WithCalibrationStore(s.Calibrations()),
			engine.WithRand(rng),
			engine.WithLogger(logger),
		)

		ctx := cmd.Context()
		for i := 0; i < sessions; i++ {
			studentID := 1000 + i
			sessionID := uuid.NewString()
			ex := simulate.NewExaminee(studentID, trueAbility, rng)

			if err := s.Sessions().Append(ctx, store.SessionEventData{
				SessionID: sessionID,
				StudentID: studentID,
				Action:    store.ActionStarted,
			}); err != nil {
				return err
			}

			out, err := simulate.RunSession(ctx, eng, ex, sessionID)
			if err != nil {
				return err
			}

			if err := s.Sessions().Append(ctx, store.SessionEventData{
				SessionID:       sessionID,
				StudentID:       studentID,
				Action:          store.ActionCompleted,
				QuestionsServed: out.Questions,
				CorrectAnswers:  out.Correct,
				FinalAbility:    out.EstimatedTheta,
			}); err != nil {
				return err
			}

			fmt.Printf("session %s: %d/%d correct, true ability %.2f, estimated %.2f\n",
				sessionID[:8], out.Correct, out.Questions, out.TrueAbility, out.EstimatedTheta)
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().Int("sessions", 1, "Number of sessions to simulate")
	simulateCmd.Flags().Float64("ability", 0.0, "True ability of the simulated examinee")
	simulateCmd.Flags().Int64("seed", 1, "Random seed for reproducible runs")
}
