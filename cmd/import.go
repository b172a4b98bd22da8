package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nkhanna/examind/internal/bank"
	"github.com/nkhanna/examind/internal/classify"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import questions into the bank",
	Long: `Import reads a JSON question file, validates it against the import
schema, and writes the questions into the bank. Questions without a
difficulty label are classified with the configured classifier.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		questions, err := bank.LoadFile(args[0])
		if err != nil {
			return err
		}

		mode, _ := cmd.Flags().GetString("classifier")
		classifier, err := buildClassifier(mode)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		classified := 0
		for i := range questions {
			if questions[i].Difficulty.Valid() {
				continue
			}
			d, conf, err := classifier.Classify(ctx, questions[i].Text)
			if err != nil {
				return fmt.Errorf("classify question %d: %w", questions[i].ID, err)
			}
			questions[i].Difficulty = d
			classified++
			fmt.Printf("classified question %d as %s (%.2f, %s)\n",
				questions[i].ID, d, conf, classifier.Name())
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		written, err := s.Questions().Import(ctx, questions)
		if err != nil {
			return err
		}

		fmt.Printf("imported %d questions (%d classified)\n", written, classified)
		return nil
	},
}

func init() {
	importCmd.Flags().String("classifier", string(classify.ModeRuleBased),
		"Classifier for unlabeled questions: rule_based, llm, or ensemble")
}

// buildClassifier constructs the difficulty classifier for the chosen
// mode; the LLM variants read OPENAI_API_KEY from the environment.
func buildClassifier(mode string) (classify.Classifier, error) {
	cfg := classify.DefaultConfig()
	cfg.Mode = classify.Mode(mode)
	cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	return classify.New(cfg)
}
