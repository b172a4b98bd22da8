package classify

import (
	"context"

	"github.com/nkhanna/examind/internal/bank"
)

// Ensemble runs the rule-based classifier first and consults the LLM only
// when the rule confidence falls below the threshold. An LLM failure
// falls back to the rule result rather than failing the classification.
type Ensemble struct {
	rules     Classifier
	llm       Classifier
	threshold float64
}

// NewEnsemble creates an Ensemble from the two classifiers.
func NewEnsemble(rules, llm Classifier, threshold float64) *Ensemble {
	return &Ensemble{rules: rules, llm: llm, threshold: threshold}
}

func (e *Ensemble) Name() string { return "ensemble" }

func (e *Ensemble) Classify(ctx context.Context, text string) (bank.Difficulty, float64, error) {
	d, conf, err := e.rules.Classify(ctx, text)
	if err == nil && conf >= e.threshold {
		return d, conf, nil
	}

	llmD, llmConf, llmErr := e.llm.Classify(ctx, text)
	if llmErr != nil {
		if err != nil {
			return "", 0, err
		}
		return d, conf, nil
	}
	return llmD, llmConf, nil
}
