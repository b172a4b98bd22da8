// Package classify assigns difficulty labels to question text. The
// classifier is an explicit capability handed to the import pipeline;
// which variant runs (rule-based, LLM, or ensemble) is a configuration
// decision, never an import-time fallback.
package classify

import (
	"context"
	"fmt"

	"github.com/nkhanna/examind/internal/bank"
)

// Classifier labels question text with a difficulty and a confidence in
// [0,1].
type Classifier interface {
	Name() string
	Classify(ctx context.Context, text string) (bank.Difficulty, float64, error)
}

// Mode selects the classifier variant.
type Mode string

const (
	ModeRuleBased Mode = "rule_based"
	ModeLLM       Mode = "llm"
	ModeEnsemble  Mode = "ensemble"
)

// Config holds classifier construction settings.
type Config struct {
	Mode Mode

	// OpenAIKey and Model configure the LLM variant. Required for
	// ModeLLM and ModeEnsemble.
	OpenAIKey string
	Model     string

	// EnsembleThreshold is the rule-based confidence below which the
	// ensemble consults the LLM.
	EnsembleThreshold float64
}

// DefaultConfig returns the standard classifier settings.
func DefaultConfig() Config {
	return Config{
		Mode:              ModeRuleBased,
		Model:             "gpt-4o-mini",
		EnsembleThreshold: 0.5,
	}
}

// New constructs the classifier for the configured mode.
func New(cfg Config) (Classifier, error) {
	switch cfg.Mode {
	case ModeRuleBased, "":
		return NewRuleBased(), nil
	case ModeLLM:
		return NewLLM(cfg)
	case ModeEnsemble:
		llm, err := NewLLM(cfg)
		if err != nil {
			return nil, err
		}
		return NewEnsemble(NewRuleBased(), llm, cfg.EnsembleThreshold), nil
	default:
		return nil, fmt.Errorf("unknown classifier mode %q", cfg.Mode)
	}
}
