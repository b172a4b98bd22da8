package classify

import (
	"context"
	"strings"

	"github.com/nkhanna/examind/internal/bank"
)

// difficultyKeywords maps each label to phrase groups that signal it.
// Hard skews toward implementation and design work, Medium toward
// conceptual explanation, Easy toward definitions and basics.
var difficultyKeywords = map[bank.Difficulty][]string{
	bank.Hard: {
		"implement", "algorithm", "complexity", "optimize", "efficient",
		"design", "architecture", "distributed", "scalability",
		"binary tree", "hash table", "dynamic programming", "recursion",
		"performance", "load balancer", "caching", "indexing",
	},
	bank.Medium: {
		"explain", "difference", "compare", "how does", "why is",
		"inheritance", "polymorphism", "encapsulation", "abstraction",
		"framework", "library", "api", "rest", "http", "tcp", "sql",
		"works", "process", "lifecycle", "workflow", "mechanism",
		"principle", "concept", "theory", "approach",
	},
	bank.Easy: {
		"what is", "define", "syntax", "basic", "simple", "introduction",
		"variable", "function", "loop", "condition", "array",
		"print", "input", "output", "display",
		"meaning", "definition", "purpose", "advantage",
		"true", "false", "which one",
	},
}

// RuleBased classifies by keyword scoring. It never fails: text matching
// nothing is labeled Medium with low confidence.
type RuleBased struct{}

// NewRuleBased creates a rule-based classifier.
func NewRuleBased() *RuleBased {
	return &RuleBased{}
}

func (r *RuleBased) Name() string { return "rule_based" }

func (r *RuleBased) Classify(_ context.Context, text string) (bank.Difficulty, float64, error) {
	lowered := strings.ToLower(text)

	scores := make(map[bank.Difficulty]int)
	total := 0
	for _, d := range bank.Difficulties {
		for _, kw := range difficultyKeywords[d] {
			if strings.Contains(lowered, kw) {
				scores[d]++
				total++
			}
		}
	}

	if total == 0 {
		return bank.Medium, 0.34, nil
	}

	// Highest score wins; ties resolve toward the harder label, since a
	// question mixing basic and advanced vocabulary is rarely basic.
	best := bank.Easy
	for _, d := range []bank.Difficulty{bank.Medium, bank.Hard} {
		if scores[d] >= scores[best] {
			best = d
		}
	}

	return best, float64(scores[best]) / float64(total), nil
}
