package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkhanna/examind/internal/bank"
)

func TestRuleBased_Classify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bank.Difficulty
	}{
		{"definition", "What is a variable in Python?", bank.Easy},
		{"conceptual", "Explain the difference between TCP and UDP.", bank.Medium},
		{"implementation", "Implement an efficient caching algorithm for a distributed load balancer.", bank.Hard},
		{"no keywords", "Lorem ipsum dolor sit amet.", bank.Medium},
	}

	c := NewRuleBased()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, conf, err := c.Classify(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, conf, 0.0)
			assert.LessOrEqual(t, conf, 1.0)
		})
	}
}

func TestRuleBased_NoMatchIsLowConfidence(t *testing.T) {
	c := NewRuleBased()
	_, conf, err := c.Classify(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Less(t, conf, 0.5, "unmatched text must classify with low confidence")
}

func TestRuleBased_TieBreaksHarder(t *testing.T) {
	// One Easy keyword ("basic") and one Hard keyword ("algorithm").
	c := NewRuleBased()
	got, _, err := c.Classify(context.Background(), "basic algorithm")
	require.NoError(t, err)
	assert.Equal(t, bank.Hard, got)
}

// stubClassifier returns a fixed answer or error.
type stubClassifier struct {
	label bank.Difficulty
	conf  float64
	err   error
	calls int
}

func (s *stubClassifier) Name() string { return "stub" }

func (s *stubClassifier) Classify(context.Context, string) (bank.Difficulty, float64, error) {
	s.calls++
	if s.err != nil {
		return "", 0, s.err
	}
	return s.label, s.conf, nil
}

func TestEnsemble_ConfidentRuleSkipsLLM(t *testing.T) {
	rules := &stubClassifier{label: bank.Easy, conf: 0.9}
	llm := &stubClassifier{label: bank.Hard, conf: 0.8}
	e := NewEnsemble(rules, llm, 0.5)

	got, conf, err := e.Classify(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, bank.Easy, got)
	assert.Equal(t, 0.9, conf)
	assert.Zero(t, llm.calls, "LLM must not be consulted for a confident rule result")
}

func TestEnsemble_LowConfidenceConsultsLLM(t *testing.T) {
	rules := &stubClassifier{label: bank.Medium, conf: 0.34}
	llm := &stubClassifier{label: bank.Hard, conf: 0.8}
	e := NewEnsemble(rules, llm, 0.5)

	got, conf, err := e.Classify(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, bank.Hard, got)
	assert.Equal(t, 0.8, conf)
}

func TestEnsemble_LLMFailureFallsBackToRules(t *testing.T) {
	rules := &stubClassifier{label: bank.Medium, conf: 0.34}
	llm := &stubClassifier{err: errors.New("api unavailable")}
	e := NewEnsemble(rules, llm, 0.5)

	got, conf, err := e.Classify(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, bank.Medium, got)
	assert.Equal(t, 0.34, conf)
}

func TestNew_Modes(t *testing.T) {
	c, err := New(Config{Mode: ModeRuleBased})
	require.NoError(t, err)
	assert.Equal(t, "rule_based", c.Name())

	_, err = New(Config{Mode: "bogus"})
	require.Error(t, err)

	_, err = New(Config{Mode: ModeLLM})
	require.Error(t, err, "LLM mode without an API key must fail")
}
