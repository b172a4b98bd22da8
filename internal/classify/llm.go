package classify

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nkhanna/examind/internal/bank"
)

const classifySystemPrompt = `You label exam questions with a difficulty for an adaptive aptitude test.
Easy: definitions, syntax, single basic facts.
Medium: conceptual explanation, comparisons, how mechanisms work.
Hard: implementation, algorithmic reasoning, system design.
Respond with JSON only.`

// classifySchema is the structured-output schema for the LLM response.
var classifySchema = map[string]any{
	"type":                 "object",
	"required":             []any{"difficulty", "confidence"},
	"additionalProperties": false,
	"properties": map[string]any{
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"Easy", "Medium", "Hard"},
		},
		"confidence": map[string]any{
			"type":    "number",
			"minimum": 0,
			"maximum": 1,
		},
	},
}

type classifyResult struct {
	Difficulty bank.Difficulty `json:"difficulty"`
	Confidence float64         `json:"confidence"`
}

// LLM classifies difficulty via an OpenAI-compatible chat model using
// structured output.
type LLM struct {
	client *openai.Client
	model  string
}

// NewLLM creates an LLM classifier from the config.
func NewLLM(cfg Config) (*LLM, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("openai API key is required for the LLM classifier")
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &LLM{
		client: openai.NewClient(cfg.OpenAIKey),
		model:  model,
	}, nil
}

func (l *LLM) Name() string { return "llm" }

func (l *LLM) Classify(ctx context.Context, text string) (bank.Difficulty, float64, error) {
	schemaBytes, err := json.Marshal(classifySchema)
	if err != nil {
		return "", 0, fmt.Errorf("marshal schema: %w", err)
	}

	resp, err := l.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: l.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: classifySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "question-difficulty",
				Schema: json.RawMessage(schemaBytes),
				Strict: true,
			},
		},
	})
	if err != nil {
		return "", 0, fmt.Errorf("classify question: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", 0, fmt.Errorf("no choices in classification response")
	}

	var result classifyResult
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &result); err != nil {
		return "", 0, fmt.Errorf("decode classification: %w", err)
	}
	if !result.Difficulty.Valid() {
		return "", 0, fmt.Errorf("model returned unknown difficulty %q", result.Difficulty)
	}

	return result.Difficulty, result.Confidence, nil
}
