package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionFileSchema is the JSON Schema for a question import file:
// a non-empty array of four-option questions.
var questionFileSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type":     "object",
		"required": []any{"id", "text", "options", "correct_option", "topic"},
		"properties": map[string]any{
			"id":   map[string]any{"type": "integer", "minimum": 1},
			"text": map[string]any{"type": "string", "minLength": 1},
			"options": map[string]any{
				"type":     "array",
				"minItems": 4,
				"maxItems": 4,
				"items":    map[string]any{"type": "string", "minLength": 1},
			},
			"correct_option": map[string]any{
				"type": "string",
				"enum": []any{"a", "b", "c", "d"},
			},
			"topic":      map[string]any{"type": "string", "minLength": 1},
			"difficulty": map[string]any{"type": "string", "enum": []any{"Easy", "Medium", "Hard"}},
			"discrimination": map[string]any{
				"type":             "number",
				"exclusiveMinimum": 0,
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledQuestionSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://question-file.json", questionFileSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://question-file.json")
	})
	return compiledSchema, compileErr
}

// LoadFile reads a question file, validates it against the import schema,
// and returns the parsed questions.
func LoadFile(path string) ([]Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question file: %w", err)
	}
	return Parse(raw)
}

// Parse validates and decodes a question file's contents.
func Parse(raw []byte) ([]Question, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledQuestionSchema()
	if err != nil {
		return nil, fmt.Errorf("compile question schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("question file validation: %w", err)
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	seen := make(map[int]bool, len(questions))
	for _, q := range questions {
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
	}
	return questions, nil
}
