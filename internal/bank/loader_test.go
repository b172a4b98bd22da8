package bank

import (
	"os"
	"path/filepath"
	"testing"
)

const validQuestionJSON = `[
  {
    "id": 1,
    "text": "What is a goroutine?",
    "options": ["a thread", "a lightweight thread", "a process", "a channel"],
    "correct_option": "b",
    "topic": "concurrency",
    "difficulty": "Easy"
  },
  {
    "id": 2,
    "text": "Explain how a select statement chooses among ready channels.",
    "options": ["in order", "randomly", "by priority", "round robin"],
    "correct_option": "b",
    "topic": "concurrency"
  }
]`

func TestParse_Valid(t *testing.T) {
	questions, err := Parse([]byte(validQuestionJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("len = %d, want 2", len(questions))
	}

	q := questions[0]
	if q.ID != 1 || q.CorrectOption != "b" || q.Topic != "concurrency" {
		t.Errorf("unexpected question: %+v", q)
	}
	if q.Difficulty != Easy {
		t.Errorf("difficulty = %s, want Easy", q.Difficulty)
	}
	if q.Options[1] != "a lightweight thread" {
		t.Errorf("options = %v", q.Options)
	}

	// Difficulty is optional: unlabeled questions come through blank for
	// the classifier to fill in.
	if questions[1].Difficulty != "" {
		t.Errorf("unlabeled difficulty = %q, want empty", questions[1].Difficulty)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"empty array", `[]`},
		{"not an array", `{"id": 1}`},
		{"missing text", `[{"id":1,"options":["a","b","c","d"],"correct_option":"a","topic":"t"}]`},
		{"three options", `[{"id":1,"text":"q","options":["a","b","c"],"correct_option":"a","topic":"t"}]`},
		{"bad correct option", `[{"id":1,"text":"q","options":["a","b","c","d"],"correct_option":"e","topic":"t"}]`},
		{"bad difficulty", `[{"id":1,"text":"q","options":["a","b","c","d"],"correct_option":"a","topic":"t","difficulty":"Impossible"}]`},
		{"zero id", `[{"id":0,"text":"q","options":["a","b","c","d"],"correct_option":"a","topic":"t"}]`},
		{"negative discrimination", `[{"id":1,"text":"q","options":["a","b","c","d"],"correct_option":"a","topic":"t","discrimination":-1}]`},
	}
	for _, tt := range tests {
		if _, err := Parse([]byte(tt.raw)); err == nil {
			t.Errorf("%s: Parse succeeded, want error", tt.name)
		}
	}
}

func TestParse_DuplicateIDs(t *testing.T) {
	raw := `[
	  {"id":1,"text":"q1","options":["a","b","c","d"],"correct_option":"a","topic":"t"},
	  {"id":1,"text":"q2","options":["a","b","c","d"],"correct_option":"b","topic":"t"}
	]`
	if _, err := Parse([]byte(raw)); err == nil {
		t.Error("duplicate ids must be rejected")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(path, []byte(validQuestionJSON), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	questions, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(questions) != 2 {
		t.Errorf("len = %d, want 2", len(questions))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file must fail")
	}
}
