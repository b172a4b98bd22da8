package bank

import (
	"testing"

	"github.com/nkhanna/examind/internal/exam"
)

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want int
	}{
		{Easy, 1},
		{Medium, 2},
		{Hard, 3},
		{"", 2},
		{"Unknown", 2},
	}
	for _, tt := range tests {
		if got := tt.d.Level(); got != tt.want {
			t.Errorf("Level(%q) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestFromLevel(t *testing.T) {
	for level := 1; level <= 3; level++ {
		d, err := FromLevel(level)
		if err != nil {
			t.Fatalf("FromLevel(%d): %v", level, err)
		}
		if d.Level() != level {
			t.Errorf("round trip level %d came back %d", level, d.Level())
		}
	}

	if _, err := FromLevel(4); !exam.IsInvalidArgument(err) {
		t.Errorf("FromLevel(4): err = %v, want InvalidArgumentError", err)
	}
}

func TestIsCorrect(t *testing.T) {
	q := Question{CorrectOption: "b"}
	if !q.IsCorrect("b") || !q.IsCorrect("B") {
		t.Error("correct option must match case-insensitively")
	}
	if q.IsCorrect("a") {
		t.Error("wrong option must not match")
	}
}

func TestValidOption(t *testing.T) {
	for _, s := range []string{"a", "b", "c", "d", "A", "D"} {
		if !ValidOption(s) {
			t.Errorf("ValidOption(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "e", "ab", "1"} {
		if ValidOption(s) {
			t.Errorf("ValidOption(%q) = true, want false", s)
		}
	}
}

func TestEffectiveDiscrimination(t *testing.T) {
	q := Question{}
	if got := q.EffectiveDiscrimination(); got != DefaultDiscrimination {
		t.Errorf("unset discrimination = %v, want default %v", got, DefaultDiscrimination)
	}
	q.Discrimination = 1.7
	if got := q.EffectiveDiscrimination(); got != 1.7 {
		t.Errorf("discrimination = %v, want 1.7", got)
	}
}
