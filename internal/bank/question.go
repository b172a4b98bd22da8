package bank

import (
	"context"
	"strings"

	"github.com/nkhanna/examind/internal/exam"
)

// Difficulty is the categorical difficulty label of a question.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Difficulties lists the labels in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Level maps the label to its numeric level (Easy=1, Medium=2, Hard=3).
// Unknown labels map to 2 (Medium), matching the engine's prior that an
// unlabeled question is of average difficulty.
func (d Difficulty) Level() int {
	switch d {
	case Easy:
		return 1
	case Medium:
		return 2
	case Hard:
		return 3
	default:
		return 2
	}
}

// FromLevel maps a numeric level back to its label.
func FromLevel(level int) (Difficulty, error) {
	switch level {
	case 1:
		return Easy, nil
	case 2:
		return Medium, nil
	case 3:
		return Hard, nil
	default:
		return "", &exam.InvalidArgumentError{Field: "difficulty_level", Value: level}
	}
}

// Valid reports whether d is one of the three known labels.
func (d Difficulty) Valid() bool {
	return d == Easy || d == Medium || d == Hard
}

// DefaultDiscrimination is used when an item carries no calibrated
// discrimination parameter.
const DefaultDiscrimination = 1.0

// Question is a four-option multiple choice item. Questions are owned by
// the bank and read-only to the engine.
type Question struct {
	ID             int        `json:"id"`
	Text           string     `json:"text"`
	Options        [4]string  `json:"options"`
	CorrectOption  string     `json:"correct_option"` // "a".."d"
	Topic          string     `json:"topic"`
	Difficulty     Difficulty `json:"difficulty"`
	Discrimination float64    `json:"discrimination,omitempty"`
}

// IsCorrect reports whether the selected option letter matches the
// question's correct option, case-insensitively.
func (q *Question) IsCorrect(selected string) bool {
	return strings.EqualFold(selected, q.CorrectOption)
}

// EffectiveDiscrimination returns the item's discrimination, falling back
// to the default when unset.
func (q *Question) EffectiveDiscrimination() float64 {
	if q.Discrimination > 0 {
		return q.Discrimination
	}
	return DefaultDiscrimination
}

// ValidOption reports whether s is one of the four option letters.
func ValidOption(s string) bool {
	switch strings.ToLower(s) {
	case "a", "b", "c", "d":
		return true
	}
	return false
}

// Bank supplies questions to the engine. Implementations must exclude the
// given ids and topics; result ordering is unspecified and callers must
// not rely on it.
type Bank interface {
	// Candidates returns questions not in excludeIDs and not covering an
	// excluded topic. When preferred is non-nil, implementations may use
	// it to limit the result set, but are not required to.
	Candidates(ctx context.Context, excludeIDs map[int]bool, excludeTopics map[string]bool, preferred *Difficulty) ([]Question, error)

	// Get returns the question with the given id, or exam.ErrNotFound.
	Get(ctx context.Context, id int) (*Question, error)
}
