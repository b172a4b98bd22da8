package exam

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvalidArgumentError(t *testing.T) {
	err := &InvalidArgumentError{Field: "selected_option", Value: "z"}
	if !IsInvalidArgument(err) {
		t.Error("IsInvalidArgument(err) = false")
	}

	wrapped := fmt.Errorf("record response: %w", err)
	if !IsInvalidArgument(wrapped) {
		t.Error("IsInvalidArgument must see through wrapping")
	}

	if IsInvalidArgument(ErrNotFound) {
		t.Error("sentinel errors are not invalid-argument errors")
	}
	if IsInvalidArgument(nil) {
		t.Error("IsInvalidArgument(nil) = true")
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrDuplicateResponse, ErrInvalidState}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v matches %v", a, b)
			}
		}
	}
}
