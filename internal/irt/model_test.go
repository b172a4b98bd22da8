package irt

import (
	"math"
	"testing"

	"github.com/nkhanna/examind/internal/exam"
)

const epsilon = 1e-9

func TestProbability_MediumAtZero(t *testing.T) {
	// theta equal to the item position gives exactly 0.5.
	p, err := Probability(0, 2, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(p-0.5) > epsilon {
		t.Errorf("Probability(0, Medium) = %v, want 0.5", p)
	}
}

func TestProbability_IncreasingInTheta(t *testing.T) {
	for level := 1; level <= 3; level++ {
		prev := -1.0
		for theta := -3.0; theta <= 3.0; theta += 0.25 {
			p, err := Probability(theta, level, 1.0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p < prev {
				t.Fatalf("level %d: P decreased at theta=%v: %v < %v", level, theta, p, prev)
			}
			prev = p
		}
	}
}

func TestProbability_DecreasingInDifficulty(t *testing.T) {
	for theta := -3.0; theta <= 3.0; theta += 0.5 {
		pEasy, _ := Probability(theta, 1, 1.0)
		pMedium, _ := Probability(theta, 2, 1.0)
		pHard, _ := Probability(theta, 3, 1.0)
		if pEasy < pMedium || pMedium < pHard {
			t.Errorf("theta=%v: want P(Easy) >= P(Medium) >= P(Hard), got %v, %v, %v",
				theta, pEasy, pMedium, pHard)
		}
	}
}

func TestProbability_Clamped(t *testing.T) {
	p, err := Probability(3.0, 1, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p > MaxProbability {
		t.Errorf("P = %v, want <= %v", p, MaxProbability)
	}

	p, err = Probability(-3.0, 3, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p < MinProbability {
		t.Errorf("P = %v, want >= %v", p, MinProbability)
	}
}

func TestProbability_OverflowGuard(t *testing.T) {
	// Huge discrimination pushes the exponent past any safe range; the
	// model must saturate instead of evaluating exp.
	p, err := Probability(3.0, 1, 1e300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != MaxProbability {
		t.Errorf("P = %v, want %v", p, MaxProbability)
	}

	p, err = Probability(-3.0, 3, 1e300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != MinProbability {
		t.Errorf("P = %v, want %v", p, MinProbability)
	}
}

func TestProbability_InvalidLevel(t *testing.T) {
	for _, level := range []int{0, 4, -1, 100} {
		_, err := Probability(0, level, 1.0)
		if !exam.IsInvalidArgument(err) {
			t.Errorf("level %d: want InvalidArgumentError, got %v", level, err)
		}
	}
}

func TestLogitPosition(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{1, -1.5},
		{2, 0},
		{3, 1.5},
	}
	for _, tt := range tests {
		if got := LogitPosition(tt.level); got != tt.want {
			t.Errorf("LogitPosition(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestFisherInformation_MaxAtMatchedDifficulty(t *testing.T) {
	// Information peaks where P = 0.5, i.e. theta at the item position.
	atMatch, _ := FisherInformation(0, 2, 1.0)
	offMatch, _ := FisherInformation(2.0, 2, 1.0)
	if atMatch <= offMatch {
		t.Errorf("information at matched difficulty %v, off-match %v; want matched greater", atMatch, offMatch)
	}
	if math.Abs(atMatch-0.25) > epsilon {
		t.Errorf("information at P=0.5 should be 0.25, got %v", atMatch)
	}
}
