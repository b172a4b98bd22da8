package ability

import (
	"math"
	"math/rand"
	"testing"

	"github.com/nkhanna/examind/internal/exam"
)

func response(level int, correct bool) exam.Response {
	return exam.Response{DifficultyLevel: level, Correct: correct}
}

func TestEstimate_Empty(t *testing.T) {
	if got := Estimate(nil); got != 0.0 {
		t.Errorf("Estimate(nil) = %v, want 0.0", got)
	}
}

func TestEstimate_AlwaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(20)
		responses := make([]exam.Response, n)
		for i := range responses {
			responses[i] = response(1+rng.Intn(3), rng.Intn(2) == 0)
		}
		theta := Estimate(responses)
		if theta < MinTheta || theta > MaxTheta {
			t.Fatalf("trial %d: theta %v outside [%v, %v]", trial, theta, MinTheta, MaxTheta)
		}
	}
}

func TestEstimate_AllCorrectIncreasingDifficulty(t *testing.T) {
	var responses []exam.Response
	for i := 0; i < 10; i++ {
		responses = append(responses, response(1+i*3/10, true))
	}
	theta := Estimate(responses)
	if theta <= 0.5 {
		t.Errorf("theta = %v, want > 0.5 after 10 correct answers", theta)
	}
}

func TestEstimate_AllIncorrectIncreasingDifficulty(t *testing.T) {
	var responses []exam.Response
	for i := 0; i < 10; i++ {
		responses = append(responses, response(1+i*3/10, false))
	}
	theta := Estimate(responses)
	if theta >= -0.5 {
		t.Errorf("theta = %v, want < -0.5 after 10 incorrect answers", theta)
	}
}

func TestEstimate_SingleHardCorrectDoesNotSaturate(t *testing.T) {
	theta := Estimate([]exam.Response{response(3, true)})
	if theta >= MaxTheta {
		t.Errorf("theta = %v, must stay below the hard bound %v", theta, MaxTheta)
	}
	if theta <= 0 {
		t.Errorf("theta = %v, want positive after a correct hard answer", theta)
	}
}

func TestEstimate_BalancedHistoryIsNeutral(t *testing.T) {
	// correct Easy + correct Medium + incorrect Hard weighs (1+2)/6 = 0.5,
	// whose logit is exactly 0.
	responses := []exam.Response{
		response(1, true),
		response(2, true),
		response(3, false),
	}
	theta := Estimate(responses)
	if math.Abs(theta) > 1e-9 {
		t.Errorf("theta = %v, want 0", theta)
	}
}

func TestEstimate_WeightsHardOverEasy(t *testing.T) {
	hardCorrect := Estimate([]exam.Response{
		response(3, true),
		response(1, false),
	})
	easyCorrect := Estimate([]exam.Response{
		response(1, true),
		response(3, false),
	})
	if hardCorrect <= easyCorrect {
		t.Errorf("correct-on-hard (%v) should outrank correct-on-easy (%v)", hardCorrect, easyCorrect)
	}
}

func TestProgression_Lengths(t *testing.T) {
	responses := []exam.Response{
		response(1, true),
		response(2, false),
		response(2, true),
	}
	prog := Progression(responses)
	if len(prog) != len(responses) {
		t.Fatalf("len = %d, want %d", len(prog), len(responses))
	}
	if prog[len(prog)-1] != Estimate(responses) {
		t.Errorf("final progression entry %v != full estimate %v", prog[len(prog)-1], Estimate(responses))
	}
}

func TestAccuracy(t *testing.T) {
	if got := Accuracy(nil); got != 0 {
		t.Errorf("Accuracy(nil) = %v, want 0", got)
	}
	responses := []exam.Response{
		response(1, true),
		response(2, false),
		response(3, true),
		response(1, true),
	}
	if got := Accuracy(responses); got != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", got)
	}
}
