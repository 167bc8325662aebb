package engine

import (
	"math/rand"
	"testing"
)

// ============================================================================
// CLASSIFIER TESTS
// ============================================================================

func TestClassifyThresholds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	cases := []struct {
		appUsage  float64
		screenOn  float64
		wantClass int
	}{
		{0, 0, 1},     // score 0
		{100, 1, 1},   // score 0.117
		{300, 3, 2},   // score 0.35
		{400, 5, 3},   // score 0.517
		{500, 7, 4},   // score 0.683
		{900, 12, 5},  // score 1.2
		{1200, 14, 5}, // above calibration range still classifies
	}
	for _, c := range cases {
		got := Classify(c.appUsage, c.screenOn, rng)
		if got.PredictedClass != c.wantClass {
			t.Errorf("Classify(%v, %v) = class %d, want %d",
				c.appUsage, c.screenOn, got.PredictedClass, c.wantClass)
		}
	}
}

func TestClassifyMonotonicInScreenTime(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	prev := 0
	for screen := 0.0; screen <= 14; screen += 0.5 {
		got := Classify(200, screen, rng)
		if got.PredictedClass < prev {
			t.Fatalf("class dropped from %d to %d at screen=%v", prev, got.PredictedClass, screen)
		}
		prev = got.PredictedClass
	}
}

func TestClassifyProbabilities(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	result := Classify(450, 6, rng)

	if len(result.Probabilities) != 5 {
		t.Fatalf("got %d probabilities, want 5", len(result.Probabilities))
	}

	sum := 0.0
	maxP := 0.0
	maxClass := 0
	for i, p := range result.Probabilities {
		if p.Class != i+1 {
			t.Errorf("probability %d has class %d, want %d", i, p.Class, i+1)
		}
		if p.P < 0 || p.P > 1 {
			t.Errorf("class %d: probability %v out of [0,1]", p.Class, p.P)
		}
		sum += p.P
		if p.P > maxP {
			maxP = p.P
			maxClass = p.Class
		}
	}

	// Normalized then rounded per entry, so the sum is 1 within rounding.
	if sum < 0.99 || sum > 1.01 {
		t.Errorf("probabilities sum to %v, want ~1", sum)
	}
	if maxClass != result.PredictedClass {
		t.Errorf("highest probability on class %d, predicted %d", maxClass, result.PredictedClass)
	}
	if result.Confidence != maxP {
		t.Errorf("confidence %v differs from predicted-class probability %v", result.Confidence, maxP)
	}
	if result.Confidence < 0.3 {
		t.Errorf("confidence %v implausibly low for the predicted class", result.Confidence)
	}
}

func TestClassifySeededDeterminism(t *testing.T) {
	a := Classify(450, 6, rand.New(rand.NewSource(99)))
	b := Classify(450, 6, rand.New(rand.NewSource(99)))

	if a.PredictedClass != b.PredictedClass || a.Confidence != b.Confidence {
		t.Fatalf("same seed produced different results: %+v vs %+v", a, b)
	}
	for i := range a.Probabilities {
		if a.Probabilities[i] != b.Probabilities[i] {
			t.Errorf("probability %d differs: %+v vs %+v", i, a.Probabilities[i], b.Probabilities[i])
		}
	}
}
