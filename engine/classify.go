package engine

import "math/rand"

// ============================================================================
// HEURISTIC CLASSIFIER — Weighted-score threshold ladder
// ============================================================================

// Classify maps app usage (minutes/day) and screen-on time (hours/day) to a
// behavior class 1..5 via a weighted score:
//
//	score = 0.4*(appUsage/600) + 0.6*(screenOn/12)
//
// with thresholds <0.2→1, <0.4→2, <0.6→3, <0.8→4, else 5. The class is a
// deterministic function of the inputs and monotonic in the score.
//
// The confidence distribution is synthetic: random mass is drawn from rng
// (the predicted class gets 0.5 + 0.3*U, the others 0.2*U each) and
// normalized to sum to 1. Pass a seeded rand.Rand for reproducible output;
// the classifier never touches process-global randomness.
func Classify(appUsageMinutes, screenOnHours float64, rng *rand.Rand) ClassificationResult {
	score := 0.4*(appUsageMinutes/600) + 0.6*(screenOnHours/12)

	var class int
	switch {
	case score < 0.2:
		class = 1
	case score < 0.4:
		class = 2
	case score < 0.6:
		class = 3
	case score < 0.8:
		class = 4
	default:
		class = 5
	}

	raw := make([]float64, 5)
	total := 0.0
	for i := range raw {
		if i+1 == class {
			raw[i] = round3(0.5 + rng.Float64()*0.3)
		} else {
			raw[i] = round3(rng.Float64() * 0.2)
		}
		total += raw[i]
	}

	result := ClassificationResult{PredictedClass: class}
	for i, p := range raw {
		normalized := round3(p / total)
		result.Probabilities = append(result.Probabilities, ClassProbability{
			Class: i + 1,
			P:     normalized,
		})
		if i+1 == class {
			result.Confidence = normalized
		}
	}
	return result
}
