package engine

import (
	"math"

	"github.com/deviceiq-labs/deviceiq/dataset"
)

// ============================================================================
// SIMULATION — Deterministic what-if projection for one record
// ============================================================================

// Project runs a what-if scenario: given a base record and a signed change
// to the number of installed apps, it recomputes the derived usage metrics
// with fixed power-law scaling and returns the original/predicted/changes
// triple.
//
// Scaling: screen time ~ ratio^0.3, battery drain ~ ratio^0.5, data usage
// ~ ratio^0.4, where ratio = (apps+delta)/apps. The post-delta app count
// clamps at zero, so a delta that removes more apps than installed projects
// zero usage rather than feeding a negative base to the power law. When the
// base record has zero apps installed the ratio defaults to 1 so the
// projection degrades to the identity instead of dividing by zero. The
// behavior class shifts by floor(delta/15), clamped to 1..5.
//
// Rounding is fixed so output is stable: screen time to 2 decimals, battery
// drain and data usage to whole numbers.
func Project(ds *dataset.Dataset, userID int, appsDelta int) (*ProjectionResult, error) {
	rec, err := ds.Record(userID)
	if err != nil {
		return nil, err
	}

	original := ProjectedMetrics{
		BehaviorClass: rec.BehaviorClass,
		ScreenTime:    rec.ScreenOnTime,
		BatteryDrain:  rec.BatteryDrain,
		DataUsage:     rec.DataUsage,
	}

	ratio := 1.0
	if rec.AppsInstalled > 0 {
		after := rec.AppsInstalled + appsDelta
		if after < 0 {
			after = 0
		}
		ratio = float64(after) / float64(rec.AppsInstalled)
	}

	// floor(delta/15) truncates toward negative infinity, so removing apps
	// can lower the class while small additions leave it unchanged.
	classShift := int(math.Floor(float64(appsDelta) / 15))

	predicted := ProjectedMetrics{
		BehaviorClass: clampClass(original.BehaviorClass + classShift),
		ScreenTime:    round2(original.ScreenTime * math.Pow(ratio, 0.3)),
		BatteryDrain:  math.Round(original.BatteryDrain * math.Pow(ratio, 0.5)),
		DataUsage:     math.Round(original.DataUsage * math.Pow(ratio, 0.4)),
	}

	changes := ProjectedMetrics{
		BehaviorClass: predicted.BehaviorClass - original.BehaviorClass,
		ScreenTime:    round2(predicted.ScreenTime - original.ScreenTime),
		BatteryDrain:  math.Round(predicted.BatteryDrain - original.BatteryDrain),
		DataUsage:     math.Round(predicted.DataUsage - original.DataUsage),
	}

	return &ProjectionResult{Original: original, Predicted: predicted, Changes: changes}, nil
}

// clampClass clamps a behavior class to the valid 1..5 range.
func clampClass(class int) int {
	if class < 1 {
		return 1
	}
	if class > 5 {
		return 5
	}
	return class
}
