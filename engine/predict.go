package engine

import (
	"fmt"
	"math"

	"github.com/deviceiq-labs/deviceiq/dataset"
)

// ============================================================================
// USAGE PREDICTOR — Forecast usage metrics for a hypothetical user
// ============================================================================

// PredictUsage forecasts usage metrics for a user with the given number of
// installed apps and age, scaling the dataset-wide means by an apps factor
// (apps / mean apps) and an age factor (under 30 → 1.2, under 45 → 1.0,
// else 0.8). Data usage and battery drain scale with installed apps only.
//
// These are deterministic heuristics over summary statistics, not a fitted
// model. Fails with ErrEmptyDataset on zero records and ErrDegenerateInput
// when the dataset's mean apps-installed is zero.
func PredictUsage(ds *dataset.Dataset, appsInstalled, age int) (*UsagePrediction, error) {
	if ds.Len() == 0 {
		return nil, fmt.Errorf("usage prediction: %w", ErrEmptyDataset)
	}

	baseScreen, err := Mean(ds, dataset.FieldScreenOnTime)
	if err != nil {
		return nil, err
	}
	baseAppUsage, err := Mean(ds, dataset.FieldAppUsageTime)
	if err != nil {
		return nil, err
	}
	baseData, err := Mean(ds, dataset.FieldDataUsage)
	if err != nil {
		return nil, err
	}
	baseBattery, err := Mean(ds, dataset.FieldBatteryDrain)
	if err != nil {
		return nil, err
	}
	meanApps, err := Mean(ds, dataset.FieldAppsInstalled)
	if err != nil {
		return nil, err
	}
	if meanApps == 0 {
		return nil, fmt.Errorf("usage prediction: mean apps installed is zero: %w", ErrDegenerateInput)
	}

	appsFactor := float64(appsInstalled) / meanApps

	ageFactor := 0.8
	switch {
	case age < 30:
		ageFactor = 1.2
	case age < 45:
		ageFactor = 1.0
	}

	return &UsagePrediction{
		ScreenTime:   round2(baseScreen * appsFactor * ageFactor),
		AppUsage:     math.Round(baseAppUsage * appsFactor * ageFactor),
		DataUsage:    math.Round(baseData * appsFactor),
		BatteryDrain: math.Round(baseBattery * appsFactor),
	}, nil
}
