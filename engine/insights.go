package engine

import (
	"fmt"

	"github.com/deviceiq-labs/deviceiq/dataset"
)

// ============================================================================
// INSIGHT GENERATORS — Role-specific reports
// ============================================================================
// Four independent pure transforms over the same snapshot, one per consumer
// role. Each fails with ErrEmptyDataset on zero records rather than emitting
// degenerate statistics.
// ============================================================================

// Recommendation texts for the individual report. Threshold rules append
// them in this order; the affirmation is returned alone when no rule fires.
const (
	recScreenLimit  = "Consider setting daily screen time limits"
	recUninstall    = "Review and uninstall unused apps to improve battery life"
	recBatterySaver = "Enable battery saver mode during low usage periods"
	recTakeBreaks   = "Take regular breaks every 30 minutes of screen time"
	recAffirmation  = "Great job! Your usage patterns are healthy"
)

// IndividualInsight builds the personal report for one user: percentile
// ranks on four fields, a wellness score, and at least one recommendation.
func IndividualInsight(ds *dataset.Dataset, userID int) (*IndividualReport, error) {
	if ds.Len() == 0 {
		return nil, fmt.Errorf("individual insight: %w", ErrEmptyDataset)
	}
	rec, err := ds.Record(userID)
	if err != nil {
		return nil, err
	}

	report := &IndividualReport{}

	ranks := []struct {
		field string
		value float64
		dst   *float64
	}{
		{dataset.FieldScreenOnTime, rec.ScreenOnTime, &report.Percentiles.ScreenTime},
		{dataset.FieldAppUsageTime, rec.AppUsageTime, &report.Percentiles.AppUsage},
		{dataset.FieldDataUsage, rec.DataUsage, &report.Percentiles.DataUsage},
		{dataset.FieldBatteryDrain, rec.BatteryDrain, &report.Percentiles.BatteryDrain},
	}
	for _, r := range ranks {
		v, err := PercentileRank(ds, r.field, r.value)
		if err != nil {
			return nil, err
		}
		*r.dst = v
	}

	// Wellness: lower screen time = higher score, clamped to [0, 100].
	wellness := clampFloat(0, 100, 100-rec.ScreenOnTime/12*100)
	report.WellnessScore = round1(wellness)

	medianScreen, err := Median(ds, dataset.FieldScreenOnTime)
	if err != nil {
		return nil, err
	}
	appsQ75, err := Quantile(ds, dataset.FieldAppsInstalled, 0.75)
	if err != nil {
		return nil, err
	}
	medianDrain, err := Median(ds, dataset.FieldBatteryDrain)
	if err != nil {
		return nil, err
	}

	if rec.ScreenOnTime > medianScreen {
		report.Recommendations = append(report.Recommendations, recScreenLimit)
	}
	if float64(rec.AppsInstalled) > appsQ75 {
		report.Recommendations = append(report.Recommendations, recUninstall)
	}
	if rec.BatteryDrain > medianDrain {
		report.Recommendations = append(report.Recommendations, recBatterySaver)
	}
	if wellness < 50 {
		report.Recommendations = append(report.Recommendations, recTakeBreaks)
	}
	if len(report.Recommendations) == 0 {
		report.Recommendations = []string{recAffirmation}
	}

	return report, nil
}

// DeveloperInsight builds the app-developer report: per-class segments,
// engagement buckets, and per-device usage priorities.
func DeveloperInsight(ds *dataset.Dataset) (*DeveloperReport, error) {
	if ds.Len() == 0 {
		return nil, fmt.Errorf("developer insight: %w", ErrEmptyDataset)
	}

	segments, err := ClassSegments(ds)
	if err != nil {
		return nil, err
	}

	engagement := EngagementMetrics{}
	for _, r := range ds.Records() {
		switch {
		case r.BehaviorClass >= 4:
			engagement.HighEngagementUsers++
		case r.BehaviorClass == 3:
			engagement.ModerateEngagementUsers++
		default:
			engagement.LowEngagementUsers++
		}
	}
	if engagement.AvgDailyAppUsageMins, err = Mean(ds, dataset.FieldAppUsageTime); err != nil {
		return nil, err
	}

	devices, byDevice, err := GroupBy(ds, dataset.FieldDeviceModel)
	if err != nil {
		return nil, err
	}
	optimization := make([]DeviceUsage, 0, len(devices))
	for _, device := range devices {
		sub := byDevice[device]
		avg, err := Mean(sub, dataset.FieldAppUsageTime)
		if err != nil {
			return nil, err
		}
		optimization = append(optimization, DeviceUsage{
			Device:    device,
			UserCount: sub.Len(),
			AvgUsage:  avg,
		})
	}

	return &DeveloperReport{
		UserSegments:       segments,
		EngagementMetrics:  engagement,
		DeviceOptimization: optimization,
	}, nil
}

// TelecomInsight builds the telecom-operator report: total traffic, the
// per-class data-usage share, and per-device network load.
func TelecomInsight(ds *dataset.Dataset) (*TelecomReport, error) {
	if ds.Len() == 0 {
		return nil, fmt.Errorf("telecom insight: %w", ErrEmptyDataset)
	}

	total, err := Sum(ds, dataset.FieldDataUsage)
	if err != nil {
		return nil, err
	}

	report := &TelecomReport{
		TotalDataTraffic: total,
		PricingRecommendations: []string{
			"Heavy users (Class 5) account for significant data usage - consider premium unlimited plans",
			"Light users (Class 1-2) might benefit from pay-as-you-go options",
			"Android users show higher data consumption - optimize network for Android devices",
		},
	}

	for class := 1; class <= 5; class++ {
		sub := classSubset(ds, class)
		if sub.Len() == 0 {
			continue
		}
		segTotal, err := Sum(sub, dataset.FieldDataUsage)
		if err != nil {
			return nil, err
		}
		segAvg, err := Mean(sub, dataset.FieldDataUsage)
		if err != nil {
			return nil, err
		}
		report.SegmentBreakdown = append(report.SegmentBreakdown, TelecomSegment{
			Class:       class,
			UserCount:   sub.Len(),
			TotalDataMB: segTotal,
			AvgDataMB:   segAvg,
			Percentage:  round1(float64(sub.Len()) / float64(ds.Len()) * 100),
		})
	}

	devices, byDevice, err := GroupBy(ds, dataset.FieldDeviceModel)
	if err != nil {
		return nil, err
	}
	for _, device := range devices {
		load, err := Sum(byDevice[device], dataset.FieldDataUsage)
		if err != nil {
			return nil, err
		}
		report.NetworkLoad = append(report.NetworkLoad, DeviceLoad{Device: device, TotalDataMB: load})
	}

	return report, nil
}

// ResearcherInsight builds the researcher report: correlation of every
// numeric field against behavior class, full per-field statistical
// summaries, and per-class behavior profiles.
func ResearcherInsight(ds *dataset.Dataset) (*ResearcherReport, error) {
	if ds.Len() == 0 {
		return nil, fmt.Errorf("researcher insight: %w", ErrEmptyDataset)
	}

	report := &ResearcherReport{
		StatisticalSummary: make(map[string]FieldSummary, len(dataset.NumericFields())),
	}

	for _, field := range dataset.NumericFields() {
		if field != dataset.FieldBehaviorClass {
			r, err := Correlation(ds, field, dataset.FieldBehaviorClass)
			if err != nil {
				return nil, err
			}
			report.Correlations = append(report.Correlations, FieldCorrelation{
				Field: field,
				R:     round3(r),
			})
		}

		summary, err := FieldSummaryOf(ds, field)
		if err != nil {
			return nil, err
		}
		report.StatisticalSummary[field] = summary
	}

	segments, err := ClassSegments(ds)
	if err != nil {
		return nil, err
	}
	for _, seg := range segments {
		sub := classSubset(ds, seg.Class)
		genders, err := Distribution(sub, dataset.FieldGender)
		if err != nil {
			return nil, err
		}
		report.BehaviorProfiles = append(report.BehaviorProfiles, BehaviorProfile{
			Class:         seg.Class,
			AvgScreenTime: seg.AvgScreenTime,
			AvgAppUsage:   seg.AvgAppUsage,
			AvgApps:       seg.AvgAppsInstalled,
			AvgAge:        seg.AvgAge,
			GenderCounts:  genders,
		})
	}

	return report, nil
}

// clampFloat clamps v to [lo, hi].
func clampFloat(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
