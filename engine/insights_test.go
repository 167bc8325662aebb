package engine

import (
	"errors"
	"testing"

	"github.com/deviceiq-labs/deviceiq/dataset"
)

// ============================================================================
// INSIGHT GENERATOR TESTS
// ============================================================================

func TestIndividualInsightHealthyUser(t *testing.T) {
	ds := testDataset(t)
	report, err := IndividualInsight(ds, 1)
	if err != nil {
		t.Fatalf("IndividualInsight failed: %v", err)
	}

	// User 1 sits at the bottom of every column except its own rank.
	assertFloat(t, report.Percentiles.ScreenTime, 100.0/6, 1e-9, "screen rank")
	assertFloat(t, report.WellnessScore, 83.3, 1e-9, "wellness")

	// Screen 2.0 <= median 5, apps 20 <= q75 70, drain 500 <= median 1250,
	// wellness >= 50: the affirmation stands alone.
	if len(report.Recommendations) != 1 || report.Recommendations[0] != recAffirmation {
		t.Errorf("recommendations = %v, want only the affirmation", report.Recommendations)
	}
}

func TestIndividualInsightHeavyUser(t *testing.T) {
	ds := testDataset(t)
	report, err := IndividualInsight(ds, 5)
	if err != nil {
		t.Fatalf("IndividualInsight failed: %v", err)
	}

	assertFloat(t, report.Percentiles.AppUsage, 100, 1e-9, "app usage rank")
	// Screen 10h: wellness = 100 - 10/12*100 = 16.7.
	assertFloat(t, report.WellnessScore, 16.7, 1e-9, "wellness")

	// All four threshold rules fire, in fixed order.
	want := []string{recScreenLimit, recUninstall, recBatterySaver, recTakeBreaks}
	if len(report.Recommendations) != len(want) {
		t.Fatalf("got %d recommendations, want %d", len(report.Recommendations), len(want))
	}
	for i, rec := range report.Recommendations {
		if rec != want[i] {
			t.Errorf("recommendation %d = %q, want %q", i, rec, want[i])
		}
	}
}

func TestIndividualInsightAlwaysRecommends(t *testing.T) {
	ds := testDataset(t)
	for _, r := range ds.Records() {
		report, err := IndividualInsight(ds, r.UserID)
		if err != nil {
			t.Fatalf("IndividualInsight(%d) failed: %v", r.UserID, err)
		}
		if len(report.Recommendations) == 0 {
			t.Errorf("user %d: recommendations must never be empty", r.UserID)
		}
		for _, p := range []float64{
			report.Percentiles.ScreenTime,
			report.Percentiles.AppUsage,
			report.Percentiles.DataUsage,
			report.Percentiles.BatteryDrain,
		} {
			if p < 0 || p > 100 {
				t.Errorf("user %d: percentile %v out of [0,100]", r.UserID, p)
			}
		}
	}
}

func TestIndividualInsightWellnessClamped(t *testing.T) {
	ds := mustDataset(t, []dataset.Record{
		{UserID: 1, ScreenOnTime: 15, AppUsageTime: 100, BehaviorClass: 5},
		{UserID: 2, ScreenOnTime: 1, AppUsageTime: 50, BehaviorClass: 1},
	})
	report, err := IndividualInsight(ds, 1)
	if err != nil {
		t.Fatalf("IndividualInsight failed: %v", err)
	}
	// 15h on screen drives the raw score negative; it clamps at zero.
	assertFloat(t, report.WellnessScore, 0, 1e-9, "clamped wellness")
}

func TestIndividualInsightUnknownUser(t *testing.T) {
	_, err := IndividualInsight(testDataset(t), 999)
	if !errors.Is(err, dataset.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDeveloperInsight(t *testing.T) {
	ds := testDataset(t)
	report, err := DeveloperInsight(ds)
	if err != nil {
		t.Fatalf("DeveloperInsight failed: %v", err)
	}

	if len(report.UserSegments) != 5 {
		t.Errorf("got %d segments, want 5", len(report.UserSegments))
	}

	// Classes 4 and 5 are high, 3 is moderate, 1 and 2 are low.
	e := report.EngagementMetrics
	if e.HighEngagementUsers != 2 || e.ModerateEngagementUsers != 1 || e.LowEngagementUsers != 3 {
		t.Errorf("engagement = %d/%d/%d, want 2/1/3",
			e.HighEngagementUsers, e.ModerateEngagementUsers, e.LowEngagementUsers)
	}
	assertFloat(t, e.AvgDailyAppUsageMins, 275, 1e-9, "avg daily usage")

	if len(report.DeviceOptimization) != 5 {
		t.Fatalf("got %d devices, want 5", len(report.DeviceOptimization))
	}
	users := 0
	for _, d := range report.DeviceOptimization {
		users += d.UserCount
	}
	if users != ds.Len() {
		t.Errorf("device user counts sum to %d, want %d", users, ds.Len())
	}
}

func TestDeveloperInsightSparseClasses(t *testing.T) {
	ds := mustDataset(t, []dataset.Record{
		{UserID: 1, DeviceModel: "Pixel", AppUsageTime: 100, BehaviorClass: 1},
		{UserID: 2, DeviceModel: "Pixel", AppUsageTime: 300, BehaviorClass: 3},
		{UserID: 3, DeviceModel: "Pixel", AppUsageTime: 500, BehaviorClass: 5},
	})
	report, err := DeveloperInsight(ds)
	if err != nil {
		t.Fatalf("DeveloperInsight failed: %v", err)
	}
	if len(report.UserSegments) != 3 {
		t.Errorf("got %d segments, want 3", len(report.UserSegments))
	}
	e := report.EngagementMetrics
	if e.HighEngagementUsers != 1 || e.ModerateEngagementUsers != 1 || e.LowEngagementUsers != 1 {
		t.Errorf("engagement = %d/%d/%d, want 1/1/1",
			e.HighEngagementUsers, e.ModerateEngagementUsers, e.LowEngagementUsers)
	}
}

func TestTelecomInsight(t *testing.T) {
	ds := testDataset(t)
	report, err := TelecomInsight(ds)
	if err != nil {
		t.Fatalf("TelecomInsight failed: %v", err)
	}

	assertFloat(t, report.TotalDataTraffic, 4950, 1e-9, "total traffic")

	if len(report.SegmentBreakdown) != 5 {
		t.Fatalf("got %d segments, want 5", len(report.SegmentBreakdown))
	}
	c1 := report.SegmentBreakdown[0]
	if c1.Class != 1 || c1.UserCount != 2 {
		t.Errorf("class 1 = %+v", c1)
	}
	assertFloat(t, c1.TotalDataMB, 750, 1e-9, "class 1 total")
	assertFloat(t, c1.AvgDataMB, 375, 1e-9, "class 1 avg")
	assertFloat(t, c1.Percentage, 33.3, 1e-9, "class 1 percentage")

	// Per-segment totals reconstruct the overall traffic.
	var sum float64
	for _, s := range report.SegmentBreakdown {
		sum += s.TotalDataMB
	}
	assertFloat(t, sum, report.TotalDataTraffic, 1e-9, "segment totals")

	found := false
	for _, l := range report.NetworkLoad {
		if l.Device == "iPhone 12" {
			found = true
			assertFloat(t, l.TotalDataMB, 2100, 1e-9, "iPhone 12 load")
		}
	}
	if !found {
		t.Error("NetworkLoad missing iPhone 12")
	}

	if len(report.PricingRecommendations) != 3 {
		t.Errorf("got %d pricing recommendations, want 3", len(report.PricingRecommendations))
	}
}

func TestResearcherInsight(t *testing.T) {
	ds := testDataset(t)
	report, err := ResearcherInsight(ds)
	if err != nil {
		t.Fatalf("ResearcherInsight failed: %v", err)
	}

	// Every numeric field except behavior_class correlates against it.
	if len(report.Correlations) != len(dataset.NumericFields())-1 {
		t.Errorf("got %d correlations, want %d",
			len(report.Correlations), len(dataset.NumericFields())-1)
	}
	for _, c := range report.Correlations {
		if c.Field == dataset.FieldBehaviorClass {
			t.Error("behavior_class must not correlate against itself")
		}
		if c.R < -1 || c.R > 1 {
			t.Errorf("%s: r = %v outside [-1,1]", c.Field, c.R)
		}
	}

	if len(report.StatisticalSummary) != len(dataset.NumericFields()) {
		t.Errorf("got %d summaries, want %d",
			len(report.StatisticalSummary), len(dataset.NumericFields()))
	}
	appUsage, ok := report.StatisticalSummary[dataset.FieldAppUsageTime]
	if !ok {
		t.Fatal("summary missing app_usage_time")
	}
	assertFloat(t, appUsage.Mean, 275, 1e-9, "app usage mean")

	if len(report.BehaviorProfiles) != 5 {
		t.Fatalf("got %d profiles, want 5", len(report.BehaviorProfiles))
	}
	p1 := report.BehaviorProfiles[0]
	if p1.Class != 1 {
		t.Errorf("first profile class = %d, want 1", p1.Class)
	}
	genderTotal := 0
	for _, g := range p1.GenderCounts {
		genderTotal += g.Count
	}
	if genderTotal != 2 {
		t.Errorf("class 1 gender counts sum to %d, want 2", genderTotal)
	}
}

func TestInsightsEmptyDataset(t *testing.T) {
	empty := emptyDataset(t)
	if _, err := DeveloperInsight(empty); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("DeveloperInsight: expected ErrEmptyDataset, got %v", err)
	}
	if _, err := TelecomInsight(empty); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("TelecomInsight: expected ErrEmptyDataset, got %v", err)
	}
	if _, err := ResearcherInsight(empty); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("ResearcherInsight: expected ErrEmptyDataset, got %v", err)
	}
	if _, err := IndividualInsight(empty, 1); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("IndividualInsight: expected ErrEmptyDataset, got %v", err)
	}
}
