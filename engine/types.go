package engine

// ============================================================================
// ENGINE TYPES — Render-ready report structures
// ============================================================================
// All reports are request-scoped values derived from an immutable Dataset
// snapshot. Maps are avoided where iteration order matters: distributions
// and per-class tables are ordered slices so output is stable.
// ============================================================================

// ============================================================================
// DISTRIBUTIONS AND SUMMARIES
// ============================================================================

// ValueCount is one entry of a value-count distribution.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// BandCount is one entry of the age-band breakdown.
type BandCount struct {
	Band  string `json:"band"`
	Count int    `json:"count"`
}

// FieldSummary holds the full statistical summary of one numeric field.
type FieldSummary struct {
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// FieldCorrelation is the Pearson correlation of one field against the
// behavior class, rounded to 3 decimals.
type FieldCorrelation struct {
	Field string  `json:"field"`
	R     float64 `json:"r"`
}

// CorrelationMatrix is the pairwise Pearson correlation over the fixed
// numeric-field set. Symmetric, diagonal exactly 1.0, values in [-1, 1].
type CorrelationMatrix struct {
	Fields []string    `json:"fields"`
	Values [][]float64 `json:"values"`
}

// At returns the correlation between two fields by name.
// The second return is false when either field is not in the matrix.
func (m CorrelationMatrix) At(fieldA, fieldB string) (float64, bool) {
	ia, ib := -1, -1
	for i, f := range m.Fields {
		if f == fieldA {
			ia = i
		}
		if f == fieldB {
			ib = i
		}
	}
	if ia < 0 || ib < 0 {
		return 0, false
	}
	return m.Values[ia][ib], true
}

// ============================================================================
// AGGREGATED STATS
// ============================================================================

// StatsReport is the dashboard-level aggregate over the whole dataset.
type StatsReport struct {
	TotalUsers       int     `json:"totalUsers"`
	AvgAppUsage      float64 `json:"avgAppUsage"`
	AvgScreenTime    float64 `json:"avgScreenTime"`
	AvgBatteryDrain  float64 `json:"avgBatteryDrain"`
	AvgDataUsage     float64 `json:"avgDataUsage"`
	AvgAppsInstalled float64 `json:"avgAppsInstalled"`

	DeviceCounts   []ValueCount `json:"deviceCounts"`
	OSCounts       []ValueCount `json:"osCounts"`
	BehaviorCounts []ValueCount `json:"behaviorCounts"`
	GenderCounts   []ValueCount `json:"genderCounts"`
	AgeGroups      []BandCount  `json:"ageGroups"`
}

// ============================================================================
// SEGMENTS
// ============================================================================

// SegmentSummary is the per-behavior-class aggregate.
type SegmentSummary struct {
	Class            int     `json:"class"`
	Count            int     `json:"count"`
	AvgAppUsage      float64 `json:"avg_app_usage"`
	AvgScreenTime    float64 `json:"avg_screen_time"`
	AvgAppsInstalled float64 `json:"avg_apps_installed"`
	AvgDataUsage     float64 `json:"avg_data_usage"`
	AvgAge           float64 `json:"avg_age"`
	DominantOS       string  `json:"dominant_os"`
}

// ============================================================================
// INSIGHT REPORTS — one per consumer role
// ============================================================================

// Percentiles holds the target record's percentile rank on four fields.
type Percentiles struct {
	ScreenTime   float64 `json:"screen_time"`
	AppUsage     float64 `json:"app_usage"`
	DataUsage    float64 `json:"data_usage"`
	BatteryDrain float64 `json:"battery_drain"`
}

// IndividualReport carries personal wellness insights for one user.
type IndividualReport struct {
	WellnessScore   float64     `json:"wellness_score"`
	Percentiles     Percentiles `json:"percentiles"`
	Recommendations []string    `json:"recommendations"` // never empty
}

// EngagementMetrics buckets users by engagement level.
type EngagementMetrics struct {
	HighEngagementUsers     int     `json:"high_engagement_users"`     // class >= 4
	ModerateEngagementUsers int     `json:"moderate_engagement_users"` // class == 3
	LowEngagementUsers      int     `json:"low_engagement_users"`      // class <= 2
	AvgDailyAppUsageMins    float64 `json:"avg_daily_app_usage_mins"`
}

// DeviceUsage is the per-device row of the developer report.
type DeviceUsage struct {
	Device    string  `json:"device"`
	UserCount int     `json:"user_count"`
	AvgUsage  float64 `json:"avg_usage"`
}

// DeveloperReport carries segment and device priorities for app developers.
type DeveloperReport struct {
	UserSegments       []SegmentSummary  `json:"user_segments"`
	EngagementMetrics  EngagementMetrics `json:"engagement_metrics"`
	DeviceOptimization []DeviceUsage     `json:"device_optimization"`
}

// TelecomSegment is the per-class data-usage share.
type TelecomSegment struct {
	Class       int     `json:"class"`
	UserCount   int     `json:"user_count"`
	TotalDataMB float64 `json:"total_data_mb"`
	AvgDataMB   float64 `json:"avg_data_mb"`
	Percentage  float64 `json:"percentage"` // share of all records, one decimal
}

// DeviceLoad is the per-device total data usage.
type DeviceLoad struct {
	Device      string  `json:"device"`
	TotalDataMB float64 `json:"total_data_mb"`
}

// TelecomReport carries network-load insights for telecom operators.
type TelecomReport struct {
	TotalDataTraffic       float64          `json:"total_data_traffic"`
	SegmentBreakdown       []TelecomSegment `json:"segment_breakdown"`
	NetworkLoad            []DeviceLoad     `json:"network_load"`
	PricingRecommendations []string         `json:"pricing_recommendations"`
}

// BehaviorProfile is the per-class profile of the researcher report.
type BehaviorProfile struct {
	Class         int          `json:"class"`
	AvgScreenTime float64      `json:"avg_screen_time"`
	AvgAppUsage   float64      `json:"avg_app_usage"`
	AvgApps       float64      `json:"avg_apps"`
	AvgAge        float64      `json:"avg_age"`
	GenderCounts  []ValueCount `json:"gender_ratio"`
}

// ResearcherReport carries correlation and profile analysis for researchers.
type ResearcherReport struct {
	Correlations       []FieldCorrelation      `json:"correlations"`
	StatisticalSummary map[string]FieldSummary `json:"statistical_summary"`
	BehaviorProfiles   []BehaviorProfile       `json:"behavior_profiles"`
}

// ============================================================================
// PROJECTION
// ============================================================================

// ProjectedMetrics is one side of a what-if projection.
type ProjectedMetrics struct {
	BehaviorClass int     `json:"behavior_class"`
	ScreenTime    float64 `json:"screen_time"`
	BatteryDrain  float64 `json:"battery_drain"`
	DataUsage     float64 `json:"data_usage"`
}

// ProjectionResult is the original/predicted/delta triple of a what-if run.
type ProjectionResult struct {
	Original  ProjectedMetrics `json:"original"`
	Predicted ProjectedMetrics `json:"predicted"`
	Changes   ProjectedMetrics `json:"changes"`
}

// ============================================================================
// CLASSIFICATION AND PREDICTION
// ============================================================================

// ClassProbability is one entry of the synthetic confidence distribution.
type ClassProbability struct {
	Class int     `json:"class"`
	P     float64 `json:"p"`
}

// ClassificationResult is the heuristic classifier output.
type ClassificationResult struct {
	PredictedClass int                `json:"predicted_class"`
	Confidence     float64            `json:"confidence"`
	Probabilities  []ClassProbability `json:"probabilities"` // ordered by class, sums to 1
}

// UsagePrediction is the usage-metric forecast for a hypothetical user.
type UsagePrediction struct {
	ScreenTime   float64 `json:"predicted_screen_time"`
	AppUsage     float64 `json:"predicted_app_usage"`
	DataUsage    float64 `json:"predicted_data_usage"`
	BatteryDrain float64 `json:"predicted_battery_drain"`
}
