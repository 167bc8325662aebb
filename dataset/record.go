package dataset

import "strconv"

// ============================================================================
// RECORD — Fixed-shape mobile-device usage observation
// ============================================================================
// One row of the dataset: one device/user observation. Fields are typed and
// validated once at load time; nothing looks columns up by name per access.
// ============================================================================

// Field keys, matching the CSV schema in snake_case. Exported so callers can
// name columns for Distribution, Quantile, Correlation and friends.
const (
	FieldUserID          = "user_id"
	FieldDeviceModel     = "device_model"
	FieldOperatingSystem = "operating_system"
	FieldAppUsageTime    = "app_usage_time"
	FieldScreenOnTime    = "screen_on_time"
	FieldBatteryDrain    = "battery_drain"
	FieldAppsInstalled   = "number_of_apps_installed"
	FieldDataUsage       = "data_usage"
	FieldAge             = "age"
	FieldGender          = "gender"
	FieldBehaviorClass   = "behavior_class"
)

// Record is a single device/user observation.
type Record struct {
	UserID          int     `json:"user_id"`
	DeviceModel     string  `json:"device_model"`
	OperatingSystem string  `json:"operating_system"`
	AppUsageTime    float64 `json:"app_usage_time"`    // minutes/day
	ScreenOnTime    float64 `json:"screen_on_time"`    // hours/day
	BatteryDrain    float64 `json:"battery_drain"`     // mAh/day
	AppsInstalled   int     `json:"number_of_apps_installed"`
	DataUsage       float64 `json:"data_usage"`        // MB/day
	Age             int     `json:"age"`
	Gender          string  `json:"gender"`
	BehaviorClass   int     `json:"behavior_class"`    // ordinal, 1..5
}

// NumericFields returns the fixed numeric-field set, in schema order.
// This is the set the correlation matrix and statistical summaries cover.
func NumericFields() []string {
	return []string{
		FieldAppUsageTime,
		FieldScreenOnTime,
		FieldBatteryDrain,
		FieldAppsInstalled,
		FieldDataUsage,
		FieldAge,
		FieldBehaviorClass,
	}
}

// CategoryFields returns the discrete fields usable for distributions and
// grouping. behavior_class is included with its value rendered as a string.
func CategoryFields() []string {
	return []string{
		FieldDeviceModel,
		FieldOperatingSystem,
		FieldGender,
		FieldBehaviorClass,
	}
}

// requiredColumns is the full schema; every column must be present in the
// CSV header or the load fails with a SchemaError.
var requiredColumns = []string{
	FieldUserID,
	FieldDeviceModel,
	FieldOperatingSystem,
	FieldAppUsageTime,
	FieldScreenOnTime,
	FieldBatteryDrain,
	FieldAppsInstalled,
	FieldDataUsage,
	FieldAge,
	FieldGender,
	FieldBehaviorClass,
}

// Numeric returns the value of a numeric field. The second return is false
// for unknown or non-numeric fields.
func (r Record) Numeric(field string) (float64, bool) {
	switch field {
	case FieldAppUsageTime:
		return r.AppUsageTime, true
	case FieldScreenOnTime:
		return r.ScreenOnTime, true
	case FieldBatteryDrain:
		return r.BatteryDrain, true
	case FieldAppsInstalled:
		return float64(r.AppsInstalled), true
	case FieldDataUsage:
		return r.DataUsage, true
	case FieldAge:
		return float64(r.Age), true
	case FieldBehaviorClass:
		return float64(r.BehaviorClass), true
	}
	return 0, false
}

// Category returns the value of a discrete field as a string. The second
// return is false for unknown fields.
func (r Record) Category(field string) (string, bool) {
	switch field {
	case FieldDeviceModel:
		return r.DeviceModel, true
	case FieldOperatingSystem:
		return r.OperatingSystem, true
	case FieldGender:
		return r.Gender, true
	case FieldBehaviorClass:
		return strconv.Itoa(r.BehaviorClass), true
	}
	return "", false
}
