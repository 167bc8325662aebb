package engine

import (
	"math"
	"testing"

	"github.com/deviceiq-labs/deviceiq/dataset"
)

// ============================================================================
// TEST FIXTURES AND ASSERT HELPERS
// ============================================================================

// testRecords spans all five behavior classes, two operating systems, and
// one under-18 record. App usage, screen time, battery drain, apps installed
// and data usage are exact multiples of each other so correlations and
// means are easy to verify by hand.
func testRecords() []dataset.Record {
	return []dataset.Record{
		{UserID: 1, DeviceModel: "Google Pixel 5", OperatingSystem: "Android", AppUsageTime: 100, ScreenOnTime: 2.0, BatteryDrain: 500, AppsInstalled: 20, DataUsage: 300, Age: 22, Gender: "Male", BehaviorClass: 1},
		{UserID: 2, DeviceModel: "iPhone 12", OperatingSystem: "iOS", AppUsageTime: 200, ScreenOnTime: 4.0, BatteryDrain: 1000, AppsInstalled: 40, DataUsage: 600, Age: 28, Gender: "Female", BehaviorClass: 2},
		{UserID: 3, DeviceModel: "Samsung Galaxy S21", OperatingSystem: "Android", AppUsageTime: 300, ScreenOnTime: 6.0, BatteryDrain: 1500, AppsInstalled: 60, DataUsage: 900, Age: 35, Gender: "Male", BehaviorClass: 3},
		{UserID: 4, DeviceModel: "OnePlus 9", OperatingSystem: "Android", AppUsageTime: 400, ScreenOnTime: 8.0, BatteryDrain: 2000, AppsInstalled: 80, DataUsage: 1200, Age: 47, Gender: "Female", BehaviorClass: 4},
		{UserID: 5, DeviceModel: "iPhone 12", OperatingSystem: "iOS", AppUsageTime: 500, ScreenOnTime: 10.0, BatteryDrain: 2500, AppsInstalled: 100, DataUsage: 1500, Age: 60, Gender: "Male", BehaviorClass: 5},
		{UserID: 6, DeviceModel: "Xiaomi Mi 11", OperatingSystem: "Android", AppUsageTime: 150, ScreenOnTime: 3.0, BatteryDrain: 750, AppsInstalled: 30, DataUsage: 450, Age: 17, Gender: "Female", BehaviorClass: 1},
	}
}

func testDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	return mustDataset(t, testRecords())
}

func mustDataset(t *testing.T, records []dataset.Record) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(records)
	if err != nil {
		t.Fatalf("dataset.New failed: %v", err)
	}
	return ds
}

func emptyDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	return mustDataset(t, nil)
}

func assertFloat(t *testing.T, got, want, tol float64, msg string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %v, want %v (tolerance %v)", msg, got, want, tol)
	}
}
