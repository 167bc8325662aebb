package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ============================================================================
// LOADER — CSV → Dataset with load-time schema validation
// ============================================================================
// The schema is fixed (see record.go), so every field is parsed and checked
// exactly once here. Headers are snake_cased, so "User_ID", "user_id" and
// "User ID" all resolve to the same column.
// ============================================================================

// Load reads a CSV file into a Dataset. Fails with ErrDatasetNotFound when
// the file is unreadable and *SchemaError when required columns are absent.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDatasetNotFound, path, err)
	}
	return Parse(data, path)
}

// Parse parses CSV bytes into a Dataset. source is used in error messages
// and recorded on the snapshot.
func Parse(data []byte, source string) (*Dataset, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers from %s: %w", source, err)
	}

	// Map schema keys to column positions.
	colIndex := make(map[string]int, len(headers))
	for i, h := range headers {
		colIndex[toSnakeCase(strings.TrimSpace(h))] = i
	}
	// The original export names the class column "user_behavior_class".
	if i, ok := colIndex["user_behavior_class"]; ok {
		if _, present := colIndex[FieldBehaviorClass]; !present {
			colIndex[FieldBehaviorClass] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Source: source, Missing: missing}
	}

	var records []Record
	rowNum := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", source, rowNum, err)
		}

		rec, err := parseRow(row, colIndex)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", source, rowNum, err)
		}
		records = append(records, rec)
	}

	ds, err := New(records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	ds.SnapshotID = uuid.NewString()
	ds.Source = source
	return ds, nil
}

func parseRow(row []string, colIndex map[string]int) (Record, error) {
	cell := func(key string) string {
		i := colIndex[key]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var rec Record
	var err error

	if rec.UserID, err = parseIntField(FieldUserID, cell(FieldUserID)); err != nil {
		return rec, err
	}
	rec.DeviceModel = cell(FieldDeviceModel)
	rec.OperatingSystem = cell(FieldOperatingSystem)
	if rec.AppUsageTime, err = parseFloatField(FieldAppUsageTime, cell(FieldAppUsageTime)); err != nil {
		return rec, err
	}
	if rec.ScreenOnTime, err = parseFloatField(FieldScreenOnTime, cell(FieldScreenOnTime)); err != nil {
		return rec, err
	}
	if rec.BatteryDrain, err = parseFloatField(FieldBatteryDrain, cell(FieldBatteryDrain)); err != nil {
		return rec, err
	}
	if rec.AppsInstalled, err = parseIntField(FieldAppsInstalled, cell(FieldAppsInstalled)); err != nil {
		return rec, err
	}
	if rec.DataUsage, err = parseFloatField(FieldDataUsage, cell(FieldDataUsage)); err != nil {
		return rec, err
	}
	if rec.Age, err = parseIntField(FieldAge, cell(FieldAge)); err != nil {
		return rec, err
	}
	rec.Gender = cell(FieldGender)
	if rec.BehaviorClass, err = parseIntField(FieldBehaviorClass, cell(FieldBehaviorClass)); err != nil {
		return rec, err
	}

	if rec.BehaviorClass < 1 || rec.BehaviorClass > 5 {
		return rec, fmt.Errorf("behavior_class %d out of range 1..5", rec.BehaviorClass)
	}
	if rec.AppsInstalled < 0 {
		return rec, fmt.Errorf("number_of_apps_installed %d is negative", rec.AppsInstalled)
	}
	if rec.Age < 0 {
		return rec, fmt.Errorf("age %d is negative", rec.Age)
	}

	return rec, nil
}

func parseFloatField(field, val string) (float64, error) {
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", field, val)
	}
	return f, nil
}

func parseIntField(field, val string) (int, error) {
	// Integer columns in exported CSVs sometimes carry a float representation
	// ("45.0"); accept it as long as the value is whole.
	n, err := strconv.Atoi(val)
	if err == nil {
		return n, nil
	}
	f, ferr := strconv.ParseFloat(val, 64)
	if ferr == nil && f == float64(int64(f)) {
		return int(f), nil
	}
	return 0, fmt.Errorf("invalid %s value %q", field, val)
}

// toSnakeCase converts "Column Name" → "column_name".
func toSnakeCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
