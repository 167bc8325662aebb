package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/deviceiq-labs/deviceiq/dataset"
)

// ============================================================================
// AGGREGATION LIBRARY — Pure statistics over a Dataset
// ============================================================================
// Scalar summaries delegate to montanaflynn/stats; Pearson correlation to
// gonum/stat. Every function is side-effect-free and safe to call
// concurrently on the same snapshot.
// ============================================================================

// Mean returns the mean of a numeric field.
func Mean(ds *dataset.Dataset, field string) (float64, error) {
	col, err := column(ds, field)
	if err != nil {
		return 0, err
	}
	return stats.Mean(col)
}

// Sum returns the sum of a numeric field.
func Sum(ds *dataset.Dataset, field string) (float64, error) {
	col, err := column(ds, field)
	if err != nil {
		return 0, err
	}
	return stats.Sum(col)
}

// Distribution returns value counts for a discrete field, ordered by
// descending count; ties break by value ascending. The counts always sum to
// ds.Len().
func Distribution(ds *dataset.Dataset, field string) ([]ValueCount, error) {
	if ds.Len() == 0 {
		return nil, fmt.Errorf("distribution of %s: %w", field, ErrEmptyDataset)
	}
	col, err := ds.CategoryColumn(field)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, v := range col {
		counts[v]++
	}

	out := make([]ValueCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, ValueCount{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out, nil
}

// Quantile returns the q-quantile (q in [0,1]) of a numeric field. q = 0
// and quantiles falling below the first order statistic resolve to the
// minimum.
func Quantile(ds *dataset.Dataset, field string, q float64) (float64, error) {
	if q < 0 || q > 1 {
		return 0, fmt.Errorf("quantile %v out of range [0,1]", q)
	}
	col, err := column(ds, field)
	if err != nil {
		return 0, err
	}
	if q == 0 {
		return stats.Min(col)
	}
	v, err := stats.Percentile(col, q*100)
	if err != nil {
		// q*n < 1: no lower midpoint pair exists
		return stats.Min(col)
	}
	return v, nil
}

// Median returns the median of a numeric field.
func Median(ds *dataset.Dataset, field string) (float64, error) {
	col, err := column(ds, field)
	if err != nil {
		return 0, err
	}
	return stats.Median(col)
}

// PercentileRank returns the percentile rank of value within a numeric
// field: the fraction of records with field <= value, scaled to 0..100.
// The comparison is "<=", so ties count toward the rank and the unique
// maximum ranks exactly 100.
func PercentileRank(ds *dataset.Dataset, field string, value float64) (float64, error) {
	col, err := column(ds, field)
	if err != nil {
		return 0, err
	}
	atOrBelow := 0
	for _, v := range col {
		if v <= value {
			atOrBelow++
		}
	}
	return float64(atOrBelow) / float64(len(col)) * 100, nil
}

// Correlation returns the Pearson correlation of two numeric fields.
// Fails with ErrDegenerateInput when either field has zero variance.
func Correlation(ds *dataset.Dataset, fieldA, fieldB string) (float64, error) {
	x, err := column(ds, fieldA)
	if err != nil {
		return 0, err
	}
	y, err := column(ds, fieldB)
	if err != nil {
		return 0, err
	}
	return pearson(x, y, fieldA, fieldB)
}

// PairwiseCorrelations computes the correlation matrix over the fixed
// numeric-field set. The result is symmetric with a diagonal of exactly 1.0.
func PairwiseCorrelations(ds *dataset.Dataset) (CorrelationMatrix, error) {
	fields := dataset.NumericFields()
	m := CorrelationMatrix{Fields: fields, Values: make([][]float64, len(fields))}
	if ds.Len() == 0 {
		return m, fmt.Errorf("correlation matrix: %w", ErrEmptyDataset)
	}

	cols := make([][]float64, len(fields))
	for i, f := range fields {
		col, err := column(ds, f)
		if err != nil {
			return m, err
		}
		cols[i] = col
	}

	for i := range fields {
		m.Values[i] = make([]float64, len(fields))
		m.Values[i][i] = 1.0
	}
	for i := 0; i < len(fields); i++ {
		for j := i + 1; j < len(fields); j++ {
			r, err := pearson(cols[i], cols[j], fields[i], fields[j])
			if err != nil {
				return m, err
			}
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m, nil
}

// FieldSummaryOf computes mean/std/min/max/median for one numeric field.
// Std is the sample standard deviation, matching the convention of the
// statistical summaries this report feeds.
func FieldSummaryOf(ds *dataset.Dataset, field string) (FieldSummary, error) {
	col, err := column(ds, field)
	if err != nil {
		return FieldSummary{}, err
	}

	mean, _ := stats.Mean(col)
	std, _ := stats.StandardDeviationSample(col)
	min, _ := stats.Min(col)
	max, _ := stats.Max(col)
	median, _ := stats.Median(col)
	if math.IsNaN(std) { // single record
		std = 0
	}

	return FieldSummary{Mean: mean, Std: std, Min: min, Max: max, Median: median}, nil
}

// GroupBy partitions the dataset by a discrete field. Keys are returned
// sorted ascending so iteration over the result is deterministic.
func GroupBy(ds *dataset.Dataset, field string) ([]string, map[string]*dataset.Dataset, error) {
	col, err := ds.CategoryColumn(field)
	if err != nil {
		return nil, nil, err
	}

	groups := make(map[string]*dataset.Dataset)
	var keys []string
	for _, v := range col {
		if _, seen := groups[v]; seen {
			continue
		}
		val := v
		groups[val] = ds.Where(func(r dataset.Record) bool {
			c, _ := r.Category(field)
			return c == val
		})
		keys = append(keys, val)
	}
	sort.Strings(keys)
	return keys, groups, nil
}

// AggregateStats computes the dashboard-level aggregate over the dataset.
func AggregateStats(ds *dataset.Dataset) (*StatsReport, error) {
	if ds.Len() == 0 {
		return nil, fmt.Errorf("aggregate stats: %w", ErrEmptyDataset)
	}

	report := &StatsReport{TotalUsers: ds.Len()}

	means := []struct {
		field string
		dst   *float64
	}{
		{dataset.FieldAppUsageTime, &report.AvgAppUsage},
		{dataset.FieldScreenOnTime, &report.AvgScreenTime},
		{dataset.FieldBatteryDrain, &report.AvgBatteryDrain},
		{dataset.FieldDataUsage, &report.AvgDataUsage},
		{dataset.FieldAppsInstalled, &report.AvgAppsInstalled},
	}
	for _, m := range means {
		v, err := Mean(ds, m.field)
		if err != nil {
			return nil, err
		}
		*m.dst = v
	}

	var err error
	if report.DeviceCounts, err = Distribution(ds, dataset.FieldDeviceModel); err != nil {
		return nil, err
	}
	if report.OSCounts, err = Distribution(ds, dataset.FieldOperatingSystem); err != nil {
		return nil, err
	}
	if report.BehaviorCounts, err = Distribution(ds, dataset.FieldBehaviorClass); err != nil {
		return nil, err
	}
	if report.GenderCounts, err = Distribution(ds, dataset.FieldGender); err != nil {
		return nil, err
	}
	report.AgeGroups = AgeBands(ds)

	return report, nil
}

// ============================================================================
// INTERNAL HELPERS
// ============================================================================

func column(ds *dataset.Dataset, field string) ([]float64, error) {
	if ds.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", field, ErrEmptyDataset)
	}
	return ds.Column(field)
}

func pearson(x, y []float64, fieldA, fieldB string) (float64, error) {
	if varianceIsZero(x) {
		return 0, fmt.Errorf("correlation %s vs %s: %s has zero variance: %w",
			fieldA, fieldB, fieldA, ErrDegenerateInput)
	}
	if varianceIsZero(y) {
		return 0, fmt.Errorf("correlation %s vs %s: %s has zero variance: %w",
			fieldA, fieldB, fieldB, ErrDegenerateInput)
	}
	return stat.Correlation(x, y, nil), nil
}

func varianceIsZero(col []float64) bool {
	if len(col) < 2 {
		return true
	}
	first := col[0]
	for _, v := range col[1:] {
		if v != first {
			return false
		}
	}
	return true
}

// round1 rounds to 1 decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round3 rounds to 3 decimal places.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
