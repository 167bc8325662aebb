package engine

import (
	"fmt"

	"github.com/deviceiq-labs/deviceiq/dataset"
)

// ============================================================================
// SEGMENTATION ENGINE — Behavior classes and age bands
// ============================================================================
// Segment summaries are recomputed per request from the immutable snapshot;
// there is no incremental segment state.
// ============================================================================

// ageBand is a fixed, inclusive age range. The top band is open-ended.
type ageBand struct {
	label string
	lo    int
	hi    int // -1 = open-ended
}

var ageBands = []ageBand{
	{"18-24", 18, 24},
	{"25-34", 25, 34},
	{"35-44", 35, 44},
	{"45-54", 45, 54},
	{"55+", 55, -1},
}

// ClassSegments computes the per-behavior-class summaries for classes 1..5
// in ascending class order. Classes with zero matching records are omitted.
func ClassSegments(ds *dataset.Dataset) ([]SegmentSummary, error) {
	if ds.Len() == 0 {
		return nil, fmt.Errorf("class segments: %w", ErrEmptyDataset)
	}

	var out []SegmentSummary
	for class := 1; class <= 5; class++ {
		sub := classSubset(ds, class)
		if sub.Len() == 0 {
			continue
		}
		seg := SegmentSummary{Class: class, Count: sub.Len(), DominantOS: ModalOS(sub)}

		means := []struct {
			field string
			dst   *float64
		}{
			{dataset.FieldAppUsageTime, &seg.AvgAppUsage},
			{dataset.FieldScreenOnTime, &seg.AvgScreenTime},
			{dataset.FieldAppsInstalled, &seg.AvgAppsInstalled},
			{dataset.FieldDataUsage, &seg.AvgDataUsage},
			{dataset.FieldAge, &seg.AvgAge},
		}
		for _, m := range means {
			v, err := Mean(sub, m.field)
			if err != nil {
				return nil, err
			}
			*m.dst = v
		}
		out = append(out, seg)
	}
	return out, nil
}

// AgeBands counts records per fixed age band: 18-24, 25-34, 35-44, 45-54,
// 55+ (bounds inclusive, top band open-ended). Records with age < 18 belong
// to no band, so the bands form a disjoint cover of the 18+ records only.
// Every band is reported, including empty ones, in ascending age order.
func AgeBands(ds *dataset.Dataset) []BandCount {
	out := make([]BandCount, len(ageBands))
	for i, b := range ageBands {
		out[i] = BandCount{Band: b.label}
	}
	for _, r := range ds.Records() {
		for i, b := range ageBands {
			if r.Age >= b.lo && (b.hi < 0 || r.Age <= b.hi) {
				out[i].Count++
				break
			}
		}
	}
	return out
}

// ModalOS returns the modal operating system of a dataset. Ties break by
// first occurrence: the first OS to reach the maximal count in record order
// wins, so the result is stable for a given snapshot.
func ModalOS(ds *dataset.Dataset) string {
	counts := make(map[string]int)
	best := ""
	bestCount := 0
	for _, r := range ds.Records() {
		counts[r.OperatingSystem]++
		if counts[r.OperatingSystem] > bestCount {
			bestCount = counts[r.OperatingSystem]
			best = r.OperatingSystem
		}
	}
	return best
}

// classSubset returns the sub-dataset for one behavior class.
func classSubset(ds *dataset.Dataset, class int) *dataset.Dataset {
	return ds.Where(func(r dataset.Record) bool { return r.BehaviorClass == class })
}
