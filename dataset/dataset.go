package dataset

import "fmt"

// ============================================================================
// DATASET — Immutable in-memory table with a user_id index
// ============================================================================
// A Dataset is built once at load time and never mutated afterwards, so any
// number of goroutines may read it concurrently without locking. Reload
// replaces the whole snapshot through the Store; derived sub-datasets are
// request-scoped values.
// ============================================================================

// Dataset is an ordered, immutable collection of Records.
type Dataset struct {
	SnapshotID string // assigned at load, identifies this snapshot in logs
	Source     string // path the snapshot was loaded from

	records []Record
	byUser  map[int]int // user_id → index into records
}

// New builds a Dataset from records and indexes it by user_id.
// Duplicate user_ids are rejected: user_id is the unique record key.
func New(records []Record) (*Dataset, error) {
	byUser := make(map[int]int, len(records))
	for i, r := range records {
		if prev, dup := byUser[r.UserID]; dup {
			return nil, fmt.Errorf("duplicate user_id %d (rows %d and %d)", r.UserID, prev+1, i+1)
		}
		byUser[r.UserID] = i
	}
	return &Dataset{records: records, byUser: byUser}, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Records returns the backing record slice. Callers must treat it as
// read-only; the Dataset is shared between concurrent readers.
func (d *Dataset) Records() []Record { return d.records }

// Record looks up a record by user_id. O(1) via the load-time index.
func (d *Dataset) Record(userID int) (Record, error) {
	i, ok := d.byUser[userID]
	if !ok {
		return Record{}, fmt.Errorf("user %d: %w", userID, ErrRecordNotFound)
	}
	return d.records[i], nil
}

// Column extracts a numeric field as a column vector, in record order.
func (d *Dataset) Column(field string) ([]float64, error) {
	if _, ok := (Record{}).Numeric(field); !ok {
		return nil, fmt.Errorf("%q: %w", field, ErrUnknownField)
	}
	col := make([]float64, len(d.records))
	for i, r := range d.records {
		v, _ := r.Numeric(field)
		col[i] = v
	}
	return col, nil
}

// CategoryColumn extracts a discrete field as strings, in record order.
func (d *Dataset) CategoryColumn(field string) ([]string, error) {
	if _, ok := (Record{}).Category(field); !ok {
		return nil, fmt.Errorf("%q: %w", field, ErrUnknownField)
	}
	col := make([]string, len(d.records))
	for i, r := range d.records {
		v, _ := r.Category(field)
		col[i] = v
	}
	return col, nil
}

// Where returns the sub-dataset of records matching the predicate.
// The result shares the parent's SnapshotID and rebuilds its own index;
// it is a request-scoped value, not a new cache entry.
func (d *Dataset) Where(keep func(Record) bool) *Dataset {
	var sub []Record
	for _, r := range d.records {
		if keep(r) {
			sub = append(sub, r)
		}
	}
	out, _ := New(sub) // parent index was unique, subsets stay unique
	out.SnapshotID = d.SnapshotID
	out.Source = d.Source
	return out
}
