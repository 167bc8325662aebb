package engine

import "errors"

// ============================================================================
// ENGINE ERRORS
// ============================================================================
// Together with dataset.ErrDatasetNotFound, dataset.ErrRecordNotFound and
// dataset.SchemaError these form the full failure taxonomy. Every statistic
// that cannot be computed reports a typed error — no NaN or Inf ever leaks
// into a result.
// ============================================================================

var (
	// ErrEmptyDataset reports a statistic requested over zero records.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrDegenerateInput reports a zero-variance input to a correlation or
	// a zero baseline in a prediction.
	ErrDegenerateInput = errors.New("degenerate input")
)
