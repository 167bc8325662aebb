package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ============================================================================
// ERROR TAXONOMY — Typed failures, never silently-wrong numbers
// ============================================================================

var (
	// ErrDatasetNotFound reports an unreadable data source.
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrRecordNotFound reports an unknown user_id key.
	ErrRecordNotFound = errors.New("record not found")

	// ErrUnknownField reports a field name outside the fixed schema.
	ErrUnknownField = errors.New("unknown field")
)

// SchemaError reports required columns missing from a CSV header. It lists
// every missing column, not just the first.
type SchemaError struct {
	Source  string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error in %s: missing required columns: %s",
		e.Source, strings.Join(e.Missing, ", "))
}
