// Package deviceiq provides an analytics and simulation engine for
// mobile-device usage datasets.
//
// Usage:
//
//	import (
//	    "github.com/deviceiq-labs/deviceiq/dataset"
//	    "github.com/deviceiq-labs/deviceiq/engine"
//	)
//
//	store := dataset.NewStore()
//	ds, err := store.Get("mobile_usage.csv")
//	report, err := engine.DeveloperInsight(ds)
//
// The dataset package loads a fixed-schema CSV into an immutable in-memory
// table, cached per source path. The engine package computes descriptive
// statistics, per-segment breakdowns, correlation analysis, role-specific
// insight reports, and deterministic what-if projections for single records.
//
// Every engine operation is a pure function over a Dataset snapshot — safe
// for concurrent callers, no shared mutable state. The engine never performs
// I/O; loading and cache invalidation belong to dataset.Store.
package deviceiq
