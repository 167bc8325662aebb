package dataset

import (
	"log"
	"sync"
)

// ============================================================================
// STORE — Cached loading, keyed by source path
// ============================================================================
// Repeated Gets for the same path return the same in-memory snapshot without
// re-reading the file. Reload/Invalidate are the only mutation points: they
// swap whole immutable snapshots under a single writer lock, so concurrent
// readers never observe a partially-updated table.
// ============================================================================

// Store caches loaded Datasets by source path.
type Store struct {
	mu    sync.RWMutex
	cache map[string]*Dataset
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{cache: make(map[string]*Dataset)}
}

// Get returns the cached Dataset for path, loading it on first access.
func (s *Store) Get(path string) (*Dataset, error) {
	s.mu.RLock()
	ds, ok := s.cache[path]
	s.mu.RUnlock()
	if ok {
		return ds, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another goroutine may have loaded it while we waited for the lock.
	if ds, ok := s.cache[path]; ok {
		return ds, nil
	}

	ds, err := Load(path)
	if err != nil {
		return nil, err
	}
	s.cache[path] = ds
	log.Printf("📦 DeviceIQ: loaded %d records from %s (snapshot %s)", ds.Len(), path, ds.SnapshotID)
	return ds, nil
}

// Reload re-reads the source and swaps the cached snapshot wholesale.
// In-flight readers keep the snapshot they already hold.
func (s *Store) Reload(path string) (*Dataset, error) {
	ds, err := Load(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[path] = ds
	s.mu.Unlock()

	log.Printf("🔄 DeviceIQ: reloaded %s (%d records, snapshot %s)", path, ds.Len(), ds.SnapshotID)
	return ds, nil
}

// Invalidate drops the cached entry for path. The next Get re-reads it.
func (s *Store) Invalidate(path string) {
	s.mu.Lock()
	delete(s.cache, path)
	s.mu.Unlock()
}

// InvalidateAll drops every cached entry.
func (s *Store) InvalidateAll() {
	s.mu.Lock()
	s.cache = make(map[string]*Dataset)
	s.mu.Unlock()
}
