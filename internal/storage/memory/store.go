// Package memory provides an in-memory LedgerStore, used as the default
// backend and as the test double for the engine.
package memory

import (
	"context"
	"sync"

	"regie/internal/core"
	"regie/internal/storage"
)

type Store struct {
	mu      sync.Mutex
	entries []core.MonthlyEntry
}

var _ storage.LedgerStore = (*Store)(nil)

func New() *Store {
	return &Store{}
}

// Upsert replaces the entry for (year, month, scope key) in place,
// keeping its insertion position, or appends a new one.
func (s *Store) Upsert(_ context.Context, entry core.MonthlyEntry) (core.MonthlyEntry, error) {
	if err := entry.Validate(); err != nil {
		return core.MonthlyEntry{}, err
	}
	entry = entry.Normalize()
	key := entry.Scope.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.entries {
		if existing.Year == entry.Year && existing.Month == entry.Month && existing.Scope.Key() == key {
			s.entries[i] = entry
			return entry, nil
		}
	}
	s.entries = append(s.entries, entry)
	return entry, nil
}

// Get returns the first entry for the period by insertion order.
func (s *Store) Get(_ context.Context, year, month int) (*core.MonthlyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.Year == year && e.Month == month {
			out := e
			return &out, nil
		}
	}
	return nil, nil
}

// ListByPeriod returns all entries for the period in insertion order.
func (s *Store) ListByPeriod(_ context.Context, year, month int) ([]core.MonthlyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []core.MonthlyEntry
	for _, e := range s.entries {
		if e.Year == year && e.Month == month {
			out = append(out, e)
		}
	}
	return out, nil
}

// GetByKey returns the entry for an exact (period, scope key), or nil.
func (s *Store) GetByKey(_ context.Context, year, month int, scopeKey string) (*core.MonthlyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.Year == year && e.Month == month && e.Scope.Key() == scopeKey {
			out := e
			return &out, nil
		}
	}
	return nil, nil
}

func (s *Store) Close() error {
	return nil
}
