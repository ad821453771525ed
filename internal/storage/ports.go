package storage

import (
	"context"

	"regie/internal/core"
)

// LedgerStore is the storage handle passed into every ledger operation.
// Implementations must keep entries for one period in stable insertion
// order, so that period-level reads have a deterministic tie-break.
type LedgerStore interface {
	// Upsert writes the finalized record for the entry's period and scope
	// key, replacing any existing one, and returns the persisted record
	// re-read from storage.
	Upsert(ctx context.Context, entry core.MonthlyEntry) (core.MonthlyEntry, error)

	// Get returns the first stored entry for a period by insertion order,
	// regardless of scope, or nil when the period is absent.
	Get(ctx context.Context, year, month int) (*core.MonthlyEntry, error)

	// ListByPeriod returns every stored entry for a period in insertion
	// order.
	ListByPeriod(ctx context.Context, year, month int) ([]core.MonthlyEntry, error)

	// GetByKey returns the entry for an exact (period, scope key), or nil.
	GetByKey(ctx context.Context, year, month int, scopeKey string) (*core.MonthlyEntry, error)

	Close() error
}
