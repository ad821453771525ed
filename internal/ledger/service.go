// Package ledger implements the scoped monthly ledger engine: the
// chained "Total Général" where each period opens with the previous
// period's closing balance, partitioned by administrative scope.
package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"regie/internal/core"
	"regie/internal/storage"
)

// UpsertPublisher receives a notification after a monthly record has been
// persisted. Used to feed the recap export pipeline.
type UpsertPublisher interface {
	PublishLedgerUpsert(ctx context.Context, year, month int, scopeKey string, totalGeneralCents int64) error
}

// Service ties the carry-over calculator to a storage handle. The store
// is injected so tests and multiple independent ledgers can supply their
// own.
type Service struct {
	store     storage.LedgerStore
	publisher UpsertPublisher
}

func NewService(store storage.LedgerStore, publisher UpsertPublisher) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
	}
}

// PreviousMonthBordereau locates the unique record of the previous
// calendar period whose scope is compatible with the query scope. Blank
// dimensions on either side act as wildcards. Returns nil when no history
// exists under that scope (first tracked period included).
//
// When the store holds several entries for the previous period, the first
// compatible one by insertion order wins.
func (s *Service) PreviousMonthBordereau(ctx context.Context, year, month int, scope core.Scope) (*core.MonthlyEntry, error) {
	prev, err := core.PreviousPeriod(year, month)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.ListByPeriod(ctx, prev.Year, prev.Month)
	if err != nil {
		return nil, fmt.Errorf("list entries for %s: %w", prev, err)
	}

	query := scope.Normalize()
	for i := range entries {
		if query.Matches(entries[i].Scope) {
			return &entries[i], nil
		}
	}
	return nil, nil
}

// PreviousTotalGeneral returns the carry-over amount for (year, month)
// under the given scope: the previous period's Total Général, or zero.
func (s *Service) PreviousTotalGeneral(ctx context.Context, year, month int, scope core.Scope) (core.Money, error) {
	prev, err := s.PreviousMonthBordereau(ctx, year, month, scope)
	if err != nil {
		return core.Money{}, err
	}
	return CarryOver(prev), nil
}

// Overrides carries the optional manual corrections a caller may supply
// instead of the automatic derivations.
type Overrides struct {
	ReportPrevious *core.Money
	RejectedAmount *core.Money
	AdmittedAmount *core.Money
}

// MonthlyTotalsParams describes one period's figures before finalization.
type MonthlyTotalsParams struct {
	Year      int
	Month     int
	Scope     core.Scope
	Present   core.Money
	FilePath  string
	Overrides Overrides
}

// PrepareMonthlyTotals composes the finalized record for a period:
// ReportPrevious comes from the carry-over chain unless overridden,
// RejectedAmount defaults to zero, AdmittedAmount to the present amount,
// and TotalGeneral = ReportPrevious + Present - Rejected.
func (s *Service) PrepareMonthlyTotals(ctx context.Context, params MonthlyTotalsParams) (core.MonthlyEntry, error) {
	period := core.Period{Year: params.Year, Month: params.Month}
	if err := period.Validate(); err != nil {
		return core.MonthlyEntry{}, err
	}

	present := params.Present.Clamped()

	report := core.Money{}
	if params.Overrides.ReportPrevious != nil {
		// Manual report may be negative after a correction.
		report = *params.Overrides.ReportPrevious
	} else {
		var err error
		report, err = s.PreviousTotalGeneral(ctx, params.Year, params.Month, params.Scope)
		if err != nil {
			return core.MonthlyEntry{}, err
		}
	}

	rejected := core.Money{}
	if params.Overrides.RejectedAmount != nil {
		rejected = params.Overrides.RejectedAmount.Clamped()
	}

	admitted := present
	if params.Overrides.AdmittedAmount != nil {
		admitted = params.Overrides.AdmittedAmount.Clamped()
	}

	return core.MonthlyEntry{
		Year:           params.Year,
		Month:          params.Month,
		Scope:          params.Scope.Normalize(),
		PresentAmount:  present,
		AdmittedAmount: admitted,
		ReportPrevious: report,
		RejectedAmount: rejected,
		TotalGeneral:   report.Add(present).Sub(rejected),
		FilePath:       params.FilePath,
	}, nil
}

// UpsertMonthlyTotals persists the finalized record for its period and
// scope, fully overwriting a previously recorded one, and returns the
// record re-read from storage. Overwriting does not re-propagate to later
// periods that already carried the old total forward; callers regenerate
// those explicitly after a retroactive edit.
func (s *Service) UpsertMonthlyTotals(ctx context.Context, entry core.MonthlyEntry) (core.MonthlyEntry, error) {
	persisted, err := s.store.Upsert(ctx, entry)
	if err != nil {
		return core.MonthlyEntry{}, fmt.Errorf("upsert monthly totals: %w", err)
	}

	s.publishUpsert(ctx, persisted)
	return persisted, nil
}

// FinalizeMonthlyTotals prepares and persists a period's record in one
// call: the operation behind regenerating a bordereau.
func (s *Service) FinalizeMonthlyTotals(ctx context.Context, params MonthlyTotalsParams) (core.MonthlyEntry, error) {
	entry, err := s.PrepareMonthlyTotals(ctx, params)
	if err != nil {
		return core.MonthlyEntry{}, err
	}
	return s.UpsertMonthlyTotals(ctx, entry)
}

// MonthlyTotals returns the stored record for a period, or nil.
func (s *Service) MonthlyTotals(ctx context.Context, year, month int) (*core.MonthlyEntry, error) {
	entry, err := s.store.Get(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("get monthly totals: %w", err)
	}
	return entry, nil
}

func (s *Service) publishUpsert(ctx context.Context, entry core.MonthlyEntry) {
	if s.publisher == nil {
		slog.DebugContext(ctx, "No upsert publisher configured, skipping recap message")
		return
	}
	err := s.publisher.PublishLedgerUpsert(ctx, entry.Year, entry.Month, entry.Scope.Key(), entry.TotalGeneral.Cents)
	if err != nil {
		// The record is persisted; a lost recap message is only logged.
		slog.ErrorContext(ctx, "Failed to publish ledger upsert message",
			"year", entry.Year,
			"month", entry.Month,
			"error", err)
	}
}
