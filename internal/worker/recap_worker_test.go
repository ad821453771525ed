package worker

import (
	"context"
	"errors"
	"testing"

	"regie/internal/amqp"
	"regie/internal/core"
	"regie/internal/storage/memory"
)

type fakeRecapWriter struct {
	appended []core.MonthlyEntry
	err      error
}

func (f *fakeRecapWriter) AppendRecap(_ context.Context, e core.MonthlyEntry) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.appended = append(f.appended, e)
	return "Recap!A2:N2", nil
}

func TestHandleUpsertMessage(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	scope := core.Scope{CommuneID: "A", Chap: "10"}

	entry, err := store.Upsert(ctx, core.MonthlyEntry{
		Year: 2024, Month: 6, Scope: scope,
		TotalGeneral: core.MoneyFromCents(423456),
	})
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}

	recap := &fakeRecapWriter{}
	w := NewRecapWorker(store, recap)

	msg := amqp.NewLedgerUpsertMessage(2024, 6, entry.Scope.Key(), entry.TotalGeneral.Cents)
	if err := w.HandleUpsertMessage(ctx, msg); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if len(recap.appended) != 1 {
		t.Fatalf("appended %d rows, want 1", len(recap.appended))
	}
	if recap.appended[0].TotalGeneral.Cents != 423456 {
		t.Errorf("exported total = %d", recap.appended[0].TotalGeneral.Cents)
	}
}

func TestHandleUpsertMessageMissingEntry(t *testing.T) {
	w := NewRecapWorker(memory.New(), &fakeRecapWriter{})

	// A stale message for a record that no longer exists is not an error.
	msg := amqp.NewLedgerUpsertMessage(2024, 6, "gone", 0)
	if err := w.HandleUpsertMessage(context.Background(), msg); err != nil {
		t.Fatalf("stale message should be skipped, got %v", err)
	}
}

func TestHandleUpsertMessageExportFailure(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	entry, err := store.Upsert(ctx, core.MonthlyEntry{Year: 2024, Month: 6})
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}

	wantErr := errors.New("sheets unavailable")
	w := NewRecapWorker(store, &fakeRecapWriter{err: wantErr})

	msg := amqp.NewLedgerUpsertMessage(2024, 6, entry.Scope.Key(), 0)
	if err := w.HandleUpsertMessage(ctx, msg); !errors.Is(err, wantErr) {
		t.Fatalf("expected export error to propagate, got %v", err)
	}
}
