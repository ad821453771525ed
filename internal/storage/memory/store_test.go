package memory

import (
	"context"
	"testing"

	"regie/internal/core"
)

func TestUpsertReplacesByScopeKey(t *testing.T) {
	ctx := context.Background()
	store := New()

	scopeA := core.Scope{CommuneID: "A", Chap: "10"}
	scopeB := core.Scope{CommuneID: "B", Chap: "10"}

	first, err := store.Upsert(ctx, core.MonthlyEntry{
		Year: 2024, Month: 3, Scope: scopeA,
		TotalGeneral: core.MoneyFromCents(100000),
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if first.TotalGeneral.Cents != 100000 {
		t.Fatalf("persisted total = %d", first.TotalGeneral.Cents)
	}

	// Different scope, same period: must not overwrite.
	if _, err := store.Upsert(ctx, core.MonthlyEntry{
		Year: 2024, Month: 3, Scope: scopeB,
		TotalGeneral: core.MoneyFromCents(200000),
	}); err != nil {
		t.Fatalf("upsert scope B: %v", err)
	}

	// Same scope, regenerated: full overwrite, position preserved.
	if _, err := store.Upsert(ctx, core.MonthlyEntry{
		Year: 2024, Month: 3, Scope: scopeA,
		TotalGeneral: core.MoneyFromCents(150000),
	}); err != nil {
		t.Fatalf("regenerate scope A: %v", err)
	}

	entries, err := store.ListByPeriod(ctx, 2024, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Scope.CommuneID != "A" || entries[0].TotalGeneral.Cents != 150000 {
		t.Errorf("scope A entry not regenerated in place: %+v", entries[0])
	}
	if entries[1].Scope.CommuneID != "B" {
		t.Errorf("scope B entry lost: %+v", entries[1])
	}

	// Get uses insertion order as the tie-break.
	got, err := store.Get(ctx, 2024, 3)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Scope.CommuneID != "A" {
		t.Errorf("Get should return the first inserted entry, got %+v", got)
	}
}

func TestGetAbsentPeriod(t *testing.T) {
	ctx := context.Background()
	store := New()

	got, err := store.Get(ctx, 2024, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for absent period, got %+v", got)
	}

	byKey, err := store.GetByKey(ctx, 2024, 1, core.Scope{}.Key())
	if err != nil {
		t.Fatalf("get by key: %v", err)
	}
	if byKey != nil {
		t.Errorf("expected nil for absent key, got %+v", byKey)
	}
}

func TestUpsertRejectsInvalidPeriod(t *testing.T) {
	store := New()
	if _, err := store.Upsert(context.Background(), core.MonthlyEntry{Year: 2024, Month: 0}); err == nil {
		t.Fatal("expected error for month 0")
	}
}
