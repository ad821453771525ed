// Package worker exports persisted monthly records to the recap
// spreadsheet, driven by AMQP upsert messages.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"regie/internal/amqp"
	"regie/internal/export"
	"regie/internal/storage"
)

// RecapWorker re-reads upserted records from storage and appends them to
// the recap sheet. The message only carries the key; storage stays the
// source of truth.
type RecapWorker struct {
	store storage.LedgerStore
	recap export.RecapWriter
}

func NewRecapWorker(store storage.LedgerStore, recap export.RecapWriter) *RecapWorker {
	return &RecapWorker{
		store: store,
		recap: recap,
	}
}

// HandleUpsertMessage processes a single ledger upsert message.
func (w *RecapWorker) HandleUpsertMessage(ctx context.Context, msg *amqp.LedgerUpsertMessage) error {
	slog.InfoContext(ctx, "Processing ledger upsert message",
		"year", msg.Year,
		"month", msg.Month,
		"scope_key", msg.ScopeKey)

	entry, err := w.store.GetByKey(ctx, msg.Year, msg.Month, msg.ScopeKey)
	if err != nil {
		return fmt.Errorf("get entry from storage: %w", err)
	}
	if entry == nil {
		// The record was replaced or removed since the message was
		// published; nothing left to export.
		slog.WarnContext(ctx, "Entry not found for upsert message, skipping",
			"year", msg.Year,
			"month", msg.Month,
			"scope_key", msg.ScopeKey)
		return nil
	}

	if w.recap == nil {
		slog.WarnContext(ctx, "No recap writer configured, skipping export",
			"year", msg.Year,
			"month", msg.Month)
		return nil
	}

	rowRef, err := w.recap.AppendRecap(ctx, *entry)
	if err != nil {
		return fmt.Errorf("append recap row: %w", err)
	}

	slog.InfoContext(ctx, "Recap row exported",
		"year", msg.Year,
		"month", msg.Month,
		"row_ref", rowRef)
	return nil
}
