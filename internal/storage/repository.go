package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"regie/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository persists monthly ledger records in an embedded SQLite
// database. Uniqueness is keyed on (year, month, scope_key); entries for
// the same period keep their insertion order through rowid.
type SQLiteRepository struct {
	db *sql.DB
}

var _ LedgerStore = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

const entryColumns = `year, month, commune_id, commune_name, exercise_year,
	chap, art, prog, proj, ligne,
	present_cents, admitted_cents, report_previous_cents, rejected_cents,
	total_general_cents, file_path`

// Upsert writes the record for (year, month, scope key) inside a single
// transaction, replacing any previous one, and returns the row re-read
// from storage. A regenerated period keeps its original rowid, so its
// position in the period's insertion order is stable.
func (r *SQLiteRepository) Upsert(ctx context.Context, entry core.MonthlyEntry) (core.MonthlyEntry, error) {
	if err := entry.Validate(); err != nil {
		return core.MonthlyEntry{}, err
	}
	entry = entry.Normalize()
	scopeKey := entry.Scope.Key()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return core.MonthlyEntry{}, fmt.Errorf("begin upsert transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO monthly_totals (
			year, month, scope_key, commune_id, commune_name, exercise_year,
			chap, art, prog, proj, ligne,
			present_cents, admitted_cents, report_previous_cents, rejected_cents,
			total_general_cents, file_path
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (year, month, scope_key) DO UPDATE SET
			commune_id = excluded.commune_id,
			commune_name = excluded.commune_name,
			exercise_year = excluded.exercise_year,
			chap = excluded.chap,
			art = excluded.art,
			prog = excluded.prog,
			proj = excluded.proj,
			ligne = excluded.ligne,
			present_cents = excluded.present_cents,
			admitted_cents = excluded.admitted_cents,
			report_previous_cents = excluded.report_previous_cents,
			rejected_cents = excluded.rejected_cents,
			total_general_cents = excluded.total_general_cents,
			file_path = excluded.file_path,
			updated_at = CURRENT_TIMESTAMP`,
		entry.Year, entry.Month, scopeKey,
		nullable(entry.Scope.CommuneID), nullable(entry.Scope.CommuneName), nullable(entry.Scope.ExerciseYear),
		nullable(entry.Scope.Chap), nullable(entry.Scope.Art), nullable(entry.Scope.Prog),
		nullable(entry.Scope.Proj), nullable(entry.Scope.Ligne),
		entry.PresentAmount.Cents, entry.AdmittedAmount.Cents, entry.ReportPrevious.Cents,
		entry.RejectedAmount.Cents, entry.TotalGeneral.Cents, nullable(entry.FilePath),
	)
	if err != nil {
		return core.MonthlyEntry{}, fmt.Errorf("upsert monthly totals: %w", err)
	}

	row := tx.QueryRowContext(ctx, `
		SELECT `+entryColumns+`
		FROM monthly_totals
		WHERE year = ? AND month = ? AND scope_key = ?`,
		entry.Year, entry.Month, scopeKey)
	persisted, err := scanEntry(row)
	if err != nil {
		return core.MonthlyEntry{}, fmt.Errorf("read back monthly totals: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return core.MonthlyEntry{}, fmt.Errorf("commit upsert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Monthly totals saved",
		"year", entry.Year,
		"month", entry.Month,
		"scope_key", scopeKey,
		"total_general_cents", persisted.TotalGeneral.Cents)

	return persisted, nil
}

// Get returns the first entry stored for the period, or nil when absent.
func (r *SQLiteRepository) Get(ctx context.Context, year, month int) (*core.MonthlyEntry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+entryColumns+`
		FROM monthly_totals
		WHERE year = ? AND month = ?
		ORDER BY id ASC
		LIMIT 1`, year, month)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get monthly totals: %w", err)
	}
	return &entry, nil
}

// ListByPeriod returns every entry for the period in insertion order.
func (r *SQLiteRepository) ListByPeriod(ctx context.Context, year, month int) ([]core.MonthlyEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+entryColumns+`
		FROM monthly_totals
		WHERE year = ? AND month = ?
		ORDER BY id ASC`, year, month)
	if err != nil {
		return nil, fmt.Errorf("list monthly totals: %w", err)
	}
	defer rows.Close()

	var entries []core.MonthlyEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan monthly totals row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate monthly totals: %w", err)
	}
	return entries, nil
}

// GetByKey returns the entry for an exact (period, scope key), or nil.
func (r *SQLiteRepository) GetByKey(ctx context.Context, year, month int, scopeKey string) (*core.MonthlyEntry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+entryColumns+`
		FROM monthly_totals
		WHERE year = ? AND month = ? AND scope_key = ?`, year, month, scopeKey)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get monthly totals by key: %w", err)
	}
	return &entry, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (core.MonthlyEntry, error) {
	var (
		e                                                     core.MonthlyEntry
		communeID, communeName, exerciseYear                  sql.NullString
		chap, art, prog, proj, ligne, filePath                sql.NullString
		present, admitted, reportPrevious, rejected, totalGen int64
	)
	err := row.Scan(
		&e.Year, &e.Month,
		&communeID, &communeName, &exerciseYear,
		&chap, &art, &prog, &proj, &ligne,
		&present, &admitted, &reportPrevious, &rejected,
		&totalGen, &filePath,
	)
	if err != nil {
		return core.MonthlyEntry{}, err
	}
	e.Scope = core.Scope{
		CommuneID:    communeID.String,
		CommuneName:  communeName.String,
		ExerciseYear: exerciseYear.String,
		Chap:         chap.String,
		Art:          art.String,
		Prog:         prog.String,
		Proj:         proj.String,
		Ligne:        ligne.String,
	}
	e.PresentAmount = core.MoneyFromCents(present)
	e.AdmittedAmount = core.MoneyFromCents(admitted)
	e.ReportPrevious = core.MoneyFromCents(reportPrevious)
	e.RejectedAmount = core.MoneyFromCents(rejected)
	e.TotalGeneral = core.MoneyFromCents(totalGen)
	e.FilePath = filePath.String
	return e, nil
}

// nullable maps a blank string to NULL so wildcard dimensions stay
// distinguishable in the schema.
func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
