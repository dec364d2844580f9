package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/dutylog/internal/db"
	"github.com/alexanderramin/dutylog/internal/domain"
)

// SQLiteEntryRepo implements EntryRepo using a SQLite database.
type SQLiteEntryRepo struct {
	db db.DBTX
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo. The argument may be a
// *sql.DB or a transaction obtained from a UnitOfWork.
func NewSQLiteEntryRepo(db db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: db}
}

func (r *SQLiteEntryRepo) Insert(ctx context.Context, e *domain.LogEntry) error {
	query := `INSERT INTO log_entries (id, timestamp, title_text) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Timestamp.UTC().Format(time.RFC3339),
		e.TitleText,
	)
	if err != nil {
		return fmt.Errorf("inserting log entry: %w", err)
	}
	return nil
}

func (r *SQLiteEntryRepo) InsertAll(ctx context.Context, entries []domain.LogEntry) error {
	for i := range entries {
		if err := r.Insert(ctx, &entries[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteEntryRepo) List(ctx context.Context) ([]domain.LogEntry, error) {
	query := `SELECT id, timestamp, title_text FROM log_entries ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing log entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) ListByTimeRange(ctx context.Context, from, to time.Time) ([]domain.LogEntry, error) {
	// RFC3339 UTC strings at second precision order lexicographically, so the
	// bounds comparison can stay in SQL.
	query := `SELECT id, timestamp, title_text FROM log_entries
		WHERE timestamp >= ? AND timestamp <= ?
		ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query,
		from.UTC().Format(time.RFC3339),
		to.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("listing log entries by time range: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM log_entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting log entries: %w", err)
	}
	return n, nil
}

func (r *SQLiteEntryRepo) DeleteContainingText(ctx context.Context, substr string) (int64, error) {
	query := `DELETE FROM log_entries WHERE instr(title_text, ?) > 0`
	res, err := r.db.ExecContext(ctx, query, substr)
	if err != nil {
		return 0, fmt.Errorf("deleting log entries by text: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}
	return n, nil
}

func (r *SQLiteEntryRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM log_entries`); err != nil {
		return fmt.Errorf("deleting all log entries: %w", err)
	}
	return nil
}

// scanEntries scans log entries from *sql.Rows.
func (r *SQLiteEntryRepo) scanEntries(rows *sql.Rows) ([]domain.LogEntry, error) {
	var entries []domain.LogEntry
	for rows.Next() {
		var e domain.LogEntry
		var tsStr string

		if err := rows.Scan(&e.ID, &tsStr, &e.TitleText); err != nil {
			return nil, fmt.Errorf("scanning log entry row: %w", err)
		}

		ts, err := time.Parse(time.RFC3339, tsStr)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp: %w", err)
		}
		e.Timestamp = ts

		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating log entries: %w", err)
	}
	return entries, nil
}
