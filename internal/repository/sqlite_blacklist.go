package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/dutylog/internal/db"
)

// SQLiteBlacklistRepo implements BlacklistRepo using a SQLite database.
type SQLiteBlacklistRepo struct {
	db db.DBTX
}

// NewSQLiteBlacklistRepo creates a new SQLiteBlacklistRepo.
func NewSQLiteBlacklistRepo(db db.DBTX) *SQLiteBlacklistRepo {
	return &SQLiteBlacklistRepo{db: db}
}

func (r *SQLiteBlacklistRepo) Add(ctx context.Context, subject string) error {
	query := `INSERT OR IGNORE INTO blacklist (subject) VALUES (?)`
	if _, err := r.db.ExecContext(ctx, query, subject); err != nil {
		return fmt.Errorf("adding blacklist subject: %w", err)
	}
	return nil
}

func (r *SQLiteBlacklistRepo) Remove(ctx context.Context, subject string) error {
	query := `DELETE FROM blacklist WHERE subject = ?`
	if _, err := r.db.ExecContext(ctx, query, subject); err != nil {
		return fmt.Errorf("removing blacklist subject: %w", err)
	}
	return nil
}

func (r *SQLiteBlacklistRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT subject FROM blacklist ORDER BY subject`)
	if err != nil {
		return nil, fmt.Errorf("listing blacklist: %w", err)
	}
	defer rows.Close()

	var subjects []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scanning blacklist row: %w", err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blacklist: %w", err)
	}
	return subjects, nil
}
