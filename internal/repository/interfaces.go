package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/dutylog/internal/domain"
)

type EntryRepo interface {
	Insert(ctx context.Context, e *domain.LogEntry) error
	InsertAll(ctx context.Context, entries []domain.LogEntry) error
	// List returns all entries in insertion order.
	List(ctx context.Context) ([]domain.LogEntry, error)
	// ListByTimeRange returns entries with from <= timestamp <= to, in
	// insertion order.
	ListByTimeRange(ctx context.Context, from, to time.Time) ([]domain.LogEntry, error)
	Count(ctx context.Context) (int, error)
	// DeleteContainingText removes every entry whose title text contains the
	// given substring and reports how many rows were removed.
	DeleteContainingText(ctx context.Context, substr string) (int64, error)
	DeleteAll(ctx context.Context) error
}

type BlacklistRepo interface {
	Add(ctx context.Context, subject string) error
	Remove(ctx context.Context, subject string) error
	List(ctx context.Context) ([]string, error)
}
