package service

import (
	"context"

	"github.com/alexanderramin/dutylog/internal/domain"
)

// DutyService exposes every engine operation: aggregate queries, the
// correction ledger, and blacklist maintenance. Aggregates are recomputed
// from the entry collection on every call; nothing here caches them.
type DutyService interface {
	// ListAdmins returns per-subject stats over the whole collection, sorted
	// descending by total minutes. An empty collection triggers a full
	// ingestion from the message source first.
	ListAdmins(ctx context.Context) ([]domain.AggregateStat, error)
	// ListAdminsByDate restricts aggregation to one UTC calendar day.
	// The date must be in YYYY-MM-DD form.
	ListAdminsByDate(ctx context.Context, date string) ([]domain.AggregateStat, error)
	// ListAdminsByRange restricts aggregation to [from 00:00:00Z, to 23:59:59Z]
	// inclusive. Both bounds are required, YYYY-MM-DD.
	ListAdminsByRange(ctx context.Context, from, to string) ([]domain.AggregateStat, error)
	// Rescan discards the stored collection, refetches the full history from
	// the message source, and returns fresh aggregates.
	Rescan(ctx context.Context) ([]domain.AggregateStat, error)

	// AddTime appends a synthetic correction entry crediting minutes to admin.
	AddTime(ctx context.Context, admin string, minutes int) error
	// RemoveTime appends a synthetic correction entry debiting minutes from
	// admin; totals may go negative.
	RemoveTime(ctx context.Context, admin string, minutes int) error
	// RemoveAdmin destructively deletes every entry naming admin as the duty
	// subject and reports how many entries were purged.
	RemoveAdmin(ctx context.Context, admin string) (int64, error)

	Blacklist(ctx context.Context, admin string) ([]string, error)
	Unblacklist(ctx context.Context, admin string) ([]string, error)
	ListBlacklist(ctx context.Context) ([]string, error)
}
