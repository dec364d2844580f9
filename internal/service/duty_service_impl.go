package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/dutylog/internal/aggregate"
	"github.com/alexanderramin/dutylog/internal/db"
	"github.com/alexanderramin/dutylog/internal/domain"
	"github.com/alexanderramin/dutylog/internal/extract"
	"github.com/alexanderramin/dutylog/internal/ingest"
	"github.com/alexanderramin/dutylog/internal/platform/metrics"
	"github.com/alexanderramin/dutylog/internal/repository"
	"github.com/google/uuid"
)

// ManualLicense is the license marker written into synthetic correction
// entries, meaning "manually entered".
const ManualLicense = "Ručno uneseno"

const dateLayout = "2006-01-02"

type dutyService struct {
	entries    repository.EntryRepo
	blacklist  repository.BlacklistRepo
	uow        db.UnitOfWork
	source     ingest.MessageSource
	fetchLimit int
	metrics    *metrics.Metrics
	observer   UseCaseObserver
}

// NewDutyService wires the engine. source may be nil, in which case the
// collection is served as-is and Rescan fails; metrics may be nil.
func NewDutyService(
	entries repository.EntryRepo,
	blacklist repository.BlacklistRepo,
	uow db.UnitOfWork,
	source ingest.MessageSource,
	fetchLimit int,
	m *metrics.Metrics,
	observers ...UseCaseObserver,
) DutyService {
	return &dutyService{
		entries:    entries,
		blacklist:  blacklist,
		uow:        uow,
		source:     source,
		fetchLimit: fetchLimit,
		metrics:    m,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *dutyService) ListAdmins(ctx context.Context) ([]domain.AggregateStat, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 && s.source != nil {
		if entries, err = s.refetch(ctx); err != nil {
			return nil, err
		}
	}
	return s.fold(ctx, entries)
}

func (s *dutyService) ListAdminsByDate(ctx context.Context, date string) ([]domain.AggregateStat, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return s.foldBetween(ctx, day, endOfDay(day))
}

func (s *dutyService) ListAdminsByRange(ctx context.Context, from, to string) ([]domain.AggregateStat, error) {
	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}
	fromDay, err := time.Parse(dateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("%w: from must be YYYY-MM-DD", ErrInvalidInput)
	}
	toDay, err := time.Parse(dateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("%w: to must be YYYY-MM-DD", ErrInvalidInput)
	}
	return s.foldBetween(ctx, fromDay, endOfDay(toDay))
}

func (s *dutyService) Rescan(ctx context.Context) ([]domain.AggregateStat, error) {
	start := time.Now()
	if s.source == nil {
		return nil, ErrNoSource
	}
	entries, err := s.refetch(ctx)
	s.observe(ctx, "rescan", start, err, map[string]any{"entries": len(entries)})
	if err != nil {
		return nil, err
	}
	return s.fold(ctx, entries)
}

func (s *dutyService) AddTime(ctx context.Context, admin string, minutes int) error {
	return s.appendCorrection(ctx, "add_time", admin, minutes)
}

func (s *dutyService) RemoveTime(ctx context.Context, admin string, minutes int) error {
	return s.appendCorrection(ctx, "remove_time", admin, -minutes)
}

func (s *dutyService) RemoveAdmin(ctx context.Context, admin string) (int64, error) {
	start := time.Now()
	if err := validateAdmin(admin); err != nil {
		return 0, err
	}

	// Substring containment, not field equality: a name that is a prefix of
	// another admin's identifying text over-matches. Documented behavior.
	needle := extract.PrefixAdmin + " " + admin

	var purged int64
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		n, err := repository.NewSQLiteEntryRepo(tx).DeleteContainingText(ctx, needle)
		purged = n
		return err
	})
	s.observe(ctx, "remove_admin", start, err, map[string]any{"admin": admin, "purged": purged})
	if err != nil {
		return 0, err
	}
	s.metrics.AddEntriesPurged(purged)
	return purged, nil
}

func (s *dutyService) Blacklist(ctx context.Context, admin string) ([]string, error) {
	if err := validateAdmin(admin); err != nil {
		return nil, err
	}
	if err := s.blacklist.Add(ctx, admin); err != nil {
		return nil, err
	}
	return s.blacklist.List(ctx)
}

func (s *dutyService) Unblacklist(ctx context.Context, admin string) ([]string, error) {
	if err := validateAdmin(admin); err != nil {
		return nil, err
	}
	if err := s.blacklist.Remove(ctx, admin); err != nil {
		return nil, err
	}
	return s.blacklist.List(ctx)
}

func (s *dutyService) ListBlacklist(ctx context.Context) ([]string, error) {
	return s.blacklist.List(ctx)
}

// appendCorrection writes one synthetic entry carrying the signed minute
// delta. The entry round-trips through the regular extractor, so the next
// aggregation picks it up with no special casing.
func (s *dutyService) appendCorrection(ctx context.Context, useCase, admin string, minutes int) error {
	start := time.Now()
	if err := validateAdmin(admin); err != nil {
		return err
	}
	if minutes == 0 {
		return fmt.Errorf("%w: minutes must be non-zero", ErrInvalidInput)
	}

	entry := domain.LogEntry{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
		TitleText: fmt.Sprintf("%s %s\n%s %s\nRadnja: proveo na dužnosti %d minuta",
			extract.PrefixAdmin, admin, extract.PrefixLicense, ManualLicense, minutes),
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteEntryRepo(tx).Insert(ctx, &entry)
	})
	s.observe(ctx, useCase, start, err, map[string]any{"admin": admin, "minutes": minutes})
	if err != nil {
		return err
	}
	s.metrics.IncCorrections()
	return nil
}

// refetch replaces the whole stored collection with a fresh pull of the
// source's history, inside one transaction so concurrent corrections never
// interleave with the swap.
func (s *dutyService) refetch(ctx context.Context) ([]domain.LogEntry, error) {
	entries, err := ingest.FetchAll(ctx, s.source, s.fetchLimit)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteEntryRepo(tx)
		if err := repo.DeleteAll(ctx); err != nil {
			return err
		}
		return repo.InsertAll(ctx, entries)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncRescans()
	s.metrics.AddEntriesIngested(len(entries))
	return entries, nil
}

func (s *dutyService) foldBetween(ctx context.Context, from, to time.Time) ([]domain.AggregateStat, error) {
	if err := s.ensureIngested(ctx); err != nil {
		return nil, err
	}
	entries, err := s.entries.ListByTimeRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return s.fold(ctx, entries)
}

// ensureIngested performs the initial load-or-fetch for filtered queries: an
// empty collection means "no cache", so the full history is pulled first.
func (s *dutyService) ensureIngested(ctx context.Context) error {
	if s.source == nil {
		return nil
	}
	n, err := s.entries.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	_, err = s.refetch(ctx)
	return err
}

func (s *dutyService) fold(ctx context.Context, entries []domain.LogEntry) ([]domain.AggregateStat, error) {
	names, err := s.blacklist.List(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.Fold(entries, aggregate.NewBlacklist(names)), nil
}

func (s *dutyService) observe(ctx context.Context, name string, start time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}

func validateAdmin(admin string) error {
	if strings.TrimSpace(admin) == "" {
		return fmt.Errorf("%w: admin is required", ErrInvalidInput)
	}
	return nil
}

// endOfDay returns the last whole second of the given UTC calendar day.
func endOfDay(day time.Time) time.Time {
	return day.Add(24*time.Hour - time.Second)
}
