package aggregate

import (
	"sort"

	"github.com/alexanderramin/dutylog/internal/domain"
	"github.com/alexanderramin/dutylog/internal/extract"
)

// Blacklist is the set of subject names excluded from aggregate output.
// Entries for blacklisted subjects stay in the collection; the exclusion
// applies only here, at fold time, so it is fully reversible.
type Blacklist map[string]bool

// NewBlacklist builds a Blacklist from a list of subject names.
func NewBlacklist(names []string) Blacklist {
	bl := make(Blacklist, len(names))
	for _, n := range names {
		bl[n] = true
	}
	return bl
}

// Fold runs the extractor over every entry in input order and folds the
// resulting duty records into per-subject stats:
//   - TotalMinutes accumulates signed durations with no floor.
//   - LicenseID is overwritten by each contributing record, so the last
//     record in input order wins.
//   - LastDuty tracks the maximum entry timestamp over all contributing
//     records, including negative corrections.
//
// Entries missing any required field and entries for blacklisted subjects
// contribute nothing. The result is sorted descending by TotalMinutes; the
// order of equal totals is unspecified.
func Fold(entries []domain.LogEntry, bl Blacklist) []domain.AggregateStat {
	bySubject := make(map[string]*domain.AggregateStat)

	for _, e := range entries {
		rec, ok := extract.Record(e)
		if !ok || bl[rec.SubjectName] {
			continue
		}

		stat := bySubject[rec.SubjectName]
		if stat == nil {
			stat = &domain.AggregateStat{SubjectName: rec.SubjectName}
			bySubject[rec.SubjectName] = stat
		}

		stat.TotalMinutes += rec.DurationMinutes
		stat.LicenseID = rec.LicenseID
		if stat.LastDuty == nil || e.Timestamp.After(*stat.LastDuty) {
			ts := e.Timestamp
			stat.LastDuty = &ts
		}
	}

	stats := make([]domain.AggregateStat, 0, len(bySubject))
	for _, s := range bySubject {
		stats = append(stats, *s)
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalMinutes > stats[j].TotalMinutes
	})
	return stats
}
