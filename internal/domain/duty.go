package domain

import "time"

// DutyRecord holds the structured fields extracted from one LogEntry's text.
// It is derived on demand and never persisted.
type DutyRecord struct {
	SubjectName     string
	LicenseID       string
	DurationMinutes int
}

// AggregateStat is the per-subject rollup computed fresh on every query.
// TotalMinutes is signed and not clamped at zero: negative corrections can
// drive it below zero. LastDuty is the maximum timestamp among all
// contributing entries regardless of the sign of their duration; nil when
// the subject never contributed.
type AggregateStat struct {
	SubjectName  string
	LicenseID    string
	TotalMinutes int
	LastDuty     *time.Time
}
