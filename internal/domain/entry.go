package domain

import "time"

// LogEntry is an immutable fact ingested from the message source or
// synthesized by a manual correction. Corrections are new entries whose
// TitleText encodes a signed duration; existing entries are never edited.
type LogEntry struct {
	ID        string
	Timestamp time.Time
	TitleText string
}
