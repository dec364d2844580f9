package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/dutylog/internal/domain"
)

// NewDutyEntry builds a LogEntry whose title encodes a complete duty record
// in the standard three-line form.
func NewDutyEntry(id, subject, license string, minutes int, ts time.Time) domain.LogEntry {
	return domain.LogEntry{
		ID:        id,
		Timestamp: ts,
		TitleText: fmt.Sprintf("Admin: %s\nLicenca: %s\nRadnja: proveo na dužnosti %d minuta",
			subject, license, minutes),
	}
}

// NewBlankEntry builds a LogEntry with no extractable content.
func NewBlankEntry(id string, ts time.Time) domain.LogEntry {
	return domain.LogEntry{ID: id, Timestamp: ts}
}
