package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/dutylog/internal/domain"
)

// Line prefixes recognized in duty log titles. Prefix matching is
// case-sensitive and anchored at the start of the line; values are trimmed.
// "Admin:" and "Igrač:" are two spellings of the same subject field.
const (
	PrefixAdmin   = "Admin:"
	PrefixPlayer  = "Igrač:"
	PrefixLicense = "Licenca:"
)

// actionPattern matches the duty action phrase anywhere in a line,
// case-insensitively, capturing the signed minute count.
var actionPattern = regexp.MustCompile(`(?i)proveo na dužnosti (-?\d+) minuta`)

// Record parses an entry's title text line by line and returns the duty
// record it encodes. Every field follows last-match-wins: a later line for
// the same field overwrites the earlier value. The second return value is
// false when any of subject, license, or duration is missing after all lines
// are processed; such entries are not errors, they simply carry no record.
func Record(entry domain.LogEntry) (domain.DutyRecord, bool) {
	var (
		subject string
		license string
		minutes *int
	)

	for _, line := range strings.Split(entry.TitleText, "\n") {
		switch {
		case strings.HasPrefix(line, PrefixAdmin):
			subject = strings.TrimSpace(line[len(PrefixAdmin):])
		case strings.HasPrefix(line, PrefixPlayer):
			subject = strings.TrimSpace(line[len(PrefixPlayer):])
		case strings.HasPrefix(line, PrefixLicense):
			license = strings.TrimSpace(line[len(PrefixLicense):])
		}

		if m := actionPattern.FindStringSubmatch(line); m != nil {
			// The capture group is constrained to a signed integer, so
			// Atoi cannot fail here.
			v, err := strconv.Atoi(m[1])
			if err == nil {
				minutes = &v
			}
		}
	}

	if subject == "" || license == "" || minutes == nil {
		return domain.DutyRecord{}, false
	}

	return domain.DutyRecord{
		SubjectName:     subject,
		LicenseID:       license,
		DurationMinutes: *minutes,
	}, true
}
