package formatter

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/dutylog/internal/domain"
)

// AdminsTable renders aggregate stats as a table, one row per subject in the
// order given (the service already sorts descending by total).
func AdminsTable(stats []domain.AggregateStat) string {
	if len(stats) == 0 {
		return Dim("no duty records") + "\n"
	}

	rows := make([][]string, len(stats))
	for i, s := range stats {
		last := "—"
		if s.LastDuty != nil {
			last = s.LastDuty.Format("2006-01-02 15:04")
		}
		rows[i] = []string{
			StyleFg.Render(s.SubjectName),
			s.LicenseID,
			MinutesStyle(s.TotalMinutes).Render(strconv.Itoa(s.TotalMinutes)),
			StyleDim.Render(last),
		}
	}
	return RenderTable([]string{"ADMIN", "LICENCA", "MINUTE", "ZADNJA DUŽNOST"}, rows)
}

// ScanSummary renders a one-line ingestion summary.
func ScanSummary(subjects int) string {
	return fmt.Sprintf("%s %d admins with duty records\n",
		StyleGreen.Render("rescan complete:"), subjects)
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}
