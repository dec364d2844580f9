package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/dutylog/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAdminsTable_Empty(t *testing.T) {
	out := AdminsTable(nil)
	assert.Contains(t, out, "no duty records")
}

func TestAdminsTable_RowsInGivenOrder(t *testing.T) {
	last := time.Date(2024, 1, 2, 15, 4, 0, 0, time.UTC)
	out := AdminsTable([]domain.AggregateStat{
		{SubjectName: "Marko", LicenseID: "L-1", TotalMinutes: 45, LastDuty: &last},
		{SubjectName: "Ana", LicenseID: "L-2", TotalMinutes: -5},
	})

	assert.Contains(t, out, "Marko")
	assert.Contains(t, out, "45")
	assert.Contains(t, out, "-5")
	assert.Contains(t, out, "2024-01-02 15:04")
	assert.Contains(t, out, "—", "missing last duty renders a dash")
	assert.Less(t, strings.Index(out, "Marko"), strings.Index(out, "Ana"))
}
