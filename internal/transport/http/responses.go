package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/alexanderramin/dutylog/internal/domain"
	"github.com/alexanderramin/dutylog/internal/service"
)

type adminStat struct {
	Admin        string     `json:"admin"`
	License      string     `json:"license"`
	TotalMinutes int        `json:"totalMinutes"`
	LastDuty     *time.Time `json:"lastDuty,omitempty"`
}

type adminsResponse struct {
	Success bool        `json:"success"`
	Admins  []adminStat `json:"admins"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type purgeResponse struct {
	Success bool  `json:"success"`
	Removed int64 `json:"removed"`
}

type blacklistResponse struct {
	Success   bool     `json:"success"`
	Blacklist []string `json:"blacklist"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func toAdminStats(stats []domain.AggregateStat) []adminStat {
	out := make([]adminStat, len(stats))
	for i, s := range stats {
		out[i] = adminStat{
			Admin:        s.SubjectName,
			License:      s.LicenseID,
			TotalMinutes: s.TotalMinutes,
			LastDuty:     s.LastDuty,
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError centralizes domain error translation to HTTP responses so every
// handler returns the same JSON error envelope.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, service.ErrInvalidInput) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorResponse{Success: false, Error: err.Error()})
}
