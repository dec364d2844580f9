package httptransport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alexanderramin/dutylog/internal/service"
	"github.com/go-chi/chi/v5"
)

// Handler is the thin HTTP layer over the duty service.
type Handler struct {
	duty service.DutyService
}

func NewHandler(duty service.DutyService) *Handler {
	return &Handler{duty: duty}
}

type correctionRequest struct {
	Admin   string `json:"admin"`
	Minutes int    `json:"minutes"`
}

type adminRequest struct {
	Admin string `json:"admin"`
}

func (h *Handler) handleListAdmins(w http.ResponseWriter, r *http.Request) {
	stats, err := h.duty.ListAdmins(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, adminsResponse{Success: true, Admins: toAdminStats(stats)})
}

func (h *Handler) handleRescan(w http.ResponseWriter, r *http.Request) {
	stats, err := h.duty.Rescan(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, adminsResponse{Success: true, Admins: toAdminStats(stats)})
}

func (h *Handler) handleAddTime(w http.ResponseWriter, r *http.Request) {
	var req correctionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", service.ErrInvalidInput))
		return
	}
	if err := h.duty.AddTime(r.Context(), req.Admin, req.Minutes); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *Handler) handleRemoveTime(w http.ResponseWriter, r *http.Request) {
	var req correctionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", service.ErrInvalidInput))
		return
	}
	if err := h.duty.RemoveTime(r.Context(), req.Admin, req.Minutes); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *Handler) handleRemoveAdmin(w http.ResponseWriter, r *http.Request) {
	var req adminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", service.ErrInvalidInput))
		return
	}
	removed, err := h.duty.RemoveAdmin(r.Context(), req.Admin)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, purgeResponse{Success: true, Removed: removed})
}

func (h *Handler) handleGetBlacklist(w http.ResponseWriter, r *http.Request) {
	names, err := h.duty.ListBlacklist(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blacklistResponse{Success: true, Blacklist: names})
}

func (h *Handler) handleBlacklistAdd(w http.ResponseWriter, r *http.Request) {
	var req adminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", service.ErrInvalidInput))
		return
	}
	names, err := h.duty.Blacklist(r.Context(), req.Admin)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blacklistResponse{Success: true, Blacklist: names})
}

func (h *Handler) handleBlacklistRemove(w http.ResponseWriter, r *http.Request) {
	var req adminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", service.ErrInvalidInput))
		return
	}
	names, err := h.duty.Unblacklist(r.Context(), req.Admin)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blacklistResponse{Success: true, Blacklist: names})
}

func (h *Handler) handleByDate(w http.ResponseWriter, r *http.Request) {
	stats, err := h.duty.ListAdminsByDate(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, adminsResponse{Success: true, Admins: toAdminStats(stats)})
}

func (h *Handler) handleByRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	stats, err := h.duty.ListAdminsByRange(r.Context(), q.Get("from"), q.Get("to"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, adminsResponse{Success: true, Admins: toAdminStats(stats)})
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
