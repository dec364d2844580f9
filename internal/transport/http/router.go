package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires all public endpoints. The transport stays thin: handlers
// decode input, delegate to the service, and map errors to JSON envelopes.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/admins", h.handleListAdmins)
	r.Post("/rescan", h.handleRescan)

	r.Post("/admins/add-time", h.handleAddTime)
	r.Post("/admins/remove-time", h.handleRemoveTime)
	r.Post("/admins/remove-admin", h.handleRemoveAdmin)

	r.Get("/admins/blacklist", h.handleGetBlacklist)
	r.Post("/admins/blacklist", h.handleBlacklistAdd)
	r.Post("/admins/unblacklist", h.handleBlacklistRemove)

	r.Get("/admins/bydate/{date}", h.handleByDate)
	r.Get("/admins/range", h.handleByRange)

	r.Get("/healthz", h.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
