// Package http provides http transport for ghstats
package http

import (
	stdhttp "net/http"

	"folio/internal/modkit/httpkit"
	svc "folio/internal/services/api/ghstats/service"
)

// Register mounts ghstats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.stats)
}

type handlers struct{ svc svc.Service }

// @Summary Aggregate GitHub activity stats
// @Tags Stats
// @Produce json
// @Success 200 {object} domain.Stats "ok"
// @Router /github/stats [get]
func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	return h.svc.Stats(r.Context())
}
