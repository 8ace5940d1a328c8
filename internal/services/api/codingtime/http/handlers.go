// Package http provides http transport for codingtime
package http

import (
	stdhttp "net/http"

	"folio/internal/adapters/fetch/wakatime"
	"folio/internal/modkit/httpkit"
	"folio/internal/services/api/codingtime/domain"
	svc "folio/internal/services/api/codingtime/service"
)

// Register mounts codingtime endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetQuery[domain.StatsInput](r, "/", h.stats)
}

type handlers struct{ svc svc.Service }

// @Summary Coding time stats for a range
// @Tags CodingTime
// @Produce json
// @Param range query string false "last_7_days|last_30_days|last_6_months|last_year"
// @Success 200 {object} domain.CodingStats "ok"
// @Router /wakatime/stats [get]
func (h *handlers) stats(r *stdhttp.Request, in domain.StatsInput) (any, error) {
	rng := in.Range
	if rng == "" {
		rng = wakatime.RangeLast7Days
	}
	return h.svc.Stats(r.Context(), rng)
}
