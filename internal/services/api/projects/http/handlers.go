// Package http provides http transport for projects
package http

import (
	stdhttp "net/http"

	"folio/internal/modkit/httpkit"
	"folio/internal/services/api/projects/domain"
	svc "folio/internal/services/api/projects/service"
)

const (
	countDefault = 3
	countMax     = 10
)

// Register mounts projects endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetQuery[domain.ProjectsInput](r, "/", h.latest)
}

type handlers struct{ svc svc.Service }

// @Summary Latest GitHub projects
// @Tags Projects
// @Produce json
// @Param count query int false "number of projects, 1-10"
// @Success 200 {array} domain.Project "ok"
// @Router /github/projects [get]
func (h *handlers) latest(r *stdhttp.Request, in domain.ProjectsInput) (any, error) {
	count := httpkit.ClampInt(in.Count, countDefault, countMax)

	projects, err := h.svc.Latest(r.Context(), count)
	if err != nil {
		return nil, err
	}
	return httpkit.OKCount(projects, len(projects)), nil
}
