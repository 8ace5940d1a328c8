// Package http provides http transport for articles
package http

import (
	stdhttp "net/http"
	"strconv"

	"folio/internal/modkit/httpkit"
	perr "folio/internal/platform/errors"
	"folio/internal/services/api/articles/domain"
	svc "folio/internal/services/api/articles/service"
)

const (
	perPageDefault = 6
	perPageMax     = 6
)

// Register mounts articles endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetQuery[domain.ArticlesInput](r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
}

type handlers struct{ svc svc.Service }

// @Summary Latest dev.to articles for a user
// @Tags Articles
// @Produce json
// @Param username query string true "dev.to username"
// @Param per_page query int false "page size, 1-6"
// @Success 200 {array} domain.BlogPost "ok"
// @Router /devto/articles [get]
func (h *handlers) list(r *stdhttp.Request, in domain.ArticlesInput) (any, error) {
	if in.Username == "" {
		return nil, perr.New(perr.ErrorCodeValidation, "Username is required")
	}
	perPage := httpkit.ClampInt(in.PerPage, perPageDefault, perPageMax)

	posts, err := h.svc.List(r.Context(), in.Username, perPage)
	if err != nil {
		return nil, err
	}
	return httpkit.OKCount(posts, len(posts)), nil
}

// @Summary Single dev.to article by id
// @Tags Articles
// @Produce json
// @Param id path int true "article id"
// @Success 200 {object} domain.BlogPost "ok"
// @Router /devto/articles/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := strconv.Atoi(httpkit.Param(r, "id"))
	if err != nil || id <= 0 {
		return nil, perr.InvalidArgf("article id must be a positive integer")
	}
	return h.svc.Get(r.Context(), id)
}
