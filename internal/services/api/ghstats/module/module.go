// Package module wires ghstats into the API using modkit
package module

import (
	"net/http"

	modkit "folio/internal/modkit"
	"folio/internal/modkit/httpkit"
	str "folio/internal/platform/strings"
	ghstatshttp "folio/internal/services/api/ghstats/http"
	ghstatssvc "folio/internal/services/api/ghstats/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc ghstatssvc.Service
}

// New constructs a ghstats module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("ghstats"), modkit.WithPrefix("/github/stats")},
		opts...,
	)...)

	username := deps.Cfg.MayString("GITHUB_USERNAME", "")
	svc := ghstatssvc.New(deps.Code, username)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = struct{ Svc ghstatssvc.Service }{Svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		ghstatshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports returns the module port set
func (m *Module) Ports() any { return m.ports }
