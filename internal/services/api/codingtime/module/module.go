// Package module wires codingtime into the API using modkit
package module

import (
	"net/http"

	modkit "folio/internal/modkit"
	"folio/internal/modkit/httpkit"
	str "folio/internal/platform/strings"
	codingtimehttp "folio/internal/services/api/codingtime/http"
	codingtimesvc "folio/internal/services/api/codingtime/service"
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

	svc codingtimesvc.Service
}

// New constructs a codingtime module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("codingtime"), modkit.WithPrefix("/wakatime/stats")},
		opts...,
	)...)

	svc := codingtimesvc.New(deps.Time)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = struct{ Svc codingtimesvc.Service }{Svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		codingtimehttp.Register(r, m.svc)
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
