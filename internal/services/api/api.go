// Package api provides the HTTP API for the application
package api

import (
	"folio/internal/adapters/fetch/devto"
	"folio/internal/adapters/fetch/github"
	"folio/internal/adapters/fetch/wakatime"
	"folio/internal/platform/config"
	"folio/internal/platform/logger"
	phttp "folio/internal/platform/net/http"

	"folio/internal/modkit"
	"folio/internal/modkit/httpkit"
	"folio/internal/modkit/module"
	"folio/internal/modkit/swaggerkit"

	articlesmod "folio/internal/services/api/articles/module"
	codingtimemod "folio/internal/services/api/codingtime/module"
	ghstatsmod "folio/internal/services/api/ghstats/module"
	metamod "folio/internal/services/api/meta/module"
	projectsmod "folio/internal/services/api/projects/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Blog           *devto.Client
	Code           *github.Client
	Time           *wakatime.Client
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:  opt.Config,
		Blog: opt.Blog,
		Code: opt.Code,
		Time: opt.Time,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	} else {
		deps.Log = *logger.Get()
	}

	mods := []module.Module{
		metamod.New(deps),
		articlesmod.New(deps),
		projectsmod.New(deps),
		ghstatsmod.New(deps),
		codingtimemod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
