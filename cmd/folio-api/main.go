// @title         Folio API
// @version       0.1.0
// @description   Read only aggregation endpoints for portfolio data

package main

import (
	"context"

	"folio/internal/adapters/fetch/devto"
	"folio/internal/adapters/fetch/github"
	"folio/internal/adapters/fetch/wakatime"
	"folio/internal/platform/config"
	"folio/internal/platform/logger"
	phttp "folio/internal/platform/net/http"

	"folio/internal/services/api"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	env := apiCfg.MayString("ENV", "production")
	phttp.SetVerboseErrors(env == "development")

	// outbound clients, base URLs are overridable for tests and proxies
	blog := devto.NewClient(devto.Options{
		BaseURL: root.MayString("DEVTO_BASE_URL", ""),
		APIKey:  root.MayString("DEVTO_API_KEY", ""),
	})
	code := github.NewClient(github.Options{
		BaseURL: root.MayString("GITHUB_BASE_URL", ""),
		Token:   root.MayString("GITHUB_TOKEN", ""),
	})
	tracker := wakatime.NewClient(wakatime.Options{
		BaseURL: root.MayString("WAKATIME_BASE_URL", ""),
		APIKey:  root.MayString("WAKATIME_API_KEY", ""),
	})

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Logger:         l,
			Blog:           blog,
			Code:           code,
			Time:           tracker,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
