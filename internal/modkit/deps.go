// Package modkit provides module wiring and core deps
package modkit

import (
	"folio/internal/adapters/fetch/devto"
	"folio/internal/adapters/fetch/github"
	"folio/internal/adapters/fetch/wakatime"
	"folio/internal/platform/config"
	"folio/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log  logger.Logger
	Cfg  config.Conf
	Blog *devto.Client
	Code *github.Client
	Time *wakatime.Client
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional clients
func (d Deps) ZeroOK() bool { return true }
