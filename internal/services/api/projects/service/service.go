// Package service contains projects workflows
package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"folio/internal/adapters/fetch/github"
	perr "folio/internal/platform/errors"
	"folio/internal/platform/logger"
	pstrings "folio/internal/platform/strings"
	"folio/internal/services/api/projects/domain"
)

// Service defines the service contract for projects
type Service interface{ domain.ServicePort }

// Fetcher is the outbound surface the service needs from the GitHub adapter
type Fetcher interface {
	ListUserRepos(ctx context.Context, user, sort string) ([]github.Repo, error)
}

// Svc implements the Service interface
type Svc struct {
	fetch    Fetcher
	username string
	log      logger.Logger
}

// New creates a new projects service
func New(fetch Fetcher, username string) *Svc {
	if fetch == nil {
		panic("projects.Service requires a non nil Fetcher")
	}
	return &Svc{fetch: fetch, username: username, log: *logger.Named("projects")}
}

// Latest returns the count most recently pushed repos as Project views
// rate limits bubble up so the transport can answer 429, everything else
// degrades to an empty list
func (s *Svc) Latest(ctx context.Context, count int) ([]domain.Project, error) {
	repos, err := s.fetch.ListUserRepos(ctx, s.username, "pushed")
	if err != nil {
		if perr.RateLimited(err) {
			return nil, err
		}
		s.log.Warn().Err(err).Str("username", s.username).Msg("github repos failed, serving empty")
		return []domain.Project{}, nil
	}

	own := repos[:0:0]
	for _, r := range repos {
		if r.Fork || r.Archived {
			continue
		}
		own = append(own, r)
	}

	// stable so equal push times keep the upstream order
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].PushedAt.After(own[j].PushedAt)
	})

	out := make([]domain.Project, 0, count)
	for _, r := range pstrings.TopN(own, count) {
		out = append(out, toProject(r))
	}
	return out, nil
}

func toProject(r github.Repo) domain.Project {
	lang := pstrings.OrDefault(r.Language, "Unknown")
	topics := r.Topics
	if topics == nil {
		topics = []string{}
	}
	return domain.Project{
		ID:            strconv.FormatInt(r.ID, 10),
		Name:          r.Name,
		Description:   pstrings.OrDefault(r.Description, "No description available"),
		HTMLURL:       r.HTMLURL,
		Homepage:      r.Homepage,
		Language:      lang,
		LanguageColor: domain.LanguageColor(lang),
		Stars:         r.Stargazers,
		Topics:        topics,
		PushedAt:      r.PushedAt.Format(time.RFC3339),
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     r.UpdatedAt.Format(time.RFC3339),
	}
}
