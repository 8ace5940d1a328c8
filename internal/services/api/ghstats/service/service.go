// Package service contains the GitHub stats aggregation workflow
package service

import (
	"context"
	"sort"
	"time"

	"folio/internal/adapters/fetch/github"
	"folio/internal/core/contrib"
	"folio/internal/platform/logger"
	"folio/internal/services/api/ghstats/domain"
)

const (
	// languageRepoLimit caps per-repo language fetches to stay under quota
	languageRepoLimit = 20
	// activityRepoLimit caps per-repo commit activity fetches
	activityRepoLimit = 10
	// topLanguages is how many languages survive the byte ranking
	topLanguages = 8
)

// Service defines the service contract for ghstats
type Service interface{ domain.ServicePort }

// Fetcher is the outbound surface the service needs from the GitHub adapter
type Fetcher interface {
	ListUserRepos(ctx context.Context, user, sort string) ([]github.Repo, error)
	RepoLanguages(ctx context.Context, owner, name string) (map[string]int64, error)
	CommitActivity(ctx context.Context, owner, name string) ([]github.WeeklyActivity, error)
}

// Svc implements the Service interface
type Svc struct {
	fetch    Fetcher
	username string
	log      logger.Logger
	now      func() time.Time
}

// New creates a new ghstats service
func New(fetch Fetcher, username string) *Svc {
	if fetch == nil {
		panic("ghstats.Service requires a non nil Fetcher")
	}
	return &Svc{
		fetch:    fetch,
		username: username,
		log:      *logger.Named("ghstats"),
		now:      time.Now,
	}
}

// Stats aggregates repos, languages, and commit activity into one document
// per-repo failures are skipped, a dead repo listing falls back to the
// static stats so the section always renders
func (s *Svc) Stats(ctx context.Context) (domain.Stats, error) {
	repos, err := s.fetch.ListUserRepos(ctx, s.username, "updated")
	if err != nil {
		s.log.Warn().Err(err).Str("username", s.username).Msg("github repos failed, serving fallback stats")
		return domain.Fallback(), nil
	}

	own := repos[:0:0]
	for _, r := range repos {
		if r.Fork {
			continue
		}
		own = append(own, r)
	}

	langs := s.languageStats(ctx, own)
	activity := s.commitActivity(ctx, own)

	total := 0
	for _, w := range activity {
		total += w.Total
	}

	calendar := contrib.Calendar(s.now(), activity)

	return domain.Stats{
		TotalCommits:     total,
		TotalRepos:       len(own),
		LanguageStats:    langs,
		ContributionData: calendar,
		StreakData:       contrib.CalcStreaks(calendar),
	}, nil
}

// languageStats sums language bytes across the first languageRepoLimit repos
// and keeps the topLanguages biggest with whole-number percentages
func (s *Svc) languageStats(ctx context.Context, repos []github.Repo) []domain.LanguageStat {
	byLang := map[string]int64{}
	for i, r := range repos {
		if i >= languageRepoLimit {
			break
		}
		langs, err := s.fetch.RepoLanguages(ctx, s.username, r.Name)
		if err != nil {
			s.log.Debug().Err(err).Str("repo", r.Name).Msg("languages fetch skipped")
			continue
		}
		for name, bytes := range langs {
			byLang[name] += bytes
		}
	}

	var totalBytes int64
	for _, b := range byLang {
		totalBytes += b
	}

	out := make([]domain.LanguageStat, 0, len(byLang))
	for name, bytes := range byLang {
		pct := 0
		if totalBytes > 0 {
			pct = int(float64(bytes)/float64(totalBytes)*100 + 0.5)
		}
		out = append(out, domain.LanguageStat{Name: name, Bytes: bytes, Percentage: pct})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Bytes != out[j].Bytes {
			return out[i].Bytes > out[j].Bytes
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > topLanguages {
		out = out[:topLanguages]
	}
	return out
}

// commitActivity collects weekly rows for the first activityRepoLimit repos
func (s *Svc) commitActivity(ctx context.Context, repos []github.Repo) []contrib.Weekly {
	var out []contrib.Weekly
	for i, r := range repos {
		if i >= activityRepoLimit {
			break
		}
		rows, err := s.fetch.CommitActivity(ctx, s.username, r.Name)
		if err != nil {
			s.log.Debug().Err(err).Str("repo", r.Name).Msg("commit activity fetch skipped")
			continue
		}
		for _, w := range rows {
			out = append(out, contrib.Weekly{Week: w.Week, Total: w.Total, Days: w.Days})
		}
	}
	return out
}
