// Package service contains codingtime workflows
package service

import (
	"context"

	"folio/internal/adapters/fetch/wakatime"
	perr "folio/internal/platform/errors"
	"folio/internal/platform/logger"
	"folio/internal/services/api/codingtime/domain"
)

// Service defines the service contract for codingtime
type Service interface{ domain.ServicePort }

// Fetcher is the outbound surface the service needs from the WakaTime adapter
type Fetcher interface {
	Stats(ctx context.Context, rng string) (*wakatime.Stats, error)
}

// Svc implements the Service interface
type Svc struct {
	fetch Fetcher
	log   logger.Logger
}

// New creates a new codingtime service
func New(fetch Fetcher) *Svc {
	if fetch == nil {
		panic("codingtime.Service requires a non nil Fetcher")
	}
	return &Svc{fetch: fetch, log: *logger.Named("codingtime")}
}

// Stats fetches coding time for the range
// unlike the fail-soft list endpoints this one hard-fails, an empty stats
// card is worse than an honest error on the dashboard
func (s *Svc) Stats(ctx context.Context, rng string) (domain.CodingStats, error) {
	stats, err := s.fetch.Stats(ctx, rng)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeConfig) || perr.RateLimited(err) {
			return domain.CodingStats{}, err
		}
		s.log.Warn().Err(err).Str("range", rng).Msg("wakatime stats failed")
		return domain.CodingStats{}, perr.Wrapf(
			err, perr.ErrorCodeUpstream, "Failed to fetch WakaTime stats",
		)
	}
	if stats == nil {
		return domain.CodingStats{}, perr.Upstreamf("Failed to fetch WakaTime stats")
	}
	return toCodingStats(rng, stats), nil
}

func toCodingStats(rng string, s *wakatime.Stats) domain.CodingStats {
	out := domain.CodingStats{
		Range:            rng,
		TotalSeconds:     s.TotalSeconds,
		TotalTime:        domain.TotalTime(s.HumanReadableTotal),
		DailyAverage:     s.DailyAverage,
		TodayTime:        domain.TodayTime(s.HumanReadableDailyAverage),
		Languages:        toBreakdowns(s.Languages),
		Editors:          toBreakdowns(s.Editors),
		OperatingSystems: toBreakdowns(s.OperatingSystems),
	}
	if s.BestDay != nil {
		out.BestDay = &domain.BestDay{
			Date:         s.BestDay.Date,
			TotalSeconds: s.BestDay.TotalSeconds,
			Text:         s.BestDay.Text,
		}
	}
	return out
}

func toBreakdowns(items []wakatime.StatItem) []domain.Breakdown {
	out := make([]domain.Breakdown, 0, len(items))
	for _, it := range items {
		text := it.Text
		if text == "" {
			text = domain.FormatSeconds(it.TotalSeconds)
		}
		out = append(out, domain.Breakdown{
			Name:         it.Name,
			TotalSeconds: it.TotalSeconds,
			Percent:      it.Percent,
			Text:         text,
		})
	}
	return out
}
