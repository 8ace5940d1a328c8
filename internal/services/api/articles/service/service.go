// Package service contains articles workflows
package service

import (
	"context"

	"folio/internal/adapters/fetch/devto"
	perr "folio/internal/platform/errors"
	"folio/internal/platform/logger"
	"folio/internal/services/api/articles/domain"
)

// Service defines the service contract for articles
type Service interface{ domain.ServicePort }

// Fetcher is the outbound surface the service needs from the dev.to adapter
type Fetcher interface {
	Articles(ctx context.Context, username string, perPage int) ([]devto.Article, error)
	Article(ctx context.Context, id int) (devto.Article, error)
}

// Svc implements the Service interface
type Svc struct {
	fetch Fetcher
	log   logger.Logger
}

// New creates a new articles service
func New(fetch Fetcher) *Svc {
	if fetch == nil {
		panic("articles.Service requires a non nil Fetcher")
	}
	return &Svc{fetch: fetch, log: *logger.Named("articles")}
}

// List fetches published articles for a username
// upstream failures degrade to an empty list so the blog section renders
// empty instead of erroring the whole page
func (s *Svc) List(ctx context.Context, username string, perPage int) ([]domain.BlogPost, error) {
	rows, err := s.fetch.Articles(ctx, username, perPage)
	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("devto list failed, serving empty")
		return []domain.BlogPost{}, nil
	}
	out := make([]domain.BlogPost, 0, len(rows))
	for _, a := range rows {
		out = append(out, toBlogPost(a))
	}
	return out, nil
}

// Get fetches a single article by id, a miss is a hard 404
func (s *Svc) Get(ctx context.Context, id int) (domain.BlogPost, error) {
	a, err := s.fetch.Article(ctx, id)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.BlogPost{}, err
		}
		return domain.BlogPost{}, perr.Wrapf(err, perr.ErrorCodeNotFound, "article %d not found", id)
	}
	return toBlogPost(a), nil
}

func toBlogPost(a devto.Article) domain.BlogPost {
	tags := make([]string, 0, len(a.TagList))
	for _, t := range a.TagList {
		tags = append(tags, domain.TagTitle(t))
	}
	return domain.BlogPost{
		ID:            a.ID,
		Title:         a.Title,
		Description:   a.Description,
		URL:           a.URL,
		CoverImage:    a.CoverImage,
		PublishedAt:   a.PublishedAt,
		FormattedDate: domain.FormatDate(a.PublishedAt),
		Tags:          tags,
		ReadingTime:   domain.ReadingTime(a.ReadingTimeMinutes),
		Reactions:     a.Reactions,
		Comments:      a.Comments,
	}
}
