package service

import (
	"context"
	"testing"

	"folio/internal/adapters/fetch/devto"
	perr "folio/internal/platform/errors"
	"folio/internal/platform/testkit"
)

type fakeFetcher struct {
	articles []devto.Article
	article  devto.Article
	err      error

	gotUser    string
	gotPerPage int
}

func (f *fakeFetcher) Articles(_ context.Context, username string, perPage int) ([]devto.Article, error) {
	f.gotUser = username
	f.gotPerPage = perPage
	return f.articles, f.err
}

func (f *fakeFetcher) Article(_ context.Context, id int) (devto.Article, error) {
	return f.article, f.err
}

func TestListMapsArticles(t *testing.T) {
	fake := &fakeFetcher{articles: []devto.Article{{
		ID:                 7,
		Title:              "Hello",
		PublishedAt:        "2024-01-15T08:30:00Z",
		TagList:            []string{"go", "webdev"},
		ReadingTimeMinutes: 1,
	}}}
	svc := New(fake)

	out, err := svc.List(context.Background(), "ben", 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.gotUser != "ben" || fake.gotPerPage != 6 {
		t.Fatalf("adapter called with %q/%d", fake.gotUser, fake.gotPerPage)
	}
	if len(out) != 1 {
		t.Fatalf("len = %d", len(out))
	}
	p := out[0]
	if p.FormattedDate != "January 15, 2024" {
		t.Fatalf("formatted date = %q", p.FormattedDate)
	}
	if p.ReadingTime != "1 minute read" {
		t.Fatalf("reading time = %q", p.ReadingTime)
	}
	if p.Tags[0] != "Go" || p.Tags[1] != "Webdev" {
		t.Fatalf("tags = %v", p.Tags)
	}
}

func TestListFailSoft(t *testing.T) {
	fake := &fakeFetcher{err: perr.Upstreamf("devto unexpected status 500")}
	svc := New(fake)

	out, err := svc.List(context.Background(), "ben", 6)
	if err != nil {
		t.Fatalf("upstream failures must degrade, got %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("want empty non-nil list, got %v", out)
	}
}

func TestGetMissBecomesNotFound(t *testing.T) {
	fake := &fakeFetcher{err: perr.Upstreamf("devto unexpected status 500")}
	svc := New(fake)

	_, err := svc.Get(context.Background(), 7)
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("code = %d, want not found", perr.CodeOf(err))
	}
}

func TestNewRequiresFetcher(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil) })
}
