package service

import (
	"context"
	"testing"
	"time"

	"folio/internal/adapters/fetch/github"
	perr "folio/internal/platform/errors"
	"folio/internal/services/api/projects/domain"
)

type fakeFetcher struct {
	repos   []github.Repo
	err     error
	gotSort string
}

func (f *fakeFetcher) ListUserRepos(_ context.Context, _, sort string) ([]github.Repo, error) {
	f.gotSort = sort
	return f.repos, f.err
}

func at(day int) time.Time {
	return time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC)
}

func TestLatestFiltersAndSorts(t *testing.T) {
	fake := &fakeFetcher{repos: []github.Repo{
		{ID: 1, Name: "old", PushedAt: at(1)},
		{ID: 2, Name: "forked", Fork: true, PushedAt: at(9)},
		{ID: 3, Name: "archived", Archived: true, PushedAt: at(9)},
		{ID: 4, Name: "new", PushedAt: at(8)},
		{ID: 5, Name: "mid", PushedAt: at(4)},
	}}
	svc := New(fake, "someone")

	out, err := svc.Latest(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.gotSort != "pushed" {
		t.Fatalf("sort = %q, want pushed", fake.gotSort)
	}
	want := []string{"new", "mid", "old"}
	if len(out) != len(want) {
		t.Fatalf("len = %d, want %d: %v", len(out), len(want), out)
	}
	for i, name := range want {
		if out[i].Name != name {
			t.Fatalf("out[%d] = %q, want %q", i, out[i].Name, name)
		}
	}
}

func TestLatestStableOnTies(t *testing.T) {
	// equal push times keep the upstream order
	fake := &fakeFetcher{repos: []github.Repo{
		{ID: 1, Name: "a", PushedAt: at(5)},
		{ID: 2, Name: "b", PushedAt: at(5)},
		{ID: 3, Name: "c", PushedAt: at(5)},
	}}
	svc := New(fake, "someone")

	out, _ := svc.Latest(context.Background(), 3)
	if out[0].Name != "a" || out[1].Name != "b" || out[2].Name != "c" {
		t.Fatalf("tie order changed: %v", out)
	}
}

func TestLatestTruncatesToCount(t *testing.T) {
	fake := &fakeFetcher{repos: []github.Repo{
		{ID: 1, Name: "a", PushedAt: at(3)},
		{ID: 2, Name: "b", PushedAt: at(2)},
		{ID: 3, Name: "c", PushedAt: at(1)},
	}}
	svc := New(fake, "someone")

	out, _ := svc.Latest(context.Background(), 2)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
}

func TestLatestDefaults(t *testing.T) {
	fake := &fakeFetcher{repos: []github.Repo{
		{ID: 42, Name: "bare", PushedAt: at(1)},
	}}
	svc := New(fake, "someone")

	out, _ := svc.Latest(context.Background(), 1)
	p := out[0]
	if p.ID != "42" {
		t.Fatalf("id = %q", p.ID)
	}
	if p.Description != "No description available" {
		t.Fatalf("description = %q", p.Description)
	}
	if p.Language != "Unknown" {
		t.Fatalf("language = %q", p.Language)
	}
	if p.LanguageColor != domain.LanguageColorFallback {
		t.Fatalf("language color = %q", p.LanguageColor)
	}
	if p.Topics == nil {
		t.Fatal("topics must be empty, not null")
	}
}

func TestLatestRateLimitBubbles(t *testing.T) {
	fake := &fakeFetcher{err: perr.TooManyf("github rate limited status 403")}
	svc := New(fake, "someone")

	_, err := svc.Latest(context.Background(), 3)
	if !perr.RateLimited(err) {
		t.Fatalf("rate limit must bubble, got %v", err)
	}
}

func TestLatestFailSoft(t *testing.T) {
	fake := &fakeFetcher{err: perr.Networkf("dial tcp: refused")}
	svc := New(fake, "someone")

	out, err := svc.Latest(context.Background(), 3)
	if err != nil {
		t.Fatalf("network failures must degrade, got %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("want empty non-nil list, got %v", out)
	}
}
