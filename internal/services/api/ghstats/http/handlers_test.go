package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	perr "folio/internal/platform/errors"
	phttp "folio/internal/platform/net/http"
	"folio/internal/services/api/ghstats/domain"

	"github.com/go-chi/chi/v5"
)

type fakeSvc struct {
	stats domain.Stats
	err   error
}

func (f *fakeSvc) Stats(_ context.Context) (domain.Stats, error) {
	return f.stats, f.err
}

func mount(s *fakeSvc) stdhttp.Handler {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Route("/github/stats", func(rr phttp.Router) {
		Register(rr, s)
	})
	return mux
}

func TestStatsEnvelope(t *testing.T) {
	svc := &fakeSvc{stats: domain.Fallback()}
	h := mount(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/github/stats", nil))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	if !env.Success || env.Data == nil {
		t.Fatalf("envelope = %+v", env)
	}
	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("data = %T", env.Data)
	}
	for _, key := range []string{"totalCommits", "totalRepos", "languageStats", "contributionData", "streakData"} {
		if _, present := data[key]; !present {
			t.Errorf("data missing %q", key)
		}
	}
}

func TestStatsRateLimitEnvelope(t *testing.T) {
	svc := &fakeSvc{err: perr.TooManyf("github rate limited status 403")}
	h := mount(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/github/stats", nil))
	if rec.Code != stdhttp.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	if env.Success || !env.RateLimitExceeded || env.Data != nil {
		t.Fatalf("envelope = %+v", env)
	}
}
