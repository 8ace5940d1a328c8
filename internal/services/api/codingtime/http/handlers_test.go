package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"folio/internal/adapters/fetch/wakatime"
	phttp "folio/internal/platform/net/http"
	"folio/internal/services/api/codingtime/domain"

	"github.com/go-chi/chi/v5"
)

type fakeSvc struct {
	stats  domain.CodingStats
	err    error
	gotRng string
}

func (f *fakeSvc) Stats(_ context.Context, rng string) (domain.CodingStats, error) {
	f.gotRng = rng
	return f.stats, f.err
}

func mount(s *fakeSvc) stdhttp.Handler {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Route("/wakatime/stats", func(rr phttp.Router) {
		Register(rr, s)
	})
	return mux
}

func do(t *testing.T, h stdhttp.Handler, target string) (*httptest.ResponseRecorder, phttp.Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, target, nil))
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v\n%s", err, rec.Body.String())
	}
	return rec, env
}

func TestStatsDefaultsRange(t *testing.T) {
	svc := &fakeSvc{}
	h := mount(svc)
	rec, env := do(t, h, "/wakatime/stats")

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if !env.Success {
		t.Fatal("success must be true")
	}
	if svc.gotRng != wakatime.RangeLast7Days {
		t.Fatalf("range = %q, want default", svc.gotRng)
	}
}

func TestStatsAcceptsKnownRanges(t *testing.T) {
	for _, rng := range []string{
		wakatime.RangeLast7Days,
		wakatime.RangeLast30Days,
		wakatime.RangeLast6Months,
		wakatime.RangeLastYear,
	} {
		svc := &fakeSvc{}
		h := mount(svc)
		rec, _ := do(t, h, "/wakatime/stats?range="+rng)
		if rec.Code != stdhttp.StatusOK {
			t.Fatalf("%s: status = %d", rng, rec.Code)
		}
		if svc.gotRng != rng {
			t.Fatalf("range = %q, want %q", svc.gotRng, rng)
		}
	}
}

func TestStatsRejectsUnknownRange(t *testing.T) {
	svc := &fakeSvc{}
	h := mount(svc)
	rec, env := do(t, h, "/wakatime/stats?range=yesterday")

	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Success {
		t.Fatal("success must be false")
	}
	if svc.gotRng != "" {
		t.Fatal("service must not be called on invalid range")
	}
}
