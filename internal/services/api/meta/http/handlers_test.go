package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "folio/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func mount(d Deps) stdhttp.Handler {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Route("/meta", func(rr phttp.Router) {
		Register(rr, d)
	})
	return mux
}

func get(t *testing.T, h stdhttp.Handler, target string) (*httptest.ResponseRecorder, phttp.Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, target, nil))
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v\n%s", err, rec.Body.String())
	}
	return rec, env
}

func decodeData[T any](t *testing.T, env phttp.Envelope) T {
	t.Helper()
	raw, err := json.Marshal(env.Data)
	if err != nil {
		t.Fatalf("remarshal data: %v", err)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	return out
}

func TestHealth(t *testing.T) {
	h := mount(Deps{ServiceName: "folio-api", StartedAt: time.Now().Add(-time.Minute)})
	rec, env := get(t, h, "/meta/health")

	if rec.Code != stdhttp.StatusOK || !env.Success {
		t.Fatalf("status = %d success = %v", rec.Code, env.Success)
	}
	body := decodeData[HealthResponse](t, env)
	if !body.OK || body.Service != "folio-api" {
		t.Fatalf("health = %+v", body)
	}
}

func TestReadyAllConfigured(t *testing.T) {
	h := mount(Deps{
		ServiceName: "folio-api",
		StartedAt:   time.Now(),
		Upstreams: []Upstream{
			{Name: "devto", Configured: true},
			{Name: "github", Configured: true},
		},
	})
	rec, env := get(t, h, "/meta/ready")

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeData[ReadyResponse](t, env)
	if body.Status != "ok" || len(body.Checks) != 2 {
		t.Fatalf("ready = %+v", body)
	}
}

func TestReadyDegradedWhenUpstreamUnconfigured(t *testing.T) {
	h := mount(Deps{
		ServiceName: "folio-api",
		StartedAt:   time.Now(),
		Upstreams: []Upstream{
			{Name: "github", Configured: true},
			{Name: "wakatime", Configured: false},
		},
	})
	_, env := get(t, h, "/meta/ready")

	body := decodeData[ReadyResponse](t, env)
	if body.Status != "degraded" {
		t.Fatalf("status = %q, want degraded", body.Status)
	}
	for _, c := range body.Checks {
		if c.Name == "wakatime" && c.Status != "skipped" {
			t.Fatalf("wakatime check = %+v", c)
		}
	}
}

func TestServiceUptime(t *testing.T) {
	h := mount(Deps{ServiceName: "folio-api", StartedAt: time.Now().Add(-90 * time.Second)})
	_, env := get(t, h, "/meta/service")

	body := decodeData[ServiceResponse](t, env)
	if body.Name != "folio-api" || body.Uptime < 90 {
		t.Fatalf("service = %+v", body)
	}
}
