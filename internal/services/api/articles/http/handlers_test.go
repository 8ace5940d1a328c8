package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	phttp "folio/internal/platform/net/http"
	"folio/internal/services/api/articles/domain"

	"github.com/go-chi/chi/v5"
)

type fakeSvc struct {
	posts      []domain.BlogPost
	post       domain.BlogPost
	err        error
	gotPerPage int
}

func (f *fakeSvc) List(_ context.Context, username string, perPage int) ([]domain.BlogPost, error) {
	f.gotPerPage = perPage
	return f.posts, f.err
}

func (f *fakeSvc) Get(_ context.Context, id int) (domain.BlogPost, error) {
	return f.post, f.err
}

func mount(s *fakeSvc) stdhttp.Handler {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Route("/devto/articles", func(rr phttp.Router) {
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

func TestListRequiresUsername(t *testing.T) {
	h := mount(&fakeSvc{})
	rec, env := do(t, h, "/devto/articles")

	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Success {
		t.Fatal("success must be false")
	}
	if env.Error != "Username is required" {
		t.Fatalf("error = %q", env.Error)
	}
	if env.Data != nil {
		t.Fatalf("data = %v, want null", env.Data)
	}
}

func TestListEnvelopeAndCount(t *testing.T) {
	svc := &fakeSvc{posts: []domain.BlogPost{{ID: 1}, {ID: 2}}}
	h := mount(svc)
	rec, env := do(t, h, "/devto/articles?username=ben")

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !env.Success {
		t.Fatalf("success = false: %s", rec.Body.String())
	}
	if env.Count == nil || *env.Count != 2 {
		t.Fatalf("count = %v, want 2", env.Count)
	}
	if env.Error != "" {
		t.Fatalf("error = %q, want empty", env.Error)
	}
}

func TestListClampsPerPage(t *testing.T) {
	cases := []struct {
		query string
		want  int
	}{
		{"per_page=3", 3},
		{"per_page=50", 6},
		{"per_page=0", 6},
		{"per_page=abc", 6},
		{"per_page=-1", 1},
		{"", 6},
	}
	for _, tc := range cases {
		svc := &fakeSvc{posts: []domain.BlogPost{}}
		h := mount(svc)
		target := "/devto/articles?username=ben"
		if tc.query != "" {
			target += "&" + tc.query
		}
		rec, _ := do(t, h, target)
		if rec.Code != stdhttp.StatusOK {
			t.Fatalf("%q: status = %d", tc.query, rec.Code)
		}
		if svc.gotPerPage != tc.want {
			t.Errorf("%q: per_page = %d, want %d", tc.query, svc.gotPerPage, tc.want)
		}
	}
}

func TestGetRejectsBadID(t *testing.T) {
	h := mount(&fakeSvc{})
	rec, env := do(t, h, "/devto/articles/banana")

	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Success {
		t.Fatal("success must be false")
	}
}
