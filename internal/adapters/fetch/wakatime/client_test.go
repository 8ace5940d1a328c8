package wakatime

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "folio/internal/platform/errors"
)

func TestMissingKeyFailsBeforeNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("no request may leave the client without a key")
	}))
	defer srv.Close()
	c := NewClient(Options{BaseURL: srv.URL})

	if c.Configured() {
		t.Fatal("Configured() must be false without a key")
	}
	_, err := c.Stats(context.Background(), RangeLast7Days)
	if !perr.IsCode(err, perr.ErrorCodeConfig) {
		t.Fatalf("code = %d, want config", perr.CodeOf(err))
	}
}

func TestInvalidRangeFailsBeforeNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("no request may leave the client for a bad range")
	}))
	defer srv.Close()
	c := NewClient(Options{BaseURL: srv.URL, APIKey: "waka_key"})

	_, err := c.Stats(context.Background(), "yesterday")
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("code = %d, want invalid argument", perr.CodeOf(err))
	}
}

func TestStatsDecodesEnvelope(t *testing.T) {
	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("waka_key"))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/current/stats/last_30_days" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != wantAuth {
			t.Errorf("authorization = %q", r.Header.Get("Authorization"))
		}
		_, _ = w.Write([]byte(`{"data": {
			"total_seconds": 19800,
			"human_readable_total": "5 hrs 30 mins",
			"daily_average": 2800,
			"range": "last_30_days",
			"languages": [{"name": "Go", "total_seconds": 10000, "percent": 50.5, "text": "2 hrs"}],
			"best_day": {"date": "2025-06-10", "total_seconds": 7200, "text": "2 hrs"}
		}}`))
	}))
	defer srv.Close()
	c := NewClient(Options{BaseURL: srv.URL, APIKey: "waka_key"})

	stats, err := c.Stats(context.Background(), RangeLast30Days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalSeconds != 19800 || stats.HumanReadableTotal != "5 hrs 30 mins" {
		t.Fatalf("stats = %+v", stats)
	}
	if len(stats.Languages) != 1 || stats.Languages[0].Name != "Go" {
		t.Fatalf("languages = %+v", stats.Languages)
	}
	if stats.BestDay == nil || stats.BestDay.Date != "2025-06-10" {
		t.Fatalf("best day = %+v", stats.BestDay)
	}
}

func TestErrorTranslation(t *testing.T) {
	cases := []struct {
		status int
		code   perr.ErrorCode
	}{
		{http.StatusTooManyRequests, perr.ErrorCodeTooManyRequests},
		{http.StatusUnauthorized, perr.ErrorCodeUpstream},
		{http.StatusForbidden, perr.ErrorCodeUpstream},
		{http.StatusInternalServerError, perr.ErrorCodeUpstream},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		}))
		c := NewClient(Options{BaseURL: srv.URL, APIKey: "waka_key"})
		_, err := c.Stats(context.Background(), RangeLast7Days)
		srv.Close()
		if !perr.IsCode(err, tc.code) {
			t.Errorf("status %d: code = %d, want %d", tc.status, perr.CodeOf(err), tc.code)
		}
	}
}

func TestBadJSONIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": `))
	}))
	defer srv.Close()
	c := NewClient(Options{BaseURL: srv.URL, APIKey: "waka_key"})

	_, err := c.Stats(context.Background(), RangeLast7Days)
	if !perr.IsCode(err, perr.ErrorCodeDecode) {
		t.Fatalf("code = %d, want decode", perr.CodeOf(err))
	}
}
