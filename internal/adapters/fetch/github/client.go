// Package github provides a GitHub REST v3 client for folio
package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "folio/internal/platform/errors"
	"folio/internal/platform/logger"
	pnet "folio/internal/platform/net"

	"github.com/google/uuid"
)

const (
	baseURLDefault = "https://api.github.com"
	defaultTimeout = 10 * time.Second
	defaultUA      = "folio-api"
	maxBody        = 1 << 20
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Token is a PAT, empty means tokenless which is very low quota
	Token string
}

// Client is a minimal GitHub REST client
// no retry loop here: a miss surfaces as a typed error and the caller
// decides between fail-soft data and a hard failure
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("github"),
	}
}

// do issues a single GET and hands back the raw response for 2xx statuses
func (c *Client) do(ctx context.Context, path string) (*http.Response, error) {
	url := c.opts.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "github new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-Request-ID", requestID(ctx))
	if c.opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.Token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Networkf("github get %s failed: %v", path, err)
	}

	rem := resp.Header.Get("X-RateLimit-Remaining")
	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Str("rate_remaining", rem).
		Msg("github http response")

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return resp, nil
	case http.StatusTooManyRequests, http.StatusForbidden:
		_ = drainAndClose(resp.Body)
		return nil, perr.TooManyf("github rate limited status %d", resp.StatusCode)
	case http.StatusNotFound:
		_ = drainAndClose(resp.Body)
		return nil, perr.NotFoundf("github %s not found", path)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		_ = resp.Body.Close()
		return nil, perr.Upstreamf("github unexpected status %d body %s", resp.StatusCode, string(body))
	}
}

// getJSON runs do and decodes the body into out
// accepted reports a 202, the caller decides what an in-progress answer means
func (c *Client) getJSON(ctx context.Context, path string, out any) (accepted bool, err error) {
	resp, err := c.do(ctx, path)
	if err != nil {
		return false, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()

	if resp.StatusCode == http.StatusAccepted {
		return true, nil
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return false, perr.Wrapf(err, perr.ErrorCodeNetwork, "github read body failed")
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, perr.Decodef("github decode %s failed: %v", path, err)
	}
	return false, nil
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}

// requestID prefers the inbound correlation id, falling back to a fresh uuid
func requestID(ctx context.Context) string {
	if id := pnet.RequestID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
