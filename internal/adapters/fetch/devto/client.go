// Package devto provides a small dev.to REST client for folio
package devto

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	perr "folio/internal/platform/errors"
	"folio/internal/platform/logger"
	pnet "folio/internal/platform/net"

	"github.com/google/uuid"
)

const (
	baseURLDefault = "https://dev.to/api"
	defaultTimeout = 10 * time.Second
	defaultUA      = "folio-api"
	maxBody        = 1 << 20
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// APIKey is optional, public articles do not require one
	APIKey string
}

// Client is a minimal dev.to REST client
// every call is a single attempt, freshness is the CDN's problem not ours
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
		log:  *logger.Named("devto"),
	}
}

// get issues a single GET and decodes a 200 body into out
func (c *Client) get(ctx context.Context, path string, out any) error {
	url := c.opts.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "devto new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID(ctx))
	if c.opts.APIKey != "" {
		req.Header.Set("api-key", c.opts.APIKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Networkf("devto get %s failed: %v", path, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("devto close body failed")
		}
	}()

	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("devto http response")

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusForbidden:
		return perr.TooManyf("devto rate limited status %d", resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return perr.NotFoundf("devto %s not found", path)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return perr.Upstreamf("devto unexpected status %d body %s", resp.StatusCode, string(body))
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeNetwork, "devto read body failed")
	}
	if err := json.Unmarshal(b, out); err != nil {
		return perr.Decodef("devto decode %s failed: %v", path, err)
	}
	return nil
}

// Articles lists published articles for a username, newest first
func (c *Client) Articles(ctx context.Context, username string, perPage int) ([]Article, error) {
	q := url.Values{}
	q.Set("username", username)
	q.Set("per_page", strconv.Itoa(perPage))
	path := "/articles?" + q.Encode()
	var out []Article
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Article fetches a single article by numeric id
func (c *Client) Article(ctx context.Context, id int) (Article, error) {
	path := fmt.Sprintf("/articles/%d", id)
	var out articleDetail
	if err := c.get(ctx, path, &out); err != nil {
		return Article{}, err
	}
	return out.toArticle(), nil
}

// requestID prefers the inbound correlation id, falling back to a fresh uuid
func requestID(ctx context.Context) string {
	if id := pnet.RequestID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
