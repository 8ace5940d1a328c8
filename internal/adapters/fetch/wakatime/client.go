// Package wakatime provides a WakaTime stats client for folio
package wakatime

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	perr "folio/internal/platform/errors"
	"folio/internal/platform/logger"
	pnet "folio/internal/platform/net"
	pstrings "folio/internal/platform/strings"

	"github.com/google/uuid"
)

const (
	baseURLDefault = "https://wakatime.com/api/v1"
	defaultTimeout = 10 * time.Second
	defaultUA      = "folio-api"
	maxBody        = 1 << 20
)

// Range values accepted by the stats endpoint
const (
	RangeLast7Days   = "last_7_days"
	RangeLast30Days  = "last_30_days"
	RangeLast6Months = "last_6_months"
	RangeLastYear    = "last_year"
)

// ValidRange reports whether r is one of the accepted stats ranges
func ValidRange(r string) bool {
	switch r {
	case RangeLast7Days, RangeLast30Days, RangeLast6Months, RangeLastYear:
		return true
	}
	return false
}

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// APIKey is required, stats are private to the account
	APIKey string
}

// Client is a minimal WakaTime REST client
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
		log:  *logger.Named("wakatime"),
	}
}

// Configured reports whether an API key is present
func (c *Client) Configured() bool { return c.opts.APIKey != "" }

// Stats fetches aggregate coding stats for the current user over rng
// a missing key fails before any network traffic happens
func (c *Client) Stats(ctx context.Context, rng string) (*Stats, error) {
	if c.opts.APIKey == "" {
		return nil, perr.Configf("wakatime api key is not configured")
	}
	if !ValidRange(rng) {
		return nil, perr.InvalidArgf("wakatime range %q is not supported", rng)
	}

	path := fmt.Sprintf("/users/current/stats/%s", rng)
	url := c.opts.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "wakatime new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID(ctx))
	req.Header.Set(
		"Authorization",
		"Basic "+base64.StdEncoding.EncodeToString([]byte(c.opts.APIKey)),
	)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Networkf("wakatime get %s failed: %v", path, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("wakatime close body failed")
		}
	}()

	// key prefix only, never the whole credential
	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Str("key_prefix", pstrings.Truncate(c.opts.APIKey, 6)).
		Msg("wakatime http response")

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, perr.TooManyf("wakatime rate limited status %d", resp.StatusCode)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, perr.Upstreamf("wakatime auth rejected status %d", resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, perr.Upstreamf("wakatime unexpected status %d body %s", resp.StatusCode, string(body))
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeNetwork, "wakatime read body failed")
	}
	var env statsEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, perr.Decodef("wakatime decode %s failed: %v", path, err)
	}
	return &env.Data, nil
}

// requestID prefers the inbound correlation id, falling back to a fresh uuid
func requestID(ctx context.Context) string {
	if id := pnet.RequestID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
