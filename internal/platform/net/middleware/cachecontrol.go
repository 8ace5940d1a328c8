package middleware

import (
	"fmt"
	"net/http"
)

// CachePolicy is the (maxAge, staleWhileRevalidate) pair attached to
// successful responses. Values are seconds. It is advisory metadata for
// CDNs and shared caches only and never influences control flow here
type CachePolicy struct {
	MaxAge               int
	StaleWhileRevalidate int
}

// DefaultCachePolicy is one hour fresh with a day of stale grace
var DefaultCachePolicy = CachePolicy{MaxAge: 3600, StaleWhileRevalidate: 86400}

// Header renders the Cache-Control value for the policy
func (p CachePolicy) Header() string {
	return fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate=%d", p.MaxAge, p.StaleWhileRevalidate)
}

// cacheWriter defers the header decision until the status is known
type cacheWriter struct {
	http.ResponseWriter
	policy      CachePolicy
	wroteHeader bool
}

func (cw *cacheWriter) WriteHeader(code int) {
	if !cw.wroteHeader {
		cw.wroteHeader = true
		// only successful payloads are cacheable; error envelopes must not stick in CDNs
		if code >= 200 && code < 300 {
			cw.Header().Set("Cache-Control", cw.policy.Header())
		}
	}
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *cacheWriter) Write(b []byte) (int, error) {
	if !cw.wroteHeader {
		cw.WriteHeader(http.StatusOK)
	}
	return cw.ResponseWriter.Write(b)
}

// CacheControl stamps successful responses with the given policy
func CacheControl(p CachePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(&cacheWriter{ResponseWriter: w, policy: p}, r)
		})
	}
}
