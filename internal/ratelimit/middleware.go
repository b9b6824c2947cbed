package ratelimit

import (
	"net"
	"net/http"
	"strings"

	"github.com/redmonkez12/adventure-api/internal/httputil"
	"github.com/redmonkez12/adventure-api/internal/logging"
)

// Middleware rejects over-quota requests with 429 before any other
// processing on the guarded routes
func Middleware(limiter *Limiter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ClientKey(r)
			if !limiter.Allow(key) {
				logger := logging.GetLoggerFromContext(r.Context())
				logger.Warn("rate limit exceeded", "client_key", key)
				httputil.RespondErrorWithCode(w, "too many requests, please try again later", httputil.CodeTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientKey derives the limiter key for a request: the first entry of
// X-Forwarded-For, falling back to the connection address, falling back
// to "unknown".
//
// Trusting X-Forwarded-For is a deployment-topology assumption: behind an
// untrusted proxy the header is spoofable. Deploy behind a proxy that
// overwrites it, or strip it at the edge.
func ClientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if first != "" {
			return first
		}
	}

	if r.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			return host
		}
		return r.RemoteAddr
	}

	return "unknown"
}
