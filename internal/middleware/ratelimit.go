package middleware

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
	"picstash/internal/httputil"
)

// RateLimit applies a process-wide token bucket: requests per window, with a
// burst of one window's worth.
func RateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(float64(requests)/window.Seconds()), requests)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				httputil.RespondError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
