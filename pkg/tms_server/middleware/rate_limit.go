package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"rps"`   // Zero disables rate limiting.
	Burst             int     `yaml:"burst"` // Defaults to 1.
}

// RateLimit rejects requests with 429 once the server-wide token bucket is empty.
func RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	if cfg.RequestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
