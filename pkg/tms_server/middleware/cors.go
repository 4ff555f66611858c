package middleware

import (
	"net/http"
	"strings"

	"github.com/samber/lo"
)

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"` // "*" allows every origin.
}

// CORS answers preflight requests and sets the CORS headers for allowed origins.
// It is a no-op when no origin is configured.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	allowAll := lo.Contains(cfg.AllowedOrigins, "*")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || len(cfg.AllowedOrigins) == 0 {
				next.ServeHTTP(w, r)
				return
			}
			if !allowAll && !lo.Contains(cfg.AllowedOrigins, origin) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusForbidden)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", lo.Ternary(allowAll, "*", origin))
			h.Add("Vary", "Origin")
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodOptions}, ", "))
				h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
				h.Set("Access-Control-Max-Age", "600")
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
