package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type JWTAuth struct {
	secret []byte
}

// NewJWTAuth verifies HS256 bearer tokens signed with secret.
func NewJWTAuth(secret string) *JWTAuth {
	return &JWTAuth{
		secret: []byte(secret),
	}
}

func (a *JWTAuth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := getBearerToken(r)
		if token == "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("missing token"))
			return
		}

		parsed, err := jwt.ParseString(token, jwt.WithKey(jwa.HS256, a.secret), jwt.WithValidate(true))
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(err.Error()))
			return
		}

		ctx = context.WithValue(ctx, REQUESTER, parsed.Subject())
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func getBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.Split(h, "Bearer")
	if len(parts) != 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
