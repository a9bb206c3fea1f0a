package middleware

import (
	"errors"
	"net/http"
	"strings"

	"picstash/internal/auth"
	"picstash/internal/domain"
	"picstash/internal/httputil"
)

// publicPaths are reachable without a bearer token
var publicPaths = map[string]bool{
	"/register": true,
	"/login":    true,
	"/health":   true,
}

// Auth rejects requests without a valid bearer token and stores the resolved
// user ID in the request context. Nothing past this middleware runs for an
// unauthenticated request.
func Auth(verifier auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				httputil.RespondError(w, http.StatusUnauthorized, domain.ErrTokenMissing.Error())
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			userID, err := verifier.VerifyToken(token)
			if err != nil {
				detail := domain.ErrTokenInvalid.Error()
				if errors.Is(err, domain.ErrTokenExpired) {
					detail = domain.ErrTokenExpired.Error()
				}
				httputil.RespondError(w, http.StatusUnauthorized, detail)
				return
			}

			next.ServeHTTP(w, httputil.WithUserID(r, userID))
		})
	}
}
