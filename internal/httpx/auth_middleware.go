package httpx

import (
	"net/http"

	"libraryapi/internal/auth"
)

// AuthMiddleware authenticates the signed token cookie and stores the
// caller's email on the request context. Verification is signature plus
// expiry only; there is no revocation list.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.TokenCookieName)
			if err != nil {
				JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Access not authorized", nil)
				return
			}

			claims, err := auth.ParseToken(secret, cookie.Value)
			if err != nil {
				JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Access not authorized", nil)
				return
			}

			ctx := ContextWithUser(r.Context(), claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
