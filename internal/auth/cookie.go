package auth

import (
	"net/http"
	"time"
)

const TokenCookieName = "token"

type CookieOptions struct {
	Secure   bool
	SameSite http.SameSite
}

// CookieOptionsForEnv picks the cross-site profile for production
// deployments (the web client lives on another origin) and the strict
// profile for local development.
func CookieOptionsForEnv(env string) CookieOptions {
	if env == "production" {
		return CookieOptions{Secure: true, SameSite: http.SameSiteNoneMode}
	}
	return CookieOptions{Secure: false, SameSite: http.SameSiteStrictMode}
}

func SetTokenCookie(w http.ResponseWriter, token string, ttl time.Duration, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

func ClearTokenCookie(w http.ResponseWriter, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}
