// Package session carries the session token between client and server via an
// HTTP cookie. Set and Clear share one attribute set; browsers only remove a
// cookie when the clearing attributes match the setting ones.
package session

import (
	"net/http"
	"time"
)

// CookieName is the cookie carrying the session token.
const CookieName = "access_token"

// Config holds the cookie attributes applied to both set and clear.
type Config struct {
	TTL time.Duration
	// Secure restricts the cookie to HTTPS. Off in development so the
	// cookie works over plain localhost.
	Secure bool
}

func (c Config) cookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// Set attaches the session cookie to the response with max-age equal to the
// token TTL.
func (c Config) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, c.cookie(token, int(c.TTL.Seconds())))
}

// Clear expires the session cookie using the same attributes Set used.
func (c Config) Clear(w http.ResponseWriter) {
	http.SetCookie(w, c.cookie("", -1))
}

// Read returns the session token from the request, or "" if absent.
func Read(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
