package domain

import (
	"net/http"
	"time"
)

// RefreshCookieName names the cookie carrying the refresh token.
const RefreshCookieName = "jwt"

// AccessGrant is the body-visible half of a session: a short-lived bearer token.
type AccessGrant struct {
	AccessToken string
	ExpiresAt   time.Time
}

// CookieDirective tells the transport how to set or clear the refresh cookie.
// The HTTP layer converts it to an http.Cookie.
type CookieDirective struct {
	Name     string
	Value    string
	Path     string
	HTTPOnly bool
	Secure   bool
	SameSite http.SameSite
	MaxAge   int  // seconds; negative clears
	Clear    bool // true for logout directives
}

// Cookie renders the directive for net/http.
func (d CookieDirective) Cookie() *http.Cookie {
	return &http.Cookie{
		Name:     d.Name,
		Value:    d.Value,
		Path:     d.Path,
		HttpOnly: d.HTTPOnly,
		Secure:   d.Secure,
		SameSite: d.SameSite,
		MaxAge:   d.MaxAge,
	}
}
