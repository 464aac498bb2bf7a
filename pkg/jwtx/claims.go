package jwtx

import (
	"time"

	"github.com/aussiebroadwan/notedesk/pkg/idx"
	"github.com/golang-jwt/jwt/v5"
)

// Default token lifetimes. Login and refresh both issue access tokens with
// DefaultAccessTokenTTL unless the service is configured otherwise.
const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 24 * time.Hour
)

// UserInfo is the identity block embedded in access tokens. The JSON shape
// is shared with the web client, which reads roles straight out of the token.
type UserInfo struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// AccessClaims are carried by the short-lived bearer token.
type AccessClaims struct {
	UserInfo UserInfo `json:"UserInfo"`
	jwt.RegisteredClaims
}

// RefreshClaims are carried by the refresh cookie. The jti is unused today
// but gives a future revocation list something to key on.
type RefreshClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// NewAccessClaims builds access claims issued at now. Timestamps are
// truncated to whole seconds since that is all a NumericDate can hold.
// Roles are copied and never nil so they encode as a JSON array.
func NewAccessClaims(username string, roles []string, ttl time.Duration, now time.Time) AccessClaims {
	now = now.UTC().Truncate(time.Second)
	return AccessClaims{
		UserInfo: UserInfo{
			Username: username,
			Roles:    append(make([]string, 0, len(roles)), roles...),
		},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

// NewRefreshClaims builds refresh claims issued at now.
func NewRefreshClaims(username string, ttl time.Duration, now time.Time) RefreshClaims {
	now = now.UTC().Truncate(time.Second)
	return RefreshClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        idx.NewAt(now).String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

// ExpiresAtTime returns the exp claim as a time, or the zero time if unset.
func ExpiresAtTime(c jwt.RegisteredClaims) time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}
