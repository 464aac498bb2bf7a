package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/notedesk/internal/auth/domain"
	"github.com/aussiebroadwan/notedesk/internal/auth/store"
	"github.com/aussiebroadwan/notedesk/pkg/cryptox"
	"github.com/aussiebroadwan/notedesk/pkg/jwtx"
	"github.com/aussiebroadwan/notedesk/pkg/slogx"
)

// DefaultCookieMaxAge is how long browsers keep the refresh cookie. It is
// longer than the refresh token itself; an expired token in a live cookie is
// rejected on refresh.
const DefaultCookieMaxAge = 7 * 24 * time.Hour

// SessionService issues, refreshes and terminates dual-token sessions.
// Zero durations fall back to the package defaults.
type SessionService struct {
	Store   store.Store
	Keys    *jwtx.Keys
	Metrics *Metrics

	LoginAccessTTL   time.Duration
	RefreshAccessTTL time.Duration
	RefreshTTL       time.Duration
	CookieMaxAge     time.Duration

	// RequireActiveOnRefresh rejects refreshes for users deactivated after
	// login.
	RequireActiveOnRefresh bool
}

// Login authenticates creds and returns an access grant plus a directive to
// set the refresh cookie.
func (s *SessionService) Login(
	ctx context.Context,
	creds domain.Credentials,
) (domain.AccessGrant, domain.CookieDirective, error) {
	grant, cookie, err := s.login(ctx, creds)
	s.Metrics.observeLogin(err)
	return grant, cookie, err
}

func (s *SessionService) login(
	ctx context.Context,
	creds domain.Credentials,
) (domain.AccessGrant, domain.CookieDirective, error) {
	l := slogx.FromContext(ctx)

	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		return domain.AccessGrant{}, domain.CookieDirective{}, ErrBadRequest
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.verifyDummy(creds.Password)
		l.Info("login rejected", slog.String("reason", "unknown_user"))
		return domain.AccessGrant{}, domain.CookieDirective{}, ErrUnauthorized
	case err != nil:
		return domain.AccessGrant{}, domain.CookieDirective{}, fmt.Errorf("lookup user: %w", err)
	}

	// Inactive accounts pay the same hashing cost as everyone else.
	if !user.Active {
		s.verifyDummy(creds.Password)
		l.Info("login rejected", slog.String("reason", "inactive"), slog.String("user_id", user.ID))
		return domain.AccessGrant{}, domain.CookieDirective{}, ErrUnauthorized
	}

	if err := s.verifyPassword(creds.Password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrMismatch) {
			l.Warn("stored password hash unusable", slog.String("user_id", user.ID), slog.Any("error", err))
		}
		l.Info("login rejected", slog.String("reason", "bad_password"), slog.String("user_id", user.ID))
		return domain.AccessGrant{}, domain.CookieDirective{}, ErrUnauthorized
	}

	now := s.Keys.Access.Now()

	grant, err := s.mintAccess(user, s.loginAccessTTL(), now)
	if err != nil {
		return domain.AccessGrant{}, domain.CookieDirective{}, err
	}

	refresh, err := s.Keys.Refresh.Sign(jwtx.NewRefreshClaims(user.Username, s.refreshTTL(), now))
	if err != nil {
		return domain.AccessGrant{}, domain.CookieDirective{}, fmt.Errorf("sign refresh token: %w", err)
	}

	l.Info("login succeeded", slog.String("user_id", user.ID))
	return grant, s.setCookie(refresh), nil
}

// Refresh turns a refresh cookie value into a fresh access grant carrying the
// user's current roles. The refresh token itself is not rotated.
func (s *SessionService) Refresh(ctx context.Context, cookie string) (domain.AccessGrant, error) {
	grant, err := s.refresh(ctx, cookie)
	s.Metrics.observeRefresh(err)
	return grant, err
}

func (s *SessionService) refresh(ctx context.Context, cookie string) (domain.AccessGrant, error) {
	l := slogx.FromContext(ctx)

	if cookie == "" {
		return domain.AccessGrant{}, ErrUnauthorized
	}

	claims, err := s.Keys.Refresh.VerifyRefresh(cookie)
	if err != nil {
		l.Info("refresh rejected", slog.Any("reason", err))
		return domain.AccessGrant{}, ErrForbidden
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, claims.Username)
	switch {
	case errors.Is(err, store.ErrNotFound):
		l.Info("refresh rejected", slog.String("reason", "unknown_user"))
		return domain.AccessGrant{}, ErrUnauthorized
	case err != nil:
		return domain.AccessGrant{}, fmt.Errorf("lookup user: %w", err)
	}

	if s.RequireActiveOnRefresh && !user.Active {
		l.Info("refresh rejected", slog.String("reason", "inactive"), slog.String("user_id", user.ID))
		return domain.AccessGrant{}, ErrUnauthorized
	}

	return s.mintAccess(user, s.refreshAccessTTL(), s.Keys.Access.Now())
}

// Logout returns a directive clearing the refresh cookie. ok is false when
// there was no cookie to clear; the caller answers 204 in that case.
func (s *SessionService) Logout(cookie string) (domain.CookieDirective, bool) {
	if cookie == "" {
		s.Metrics.observeLogout(false)
		return domain.CookieDirective{}, false
	}
	s.Metrics.observeLogout(true)
	return s.clearCookie(), true
}

func (s *SessionService) mintAccess(user domain.User, ttl time.Duration, now time.Time) (domain.AccessGrant, error) {
	claims := jwtx.NewAccessClaims(user.Username, user.Roles, ttl, now)
	token, err := s.Keys.Access.Sign(claims)
	if err != nil {
		return domain.AccessGrant{}, fmt.Errorf("sign access token: %w", err)
	}
	return domain.AccessGrant{
		AccessToken: token,
		ExpiresAt:   jwtx.ExpiresAtTime(claims.RegisteredClaims),
	}, nil
}

func (s *SessionService) verifyPassword(password, hash string) error {
	defer s.Metrics.timePasswordVerify()()
	return cryptox.VerifyPassword(password, hash)
}

func (s *SessionService) verifyDummy(password string) {
	defer s.Metrics.timePasswordVerify()()
	_ = cryptox.VerifyDummy(password)
}

func (s *SessionService) setCookie(value string) domain.CookieDirective {
	return domain.CookieDirective{
		Name:     domain.RefreshCookieName,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   int(s.cookieMaxAge() / time.Second),
	}
}

func (s *SessionService) clearCookie() domain.CookieDirective {
	return domain.CookieDirective{
		Name:     domain.RefreshCookieName,
		Path:     "/",
		HTTPOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   -1,
		Clear:    true,
	}
}

func (s *SessionService) loginAccessTTL() time.Duration {
	return orDefault(s.LoginAccessTTL, jwtx.DefaultAccessTokenTTL)
}

func (s *SessionService) refreshAccessTTL() time.Duration {
	return orDefault(s.RefreshAccessTTL, jwtx.DefaultAccessTokenTTL)
}

func (s *SessionService) refreshTTL() time.Duration {
	return orDefault(s.RefreshTTL, jwtx.DefaultRefreshTokenTTL)
}

func (s *SessionService) cookieMaxAge() time.Duration {
	return orDefault(s.CookieMaxAge, DefaultCookieMaxAge)
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
