package authsdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrSessionClosed is returned by Session methods after Logout.
var ErrSessionClosed = errors.New("authsdk: session closed")

// Session represents an authenticated session with automatic token refresh.
type Session struct {
	client *SDKClient

	mu            sync.RWMutex
	accessToken   string
	refreshCookie string
	expiresAt     time.Time
}

func newSession(client *SDKClient, accessToken, refreshCookie string) *Session {
	return &Session{
		client:        client,
		accessToken:   accessToken,
		refreshCookie: refreshCookie,
		expiresAt:     accessExpiry(accessToken, client.RefreshSkew),
	}
}

// accessExpiry reads exp from the token without verifying it; the client has
// no secret and only uses the value to schedule refreshes. Unreadable tokens
// are treated as already expired.
func accessExpiry(token string, skew time.Duration) time.Time {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Add(-skew)
}

// getValidToken returns a valid access token, automatically refreshing if expired.
func (s *Session) getValidToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if s.refreshCookie == "" && s.accessToken == "" {
		s.mu.RUnlock()
		return "", ErrSessionClosed
	}
	if time.Now().Before(s.expiresAt) {
		token := s.accessToken
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have refreshed while we waited.
	if time.Now().Before(s.expiresAt) {
		return s.accessToken, nil
	}
	if s.refreshCookie == "" {
		return "", ErrSessionClosed
	}

	tok, err := s.client.Refresh(ctx, s.refreshCookie)
	if err != nil {
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}

	s.accessToken = tok.AccessToken
	s.expiresAt = accessExpiry(tok.AccessToken, s.client.RefreshSkew)
	return s.accessToken, nil
}

// Me returns the caller identity encoded in the current access token.
func (s *Session) Me(ctx context.Context) (*MeResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/me", nil)
	if err != nil {
		return nil, err
	}

	var me MeResponse
	if err := decodeJSON(resp, &me, http.StatusOK); err != nil {
		return nil, err
	}
	return &me, nil
}

// Logout clears the refresh cookie on the server and forgets both tokens.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.client.Logout(ctx, s.refreshCookie); err != nil {
		return err
	}
	s.accessToken = ""
	s.refreshCookie = ""
	s.expiresAt = time.Time{}
	return nil
}

// AccessToken returns the current access token without checking expiration.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshCookie returns the refresh token held by this session.
func (s *Session) RefreshCookie() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshCookie
}

// ExpiresAt is the time at which the session will next refresh.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}
