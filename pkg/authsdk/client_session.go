package authsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Login authenticates with username and password and returns a Session
// holding the access token and the refresh cookie.
func (c *SDKClient) Login(ctx context.Context, username, password string) (*Session, error) {
	body, err := json.Marshal(LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode login request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/login", bytes.NewReader(body), map[string]string{
		"Content-Type": "application/json",
	})
	if err != nil {
		return nil, err
	}

	cookie, hasCookie := refreshCookie(resp)

	var tok TokenResponse
	if err := decodeJSON(resp, &tok, http.StatusOK); err != nil {
		return nil, err
	}
	if !hasCookie {
		return nil, fmt.Errorf("login response did not set the %q cookie", RefreshCookieName)
	}

	return newSession(c, tok.AccessToken, cookie), nil
}

// Refresh exchanges a refresh cookie value for a new access token.
func (c *SDKClient) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	var cookies []*http.Cookie
	if refreshToken != "" {
		cookies = append(cookies, &http.Cookie{Name: RefreshCookieName, Value: refreshToken})
	}

	resp, err := c.doRequest(ctx, http.MethodGet, "/refresh", nil, nil, cookies...)
	if err != nil {
		return nil, err
	}

	var tok TokenResponse
	if err := decodeJSON(resp, &tok, http.StatusOK); err != nil {
		return nil, err
	}
	return &tok, nil
}

// Logout asks the service to clear the refresh cookie. It reports whether a
// cookie was actually cleared (200) as opposed to there being none (204).
func (c *SDKClient) Logout(ctx context.Context, refreshToken string) (bool, error) {
	var cookies []*http.Cookie
	if refreshToken != "" {
		cookies = append(cookies, &http.Cookie{Name: RefreshCookieName, Value: refreshToken})
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/logout", nil, nil, cookies...)
	if err != nil {
		return false, err
	}

	switch resp.StatusCode {
	case http.StatusNoContent:
		_ = resp.Body.Close()
		return false, nil
	case http.StatusOK:
		var msg MessageResponse
		if err := decodeJSON(resp, &msg, http.StatusOK); err != nil {
			return false, err
		}
		return true, nil
	default:
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		return false, parseErrorResponse(resp, b)
	}
}
