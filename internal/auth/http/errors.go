package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/notedesk/internal/auth/service"
	"github.com/aussiebroadwan/notedesk/pkg/authsdk"
	"github.com/aussiebroadwan/notedesk/pkg/slogx"
)

// writeServiceError maps service sentinels onto the wire envelope. Anything
// unrecognised is logged and hidden behind a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrBadRequest):
		authsdk.ErrBadRequest.WriteError(w)
	case errors.Is(err, service.ErrUnauthorized):
		authsdk.ErrUnauthorized.WriteError(w)
	case errors.Is(err, service.ErrForbidden):
		authsdk.ErrForbidden.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "endpoint", r.URL.Path, "err", err)
		authsdk.ErrServerError.WriteError(w)
	}
}

// refreshCookie returns the refresh cookie value, or "" when absent.
func refreshCookie(r *http.Request) string {
	c, err := r.Cookie(authsdk.RefreshCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
