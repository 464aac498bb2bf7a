package http

import (
	"net/http"

	"github.com/aussiebroadwan/notedesk/internal/auth/domain"
	"github.com/aussiebroadwan/notedesk/internal/auth/service"
	"github.com/aussiebroadwan/notedesk/pkg/authsdk"
	"github.com/aussiebroadwan/notedesk/pkg/httpx"
)

// LoginHandler serves POST /login and its /auth alias.
type LoginHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Verifies a username and password. The access token is returned in the body and the
//	@Description	refresh token is set in the HTTP-only, Secure, SameSite=None `jwt` cookie.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	authsdk.TokenResponse	"accessToken"
//	@Failure		400		{object}	authsdk.APIError		"Missing username or password"
//	@Failure		401		{object}	authsdk.APIError		"Unknown user, inactive user or wrong password"
//	@Failure		429		{object}	authsdk.APIError		"Too many attempts"
//	@Header			200		{string}	Set-Cookie				"jwt=<refresh token>; HttpOnly; Secure; SameSite=None"
//	@Router			/login [post]
//	@Router			/auth [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req authsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		authsdk.ErrInvalidBody.WriteError(w)
		return
	}

	grant, cookie, err := h.SessionService.Login(r.Context(), domain.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	http.SetCookie(w, cookie.Cookie())
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, authsdk.TokenResponse{AccessToken: grant.AccessToken})
}
