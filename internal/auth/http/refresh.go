package http

import (
	"net/http"

	"github.com/aussiebroadwan/notedesk/internal/auth/service"
	"github.com/aussiebroadwan/notedesk/pkg/authsdk"
	"github.com/aussiebroadwan/notedesk/pkg/httpx"
)

// RefreshHandler serves GET /refresh. The refresh cookie is read but never
// rewritten.
type RefreshHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Refresh the access token
//	@Description	Exchanges the `jwt` refresh cookie for a new access token carrying the user's current roles.
//	@Tags			Session
//	@Produce		json
//	@Param			jwt	header		string					false	"Refresh cookie (sent as Cookie: jwt=...)"
//	@Success		200	{object}	authsdk.TokenResponse	"accessToken"
//	@Failure		401	{object}	authsdk.APIError		"No cookie, or the user no longer exists"
//	@Failure		403	{object}	authsdk.APIError		"Refresh token is malformed, forged or expired"
//	@Router			/refresh [get]
//	@Router			/auth/refresh [get].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	grant, err := h.SessionService.Refresh(r.Context(), refreshCookie(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, authsdk.TokenResponse{AccessToken: grant.AccessToken})
}
