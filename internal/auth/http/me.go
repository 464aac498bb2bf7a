package http

import (
	"net/http"

	"github.com/aussiebroadwan/notedesk/pkg/authsdk"
	"github.com/aussiebroadwan/notedesk/pkg/httpx"
)

type MeHandler struct{}

// ServeHTTP godoc
//
//	@Summary		Describe the caller
//	@Description	Returns the username and roles carried by the bearer access token.
//	@Tags			Session
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authsdk.MeResponse	"username, roles"
//	@Failure		401	{object}	authsdk.APIError	"Invalid or missing access token"
//	@Router			/me [get].
func (MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok {
		authsdk.ErrUnauthorized.WriteError(w)
		return
	}

	roles := claims.UserInfo.Roles
	if roles == nil {
		roles = []string{}
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, authsdk.MeResponse{
		Username: claims.UserInfo.Username,
		Roles:    roles,
	})
}
