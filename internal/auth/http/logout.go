package http

import (
	"net/http"

	"github.com/aussiebroadwan/notedesk/internal/auth/service"
	"github.com/aussiebroadwan/notedesk/pkg/authsdk"
	"github.com/aussiebroadwan/notedesk/pkg/httpx"
)

// LogoutHandler serves POST /logout. It is idempotent and never fails.
type LogoutHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Log out
//	@Description	Clears the `jwt` refresh cookie. Answers 204 when there was no cookie to clear.
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	authsdk.MessageResponse	"Cookie cleared"
//	@Success		204	"No cookie present"
//	@Router			/logout [post]
//	@Router			/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cookie, ok := h.SessionService.Logout(refreshCookie(r))
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.SetCookie(w, cookie.Cookie())
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{Message: "Cookie cleared"})
}
