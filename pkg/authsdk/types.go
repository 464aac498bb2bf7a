package authsdk

// RefreshCookieName is the cookie that carries the refresh token.
const RefreshCookieName = "jwt"

// ============================================================================
// Session Types
// ============================================================================

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned by login and refresh. The refresh token never
// appears in a body; it travels in the RefreshCookieName cookie.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// MessageResponse carries a human-readable confirmation, e.g. on logout.
type MessageResponse struct {
	Message string `json:"message"`
}

// MeResponse describes the caller of GET /me as seen in their access token.
type MeResponse struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status ("ok" or "degraded")
	Status string `json:"status"`

	Uptime  string `json:"uptime,omitempty"`
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the user store connection status
	Database string `json:"database"`

	// Signer indicates whether both token secrets are loaded
	Signer string `json:"signer"`
}
