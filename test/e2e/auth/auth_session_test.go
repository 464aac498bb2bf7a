package auth_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/notedesk/pkg/authsdk"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// TestSessionLifecycle walks login, introspection, refresh and logout against
// a real container.
func TestSessionLifecycle(t *testing.T) {
	baseURL := setupAuthContainer(t)
	client := authsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	session := performLogin(t, client)

	me, err := session.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, adminUsername, me.Username)
	require.ElementsMatch(t, []string{"Admin", "Employee"}, me.Roles)

	refreshed, err := client.Refresh(ctx, session.RefreshCookie())
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.AccessToken)

	// The refreshed token is signed with the access secret and carries the
	// same identity block the web client reads.
	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(refreshed.AccessToken, claims, func(*jwt.Token) (any, error) {
		return []byte(accessSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	info, ok := claims["UserInfo"].(map[string]any)
	require.True(t, ok, "UserInfo claim missing: %v", claims)
	require.Equal(t, adminUsername, info["username"])

	require.NoError(t, session.Logout(ctx))

	// Logout is idempotent and there is no server-side state to revoke.
	cleared, err := client.Logout(ctx, "")
	require.NoError(t, err)
	require.False(t, cleared)
}

// TestLoginFailures checks the error envelopes for bad credentials.
func TestLoginFailures(t *testing.T) {
	baseURL := setupAuthContainer(t)
	client := authsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	_, err := client.Login(ctx, "", "")
	apiErr := requireStatus(t, err, http.StatusBadRequest)
	require.Equal(t, authsdk.ErrorCodeBadRequest, apiErr.Code)

	_, err = client.Login(ctx, adminUsername, "wrong-password")
	wrongPassword := requireStatus(t, err, http.StatusUnauthorized)

	_, err = client.Login(ctx, "ghost", adminPassword)
	unknownUser := requireStatus(t, err, http.StatusUnauthorized)

	// Unknown users and wrong passwords are indistinguishable on the wire.
	require.Equal(t, wrongPassword.Message, unknownUser.Message)
}

// TestRefreshFailures checks missing and forged refresh cookies.
func TestRefreshFailures(t *testing.T) {
	baseURL := setupAuthContainer(t)
	client := authsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	_, err := client.Refresh(ctx, "")
	requireStatus(t, err, http.StatusUnauthorized)

	_, err = client.Refresh(ctx, "not-a-token")
	requireStatus(t, err, http.StatusForbidden)

	// A token signed with the access secret is not a refresh token.
	session := performLogin(t, client)
	_, err = client.Refresh(ctx, session.AccessToken())
	requireStatus(t, err, http.StatusForbidden)
}

// TestMetricsRequireAdmin verifies /metrics is protected by the Admin role.
func TestMetricsRequireAdmin(t *testing.T) {
	baseURL := setupAuthContainer(t)
	client := authsdk.NewSDKClient(baseURL)

	resp, err := http.Get(baseURL + "/metrics")
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	session := performLogin(t, client)
	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, baseURL+"/metrics", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+session.AccessToken())

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
