package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/notedesk/pkg/idx"
	"github.com/aussiebroadwan/notedesk/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestNewAccessClaims(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 500_000_000, time.UTC)
	roles := []string{"Employee", "Manager"}

	c := jwtx.NewAccessClaims("dave", roles, 15*time.Minute, now)

	require.Equal(t, "dave", c.UserInfo.Username)
	require.Equal(t, roles, c.UserInfo.Roles)
	require.Equal(t, now.Truncate(time.Second), c.IssuedAt.Time)
	require.Equal(t, now.Truncate(time.Second).Add(15*time.Minute), c.ExpiresAt.Time)

	t.Run("roles are copied", func(t *testing.T) {
		roles[0] = "Admin"
		require.Equal(t, "Employee", c.UserInfo.Roles[0])
	})

	t.Run("nil roles encode as empty array", func(t *testing.T) {
		c := jwtx.NewAccessClaims("erin", nil, time.Minute, now)
		require.NotNil(t, c.UserInfo.Roles)
		require.Empty(t, c.UserInfo.Roles)
	})
}

func TestNewRefreshClaims(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	c := jwtx.NewRefreshClaims("dave", 24*time.Hour, now)

	require.Equal(t, "dave", c.Username)
	require.Equal(t, now.Add(24*time.Hour), jwtx.ExpiresAtTime(c.RegisteredClaims))

	// jti is a ULID stamped with the issuance time
	id, err := idx.Parse(c.ID)
	require.NoError(t, err)
	require.WithinDuration(t, now, id.Time(), time.Millisecond)
}

func TestExpiresAtTimeUnset(t *testing.T) {
	require.True(t, jwtx.ExpiresAtTime(jwtx.RefreshClaims{}.RegisteredClaims).IsZero())
}
