package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/notedesk/internal/auth/domain"
	"github.com/aussiebroadwan/notedesk/internal/auth/store"
	"github.com/aussiebroadwan/notedesk/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/notedesk/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestUsersRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	empty, err := s.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	u := domain.User{
		ID:           idx.New().String(),
		Username:     "alice",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		Roles:        []string{"Employee", "Manager"},
		Active:       true,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
	require.NoError(t, s.Users().CreateUser(ctx, u))

	got, err := s.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, u.PasswordHash, got.PasswordHash)
	require.Equal(t, []string{"Employee", "Manager"}, got.Roles)
	require.True(t, got.Active)
	require.True(t, created.Equal(got.CreatedAt))

	byID, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", byID.Username)

	empty, err = s.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)
}

func TestUsernameLookupIsExact(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Users().CreateUser(ctx, domain.User{
		ID: idx.New().String(), Username: "alice", PasswordHash: "h", Active: true,
	}))

	_, err := s.Users().GetUserByUsername(ctx, "Alice")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Users().GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateUserDuplicate(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	u := domain.User{ID: idx.New().String(), Username: "bob", PasswordHash: "h"}
	require.NoError(t, s.Users().CreateUser(ctx, u))

	u.ID = idx.New().String()
	require.ErrorIs(t, s.Users().CreateUser(ctx, u), store.ErrAlreadyExists)
}

func TestInactiveAndRolelessUser(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Users().CreateUser(ctx, domain.User{
		ID: idx.New().String(), Username: "carol", PasswordHash: "h", Active: false,
	}))

	got, err := s.Users().GetUserByUsername(ctx, "carol")
	require.NoError(t, err)
	require.False(t, got.Active)
	require.Empty(t, got.Roles)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Users().CreateUser(ctx, domain.User{
			ID: idx.New().String(), Username: "dave", PasswordHash: "h",
		}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Users().GetUserByUsername(ctx, "dave")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, domain.User{
			ID: idx.New().String(), Username: "dave", PasswordHash: "h",
		})
	}))
	_, err = s.Users().GetUserByUsername(ctx, "dave")
	require.NoError(t, err)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestUsernameIsBoundNotInterpolated(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	name := `o'brien"; DROP TABLE users; --`
	require.NoError(t, s.Users().CreateUser(ctx, domain.User{
		ID: idx.New().String(), Username: name, PasswordHash: "h", Active: true,
	}))

	got, err := s.Users().GetUserByUsername(ctx, name)
	require.NoError(t, err)
	require.Equal(t, name, got.Username)

	empty, err := s.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)
}
