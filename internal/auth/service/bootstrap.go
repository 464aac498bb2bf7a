package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/notedesk/internal/auth/domain"
	"github.com/aussiebroadwan/notedesk/internal/auth/store"
	"github.com/aussiebroadwan/notedesk/pkg/cryptox"
	"github.com/aussiebroadwan/notedesk/pkg/idx"
	"github.com/aussiebroadwan/notedesk/pkg/slogx"
)

// DefaultBootstrapRoles are granted to the seeded account when none are given.
var DefaultBootstrapRoles = []string{"Admin"}

var (
	ErrBootstrapInvalid = errors.New("bootstrap username and password are required")
	errAlreadySeeded    = errors.New("user store already seeded")
)

// BootstrapService seeds the first account into an empty user store.
type BootstrapService struct {
	Store store.Store
}

// Seed creates the account described by req if and only if the store has no
// users. It reports whether an account was created.
func (s *BootstrapService) Seed(ctx context.Context, req domain.BootstrapData) (bool, error) {
	l := slogx.FromContext(ctx)

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return false, ErrBootstrapInvalid
	}

	roles := req.Roles
	if len(roles) == 0 {
		roles = DefaultBootstrapRoles
	}

	// Hash outside the transaction; it is the slow part.
	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		return false, fmt.Errorf("hash bootstrap password: %w", err)
	}

	userID := idx.New().String()
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return errAlreadySeeded
		}

		return tx.Users().CreateUser(ctx, domain.User{
			ID:           userID,
			Username:     username,
			PasswordHash: hash,
			Roles:        roles,
			Active:       true,
		})
	})
	switch {
	case errors.Is(err, errAlreadySeeded):
		l.Debug("bootstrap skipped; users already exist")
		return false, nil
	case err != nil:
		return false, fmt.Errorf("seed bootstrap user: %w", err)
	}

	l.Info("bootstrap user created",
		slog.String("user_id", userID),
		slog.String("username", username),
		slog.Any("roles", roles),
	)
	return true, nil
}
