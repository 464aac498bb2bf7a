package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/notedesk/pkg/jwtx"
)

// InitAuthKeys builds the access and refresh signers from the configured
// secrets. Both secrets are mandatory and must differ; either failure is
// fatal at startup. Secrets never reach the log.
func InitAuthKeys(cfg Config, logger *slog.Logger, opts ...jwtx.Option) (*jwtx.Keys, error) {
	keys, err := jwtx.NewKeys([]byte(cfg.AccessTokenSecret), []byte(cfg.RefreshTokenSecret), opts...)
	if err != nil {
		return nil, fmt.Errorf("token secrets: %w", err)
	}

	logger.Info("token signers ready",
		"alg", keys.Access.Alg(),
		"login_access_ttl", cfg.LoginAccessTTL.String(),
		"refresh_access_ttl", cfg.RefreshAccessTTL.String(),
		"refresh_ttl", cfg.RefreshTTL.String(),
	)
	return keys, nil
}
