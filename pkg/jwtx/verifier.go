package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// AccessVerifier is what the bearer middleware needs from a signer.
type AccessVerifier interface {
	VerifyAccess(token string) (*AccessClaims, error)
}

// VerifyAccess validates an access token and returns its claims.
func (s *HS256Signer) VerifyAccess(token string) (*AccessClaims, error) {
	var claims AccessClaims
	if err := s.parse(token, &claims); err != nil {
		return nil, err
	}

	if claims.UserInfo.Username == "" {
		return nil, fmt.Errorf("%w: missing username", ErrInvalidClaim)
	}
	return &claims, nil
}

// VerifyRefresh validates a refresh token and returns its claims.
func (s *HS256Signer) VerifyRefresh(token string) (*RefreshClaims, error) {
	var claims RefreshClaims
	if err := s.parse(token, &claims); err != nil {
		return nil, err
	}

	if claims.Username == "" {
		return nil, fmt.Errorf("%w: missing username", ErrInvalidClaim)
	}
	return &claims, nil
}

func (s *HS256Signer) parse(tokenStr string, claims jwt.Claims) error {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(s.leeway),
		jwt.WithTimeFunc(s.now),
	)

	// golang-jwt checks the HMAC with hmac.Equal before it looks at any
	// claim, so a forged token never reaches expiry validation.
	token, err := parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return classify(err)
	}
	if !token.Valid {
		return ErrInvalidClaim
	}
	return nil
}

// classify folds golang-jwt's error tree into our three verification
// failures plus a catch-all for other claim problems.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrInvalidSig, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrExpired, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidClaim, err)
	}
}
