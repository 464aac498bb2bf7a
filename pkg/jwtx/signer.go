package jwtx

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSecret = errors.New("jwtx: signing secret is empty")
	ErrSharedSecret  = errors.New("jwtx: access and refresh secrets must differ")
)

// HS256Signer mints and verifies HMAC-SHA256 tokens under one secret. It is
// immutable after construction and safe for concurrent use.
type HS256Signer struct {
	secret []byte
	now    func() time.Time
	leeway time.Duration
}

// Option tweaks an HS256Signer at construction time.
type Option func(*HS256Signer)

// WithClock overrides the wall clock used to validate exp and iat.
func WithClock(now func() time.Time) Option {
	return func(s *HS256Signer) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLeeway allows for clock skew when validating exp and iat.
func WithLeeway(d time.Duration) Option {
	return func(s *HS256Signer) {
		if d > 0 {
			s.leeway = d
		}
	}
}

// NewHS256Signer returns a signer over secret. An empty secret is a
// configuration error and is reported as ErrMissingSecret.
func NewHS256Signer(secret []byte, opts ...Option) (*HS256Signer, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}

	s := &HS256Signer{
		secret: append([]byte(nil), secret...),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Now returns the signer's notion of the current time. Services mint claims
// with it so issuance and verification agree on the clock.
func (s *HS256Signer) Now() time.Time { return s.now() }

// Sign serialises claims and signs them. Identical claims produce identical
// tokens.
func (s *HS256Signer) Sign(claims jwt.Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Validate is a quick sanity check used by readiness probes.
func (s *HS256Signer) Validate() error {
	if s == nil || len(s.secret) == 0 {
		return ErrMissingSecret
	}
	return nil
}

// Keys holds the two independent signers. A leaked access secret cannot be
// used to forge refresh tokens and vice versa.
type Keys struct {
	Access  *HS256Signer
	Refresh *HS256Signer
}

// NewKeys builds both signers. Either secret missing, or both secrets being
// the same value, is fatal.
func NewKeys(accessSecret, refreshSecret []byte, opts ...Option) (*Keys, error) {
	access, err := NewHS256Signer(accessSecret, opts...)
	if err != nil {
		return nil, fmt.Errorf("access secret: %w", err)
	}

	refresh, err := NewHS256Signer(refreshSecret, opts...)
	if err != nil {
		return nil, fmt.Errorf("refresh secret: %w", err)
	}

	if subtle.ConstantTimeCompare(accessSecret, refreshSecret) == 1 {
		return nil, ErrSharedSecret
	}

	return &Keys{Access: access, Refresh: refresh}, nil
}

// IsReady reports whether both signers are usable.
func (k *Keys) IsReady() bool {
	if k == nil {
		return false
	}
	return k.Access.Validate() == nil && k.Refresh.Validate() == nil
}
