package service

import "errors"

// Session outcomes surfaced to the transport. Messages stay generic so a
// caller cannot tell an unknown username from a wrong password.
var (
	ErrBadRequest   = errors.New("bad_request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)
