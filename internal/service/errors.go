package service

import "errors"

// ErrInvalidInput marks client mistakes: missing admin name, zero minutes,
// malformed or missing date bounds. No state is mutated when it is returned.
var ErrInvalidInput = errors.New("invalid input")

// ErrNoSource is returned when an operation needs the message source but
// none is configured.
var ErrNoSource = errors.New("no message source configured")
