package pool

import "errors"

var (
	ErrInvalidSize    = errors.New("pool: size must be positive")
	ErrNilDialer      = errors.New("pool: dialer is required")
	ErrNotConnected   = errors.New("pool: no backend sessions established")
	ErrAcquireTimeout = errors.New("pool: timed out waiting for an idle session")
)
