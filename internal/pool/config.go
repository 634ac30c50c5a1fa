package pool

import "time"

// Config holds session pool parameters.
// All fields are populated from environment variables for deployment convenience.
type Config struct {
	// Number of backend sessions to establish at boot. The pool never grows
	// at runtime; sessions lost to invalidation are not replaced.
	Size int `env:"DATABASE_POOL_SIZE" envDefault:"10"`

	// Deadline for the liveness probe issued on every acquire. Short on
	// purpose: a dead connection should not stall the borrower for long.
	PingTimeout time.Duration `env:"DATABASE_PING_TIMEOUT" envDefault:"2s"`
}
