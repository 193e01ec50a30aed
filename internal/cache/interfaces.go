package cache

import (
	"context"
	"time"
)

// Denylist records revoked token IDs until their natural expiry.
// Tokens are stateless, so logout works by denylisting the jti for the
// remainder of its lifetime. Swapping between the memory implementation
// (single instance) and Redis (multi-instance) changes nothing else.
type Denylist interface {
	// Revoke marks a token id as revoked for the given duration.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error

	// IsRevoked reports whether a token id has been revoked.
	IsRevoked(ctx context.Context, jti string) (bool, error)

	// Close releases any resources held by the denylist.
	Close() error
}
