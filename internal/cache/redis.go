package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// revokedKeyPrefix namespaces denylist keys in Redis.
const revokedKeyPrefix = "udupi:revoked:"

// RedisDenylist is a Redis-backed Denylist. Entries carry their own TTL
// so Redis expires them without any cleanup loop.
type RedisDenylist struct {
	client *redis.Client
}

// NewRedisDenylist creates a Redis-backed denylist over an existing
// client.
func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{client: client}
}

// Revoke marks a token id as revoked for the given duration.
func (d *RedisDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return d.client.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

// IsRevoked reports whether a token id has been revoked.
func (d *RedisDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.client.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close closes the underlying Redis client.
func (d *RedisDenylist) Close() error {
	return d.client.Close()
}

// Ensure RedisDenylist implements Denylist
var _ Denylist = (*RedisDenylist)(nil)
