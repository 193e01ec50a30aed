package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryDenylist is an in-process Denylist. Use this for development or
// single-instance deployments; revocations do not survive restarts,
// which is acceptable because the tokens they suppress expire anyway.
type MemoryDenylist struct {
	mu      sync.RWMutex
	entries map[string]time.Time

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	stopOnce        sync.Once
}

// NewMemoryDenylist creates an in-memory denylist with automatic cleanup.
func NewMemoryDenylist() *MemoryDenylist {
	d := &MemoryDenylist{
		entries:         make(map[string]time.Time),
		cleanupInterval: time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	go d.cleanup()

	return d
}

// Revoke marks a token id as revoked for the given duration.
func (d *MemoryDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.entries[jti] = time.Now().Add(ttl)
	return nil
}

// IsRevoked reports whether a token id has been revoked.
func (d *MemoryDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	expiresAt, exists := d.entries[jti]
	if !exists || time.Now().After(expiresAt) {
		return false, nil
	}
	return true, nil
}

// Close stops the background cleanup goroutine.
func (d *MemoryDenylist) Close() error {
	d.stopOnce.Do(func() {
		close(d.stopCleanup)
	})
	return nil
}

// cleanup periodically removes expired entries.
func (d *MemoryDenylist) cleanup() {
	ticker := time.NewTicker(d.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.removeExpired()
		case <-d.stopCleanup:
			return
		}
	}
}

// removeExpired removes all expired entries.
func (d *MemoryDenylist) removeExpired() {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	for jti, expiresAt := range d.entries {
		if now.After(expiresAt) {
			delete(d.entries, jti)
		}
	}
}

// Ensure MemoryDenylist implements Denylist
var _ Denylist = (*MemoryDenylist)(nil)
