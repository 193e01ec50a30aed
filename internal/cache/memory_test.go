package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryDenylistRevoke(t *testing.T) {
	d := NewMemoryDenylist()
	defer d.Close()
	ctx := context.Background()

	revoked, err := d.IsRevoked(ctx, "jti-1")
	if err != nil || revoked {
		t.Fatalf("IsRevoked() before revoke = %v, %v; want false, nil", revoked, err)
	}

	if err := d.Revoke(ctx, "jti-1", time.Hour); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}

	revoked, err = d.IsRevoked(ctx, "jti-1")
	if err != nil || !revoked {
		t.Errorf("IsRevoked() after revoke = %v, %v; want true, nil", revoked, err)
	}

	revoked, _ = d.IsRevoked(ctx, "jti-other")
	if revoked {
		t.Error("unrelated jti reported as revoked")
	}
}

func TestMemoryDenylistEntriesExpire(t *testing.T) {
	d := NewMemoryDenylist()
	defer d.Close()
	ctx := context.Background()

	if err := d.Revoke(ctx, "jti-1", time.Millisecond); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	revoked, err := d.IsRevoked(ctx, "jti-1")
	if err != nil || revoked {
		t.Errorf("IsRevoked() after expiry = %v, %v; want false, nil", revoked, err)
	}
}
