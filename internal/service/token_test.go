package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tingtingtong/udup-restaurant-backend/internal/cache"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, nil)

	token, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-123")
	}
	if claims.ID == "" {
		t.Error("expected a jti to be assigned")
	}
	if claims.ExpiresAt == nil {
		t.Fatal("expected an expiry")
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 59*time.Minute || ttl > time.Hour {
		t.Errorf("token TTL = %v, want about 1h", ttl)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour, nil)
	verifier := NewTokenService("secret-b", time.Hour, nil)

	token, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Verify(context.Background(), token); err == nil {
		t.Error("expected verification to fail for a token signed with a different secret")
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, nil)

	token, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Flip a character in the payload segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := svc.Verify(context.Background(), tampered); err == nil {
		t.Error("expected verification to fail for a tampered token")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", time.Millisecond, nil)

	token, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := svc.Verify(context.Background(), token); err == nil {
		t.Error("expected verification to fail for an expired token")
	}
}

func TestRevokeDenylistsToken(t *testing.T) {
	denylist := cache.NewMemoryDenylist()
	defer denylist.Close()

	svc := NewTokenService("test-secret", time.Hour, denylist)
	ctx := context.Background()

	token, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := svc.Verify(ctx, token); err != nil {
		t.Fatalf("Verify() before revoke error = %v", err)
	}

	if err := svc.Revoke(ctx, token); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}

	if _, err := svc.Verify(ctx, token); !errors.Is(err, ErrTokenRevoked) {
		t.Errorf("Verify() after revoke error = %v, want ErrTokenRevoked", err)
	}
}

func TestRevokeWithoutDenylistIsNoop(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, nil)

	token, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if err := svc.Revoke(context.Background(), token); err != nil {
		t.Errorf("Revoke() error = %v", err)
	}
	if _, err := svc.Verify(context.Background(), token); err != nil {
		t.Errorf("Verify() error = %v, token should remain valid without a denylist", err)
	}
}
