package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tingtingtong/udup-restaurant-backend/internal/cache"
	"github.com/tingtingtong/udup-restaurant-backend/internal/model"
	"github.com/tingtingtong/udup-restaurant-backend/pkg/uid"
)

// DefaultTokenTTL is the default token lifetime (1 hour).
const DefaultTokenTTL = 1 * time.Hour

// ErrTokenRevoked is returned for tokens that were valid but have been
// revoked via logout.
var ErrTokenRevoked = errors.New("token revoked")

// TokenService issues and verifies HS256-signed identity tokens.
// Tokens are stateless; the optional denylist only suppresses revoked
// jti values until their natural expiry.
type TokenService struct {
	secret   []byte
	ttl      time.Duration
	denylist cache.Denylist
}

// NewTokenService creates a token service. denylist may be nil, in
// which case revocation is a no-op and logout is purely stateless.
func NewTokenService(secret string, ttl time.Duration, denylist cache.Denylist) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret:   []byte(secret),
		ttl:      ttl,
		denylist: denylist,
	}
}

// Issue creates a signed token bound to the user id, valid for the
// configured TTL.
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := model.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uid.New(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Verify checks the signature and expiry of a token and returns its
// claims. Revoked tokens fail with ErrTokenRevoked.
func (s *TokenService) Verify(ctx context.Context, tokenString string) (*model.Claims, error) {
	claims := &model.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if s.denylist != nil && claims.ID != "" {
		revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
		if err == nil && revoked {
			return nil, ErrTokenRevoked
		}
	}

	return claims, nil
}

// Revoke denylists a token's jti for the remainder of its lifetime.
// Without a denylist this is a no-op; the token simply expires.
func (s *TokenService) Revoke(ctx context.Context, tokenString string) error {
	claims, err := s.Verify(ctx, tokenString)
	if err != nil {
		return err
	}
	if s.denylist == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.denylist.Revoke(ctx, claims.ID, ttl)
}
