package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tingtingtong/udup-restaurant-backend/internal/model"
	"github.com/tingtingtong/udup-restaurant-backend/internal/service"
)

func newTestMiddleware(t *testing.T) (*service.TokenService, func(http.Handler) http.Handler) {
	t.Helper()
	tokens := service.NewTokenService("test-secret", time.Hour, nil)
	return tokens, NewAuthMiddleware(AuthConfig{TokenService: tokens})
}

func TestAuthMissingTokenRejected(t *testing.T) {
	_, mw := newTestMiddleware(t)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run without credentials")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/list/today", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuthRawTokenWithoutBearerRejected(t *testing.T) {
	tokens, mw := newTestMiddleware(t)

	token, err := tokens.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run for the raw header convention")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/orders/list", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuthInvalidTokenRejected(t *testing.T) {
	_, mw := newTestMiddleware(t)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run with a bad token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/orders/list", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAuthExpiredTokenRejected(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Millisecond, nil)
	mw := NewAuthMiddleware(AuthConfig{TokenService: tokens})

	token, err := tokens.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run with an expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/orders/list", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAuthValidTokenAttachesClaims(t *testing.T) {
	tokens, mw := newTestMiddleware(t)

	token, err := tokens.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	var got *model.Claims
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/orders/list", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got == nil || got.UserID != "user-1" {
		t.Errorf("claims = %+v, want UserID user-1", got)
	}
}
