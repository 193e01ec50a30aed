package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tingtingtong/udup-restaurant-backend/internal/model"
	"github.com/tingtingtong/udup-restaurant-backend/internal/service"
	"github.com/tingtingtong/udup-restaurant-backend/pkg/apierror"
)

// ClaimsKey is the key for storing verified token claims in request
// context.
const ClaimsKey contextKey = "auth_claims"

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	TokenService *service.TokenService
}

// NewAuthMiddleware creates an authentication middleware with injected
// dependencies. The canonical header form is
// "Authorization: Bearer <token>"; a raw token without the prefix is
// rejected as missing credentials. Requests without a token get 401,
// requests with a bad or expired token get 400.
func NewAuthMiddleware(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			token := strings.TrimPrefix(auth, "Bearer ")
			if auth == "" || token == auth {
				writeError(w, apierror.Unauthorized("Access Denied"))
				return
			}

			claims, err := cfg.TokenService.Verify(r.Context(), token)
			if err != nil {
				writeError(w, apierror.InvalidToken("Invalid Token"))
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeError writes an API error response.
func writeError(w http.ResponseWriter, err *apierror.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	_, _ = w.Write(err.ToJSON())
}

// GetClaimsFromContext retrieves verified token claims from request
// context.
func GetClaimsFromContext(ctx context.Context) *model.Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*model.Claims); ok {
		return claims
	}
	return nil
}
