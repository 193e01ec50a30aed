package model

import "github.com/golang-jwt/jwt/v5"

// Claims is the payload carried by an identity token. UserID references
// the authenticated user; expiry and issue time live in the registered
// claims. Tokens are never persisted server-side.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}
