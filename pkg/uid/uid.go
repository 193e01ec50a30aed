package uid

import "github.com/google/uuid"

// New generates a new unique identifier. Used for request IDs and token
// jti values.
func New() string {
	return uuid.New().String()
}
