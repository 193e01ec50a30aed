package model

// User is a registered account. Only the bcrypt hash of the password is
// ever stored; the plain password exists only inside the register and
// login request bodies.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
