package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tingtingtong/udup-restaurant-backend/internal/model"
	"github.com/tingtingtong/udup-restaurant-backend/internal/repository"
	"github.com/tingtingtong/udup-restaurant-backend/internal/service"
	"github.com/tingtingtong/udup-restaurant-backend/pkg/apierror"
	"github.com/tingtingtong/udup-restaurant-backend/pkg/response"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	tokens *service.TokenService
	users  repository.UserRepository
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(tokens *service.TokenService, users repository.UserRepository) *AuthHandler {
	return &AuthHandler{
		tokens: tokens,
		users:  users,
	}
}

// registerRequest is the request body for POST /api/auth/register.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginRequest is the request body for POST /api/auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register. The password is bcrypt
// hashed before storage; duplicate emails fail on the store's unique
// constraint and surface as a generic error.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	if req.Email == "" || req.Password == "" {
		response.Error(w, apierror.BadRequest("email and password are required"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.Error(w, apierror.InternalError("failed to register user"))
		return
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		log.Printf("[AuthHandler] Register failed: %v", err)
		response.Error(w, apierror.InternalError("failed to register user"))
		return
	}

	log.Printf("[AuthHandler] User registered: id=%s", user.ID)
	response.Text(w, http.StatusOK, "User registered")
}

// Login handles POST /api/auth/login. Unknown emails and wrong
// passwords produce the same response, and the submitted email is
// never logged.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		log.Printf("[AuthHandler] Login lookup failed: %v", err)
		response.Error(w, apierror.InternalError("failed to log in"))
		return
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		log.Printf("[AuthHandler] Login failed")
		response.Error(w, apierror.InvalidCredentials())
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		response.Error(w, apierror.InternalError("failed to issue token"))
		return
	}

	log.Printf("[AuthHandler] User logged in: id=%s", user.ID)
	response.JSON(w, http.StatusOK, map[string]string{"token": token})
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so this
// always succeeds; when a valid bearer token accompanies the request
// its jti is revoked for the remainder of its lifetime.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth := r.Header.Get("Authorization")
	if token := strings.TrimPrefix(auth, "Bearer "); token != auth && token != "" {
		if err := h.tokens.Revoke(r.Context(), token); err != nil {
			log.Printf("[AuthHandler] Logout revocation skipped: %v", err)
		}
	}

	response.Text(w, http.StatusOK, "User logged out")
}
