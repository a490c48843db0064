package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ndanyliw/tasklist-server/internal/apierrors"
	"github.com/ndanyliw/tasklist-server/internal/logger"
	"github.com/ndanyliw/tasklist-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (model.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates a user account from a JSON body.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, apierrors.NewErrValidation("invalid request body"))
		return
	}

	if err := validateRegistration(req); err != nil {
		handleError(w, err)
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"username", req.Username,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: registration completed",
		"username", user.Username,
		"user_id", user.ID)

	writeJSON(w, http.StatusCreated, userResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

// Login verifies form-encoded credentials and returns a bearer token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		handleError(w, apierrors.NewErrValidation("invalid form body"))
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		handleError(w, apierrors.NewErrValidation("username and password are required"))
		return
	}

	accessToken, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		h.logger.Debug("Auth handler: login failed",
			"username", username)
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: login completed",
		"username", username)

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}

func validateRegistration(req registerRequest) error {
	switch {
	case req.Username == "":
		return apierrors.NewErrValidation("username is required")
	case req.Email == "" || !strings.Contains(req.Email, "@"):
		return apierrors.NewErrValidation("a valid email is required")
	case req.Password == "":
		return apierrors.NewErrValidation("password is required")
	}
	return nil
}
