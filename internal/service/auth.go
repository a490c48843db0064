package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndanyliw/tasklist-server/internal/apierrors"
	"github.com/ndanyliw/tasklist-server/internal/logger"
	"github.com/ndanyliw/tasklist-server/internal/model"
)

// Auth implements credential issuance: account registration and
// password login. Every login failure collapses to the same opaque
// invalid-credentials outcome; only internal logs keep the cause.
type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register creates an account with a hashed password. Duplicate
// username or email surfaces as a conflict naming the colliding field.
func (a *Auth) Register(ctx context.Context, username, email, password string) (model.User, error) {
	a.logger.Debug("Auth service: registering user",
		"username", username)

	passwordHash, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		var conflict *model.ConflictError
		if errors.As(err, &conflict) {
			a.logger.Info("Auth service: registration conflict",
				"username", username,
				"field", conflict.Field)
			return model.User{}, apierrors.NewErrConflict(conflict.Field)
		}
		a.logger.Error("Auth service: failed to create user",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"username", username,
		"user_id", user.ID)

	return user, nil
}

// Login verifies the password for username and issues an access token.
// An unknown username and a wrong password are indistinguishable to the
// caller.
func (a *Auth) Login(ctx context.Context, username, password string) (string, error) {
	a.logger.Debug("Auth service: logging in user",
		"username", username)

	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Debug("Auth service: login for unknown username",
			"username", username)
		return "", apierrors.NewErrInvalidCredentials()
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by username: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Debug("Auth service: password mismatch",
			"username", username)
		return "", apierrors.NewErrInvalidCredentials()
	}

	accessToken, err := a.tokenManager.Generate(user.Username, user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login successful",
		"username", username,
		"user_id", user.ID)

	return accessToken, nil
}
