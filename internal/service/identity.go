package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndanyliw/tasklist-server/internal/apierrors"
	"github.com/ndanyliw/tasklist-server/internal/logger"
	"github.com/ndanyliw/tasklist-server/internal/model"
)

// Identity resolves bearer tokens to live user accounts. Validity is a
// pure function of the signature, the expiry and the current account
// store state: a deleted account invalidates its outstanding tokens at
// resolve time.
type Identity struct {
	tokenManager model.TokenManager
	userStore    model.UserStore
	logger       *logger.Logger
}

func NewIdentity(tokenManager model.TokenManager, userStore model.UserStore, logger *logger.Logger) *Identity {
	return &Identity{
		tokenManager: tokenManager,
		userStore:    userStore,
		logger:       logger,
	}
}

// Resolve parses and verifies an access token and looks up the account
// it was issued to. Forged, malformed and expired tokens, and tokens
// whose account no longer exists, all fail with the same opaque
// invalid-credentials outcome.
func (s *Identity) Resolve(ctx context.Context, tokenString string) (model.User, error) {
	claims, err := s.tokenManager.Parse(tokenString)
	if err != nil {
		s.logger.Debug("Identity service: token rejected",
			"error", err.Error())
		return model.User{}, apierrors.NewErrInvalidCredentials()
	}

	user, err := s.userStore.GetByUsername(ctx, claims.Username)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Debug("Identity service: token subject no longer exists",
			"username", claims.Username)
		return model.User{}, apierrors.NewErrInvalidCredentials()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	// Claims are immutable once issued; an id mismatch means the
	// username was recreated after the token was minted.
	if user.ID != claims.UserID {
		s.logger.Debug("Identity service: token user id mismatch",
			"username", claims.Username,
			"claim_id", claims.UserID,
			"user_id", user.ID)
		return model.User{}, apierrors.NewErrInvalidCredentials()
	}

	return user, nil
}
