package context

import (
	"context"

	"github.com/ndanyliw/tasklist-server/internal/model"
)

type ctxKey int

// userKey is the context key under which the authenticated user is stored.
const userKey ctxKey = 0

// Manager represents an HTTP context manager for the authenticated user.
// It provides methods to set and retrieve the user from request contexts.
type Manager struct{}

// NewManager creates a new HTTP context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a context carrying the authenticated user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// The boolean reports whether a user was present.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey).(model.User)
	return user, ok
}
