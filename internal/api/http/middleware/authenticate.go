package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ndanyliw/tasklist-server/internal/apierrors"
	"github.com/ndanyliw/tasklist-server/internal/logger"
	"github.com/ndanyliw/tasklist-server/internal/model"
)

// IdentityResolver resolves bearer tokens to live user accounts.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (model.User, error)
}

// Authenticate validates bearer tokens and injects the resolved user
// into the request context. Every failure, whatever the cause, yields
// the same 401 response with a bearer challenge.
type Authenticate struct {
	identity       IdentityResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(identity IdentityResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{identity: identity, contextManager: contextManager, logger: logger}
}

// Handle wraps next so it only runs for requests carrying a valid
// bearer token for an existing account.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := extractBearerToken(r.Header.Get("Authorization"))
		if !ok {
			m.logger.Debug("Authenticate middleware: missing or malformed authorization header",
				"path", r.URL.Path)
			m.unauthorized(w)
			return
		}

		user, err := m.identity.Resolve(r.Context(), tokenString)
		if err != nil {
			var apiErr *apierrors.APIError
			if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
				m.logger.Debug("Authenticate middleware: token did not resolve",
					"path", r.URL.Path,
					"error", err.Error())
				m.unauthorized(w)
				return
			}
			m.logger.Error("Authenticate middleware: identity resolution failed",
				"path", r.URL.Path,
				"error", err.Error())
			m.internalError(w)
			return
		}

		ctx := m.contextManager.SetUserToContext(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractBearerToken pulls the token out of an Authorization header.
func extractBearerToken(authHeader string) (string, bool) {
	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func (m *Authenticate) unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
}

func (m *Authenticate) internalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
}
