package router

import (
	"net/http"

	"github.com/ndanyliw/tasklist-server/internal/api/http/handler"
	"github.com/ndanyliw/tasklist-server/internal/api/http/middleware"
	"github.com/ndanyliw/tasklist-server/internal/logger"
	"github.com/ndanyliw/tasklist-server/internal/model"
)

// Router wires HTTP handlers and middleware. Registration and login
// are public; every /todos route sits behind the authentication gate.
type Router struct {
	authService    handler.AuthService
	todoService    handler.TodoService
	identity       middleware.IdentityResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	todoService handler.TodoService,
	identity middleware.IdentityResolver,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		todoService:    todoService,
		identity:       identity,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the request handler: routes, the auth gate on
// protected routes, and request logging around everything.
func (r *Router) Register() http.Handler {
	authHandler := handler.NewAuth(r.authService, r.logger)
	todoHandler := handler.NewTodo(r.todoService, r.contextManager, r.logger)

	authenticate := middleware.NewAuthenticate(r.identity, r.contextManager, r.logger)
	logging := middleware.NewLogging(r.logger)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handleRoot)
	mux.HandleFunc("POST /users/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)

	protect := func(h http.HandlerFunc) http.Handler {
		return authenticate.Handle(h)
	}
	mux.Handle("GET /todos", protect(todoHandler.List))
	mux.Handle("POST /todos", protect(todoHandler.Create))
	mux.Handle("GET /todos/{id}", protect(todoHandler.Get))
	mux.Handle("PUT /todos/{id}", protect(todoHandler.Update))
	mux.Handle("DELETE /todos/{id}", protect(todoHandler.Delete))

	return logging.Handle(mux)
}

func handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"message": "Hello World"}` + "\n"))
}
