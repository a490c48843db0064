package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ndanyliw/tasklist-server/internal/apierrors"
	"github.com/ndanyliw/tasklist-server/internal/logger"
	"github.com/ndanyliw/tasklist-server/internal/model"
)

// TodoService defines business operations for todo management. Every
// operation is scoped by the authenticated user's id.
type TodoService interface {
	CreateTodo(ctx context.Context, userID int64, title string, completed bool) (model.Todo, error)
	GetTodo(ctx context.Context, userID int64, todoID int64) (model.Todo, error)
	GetTodos(ctx context.Context, userID int64) ([]model.Todo, error)
	UpdateTodo(ctx context.Context, userID int64, todoID int64, title string, completed bool) (model.Todo, error)
	DeleteTodo(ctx context.Context, userID int64, todoID int64) error
}

// Todo handles HTTP endpoints for todos.
type Todo struct {
	todoService    TodoService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTodo creates a new Todo handler.
func NewTodo(todoService TodoService, contextManager model.ContextManager, logger *logger.Logger) *Todo {
	return &Todo{
		todoService:    todoService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type todoRequest struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type todoResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// List returns all todos owned by the authenticated user.
func (h *Todo) List(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil {
		handleError(w, err)
		return
	}

	todos, err := h.todoService.GetTodos(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("Todo handler: list failed",
			"user_id", user.ID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	response := make([]todoResponse, 0, len(todos))
	for _, todo := range todos {
		response = append(response, convertTodo(todo))
	}

	writeJSON(w, http.StatusOK, response)
}

// Create adds a todo owned by the authenticated user.
func (h *Todo) Create(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var req todoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, apierrors.NewErrValidation("invalid request body"))
		return
	}
	if req.Title == "" {
		handleError(w, apierrors.NewErrValidation("title is required"))
		return
	}

	todo, err := h.todoService.CreateTodo(r.Context(), user.ID, req.Title, req.Completed)
	if err != nil {
		h.logger.Error("Todo handler: create failed",
			"user_id", user.ID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, convertTodo(todo))
}

// Get returns a single todo by id.
func (h *Todo) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil {
		handleError(w, err)
		return
	}

	todoID, err := parseTodoID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	todo, err := h.todoService.GetTodo(r.Context(), user.ID, todoID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, convertTodo(todo))
}

// Update replaces the title and completed flag of a todo.
func (h *Todo) Update(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil {
		handleError(w, err)
		return
	}

	todoID, err := parseTodoID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var req todoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, apierrors.NewErrValidation("invalid request body"))
		return
	}
	if req.Title == "" {
		handleError(w, apierrors.NewErrValidation("title is required"))
		return
	}

	todo, err := h.todoService.UpdateTodo(r.Context(), user.ID, todoID, req.Title, req.Completed)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, convertTodo(todo))
}

// Delete removes a todo.
func (h *Todo) Delete(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil {
		handleError(w, err)
		return
	}

	todoID, err := parseTodoID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.todoService.DeleteTodo(r.Context(), user.ID, todoID); err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Todo deleted"})
}

func (h *Todo) currentUser(r *http.Request) (model.User, error) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		return model.User{}, apierrors.NewErrInvalidCredentials()
	}
	return user, nil
}

func parseTodoID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, apierrors.NewErrValidation("invalid todo id")
	}
	return id, nil
}

func convertTodo(todo model.Todo) todoResponse {
	return todoResponse{
		ID:        todo.ID,
		Title:     todo.Title,
		Completed: todo.Completed,
	}
}
