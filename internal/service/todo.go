package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndanyliw/tasklist-server/internal/apierrors"
	"github.com/ndanyliw/tasklist-server/internal/logger"
	"github.com/ndanyliw/tasklist-server/internal/model"
)

// Todo implements task operations scoped to the authenticated owner.
// A todo owned by another user is reported as absent.
type Todo struct {
	todoStore model.TodoStore
	logger    *logger.Logger
}

func NewTodo(todoStore model.TodoStore, logger *logger.Logger) *Todo {
	return &Todo{
		todoStore: todoStore,
		logger:    logger,
	}
}

func (s *Todo) CreateTodo(ctx context.Context, userID int64, title string, completed bool) (model.Todo, error) {
	todo, err := s.todoStore.Create(ctx, model.Todo{
		Title:     title,
		Completed: completed,
		UserID:    userID,
	})
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	s.logger.Debug("Todo service: todo created",
		"user_id", userID,
		"todo_id", todo.ID)

	return todo, nil
}

func (s *Todo) GetTodo(ctx context.Context, userID int64, todoID int64) (model.Todo, error) {
	todo, err := s.todoStore.GetByIDAndOwner(ctx, todoID, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Todo{}, apierrors.NewErrTodoNotFound()
	}
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to get todo by id: %w", err)
	}

	return todo, nil
}

func (s *Todo) GetTodos(ctx context.Context, userID int64) ([]model.Todo, error) {
	todos, err := s.todoStore.GetByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get todos by owner: %w", err)
	}

	return todos, nil
}

func (s *Todo) UpdateTodo(ctx context.Context, userID int64, todoID int64, title string, completed bool) (model.Todo, error) {
	todo, err := s.todoStore.UpdateOwned(ctx, model.Todo{
		ID:        todoID,
		Title:     title,
		Completed: completed,
		UserID:    userID,
	})
	if errors.Is(err, model.ErrNotFound) {
		return model.Todo{}, apierrors.NewErrTodoNotFound()
	}
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to update todo: %w", err)
	}

	return todo, nil
}

func (s *Todo) DeleteTodo(ctx context.Context, userID int64, todoID int64) error {
	err := s.todoStore.DeleteOwned(ctx, todoID, userID)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrTodoNotFound()
	}
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	s.logger.Debug("Todo service: todo deleted",
		"user_id", userID,
		"todo_id", todoID)

	return nil
}
