package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ndanyliw/tasklist-server/internal/model"
)

var _ model.TodoStore = (*TodoRepository)(nil)

type TodoRepository struct {
	db *Connection
}

func NewTodoRepository(db *Connection) *TodoRepository {
	return &TodoRepository{
		db: db,
	}
}

func (r *TodoRepository) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	query := `INSERT INTO todos (title, completed, user_id)
			  VALUES ($1, $2, $3)
			  RETURNING id, title, completed, user_id, created_at, updated_at`

	var savedTodo model.Todo
	err := r.db.QueryRow(ctx, query,
		todo.Title, todo.Completed, todo.UserID,
	).Scan(
		&savedTodo.ID, &savedTodo.Title, &savedTodo.Completed, &savedTodo.UserID,
		&savedTodo.CreatedAt, &savedTodo.UpdatedAt,
	)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	return savedTodo, nil
}

func (r *TodoRepository) GetByIDAndOwner(ctx context.Context, id int64, ownerID int64) (model.Todo, error) {
	var todo model.Todo
	query := `SELECT id, title, completed, user_id, created_at, updated_at
			  FROM todos WHERE id = $1 AND user_id = $2`

	err := r.db.QueryRow(ctx, query, id, ownerID).Scan(
		&todo.ID, &todo.Title, &todo.Completed, &todo.UserID,
		&todo.CreatedAt, &todo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Todo{}, model.ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to get todo by id: %w", err)
	}

	return todo, nil
}

func (r *TodoRepository) GetByOwner(ctx context.Context, ownerID int64) ([]model.Todo, error) {
	query := `SELECT id, title, completed, user_id, created_at, updated_at
			  FROM todos WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get todos by owner: %w", err)
	}
	defer rows.Close()

	todos := make([]model.Todo, 0)
	for rows.Next() {
		var todo model.Todo
		if err := rows.Scan(
			&todo.ID, &todo.Title, &todo.Completed, &todo.UserID,
			&todo.CreatedAt, &todo.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read todos: %w", err)
	}

	return todos, nil
}

func (r *TodoRepository) UpdateOwned(ctx context.Context, todo model.Todo) (model.Todo, error) {
	query := `UPDATE todos SET title = $1, completed = $2, updated_at = now()
			  WHERE id = $3 AND user_id = $4
			  RETURNING id, title, completed, user_id, created_at, updated_at`

	var savedTodo model.Todo
	err := r.db.QueryRow(ctx, query,
		todo.Title, todo.Completed, todo.ID, todo.UserID,
	).Scan(
		&savedTodo.ID, &savedTodo.Title, &savedTodo.Completed, &savedTodo.UserID,
		&savedTodo.CreatedAt, &savedTodo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Todo{}, model.ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to update todo: %w", err)
	}

	return savedTodo, nil
}

func (r *TodoRepository) DeleteOwned(ctx context.Context, id int64, ownerID int64) error {
	query := `DELETE FROM todos WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
