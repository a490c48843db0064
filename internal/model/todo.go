package model

import (
	"context"
	"time"
)

// TodoStore defines persistence operations for todos. Every query is
// scoped by the owning user id: a todo belonging to someone else is
// indistinguishable from an absent one.
type TodoStore interface {
	Create(ctx context.Context, todo Todo) (Todo, error)
	GetByIDAndOwner(ctx context.Context, id int64, ownerID int64) (Todo, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]Todo, error)
	UpdateOwned(ctx context.Context, todo Todo) (Todo, error)
	DeleteOwned(ctx context.Context, id int64, ownerID int64) error
}

// Todo represents a stored task entity.
type Todo struct {
	ID        int64
	Title     string
	Completed bool
	UserID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
