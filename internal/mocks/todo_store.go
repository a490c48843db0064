package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ndanyliw/tasklist-server/internal/model"
)

// TodoStore is a mock of model.TodoStore.
type TodoStore struct {
	mock.Mock
}

func (m *TodoStore) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	args := m.Called(ctx, todo)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *TodoStore) GetByIDAndOwner(ctx context.Context, id int64, ownerID int64) (model.Todo, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *TodoStore) GetByOwner(ctx context.Context, ownerID int64) ([]model.Todo, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Todo), args.Error(1)
}

func (m *TodoStore) UpdateOwned(ctx context.Context, todo model.Todo) (model.Todo, error) {
	args := m.Called(ctx, todo)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *TodoStore) DeleteOwned(ctx context.Context, id int64, ownerID int64) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}
