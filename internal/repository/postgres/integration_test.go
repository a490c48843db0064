//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ndanyliw/tasklist-server/internal/model"
	repo "github.com/ndanyliw/tasklist-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "tasklist_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/tasklist_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)

	saved, err := ur.Create(ctx, model.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "digest",
	})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)
	require.False(t, saved.CreatedAt.IsZero())

	byUsername, err := ur.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, saved.ID, byUsername.ID)
	require.Equal(t, "digest", byUsername.PasswordHash)

	byID, err := ur.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", byID.Email)

	_, err = ur.GetByUsername(ctx, "nobody")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_UniqueConstraints(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)

	_, err = ur.Create(ctx, model.User{Username: "bob", Email: "bob@example.com", PasswordHash: "d"})
	require.NoError(t, err)

	_, err = ur.Create(ctx, model.User{Username: "bob", Email: "bob2@example.com", PasswordHash: "d"})
	var conflict *model.ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "username", conflict.Field)

	_, err = ur.Create(ctx, model.User{Username: "bob2", Email: "bob@example.com", PasswordHash: "d"})
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "email", conflict.Field)
}

func TestTodoRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	tr := repo.NewTodoRepository(conn)

	owner, err := ur.Create(ctx, model.User{Username: "carol", Email: "carol@example.com", PasswordHash: "d"})
	require.NoError(t, err)
	other, err := ur.Create(ctx, model.User{Username: "dave", Email: "dave@example.com", PasswordHash: "d"})
	require.NoError(t, err)

	created, err := tr.Create(ctx, model.Todo{Title: "buy milk", UserID: owner.ID})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.Completed)

	got, err := tr.GetByIDAndOwner(ctx, created.ID, owner.ID)
	require.NoError(t, err)
	require.Equal(t, "buy milk", got.Title)

	_, err = tr.GetByIDAndOwner(ctx, created.ID, other.ID)
	require.ErrorIs(t, err, model.ErrNotFound)

	list, err := tr.GetByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	otherList, err := tr.GetByOwner(ctx, other.ID)
	require.NoError(t, err)
	require.Empty(t, otherList)

	updated, err := tr.UpdateOwned(ctx, model.Todo{ID: created.ID, UserID: owner.ID, Title: "buy oat milk", Completed: true})
	require.NoError(t, err)
	require.True(t, updated.Completed)
	require.Equal(t, "buy oat milk", updated.Title)

	_, err = tr.UpdateOwned(ctx, model.Todo{ID: created.ID, UserID: other.ID, Title: "hijack"})
	require.ErrorIs(t, err, model.ErrNotFound)

	err = tr.DeleteOwned(ctx, created.ID, other.ID)
	require.ErrorIs(t, err, model.ErrNotFound)

	err = tr.DeleteOwned(ctx, created.ID, owner.ID)
	require.NoError(t, err)

	err = tr.DeleteOwned(ctx, created.ID, owner.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestTodoRepository_CascadeOnUserDelete(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	tr := repo.NewTodoRepository(conn)

	owner, err := ur.Create(ctx, model.User{Username: "erin", Email: "erin@example.com", PasswordHash: "d"})
	require.NoError(t, err)
	todo, err := tr.Create(ctx, model.Todo{Title: "ephemeral", UserID: owner.ID})
	require.NoError(t, err)

	_, err = conn.Pool.Exec(ctx, "DELETE FROM users WHERE id = $1", owner.ID)
	require.NoError(t, err)

	_, err = tr.GetByIDAndOwner(ctx, todo.ID, owner.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
}
