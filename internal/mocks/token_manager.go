package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/ndanyliw/tasklist-server/internal/model"
)

// TokenManager is a mock of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) Generate(username string, userID int64) (string, error) {
	args := m.Called(username, userID)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) Parse(token string) (model.Claims, error) {
	args := m.Called(token)
	return args.Get(0).(model.Claims), args.Error(1)
}
