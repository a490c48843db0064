package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ndanyliw/tasklist-server/internal/apierrors"
	"github.com/ndanyliw/tasklist-server/internal/model"
	"github.com/ndanyliw/tasklist-server/internal/testutil"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, username, email, password string) (model.User, error) {
	args := m.Called(ctx, username, email, password)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func TestAuth_Register_Success(t *testing.T) {
	authService := &authServiceMock{}
	authService.On("Register", mock.Anything, "alice", "alice@x.com", "pw123").
		Return(model.User{ID: 1, Username: "alice", Email: "alice@x.com", PasswordHash: "digest"}, nil)

	h := NewAuth(authService, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/users/register",
		strings.NewReader(`{"username": "alice", "email": "alice@x.com", "password": "pw123"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id": 1, "username": "alice", "email": "alice@x.com"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "digest")
}

func TestAuth_Register_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{`},
		{name: "missing username", body: `{"email": "a@x.com", "password": "pw"}`},
		{name: "missing email", body: `{"username": "alice", "password": "pw"}`},
		{name: "email without at sign", body: `{"username": "alice", "email": "nope", "password": "pw"}`},
		{name: "missing password", body: `{"username": "alice", "email": "a@x.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authService := &authServiceMock{}
			h := NewAuth(authService, testutil.MakeNoopLogger())

			req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Register(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			authService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAuth_Register_Conflict(t *testing.T) {
	authService := &authServiceMock{}
	authService.On("Register", mock.Anything, "alice", "other@x.com", "pw123").
		Return(model.User{}, apierrors.NewErrConflict("username"))

	h := NewAuth(authService, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/users/register",
		strings.NewReader(`{"username": "alice", "email": "other@x.com", "password": "pw123"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error": "username already exists"}`, rec.Body.String())
}

func loginRequest(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestAuth_Login_Success(t *testing.T) {
	authService := &authServiceMock{}
	authService.On("Login", mock.Anything, "alice", "pw123").Return("token", nil)

	h := NewAuth(authService, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.Login(rec, loginRequest(url.Values{"username": {"alice"}, "password": {"pw123"}}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access_token": "token", "token_type": "bearer"}`, rec.Body.String())
}

func TestAuth_Login_MissingFields(t *testing.T) {
	authService := &authServiceMock{}
	h := NewAuth(authService, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.Login(rec, loginRequest(url.Values{"username": {"alice"}}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	authService.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuth_Login_InvalidCredentialsShapeIsUniform(t *testing.T) {
	unknownService := &authServiceMock{}
	unknownService.On("Login", mock.Anything, "ghost", "pw").
		Return("", apierrors.NewErrInvalidCredentials())

	wrongPwService := &authServiceMock{}
	wrongPwService.On("Login", mock.Anything, "alice", "wrong").
		Return("", apierrors.NewErrInvalidCredentials())

	recUnknown := httptest.NewRecorder()
	NewAuth(unknownService, testutil.MakeNoopLogger()).
		Login(recUnknown, loginRequest(url.Values{"username": {"ghost"}, "password": {"pw"}}))

	recWrongPw := httptest.NewRecorder()
	NewAuth(wrongPwService, testutil.MakeNoopLogger()).
		Login(recWrongPw, loginRequest(url.Values{"username": {"alice"}, "password": {"wrong"}}))

	require.Equal(t, http.StatusUnauthorized, recUnknown.Code)
	require.Equal(t, http.StatusUnauthorized, recWrongPw.Code)
	assert.Equal(t, recUnknown.Body.String(), recWrongPw.Body.String())
}
