package usecase

import (
	"context"
	"testing"

	"campus-booking/internal/dto/request"
	"campus-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthService(t *testing.T) (AuthService, *fakeUserRepo, *fakeSessionRepo) {
	t.Helper()

	repo, _, _, users, sessions := newTestRepository()
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}
	service := NewAuthService(repo, config, zap.NewNop())
	return service, users, sessions
}

func registerReq() *request.RegisterRequest {
	return &request.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@campus.edu",
		Password: "hunter22",
		Society:  "Tennis Club",
	}
}

func TestRegisterCreatesUserAndSession(t *testing.T) {
	service, users, sessions := newTestAuthService(t)

	resp, err := service.Register(context.Background(), registerReq())
	require.NoError(t, err)

	assert.Equal(t, "Alice", resp.User.Name)
	assert.Equal(t, "Tennis Club", resp.User.Society)
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.ExpiresAt)

	stored, err := users.FindByEmail(context.Background(), "alice@campus.edu")
	require.NoError(t, err)
	require.NotNil(t, stored)
	// Stored hash, never the plaintext
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.True(t, utils.CheckPassword(stored.PasswordHash, "hunter22"))

	session, err := sessions.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, stored.ID, session.UserID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service, _, _ := newTestAuthService(t)

	_, err := service.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = service.Register(context.Background(), registerReq())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	service, _, _ := newTestAuthService(t)

	tests := []struct {
		name string
		req  *request.RegisterRequest
	}{
		{"missing name", &request.RegisterRequest{Email: "a@b.edu", Password: "hunter22", Society: "Club"}},
		{"bad email", &request.RegisterRequest{Name: "A", Email: "not-an-email", Password: "hunter22", Society: "Club"}},
		{"short password", &request.RegisterRequest{Name: "A", Email: "a@b.edu", Password: "abc", Society: "Club"}},
		{"missing society", &request.RegisterRequest{Name: "A", Email: "a@b.edu", Password: "hunter22"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestLogin(t *testing.T) {
	service, _, _ := newTestAuthService(t)

	_, err := service.Register(context.Background(), registerReq())
	require.NoError(t, err)

	resp, err := service.Login(context.Background(), &request.LoginRequest{
		Email:    "alice@campus.edu",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@campus.edu", resp.User.Email)
	assert.NotEmpty(t, resp.Token)

	_, err = service.Login(context.Background(), &request.LoginRequest{
		Email:    "alice@campus.edu",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@campus.edu",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutRevokesSession(t *testing.T) {
	service, _, sessions := newTestAuthService(t)

	resp, err := service.Register(context.Background(), registerReq())
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), resp.Token))

	session, err := sessions.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}
