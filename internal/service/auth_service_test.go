package service

import (
	"context"
	"testing"
	"time"

	"resto-board/internal/auth"
	"resto-board/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(repo *mockRestaurantRepository) AuthService {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(repo, tokens, zerolog.Nop())
}

func TestRegister(t *testing.T) {
	repo := new(mockRestaurantRepository)
	svc := newTestAuthService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *model.Restaurant) bool {
		return r.Email == "owner@example.com" && r.PasswordHash != "pass-word-1"
	})).Return(nil)

	resp, err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:    "Owner@Example.com",
		Password: "pass-word-1",
		Name:     "Trattoria",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "owner@example.com", resp.Restaurant.Email)
	repo.AssertExpectations(t)
}

func TestRegisterValidation(t *testing.T) {
	repo := new(mockRestaurantRepository)
	svc := newTestAuthService(repo)

	tests := []struct {
		name string
		req  model.RegisterRequest
	}{
		{name: "missing email", req: model.RegisterRequest{Password: "pass-word-1", Name: "X"}},
		{name: "bad email", req: model.RegisterRequest{Email: "nope", Password: "pass-word-1", Name: "X"}},
		{name: "short password", req: model.RegisterRequest{Email: "a@b.com", Password: "short", Name: "X"}},
		{name: "missing name", req: model.RegisterRequest{Email: "a@b.com", Password: "pass-word-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &tt.req)
			var domainErr *model.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, model.ErrCodeValidation, domainErr.Code)
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterEmailTaken(t *testing.T) {
	repo := new(mockRestaurantRepository)
	svc := newTestAuthService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(model.ErrEmailTaken)

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:    "owner@example.com",
		Password: "pass-word-1",
		Name:     "Trattoria",
	})
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	repo := new(mockRestaurantRepository)
	svc := newTestAuthService(repo)

	hash, err := auth.HashPassword("pass-word-1")
	require.NoError(t, err)

	repo.On("GetByEmail", mock.Anything, "owner@example.com").Return(&model.Restaurant{
		ID:           uuid.New(),
		Email:        "owner@example.com",
		PasswordHash: hash,
	}, nil)

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "owner@example.com",
		Password: "pass-word-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginBadCredentials(t *testing.T) {
	repo := new(mockRestaurantRepository)
	svc := newTestAuthService(repo)

	hash, err := auth.HashPassword("pass-word-1")
	require.NoError(t, err)

	repo.On("GetByEmail", mock.Anything, "owner@example.com").Return(&model.Restaurant{
		ID:           uuid.New(),
		Email:        "owner@example.com",
		PasswordHash: hash,
	}, nil)
	repo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	// Wrong password and unknown email must be indistinguishable.
	_, err = svc.Login(context.Background(), &model.LoginRequest{Email: "owner@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, model.ErrBadCredentials)

	_, err = svc.Login(context.Background(), &model.LoginRequest{Email: "nobody@example.com", Password: "pass-word-1"})
	assert.ErrorIs(t, err, model.ErrBadCredentials)
}
