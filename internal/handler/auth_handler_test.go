package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"resto-board/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthResponse), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthResponse), args.Error(1)
}

func TestRegisterEndpoint(t *testing.T) {
	svc := new(mockAuthService)
	h := NewAuthHandler(svc, zerolog.Nop())

	svc.On("Register", mock.Anything, mock.Anything).Return(&model.AuthResponse{
		Token:      "a.b.c",
		Restaurant: &model.Restaurant{ID: uuid.New(), Email: "owner@example.com", Name: "Trattoria"},
	}, nil)

	body := []byte(`{"email":"owner@example.com","password":"pass-word-1","name":"Trattoria"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp model.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a.b.c", resp.Token)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestRegisterEndpointEmailTaken(t *testing.T) {
	svc := new(mockAuthService)
	h := NewAuthHandler(svc, zerolog.Nop())

	svc.On("Register", mock.Anything, mock.Anything).Return(nil, model.ErrEmailTaken)

	body := []byte(`{"email":"owner@example.com","password":"pass-word-1","name":"Trattoria"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	svc := new(mockAuthService)
	h := NewAuthHandler(svc, zerolog.Nop())

	svc.On("Login", mock.Anything, mock.Anything).Return(nil, model.ErrBadCredentials)

	body := []byte(`{"email":"owner@example.com","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginEndpointBadJSON(t *testing.T) {
	svc := new(mockAuthService)
	h := NewAuthHandler(svc, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte(`{`)))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}
