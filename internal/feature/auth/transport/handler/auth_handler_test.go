package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade_backend/internal/feature/auth/domain/entity"
	"trade_backend/internal/feature/auth/usecase"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc func(ctx context.Context, username, email, password string) error
	LoginFunc    func(ctx context.Context, email, password string) (string, *entity.User, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, username, email, password string) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, email, password)
	}
	return nil // Default: success
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", nil, errors.New("login failed") // Default: failure
}

func postJSON(t *testing.T, router *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		requestBody      gin.H
		mockRegisterFunc func(ctx context.Context, username, email, password string) error
		expectedStatus   int
		expectedError    string
	}{
		{
			name:             "success: user registration",
			requestBody:      gin.H{"username": "alice", "email": "test@example.com", "password": "password123"},
			mockRegisterFunc: func(ctx context.Context, username, email, password string) error { return nil },
			expectedStatus:   http.StatusCreated,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"username": "alice", "email": "invalid-email", "password": "password123"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
		{
			name:           "failure: missing username",
			requestBody:    gin.H{"email": "test@example.com", "password": "password123"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
		{
			name:           "failure: short password",
			requestBody:    gin.H{"username": "alice", "email": "test@example.com", "password": "p1"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
		{
			name:        "failure: duplicate email",
			requestBody: gin.H{"username": "alice", "email": "existing@example.com", "password": "password123"},
			mockRegisterFunc: func(ctx context.Context, username, email, password string) error {
				return usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "email already registered",
		},
		{
			name:        "failure: store error",
			requestBody: gin.H{"username": "alice", "email": "test@example.com", "password": "password123"},
			mockRegisterFunc: func(ctx context.Context, username, email, password string) error {
				return errors.New("connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Registration failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{RegisterFunc: tt.mockRegisterFunc}
			h := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/api/auth/register", h.Register)

			w := postJSON(t, router, "/api/auth/register", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedError, body["error"])
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	aliceLogin := func(ctx context.Context, email, password string) (string, *entity.User, error) {
		if email == "a@x.com" && password == "p1secret" {
			return "signed-token", &entity.User{ID: 1, Username: "alice"}, nil
		}
		return "", nil, usecase.ErrInvalidCredentials
	}

	t.Run("success returns token and user info", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{LoginFunc: aliceLogin})
		router := gin.New()
		router.POST("/api/auth/login", h.Login)

		w := postJSON(t, router, "/api/auth/login", gin.H{"email": "a@x.com", "password": "p1secret"})

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Message string `json:"message"`
			Token   string `json:"token"`
			User    struct {
				ID       uint   `json:"id"`
				Username string `json:"username"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "signed-token", body.Token)
		assert.Equal(t, uint(1), body.User.ID)
		assert.Equal(t, "alice", body.User.Username)
	})

	t.Run("bad credentials return 400", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{LoginFunc: aliceLogin})
		router := gin.New()
		router.POST("/api/auth/login", h.Login)

		w := postJSON(t, router, "/api/auth/login", gin.H{"email": "a@x.com", "password": "wrong"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid Email or Password"}`, w.Body.String())
	})

	t.Run("invalid request body returns 400", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})
		router := gin.New()
		router.POST("/api/auth/login", h.Login)

		w := postJSON(t, router, "/api/auth/login", gin.H{"email": "not-an-email"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store error returns 500", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string) (string, *entity.User, error) {
				return "", nil, errors.New("connection refused")
			},
		})
		router := gin.New()
		router.POST("/api/auth/login", h.Login)

		w := postJSON(t, router, "/api/auth/login", gin.H{"email": "a@x.com", "password": "p1secret"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
