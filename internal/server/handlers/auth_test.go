package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesvc/internal/models"
	"notesvc/internal/server/auth"
	"notesvc/internal/server/storage"
	"notesvc/internal/server/token"
	"notesvc/pkg/api"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users       map[string]*models.User // username -> User
	createError error
	getError    error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Username]; exists {
		return storage.ErrUserAlreadyExists
	}
	user.ID = int64(len(m.users) + 1)
	m.users[user.Username] = user
	return nil
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func testTokenService() *token.Service {
	return token.NewService("test-secret", 30*time.Minute)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler(w, req)
	return w
}

func TestAuthHandler_Register_Success(t *testing.T) {
	users := newMockUserStorage()
	h := NewAuthHandler(setupTestLogger(), users, testTokenService())

	w := postJSON(t, h.Register, "/auth/register", api.RegisterRequest{
		Username: "dave",
		Password: "pw1-secret",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp api.MessageResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "User registered successfully", resp.Message)

	// Password is stored hashed, never verbatim.
	stored := users.users["dave"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "pw1-secret", stored.PasswordHash)
	assert.True(t, auth.VerifyPassword("pw1-secret", stored.PasswordHash))
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	users := newMockUserStorage()
	h := NewAuthHandler(setupTestLogger(), users, testTokenService())

	w := postJSON(t, h.Register, "/auth/register", api.RegisterRequest{
		Username: "dave", Password: "pw1-secret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	firstHash := users.users["dave"].PasswordHash

	w = postJSON(t, h.Register, "/auth/register", api.RegisterRequest{
		Username: "dave", Password: "another-pw",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists")

	// First registration's credential is untouched.
	assert.Equal(t, firstHash, users.users["dave"].PasswordHash)
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantMsg  string
	}{
		{name: "empty username", username: "", password: "pw1-secret", wantMsg: "username cannot be empty"},
		{name: "bad username", username: "a b", password: "pw1-secret", wantMsg: "username"},
		{name: "short password", username: "dave", password: "pw1", wantMsg: "password must be at least"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(setupTestLogger(), newMockUserStorage(), testTokenService())

			w := postJSON(t, h.Register, "/auth/register", api.RegisterRequest{
				Username: tt.username, Password: tt.password,
			})

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
		})
	}
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	h := NewAuthHandler(setupTestLogger(), newMockUserStorage(), testTokenService())

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	h.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestAuthHandler_Register_StorageError(t *testing.T) {
	users := newMockUserStorage()
	users.createError = errors.New("disk full")
	h := NewAuthHandler(setupTestLogger(), users, testTokenService())

	w := postJSON(t, h.Register, "/auth/register", api.RegisterRequest{
		Username: "dave", Password: "pw1-secret",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Internal detail must not leak.
	assert.NotContains(t, w.Body.String(), "disk full")
}

func registerUser(t *testing.T, users *mockUserStorage, username, password string) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, users.CreateUser(context.Background(), &models.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}))
}

func TestAuthHandler_Login_Success(t *testing.T) {
	users := newMockUserStorage()
	registerUser(t, users, "dave", "pw1-secret")

	tokens := testTokenService()
	h := NewAuthHandler(setupTestLogger(), users, tokens)

	w := postJSON(t, h.Login, "/auth/login", api.LoginRequest{
		Username: "dave", Password: "pw1-secret",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.TokenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "bearer", resp.TokenType)

	subject, err := tokens.Verify(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "dave", subject)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	users := newMockUserStorage()
	registerUser(t, users, "dave", "pw1-secret")
	h := NewAuthHandler(setupTestLogger(), users, testTokenService())

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "dave", password: "wrong-pw"},
		{name: "empty password", username: "dave", password: ""},
		{name: "unknown user", username: "mallory", password: "pw1-secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, h.Login, "/auth/login", api.LoginRequest{
				Username: tt.username, Password: tt.password,
			})

			// Identical response for every failure mode.
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Invalid credentials")
		})
	}
}

func TestAuthHandler_Login_StorageError(t *testing.T) {
	users := newMockUserStorage()
	users.getError = errors.New("connection refused")
	h := NewAuthHandler(setupTestLogger(), users, testTokenService())

	w := postJSON(t, h.Login, "/auth/login", api.LoginRequest{
		Username: "dave", Password: "pw1-secret",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
