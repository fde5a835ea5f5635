package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openlearn/forum-api/internal/api"
	"github.com/openlearn/forum-api/internal/config"
	"github.com/openlearn/forum-api/internal/mocks"
	"github.com/openlearn/forum-api/internal/service"
	"github.com/openlearn/forum-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-secret-test-secret-test-secret!",
		TokenLifetimeMinutes: 60,
	}
}

func newAuthHandler(t *testing.T) *api.AuthHandler {
	t.Helper()

	jwtService, err := auth.NewJWTService(testAuthConfig())
	require.NoError(t, err)

	hasher := mocks.FakeHasher{}
	studentService := service.NewStudentService(mocks.NewStudentStore(), hasher, hasher, jwtService, nil)

	return api.NewAuthHandler(studentService, jwtService)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("valid registration returns a token", func(t *testing.T) {
		handler := newAuthHandler(t)

		rr := postJSON(t, handler.Register, "/accounts", api.RegisterRequest{
			Name:     "Jo Doe",
			Email:    "jo@example.com",
			Password: "super-secret",
		})

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp api.AuthResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.NotEmpty(t, resp.Token)
		assert.NotEmpty(t, resp.StudentID)
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		handler := newAuthHandler(t)

		first := postJSON(t, handler.Register, "/accounts", api.RegisterRequest{
			Name:     "Jo Doe",
			Email:    "jo@example.com",
			Password: "super-secret",
		})
		require.Equal(t, http.StatusCreated, first.Code)

		second := postJSON(t, handler.Register, "/accounts", api.RegisterRequest{
			Name:     "Someone Else",
			Email:    "jo@example.com",
			Password: "other-secret",
		})
		assert.Equal(t, http.StatusConflict, second.Code)
	})

	t.Run("invalid payload returns 400", func(t *testing.T) {
		handler := newAuthHandler(t)

		rr := postJSON(t, handler.Register, "/accounts", api.RegisterRequest{
			Name:     "Jo Doe",
			Email:    "not-an-email",
			Password: "super-secret",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("short password returns 400", func(t *testing.T) {
		handler := newAuthHandler(t)

		rr := postJSON(t, handler.Register, "/accounts", api.RegisterRequest{
			Name:     "Jo Doe",
			Email:    "jo@example.com",
			Password: "short",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		handler := newAuthHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader([]byte("{not json")))
		rr := httptest.NewRecorder()
		handler.Register(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	register := func(t *testing.T, handler *api.AuthHandler) {
		t.Helper()
		rr := postJSON(t, handler.Register, "/accounts", api.RegisterRequest{
			Name:     "Jo Doe",
			Email:    "jo@example.com",
			Password: "super-secret",
		})
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	t.Run("valid credentials return a token", func(t *testing.T) {
		handler := newAuthHandler(t)
		register(t, handler)

		rr := postJSON(t, handler.Login, "/sessions", api.LoginRequest{
			Email:    "jo@example.com",
			Password: "super-secret",
		})
		require.Equal(t, http.StatusOK, rr.Code)

		var resp api.AuthResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		handler := newAuthHandler(t)
		register(t, handler)

		rr := postJSON(t, handler.Login, "/sessions", api.LoginRequest{
			Email:    "jo@example.com",
			Password: "not-the-password",
		})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("unknown email returns the same 401", func(t *testing.T) {
		handler := newAuthHandler(t)

		rr := postJSON(t, handler.Login, "/sessions", api.LoginRequest{
			Email:    "nobody@example.com",
			Password: "super-secret",
		})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
