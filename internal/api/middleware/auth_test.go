package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/openlearn/forum-api/internal/api/middleware"
	"github.com/openlearn/forum-api/internal/api/shared"
	"github.com/openlearn/forum-api/internal/config"
	"github.com/openlearn/forum-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTService(t *testing.T) auth.JWTService {
	t.Helper()
	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "test-secret-test-secret-test-secret!",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)
	return jwtService
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	jwtService := newJWTService(t)
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	// The inner handler records whether it was reached and with which
	// student ID.
	var reachedWith uuid.UUID
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.GetStudentID(r)
		require.True(t, ok)
		reachedWith = id
		w.WriteHeader(http.StatusOK)
	})
	protected := authMiddleware.Authenticate(inner)

	doRequest := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/questions", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)
		return rr
	}

	t.Run("valid token reaches the handler with the student ID", func(t *testing.T) {
		studentID := uuid.New()
		token, err := jwtService.GenerateToken(context.Background(), studentID)
		require.NoError(t, err)

		rr := doRequest("Bearer " + token)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, studentID, reachedWith)
	})

	t.Run("missing header returns 401", func(t *testing.T) {
		rr := doRequest("")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("non-bearer scheme returns 401", func(t *testing.T) {
		rr := doRequest("Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token returns 401", func(t *testing.T) {
		rr := doRequest("Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("token signed with another key returns 401", func(t *testing.T) {
		otherService, err := auth.NewJWTService(config.AuthConfig{
			JWTSecret:            "another-secret-another-secret-another!",
			TokenLifetimeMinutes: 60,
		})
		require.NoError(t, err)

		token, err := otherService.GenerateToken(context.Background(), uuid.New())
		require.NoError(t, err)

		rr := doRequest("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestTraceID(t *testing.T) {
	var traceID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	middleware.TraceID(inner).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, traceID, shared.TraceIDLength*2) // hex-encoded bytes
}
