package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/openlearn/forum-api/internal/api/shared"
	"github.com/openlearn/forum-api/internal/domain"
)

// getStudentIDFromContext extracts the authenticated student's UUID from the
// request context. The ID is placed there by the authentication middleware.
func getStudentIDFromContext(r *http.Request) (uuid.UUID, bool) {
	studentID, ok := r.Context().Value(shared.StudentIDContextKey).(uuid.UUID)
	if !ok || studentID == uuid.Nil {
		return uuid.Nil, false
	}
	return studentID, true
}

// requireStudentID extracts the authenticated student's UUID and writes a
// 401 response if it is missing. Returns false when the response has been
// written.
func requireStudentID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	studentID, ok := getStudentIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Student ID not found or invalid")
		return uuid.Nil, false
	}
	return studentID, true
}

// getPathUUID extracts a UUID from the URL path parameters, validating the
// format.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// getPageParam reads the ?page= query parameter, defaulting to 1 when
// absent. A non-numeric value yields a validation error; values below 1 are
// passed through for the use-case layer to reject.
func getPageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError("page", "must be an integer", domain.ErrValidation)
	}

	return page, nil
}
