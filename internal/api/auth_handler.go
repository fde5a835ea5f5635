package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/openlearn/forum-api/internal/api/shared"
	"github.com/openlearn/forum-api/internal/service"
	"github.com/openlearn/forum-api/internal/service/auth"
	"github.com/openlearn/forum-api/internal/store"
)

// AuthHandler handles account registration and session creation.
type AuthHandler struct {
	studentService *service.StudentService
	jwtService     auth.JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(studentService *service.StudentService, jwtService auth.JWTService) *AuthHandler {
	return &AuthHandler{
		studentService: studentService,
		jwtService:     jwtService,
	}
}

// Register handles POST /accounts requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	student, err := h.studentService.Register(r.Context(), service.RegisterStudentRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Email already exists")
			return
		}
		slog.Error("failed to register student", "error", err)
		HandleAPIError(w, r, err, "Failed to register student")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), student.ID)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "student_id", student.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		StudentID: student.ID,
		Token:     token,
	})
}

// Login handles POST /sessions requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	student, token, err := h.studentService.Authenticate(r.Context(), service.AuthenticateStudentRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrWrongCredentials) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("failed to authenticate student", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate student")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		StudentID: student.ID,
		Token:     token,
	})
}
