package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/openlearn/forum-api/internal/domain"
	"github.com/openlearn/forum-api/internal/platform/logger"
	"github.com/openlearn/forum-api/internal/service/auth"
	"github.com/openlearn/forum-api/internal/store"
)

// StudentService implements the account use-cases: registration and
// authentication.
type StudentService struct {
	students store.StudentStore
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	tokens   auth.JWTService
	logger   *slog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(
	students store.StudentStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	tokens auth.JWTService,
	log *slog.Logger,
) *StudentService {
	if log == nil {
		log = slog.Default()
	}
	return &StudentService{
		students: students,
		hasher:   hasher,
		verifier: verifier,
		tokens:   tokens,
		logger:   log.With(slog.String("component", "student_service")),
	}
}

// RegisterStudentRequest carries the input for Register.
type RegisterStudentRequest struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new student account. The password is hashed through the
// injected hasher before it ever reaches the store.
// Returns store.ErrEmailExists when the email is already taken.
func (s *StudentService) Register(
	ctx context.Context,
	req RegisterStudentRequest,
) (*domain.Student, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	student, err := domain.NewStudent(req.Name, req.Email, hashedPassword)
	if err != nil {
		return nil, err
	}

	// Email uniqueness is a single logical store operation backed by the
	// unique index, not a check-then-insert here.
	if err := s.students.Create(ctx, student); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return nil, store.ErrEmailExists
		}
		log.Error("failed to create student",
			slog.String("error", err.Error()),
			slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	log.Info("student registered", slog.String("student_id", student.ID.String()))
	return student, nil
}

// AuthenticateStudentRequest carries the input for Authenticate.
type AuthenticateStudentRequest struct {
	Email    string
	Password string
}

// Authenticate verifies a student's credentials and issues a signed access
// token. Both an unknown email and a wrong password yield the single
// ErrWrongCredentials; the caller can never tell which occurred.
func (s *StudentService) Authenticate(
	ctx context.Context,
	req AuthenticateStudentRequest,
) (*domain.Student, string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	student, err := s.students.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", ErrWrongCredentials
		}
		log.Error("failed to look up student by email", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("failed to look up student: %w", err)
	}

	if err := s.verifier.Compare(student.HashedPassword, req.Password); err != nil {
		return nil, "", ErrWrongCredentials
	}

	token, err := s.tokens.GenerateToken(ctx, student.ID)
	if err != nil {
		log.Error("failed to generate access token",
			slog.String("error", err.Error()),
			slog.String("student_id", student.ID.String()))
		return nil, "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return student, token, nil
}
