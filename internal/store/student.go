package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/openlearn/forum-api/internal/domain"
)

// StudentStore defines the interface for student data persistence.
type StudentStore interface {
	// Create saves a new student to the store.
	// Email uniqueness is enforced here as a single logical operation;
	// returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, student *domain.Student) error

	// GetByID retrieves a student by their unique ID.
	// Returns ErrStudentNotFound if the student does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error)

	// GetByEmail retrieves a student by their email address.
	// Returns ErrStudentNotFound if the student does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.Student, error)
}
