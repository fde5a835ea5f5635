package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/openlearn/forum-api/internal/domain"
)

// AnswerStore defines the interface for answer data persistence.
type AnswerStore interface {
	// Create saves a new answer to the store, including its attachment
	// references.
	Create(ctx context.Context, answer *domain.Answer) error

	// GetByID retrieves an answer by its unique ID.
	// Returns ErrAnswerNotFound if the answer does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error)

	// ListByQuestionID returns one fixed-size page of a question's answers
	// ordered most-recent-first, each hydrated with its author's name.
	// Partial hydration is not a valid outcome: either every returned answer
	// carries its author or the call fails.
	ListByQuestionID(ctx context.Context, questionID uuid.UUID, page int) ([]*domain.AnswerWithAuthor, error)

	// Update persists the answer's current state in full, replacing the
	// stored attachment reference list.
	// Returns ErrAnswerNotFound if the answer does not exist.
	Update(ctx context.Context, answer *domain.Answer) error

	// Delete removes an answer from the store.
	// Returns ErrAnswerNotFound if the answer does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
