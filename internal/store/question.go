package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/openlearn/forum-api/internal/domain"
)

// QuestionStore defines the interface for question data persistence.
// The attachment ID list is part of the question's persisted state and is
// saved and loaded together with the question itself.
type QuestionStore interface {
	// Create saves a new question to the store, including its attachment
	// references. Returns ErrSlugExists if a question with the same slug
	// already exists.
	Create(ctx context.Context, question *domain.Question) error

	// GetByID retrieves a question by its unique ID.
	// Returns ErrQuestionNotFound if the question does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)

	// GetBySlug retrieves a question by its URL slug.
	// Returns ErrQuestionNotFound if no question matches.
	GetBySlug(ctx context.Context, slug string) (*domain.Question, error)

	// ListRecent returns one fixed-size page of questions ordered
	// most-recent-first. The page number is 1-based and assumed validated by
	// the caller.
	ListRecent(ctx context.Context, page int) ([]*domain.Question, error)

	// Update persists the question's current state in full, replacing the
	// stored attachment reference list.
	// Returns ErrQuestionNotFound if the question does not exist.
	Update(ctx context.Context, question *domain.Question) error

	// Delete removes a question from the store. Referenced attachments are
	// not deleted; only the reference rows go away.
	// Returns ErrQuestionNotFound if the question does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
