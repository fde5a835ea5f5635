package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/openlearn/forum-api/internal/domain"
)

// CommentStore defines the interface for comment data persistence. Both
// comment flavors (on-question and on-answer) share one store; the parent
// type disambiguates.
type CommentStore interface {
	// Create saves a new comment to the store.
	Create(ctx context.Context, comment *domain.Comment) error

	// GetByID retrieves a comment by its unique ID.
	// Returns ErrCommentNotFound if the comment does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)

	// ListByParent returns one fixed-size page of a parent's comments ordered
	// most-recent-first, each hydrated with its author's name. Partial
	// hydration is not a valid outcome.
	ListByParent(
		ctx context.Context,
		parentID uuid.UUID,
		parentType domain.CommentParent,
		page int,
	) ([]*domain.CommentWithAuthor, error)

	// Delete removes a comment from the store.
	// Returns ErrCommentNotFound if the comment does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByParent removes all comments attached to the given parent.
	// Called when the parent itself is deleted; a parent with no comments is
	// not an error.
	DeleteByParent(ctx context.Context, parentID uuid.UUID, parentType domain.CommentParent) error
}
