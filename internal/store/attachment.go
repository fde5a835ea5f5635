package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/openlearn/forum-api/internal/domain"
)

// AttachmentStore defines the interface for attachment data persistence.
// Attachments are standalone records referenced by ID from questions and
// answers; nothing here cascades.
type AttachmentStore interface {
	// Create saves a new attachment record to the store.
	Create(ctx context.Context, attachment *domain.Attachment) error

	// GetByID retrieves an attachment by its unique ID.
	// Returns ErrAttachmentNotFound if the attachment does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
}
