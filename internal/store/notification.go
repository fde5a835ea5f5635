package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/openlearn/forum-api/internal/domain"
)

// NotificationStore defines the interface for notification data persistence.
type NotificationStore interface {
	// Create saves a new notification to the store.
	Create(ctx context.Context, notification *domain.Notification) error

	// GetByID retrieves a notification by its unique ID.
	// Returns ErrNotificationNotFound if the notification does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)

	// Update persists the notification's current state, typically after it
	// was marked read.
	// Returns ErrNotificationNotFound if the notification does not exist.
	Update(ctx context.Context, notification *domain.Notification) error
}
