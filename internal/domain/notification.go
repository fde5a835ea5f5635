package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Notification validation errors.
var (
	ErrNotificationIDEmpty        = errors.New("notification ID cannot be empty")
	ErrNotificationRecipientEmpty = errors.New("notification recipient ID cannot be empty")
	ErrNotificationTitleEmpty     = errors.New("notification title cannot be empty")
	ErrNotificationContentEmpty   = errors.New("notification content cannot be empty")
)

// Notification is a message delivered to a single student, typically as a
// side effect of another student answering or commenting on their content.
type Notification struct {
	ID          uuid.UUID  `json:"id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewNotification creates a new unread Notification for the given recipient.
func NewNotification(recipientID uuid.UUID, title, content string) (*Notification, error) {
	notification := &Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		Title:       title,
		Content:     content,
		CreatedAt:   time.Now().UTC(),
	}

	if err := notification.Validate(); err != nil {
		return nil, err
	}

	return notification, nil
}

// Validate checks if the Notification has valid data.
func (n *Notification) Validate() error {
	if n.ID == uuid.Nil {
		return ErrNotificationIDEmpty
	}
	if n.RecipientID == uuid.Nil {
		return ErrNotificationRecipientEmpty
	}
	if n.Title == "" {
		return ErrNotificationTitleEmpty
	}
	if n.Content == "" {
		return ErrNotificationContentEmpty
	}
	return nil
}

// MarkRead records the read timestamp. ReadAt transitions from nil exactly
// once; marking an already-read notification is a no-op, so the operation is
// idempotent.
func (n *Notification) MarkRead(now time.Time) {
	if n.ReadAt != nil {
		return
	}
	readAt := now.UTC()
	n.ReadAt = &readAt
}

// IsRead reports whether the notification has been read.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}
