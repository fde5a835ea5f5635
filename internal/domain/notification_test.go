package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewNotification(t *testing.T) {
	t.Parallel()

	recipientID := uuid.New()

	notification, err := NewNotification(recipientID, "New answer", "Someone answered your question.")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if notification.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if notification.RecipientID != recipientID {
		t.Errorf("Expected recipient ID %s, got %s", recipientID, notification.RecipientID)
	}

	if notification.IsRead() {
		t.Error("Expected a new notification to be unread")
	}

	// Test invalid recipient
	_, err = NewNotification(uuid.Nil, "Title", "Content")
	if err != ErrNotificationRecipientEmpty {
		t.Errorf("Expected error %v, got %v", ErrNotificationRecipientEmpty, err)
	}

	// Test empty title
	_, err = NewNotification(recipientID, "", "Content")
	if err != ErrNotificationTitleEmpty {
		t.Errorf("Expected error %v, got %v", ErrNotificationTitleEmpty, err)
	}
}

func TestNotificationMarkRead(t *testing.T) {
	t.Parallel()

	notification, err := NewNotification(uuid.New(), "Title", "Content")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	notification.MarkRead(first)

	if !notification.IsRead() {
		t.Fatal("Expected notification to be read")
	}

	if !notification.ReadAt.Equal(first) {
		t.Errorf("Expected ReadAt %v, got %v", first, *notification.ReadAt)
	}

	// Marking again is idempotent; the original timestamp survives.
	notification.MarkRead(first.Add(time.Hour))

	if !notification.ReadAt.Equal(first) {
		t.Errorf("Expected ReadAt to stay %v, got %v", first, *notification.ReadAt)
	}
}
