package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/openlearn/forum-api/internal/domain"
	"github.com/openlearn/forum-api/internal/platform/logger"
	"github.com/openlearn/forum-api/internal/store"
)

// Notifier is the narrow contract the other services use to emit a
// notification as a side effect of their own operation. Create-answer,
// create-comment and choose-best-answer all emit through this interface;
// the side effect is part of those use-cases' contracts, not hidden behind
// an event bus.
type Notifier interface {
	Notify(ctx context.Context, recipientID uuid.UUID, title, content string) (*domain.Notification, error)
}

// NotificationService creates notifications and lets recipients mark them
// read.
type NotificationService struct {
	notifications store.NotificationStore
	logger        *slog.Logger
	timeFunc      func() time.Time // Injectable for testing
}

// Ensure NotificationService implements Notifier
var _ Notifier = (*NotificationService)(nil)

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notifications store.NotificationStore, log *slog.Logger) *NotificationService {
	if log == nil {
		log = slog.Default()
	}
	return &NotificationService{
		notifications: notifications,
		logger:        log.With(slog.String("component", "notification_service")),
		timeFunc:      time.Now,
	}
}

// Notify creates and persists a notification for the given recipient.
func (s *NotificationService) Notify(
	ctx context.Context,
	recipientID uuid.UUID,
	title, content string,
) (*domain.Notification, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	notification, err := domain.NewNotification(recipientID, title, content)
	if err != nil {
		return nil, fmt.Errorf("failed to build notification: %w", err)
	}

	if err := s.notifications.Create(ctx, notification); err != nil {
		log.Error("failed to create notification",
			slog.String("error", err.Error()),
			slog.String("recipient_id", recipientID.String()))
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	log.Debug("notification created",
		slog.String("notification_id", notification.ID.String()),
		slog.String("recipient_id", recipientID.String()))
	return notification, nil
}

// ReadNotificationRequest carries the input for Read.
type ReadNotificationRequest struct {
	NotificationID uuid.UUID
	RecipientID    uuid.UUID
}

// Read marks a notification as read on behalf of its recipient.
// Returns store.ErrNotificationNotFound if the notification does not exist
// and ErrNotAllowed if the caller is not its recipient. Reading an
// already-read notification succeeds and leaves the read timestamp untouched.
func (s *NotificationService) Read(
	ctx context.Context,
	req ReadNotificationRequest,
) (*domain.Notification, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	notification, err := s.notifications.GetByID(ctx, req.NotificationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrNotificationNotFound
		}
		log.Error("failed to load notification",
			slog.String("error", err.Error()),
			slog.String("notification_id", req.NotificationID.String()))
		return nil, fmt.Errorf("failed to load notification: %w", err)
	}

	if notification.RecipientID != req.RecipientID {
		return nil, ErrNotAllowed
	}

	if notification.IsRead() {
		return notification, nil
	}

	notification.MarkRead(s.timeFunc())

	if err := s.notifications.Update(ctx, notification); err != nil {
		log.Error("failed to persist read notification",
			slog.String("error", err.Error()),
			slog.String("notification_id", notification.ID.String()))
		return nil, fmt.Errorf("failed to save notification: %w", err)
	}

	return notification, nil
}
