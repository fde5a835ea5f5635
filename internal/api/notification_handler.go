package api

import (
	"net/http"

	"github.com/openlearn/forum-api/internal/api/shared"
	"github.com/openlearn/forum-api/internal/service"
)

// NotificationHandler handles notification-related HTTP requests.
type NotificationHandler struct {
	notificationService *service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// Read handles PATCH /notifications/{notificationId}/read requests.
// Only the recipient may mark their notification read; re-reading is
// idempotent.
func (h *NotificationHandler) Read(w http.ResponseWriter, r *http.Request) {
	studentID, ok := requireStudentID(w, r)
	if !ok {
		return
	}

	notificationID, err := getPathUUID(r, "notificationId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	notification, err := h.notificationService.Read(r.Context(), service.ReadNotificationRequest{
		NotificationID: notificationID,
		RecipientID:    studentID,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to mark notification read")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, notificationToResponse(notification))
}
