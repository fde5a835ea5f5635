package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/openlearn/forum-api/internal/api/shared"
	"github.com/openlearn/forum-api/internal/config"
	"github.com/openlearn/forum-api/internal/service"
)

// AttachmentHandler handles attachment upload HTTP requests.
type AttachmentHandler struct {
	attachmentService *service.AttachmentService
	maxBytes          int64
}

// NewAttachmentHandler creates a new AttachmentHandler. The upload size cap
// comes from configuration and is enforced before the body is read.
func NewAttachmentHandler(attachmentService *service.AttachmentService, cfg config.UploadConfig) *AttachmentHandler {
	return &AttachmentHandler{
		attachmentService: attachmentService,
		maxBytes:          cfg.MaxBytes,
	}
}

// Upload handles POST /attachments multipart requests. The file part must be
// named "file"; its declared Content-Type is checked against the allow-list
// by the use-case layer.
func (h *AttachmentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireStudentID(w, r); !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			shared.RespondWithError(w, r, http.StatusRequestEntityTooLarge, "Attachment too large")
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing or invalid file part")
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close uploaded file", "error", err)
		}
	}()

	attachment, err := h.attachmentService.UploadAndCreate(r.Context(), service.UploadAttachmentRequest{
		FileName: header.Filename,
		FileType: header.Header.Get("Content-Type"),
		Body:     file,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to upload attachment")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AttachmentResponse{
		ID:    attachment.ID,
		Title: attachment.Title,
		URL:   attachment.URL,
	})
}
