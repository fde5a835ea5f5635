package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/openlearn/forum-api/internal/domain"
	"github.com/openlearn/forum-api/internal/platform/logger"
	"github.com/openlearn/forum-api/internal/store"
)

// UploadParams describes one file upload handed to the storage backend.
type UploadParams struct {
	FileName string
	FileType string
	Body     io.Reader
}

// Uploader is the storage collaborator: it persists the raw bytes somewhere
// and returns the stored object's location.
type Uploader interface {
	Upload(ctx context.Context, params UploadParams) (string, error)
}

// allowedAttachmentTypes is the MIME allow-list for uploads.
var allowedAttachmentTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"application/pdf": {},
}

// AttachmentService implements the upload-and-create-attachment use-case.
type AttachmentService struct {
	attachments store.AttachmentStore
	uploader    Uploader
	logger      *slog.Logger
}

// NewAttachmentService creates a new AttachmentService.
func NewAttachmentService(
	attachments store.AttachmentStore,
	uploader Uploader,
	log *slog.Logger,
) *AttachmentService {
	if log == nil {
		log = slog.Default()
	}
	return &AttachmentService{
		attachments: attachments,
		uploader:    uploader,
		logger:      log.With(slog.String("component", "attachment_service")),
	}
}

// UploadAttachmentRequest carries the input for UploadAndCreate.
type UploadAttachmentRequest struct {
	FileName string
	FileType string
	Body     io.Reader
}

// UploadAndCreate validates the MIME type against the allow-list, delegates
// the bytes to the uploader and records an Attachment pointing at the stored
// object. The two steps are not transactional: an error after the upload
// leaves an orphaned stored object behind. Known limitation.
func (s *AttachmentService) UploadAndCreate(
	ctx context.Context,
	req UploadAttachmentRequest,
) (*domain.Attachment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, ok := allowedAttachmentTypes[req.FileType]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAttachmentType, req.FileType)
	}

	url, err := s.uploader.Upload(ctx, UploadParams{
		FileName: req.FileName,
		FileType: req.FileType,
		Body:     req.Body,
	})
	if err != nil {
		log.Error("failed to upload attachment",
			slog.String("error", err.Error()),
			slog.String("file_name", req.FileName))
		return nil, fmt.Errorf("failed to upload attachment: %w", err)
	}

	attachment, err := domain.NewAttachment(req.FileName, url)
	if err != nil {
		return nil, err
	}

	if err := s.attachments.Create(ctx, attachment); err != nil {
		log.Error("failed to create attachment record",
			slog.String("error", err.Error()),
			slog.String("file_name", req.FileName),
			slog.String("url", url))
		return nil, fmt.Errorf("failed to create attachment: %w", err)
	}

	log.Info("attachment created",
		slog.String("attachment_id", attachment.ID.String()),
		slog.String("url", url))
	return attachment, nil
}
