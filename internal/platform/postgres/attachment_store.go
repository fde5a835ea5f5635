package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/openlearn/forum-api/internal/domain"
	"github.com/openlearn/forum-api/internal/platform/logger"
	"github.com/openlearn/forum-api/internal/store"
)

// PostgresAttachmentStore implements the store.AttachmentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAttachmentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAttachmentStore creates a new PostgreSQL implementation of the
// AttachmentStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAttachmentStore(db store.DBTX, logger *slog.Logger) *PostgresAttachmentStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAttachmentStore{
		db:     db,
		logger: logger.With(slog.String("component", "attachment_store")),
	}
}

// Ensure PostgresAttachmentStore implements store.AttachmentStore interface
var _ store.AttachmentStore = (*PostgresAttachmentStore)(nil)

// Create implements store.AttachmentStore.Create
func (s *PostgresAttachmentStore) Create(ctx context.Context, attachment *domain.Attachment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := attachment.Validate(); err != nil {
		log.Warn("attachment validation failed during create",
			slog.String("error", err.Error()),
			slog.String("attachment_id", attachment.ID.String()))
		return err
	}

	query := `
		INSERT INTO attachments (id, title, url)
		VALUES ($1, $2, $3)
	`
	_, err := s.db.ExecContext(ctx, query, attachment.ID, attachment.Title, attachment.URL)
	if err != nil {
		log.Error("failed to create attachment",
			slog.String("error", err.Error()),
			slog.String("attachment_id", attachment.ID.String()))
		return err
	}

	log.Info("attachment created successfully",
		slog.String("attachment_id", attachment.ID.String()))
	return nil
}

// GetByID implements store.AttachmentStore.GetByID
// Returns store.ErrAttachmentNotFound if the attachment does not exist.
func (s *PostgresAttachmentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, url
		FROM attachments
		WHERE id = $1
	`

	var attachment domain.Attachment
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&attachment.ID,
		&attachment.Title,
		&attachment.URL,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("attachment not found", slog.String("attachment_id", id.String()))
			return nil, store.ErrAttachmentNotFound
		}
		log.Error("failed to get attachment by ID",
			slog.String("error", err.Error()),
			slog.String("attachment_id", id.String()))
		return nil, err
	}

	return &attachment, nil
}
