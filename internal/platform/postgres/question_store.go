package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/openlearn/forum-api/internal/domain"
	"github.com/openlearn/forum-api/internal/platform/logger"
	"github.com/openlearn/forum-api/internal/store"
)

// PostgresQuestionStore implements the store.QuestionStore interface
// using a PostgreSQL database as the storage backend.
//
// Unlike the single-table stores it requires a *sql.DB rather than a
// store.DBTX: a question's attachment references live in a link table, and
// writes must update both tables inside one transaction.
type PostgresQuestionStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresQuestionStore creates a new PostgreSQL implementation of the
// QuestionStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresQuestionStore(db *sql.DB, logger *slog.Logger) *PostgresQuestionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresQuestionStore{
		db:     db,
		logger: logger.With(slog.String("component", "question_store")),
	}
}

// Ensure PostgresQuestionStore implements store.QuestionStore interface
var _ store.QuestionStore = (*PostgresQuestionStore)(nil)

// Create implements store.QuestionStore.Create
// It saves the question row and its attachment references in one
// transaction.
// Returns store.ErrSlugExists if a question with the same slug exists.
// Returns store.ErrInvalidEntity if a referenced attachment does not exist.
func (s *PostgresQuestionStore) Create(ctx context.Context, question *domain.Question) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := question.Validate(); err != nil {
		log.Warn("question validation failed during create",
			slog.String("error", err.Error()),
			slog.String("question_id", question.ID.String()))
		return err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := `
			INSERT INTO questions (id, author_id, title, slug, content, best_answer_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		_, err := tx.ExecContext(
			ctx,
			query,
			question.ID,
			question.AuthorID,
			question.Title,
			question.Slug,
			question.Content,
			nullableUUID(question.BestAnswerID),
			question.CreatedAt,
			question.UpdatedAt,
		)
		if err != nil {
			return err
		}

		return replaceAttachmentLinks(
			ctx, tx, "question_attachments", "question_id",
			question.ID, question.AttachmentIDs,
		)
	})

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate slug during question creation",
				slog.String("question_id", question.ID.String()),
				slog.String("slug", question.Slug))
			return fmt.Errorf("%w: %v", store.ErrSlugExists, err)
		}
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}

		log.Error("failed to create question",
			slog.String("error", err.Error()),
			slog.String("question_id", question.ID.String()))
		return err
	}

	log.Info("question created successfully",
		slog.String("question_id", question.ID.String()),
		slog.String("slug", question.Slug))
	return nil
}

// GetByID implements store.QuestionStore.GetByID
// Returns store.ErrQuestionNotFound if the question does not exist.
func (s *PostgresQuestionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	return s.getOne(ctx, "id = $1", id)
}

// GetBySlug implements store.QuestionStore.GetBySlug
// Returns store.ErrQuestionNotFound if no question matches the slug.
func (s *PostgresQuestionStore) GetBySlug(ctx context.Context, slug string) (*domain.Question, error) {
	return s.getOne(ctx, "slug = $1", slug)
}

func (s *PostgresQuestionStore) getOne(ctx context.Context, where string, arg any) (*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, author_id, title, slug, content, best_answer_id, created_at, updated_at
		FROM questions
		WHERE ` + where

	var question domain.Question
	var bestAnswer uuid.NullUUID

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&question.ID,
		&question.AuthorID,
		&question.Title,
		&question.Slug,
		&question.Content,
		&bestAnswer,
		&question.CreatedAt,
		&question.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("question not found")
			return nil, store.ErrQuestionNotFound
		}
		log.Error("failed to get question",
			slog.String("error", err.Error()))
		return nil, err
	}

	if bestAnswer.Valid {
		id := bestAnswer.UUID
		question.BestAnswerID = &id
	}

	attachmentIDs, err := loadAttachmentLinks(
		ctx, s.db, "question_attachments", "question_id", question.ID,
	)
	if err != nil {
		log.Error("failed to load question attachments",
			slog.String("error", err.Error()),
			slog.String("question_id", question.ID.String()))
		return nil, err
	}
	question.AttachmentIDs = attachmentIDs

	return &question, nil
}

// ListRecent implements store.QuestionStore.ListRecent
// It returns one fixed-size page ordered by creation time descending.
func (s *PostgresQuestionStore) ListRecent(ctx context.Context, page int) ([]*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, author_id, title, slug, content, best_answer_id, created_at, updated_at
		FROM questions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, store.PageSize, store.PageOffset(page))
	if err != nil {
		log.Error("failed to list recent questions",
			slog.String("error", err.Error()),
			slog.Int("page", page))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	questions := []*domain.Question{}
	for rows.Next() {
		var question domain.Question
		var bestAnswer uuid.NullUUID

		err := rows.Scan(
			&question.ID,
			&question.AuthorID,
			&question.Title,
			&question.Slug,
			&question.Content,
			&bestAnswer,
			&question.CreatedAt,
			&question.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan question row",
				slog.String("error", err.Error()))
			return nil, err
		}

		if bestAnswer.Valid {
			id := bestAnswer.UUID
			question.BestAnswerID = &id
		}
		questions = append(questions, &question)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	for _, question := range questions {
		attachmentIDs, err := loadAttachmentLinks(
			ctx, s.db, "question_attachments", "question_id", question.ID,
		)
		if err != nil {
			log.Error("failed to load question attachments",
				slog.String("error", err.Error()),
				slog.String("question_id", question.ID.String()))
			return nil, err
		}
		question.AttachmentIDs = attachmentIDs
	}

	return questions, nil
}

// Update implements store.QuestionStore.Update
// It replaces the question row and its attachment reference list in one
// transaction.
// Returns store.ErrQuestionNotFound if the question does not exist.
// Returns store.ErrSlugExists if the re-derived slug collides.
func (s *PostgresQuestionStore) Update(ctx context.Context, question *domain.Question) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := question.Validate(); err != nil {
		log.Warn("question validation failed during update",
			slog.String("error", err.Error()),
			slog.String("question_id", question.ID.String()))
		return err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := `
			UPDATE questions
			SET title = $1, slug = $2, content = $3, best_answer_id = $4, updated_at = $5
			WHERE id = $6
		`
		result, err := tx.ExecContext(
			ctx,
			query,
			question.Title,
			question.Slug,
			question.Content,
			nullableUUID(question.BestAnswerID),
			question.UpdatedAt,
			question.ID,
		)
		if err != nil {
			return err
		}

		if err := CheckRowsAffected(result, store.ErrQuestionNotFound); err != nil {
			return err
		}

		return replaceAttachmentLinks(
			ctx, tx, "question_attachments", "question_id",
			question.ID, question.AttachmentIDs,
		)
	})

	if err != nil {
		if errors.Is(err, store.ErrQuestionNotFound) {
			log.Debug("question not found for update",
				slog.String("question_id", question.ID.String()))
			return err
		}
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrSlugExists, err)
		}
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}

		log.Error("failed to update question",
			slog.String("error", err.Error()),
			slog.String("question_id", question.ID.String()))
		return err
	}

	log.Info("question updated successfully",
		slog.String("question_id", question.ID.String()))
	return nil
}

// Delete implements store.QuestionStore.Delete
// Attachment link rows go away with the question via ON DELETE CASCADE; the
// attachment records themselves survive.
// Returns store.ErrQuestionNotFound if the question does not exist.
func (s *PostgresQuestionStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete question",
			slog.String("error", err.Error()),
			slog.String("question_id", id.String()))
		return err
	}

	if err := CheckRowsAffected(result, store.ErrQuestionNotFound); err != nil {
		log.Debug("question not found for delete",
			slog.String("question_id", id.String()))
		return err
	}

	log.Info("question deleted successfully",
		slog.String("question_id", id.String()))
	return nil
}

// nullableUUID adapts an optional UUID reference for a nullable column.
func nullableUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

// replaceAttachmentLinks rewrites the attachment reference rows for one
// owner. It runs inside the caller's transaction so the owner row and its
// references always change together. Position preserves the order the
// author supplied.
func replaceAttachmentLinks(
	ctx context.Context,
	tx *sql.Tx,
	table, ownerColumn string,
	ownerID uuid.UUID,
	attachmentIDs []uuid.UUID,
) error {
	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table, ownerColumn)
	if _, err := tx.ExecContext(ctx, deleteQuery, ownerID); err != nil {
		return err
	}

	insertQuery := fmt.Sprintf(
		`INSERT INTO %s (%s, attachment_id, position) VALUES ($1, $2, $3)`,
		table, ownerColumn,
	)
	for i, attachmentID := range attachmentIDs {
		if _, err := tx.ExecContext(ctx, insertQuery, ownerID, attachmentID, i); err != nil {
			return err
		}
	}

	return nil
}

// loadAttachmentLinks reads one owner's attachment references in the order
// the author supplied them.
func loadAttachmentLinks(
	ctx context.Context,
	db store.DBTX,
	table, ownerColumn string,
	ownerID uuid.UUID,
) ([]uuid.UUID, error) {
	query := fmt.Sprintf(
		`SELECT attachment_id FROM %s WHERE %s = $1 ORDER BY position`,
		table, ownerColumn,
	)

	rows, err := db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
