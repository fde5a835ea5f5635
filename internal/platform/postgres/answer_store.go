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

// PostgresAnswerStore implements the store.AnswerStore interface
// using a PostgreSQL database as the storage backend.
//
// Like the question store it requires a *sql.DB so writes can update the
// answer row and its attachment link table inside one transaction.
type PostgresAnswerStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresAnswerStore creates a new PostgreSQL implementation of the
// AnswerStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresAnswerStore(db *sql.DB, logger *slog.Logger) *PostgresAnswerStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAnswerStore{
		db:     db,
		logger: logger.With(slog.String("component", "answer_store")),
	}
}

// Ensure PostgresAnswerStore implements store.AnswerStore interface
var _ store.AnswerStore = (*PostgresAnswerStore)(nil)

// Create implements store.AnswerStore.Create
// It saves the answer row and its attachment references in one transaction.
// Returns store.ErrInvalidEntity if the question or a referenced attachment
// does not exist.
func (s *PostgresAnswerStore) Create(ctx context.Context, answer *domain.Answer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := answer.Validate(); err != nil {
		log.Warn("answer validation failed during create",
			slog.String("error", err.Error()),
			slog.String("answer_id", answer.ID.String()))
		return err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := `
			INSERT INTO answers (id, author_id, question_id, content, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		_, err := tx.ExecContext(
			ctx,
			query,
			answer.ID,
			answer.AuthorID,
			answer.QuestionID,
			answer.Content,
			answer.CreatedAt,
			answer.UpdatedAt,
		)
		if err != nil {
			return err
		}

		return replaceAttachmentLinks(
			ctx, tx, "answer_attachments", "answer_id",
			answer.ID, answer.AttachmentIDs,
		)
	})

	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}

		log.Error("failed to create answer",
			slog.String("error", err.Error()),
			slog.String("answer_id", answer.ID.String()),
			slog.String("question_id", answer.QuestionID.String()))
		return err
	}

	log.Info("answer created successfully",
		slog.String("answer_id", answer.ID.String()),
		slog.String("question_id", answer.QuestionID.String()))
	return nil
}

// GetByID implements store.AnswerStore.GetByID
// Returns store.ErrAnswerNotFound if the answer does not exist.
func (s *PostgresAnswerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, author_id, question_id, content, created_at, updated_at
		FROM answers
		WHERE id = $1
	`

	var answer domain.Answer
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&answer.ID,
		&answer.AuthorID,
		&answer.QuestionID,
		&answer.Content,
		&answer.CreatedAt,
		&answer.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("answer not found", slog.String("answer_id", id.String()))
			return nil, store.ErrAnswerNotFound
		}
		log.Error("failed to get answer by ID",
			slog.String("error", err.Error()),
			slog.String("answer_id", id.String()))
		return nil, err
	}

	attachmentIDs, err := loadAttachmentLinks(
		ctx, s.db, "answer_attachments", "answer_id", answer.ID,
	)
	if err != nil {
		log.Error("failed to load answer attachments",
			slog.String("error", err.Error()),
			slog.String("answer_id", answer.ID.String()))
		return nil, err
	}
	answer.AttachmentIDs = attachmentIDs

	return &answer, nil
}

// ListByQuestionID implements store.AnswerStore.ListByQuestionID
// The join against students guarantees every returned answer carries its
// author's name.
func (s *PostgresAnswerStore) ListByQuestionID(
	ctx context.Context,
	questionID uuid.UUID,
	page int,
) ([]*domain.AnswerWithAuthor, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT a.id, a.author_id, a.question_id, a.content, a.created_at, a.updated_at, s.name
		FROM answers a
		JOIN students s ON s.id = a.author_id
		WHERE a.question_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, questionID, store.PageSize, store.PageOffset(page))
	if err != nil {
		log.Error("failed to list answers by question",
			slog.String("error", err.Error()),
			slog.String("question_id", questionID.String()),
			slog.Int("page", page))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	answers := []*domain.AnswerWithAuthor{}
	for rows.Next() {
		var answer domain.AnswerWithAuthor

		err := rows.Scan(
			&answer.ID,
			&answer.AuthorID,
			&answer.QuestionID,
			&answer.Content,
			&answer.CreatedAt,
			&answer.UpdatedAt,
			&answer.AuthorName,
		)
		if err != nil {
			log.Error("failed to scan answer row",
				slog.String("error", err.Error()))
			return nil, err
		}

		answers = append(answers, &answer)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	for _, answer := range answers {
		attachmentIDs, err := loadAttachmentLinks(
			ctx, s.db, "answer_attachments", "answer_id", answer.ID,
		)
		if err != nil {
			log.Error("failed to load answer attachments",
				slog.String("error", err.Error()),
				slog.String("answer_id", answer.ID.String()))
			return nil, err
		}
		answer.AttachmentIDs = attachmentIDs
	}

	return answers, nil
}

// Update implements store.AnswerStore.Update
// It replaces the answer row and its attachment reference list in one
// transaction.
// Returns store.ErrAnswerNotFound if the answer does not exist.
func (s *PostgresAnswerStore) Update(ctx context.Context, answer *domain.Answer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := answer.Validate(); err != nil {
		log.Warn("answer validation failed during update",
			slog.String("error", err.Error()),
			slog.String("answer_id", answer.ID.String()))
		return err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := `
			UPDATE answers
			SET content = $1, updated_at = $2
			WHERE id = $3
		`
		result, err := tx.ExecContext(ctx, query, answer.Content, answer.UpdatedAt, answer.ID)
		if err != nil {
			return err
		}

		if err := CheckRowsAffected(result, store.ErrAnswerNotFound); err != nil {
			return err
		}

		return replaceAttachmentLinks(
			ctx, tx, "answer_attachments", "answer_id",
			answer.ID, answer.AttachmentIDs,
		)
	})

	if err != nil {
		if errors.Is(err, store.ErrAnswerNotFound) {
			log.Debug("answer not found for update",
				slog.String("answer_id", answer.ID.String()))
			return err
		}
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}

		log.Error("failed to update answer",
			slog.String("error", err.Error()),
			slog.String("answer_id", answer.ID.String()))
		return err
	}

	log.Info("answer updated successfully",
		slog.String("answer_id", answer.ID.String()))
	return nil
}

// Delete implements store.AnswerStore.Delete
// Returns store.ErrAnswerNotFound if the answer does not exist.
func (s *PostgresAnswerStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM answers WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete answer",
			slog.String("error", err.Error()),
			slog.String("answer_id", id.String()))
		return err
	}

	if err := CheckRowsAffected(result, store.ErrAnswerNotFound); err != nil {
		log.Debug("answer not found for delete",
			slog.String("answer_id", id.String()))
		return err
	}

	log.Info("answer deleted successfully",
		slog.String("answer_id", id.String()))
	return nil
}
