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

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend. Both comment flavors
// share one table; parent_type disambiguates.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the
// CommentStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

// Create implements store.CommentStore.Create
// The parent reference is not a database-level foreign key because the
// parent may live in either the questions or the answers table; parent
// existence is checked by the use-case layer before this call.
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during create",
			slog.String("error", err.Error()),
			slog.String("comment_id", comment.ID.String()))
		return err
	}

	query := `
		INSERT INTO comments (id, author_id, parent_id, parent_type, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		comment.ID,
		comment.AuthorID,
		comment.ParentID,
		string(comment.ParentType),
		comment.Content,
		comment.CreatedAt,
		comment.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}

		log.Error("failed to create comment",
			slog.String("error", err.Error()),
			slog.String("comment_id", comment.ID.String()))
		return err
	}

	log.Info("comment created successfully",
		slog.String("comment_id", comment.ID.String()),
		slog.String("parent_type", string(comment.ParentType)))
	return nil
}

// GetByID implements store.CommentStore.GetByID
// Returns store.ErrCommentNotFound if the comment does not exist.
func (s *PostgresCommentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, author_id, parent_id, parent_type, content, created_at, updated_at
		FROM comments
		WHERE id = $1
	`

	var comment domain.Comment
	var parentType string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID,
		&comment.AuthorID,
		&comment.ParentID,
		&parentType,
		&comment.Content,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("comment not found", slog.String("comment_id", id.String()))
			return nil, store.ErrCommentNotFound
		}
		log.Error("failed to get comment by ID",
			slog.String("error", err.Error()),
			slog.String("comment_id", id.String()))
		return nil, err
	}

	comment.ParentType = domain.CommentParent(parentType)

	return &comment, nil
}

// ListByParent implements store.CommentStore.ListByParent
// The join against students guarantees every returned comment carries its
// author's name.
func (s *PostgresCommentStore) ListByParent(
	ctx context.Context,
	parentID uuid.UUID,
	parentType domain.CommentParent,
	page int,
) ([]*domain.CommentWithAuthor, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT c.id, c.author_id, c.parent_id, c.parent_type, c.content, c.created_at, c.updated_at, s.name
		FROM comments c
		JOIN students s ON s.id = c.author_id
		WHERE c.parent_id = $1 AND c.parent_type = $2
		ORDER BY c.created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := s.db.QueryContext(
		ctx, query,
		parentID, string(parentType),
		store.PageSize, store.PageOffset(page),
	)
	if err != nil {
		log.Error("failed to list comments by parent",
			slog.String("error", err.Error()),
			slog.String("parent_id", parentID.String()),
			slog.String("parent_type", string(parentType)),
			slog.Int("page", page))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	comments := []*domain.CommentWithAuthor{}
	for rows.Next() {
		var comment domain.CommentWithAuthor
		var scannedType string

		err := rows.Scan(
			&comment.ID,
			&comment.AuthorID,
			&comment.ParentID,
			&scannedType,
			&comment.Content,
			&comment.CreatedAt,
			&comment.UpdatedAt,
			&comment.AuthorName,
		)
		if err != nil {
			log.Error("failed to scan comment row",
				slog.String("error", err.Error()))
			return nil, err
		}

		comment.ParentType = domain.CommentParent(scannedType)
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return comments, nil
}

// Delete implements store.CommentStore.Delete
// Returns store.ErrCommentNotFound if the comment does not exist.
func (s *PostgresCommentStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete comment",
			slog.String("error", err.Error()),
			slog.String("comment_id", id.String()))
		return err
	}

	if err := CheckRowsAffected(result, store.ErrCommentNotFound); err != nil {
		log.Debug("comment not found for delete",
			slog.String("comment_id", id.String()))
		return err
	}

	log.Info("comment deleted successfully",
		slog.String("comment_id", id.String()))
	return nil
}

// DeleteByParent implements store.CommentStore.DeleteByParent
// Deleting zero rows is fine; the parent may never have been commented on.
func (s *PostgresCommentStore) DeleteByParent(
	ctx context.Context,
	parentID uuid.UUID,
	parentType domain.CommentParent,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM comments WHERE parent_id = $1 AND parent_type = $2`,
		parentID, string(parentType),
	)
	if err != nil {
		log.Error("failed to delete comments by parent",
			slog.String("error", err.Error()),
			slog.String("parent_id", parentID.String()),
			slog.String("parent_type", string(parentType)))
		return err
	}

	if deleted, err := result.RowsAffected(); err == nil && deleted > 0 {
		log.Info("comments deleted with parent",
			slog.String("parent_id", parentID.String()),
			slog.Int64("count", deleted))
	}
	return nil
}
