package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/openlearn/forum-api/internal/domain"
	"github.com/openlearn/forum-api/internal/platform/logger"
	"github.com/openlearn/forum-api/internal/store"
)

// CommentService implements the comment use-cases for both flavors:
// comments on questions and comments on answers.
type CommentService struct {
	comments  store.CommentStore
	questions store.QuestionStore
	answers   store.AnswerStore
	notifier  Notifier
	logger    *slog.Logger
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	comments store.CommentStore,
	questions store.QuestionStore,
	answers store.AnswerStore,
	notifier Notifier,
	log *slog.Logger,
) *CommentService {
	if log == nil {
		log = slog.Default()
	}
	return &CommentService{
		comments:  comments,
		questions: questions,
		answers:   answers,
		notifier:  notifier,
		logger:    log.With(slog.String("component", "comment_service")),
	}
}

// CommentRequest carries the input for both create-comment flavors. ParentID
// names the question or answer being commented on.
type CommentRequest struct {
	AuthorID uuid.UUID
	ParentID uuid.UUID
	Content  string
}

// CommentOnQuestion creates a comment on a question and notifies the
// question's author, unless they are commenting on their own question.
// Returns store.ErrQuestionNotFound if the question does not exist.
func (s *CommentService) CommentOnQuestion(
	ctx context.Context,
	req CommentRequest,
) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	question, err := s.questions.GetByID(ctx, req.ParentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrQuestionNotFound
		}
		log.Error("failed to load question",
			slog.String("error", err.Error()),
			slog.String("question_id", req.ParentID.String()))
		return nil, fmt.Errorf("failed to load question: %w", err)
	}

	comment, err := domain.NewComment(req.AuthorID, question.ID, domain.CommentOnQuestion, req.Content)
	if err != nil {
		return nil, err
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		log.Error("failed to create comment",
			slog.String("error", err.Error()),
			slog.String("question_id", question.ID.String()))
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if question.AuthorID != comment.AuthorID {
		title := fmt.Sprintf("New comment on %q", question.TitleExcerpt(40))
		if _, err := s.notifier.Notify(ctx, question.AuthorID, title, comment.Excerpt()); err != nil {
			log.Error("failed to notify question author",
				slog.String("error", err.Error()),
				slog.String("comment_id", comment.ID.String()))
			return nil, err
		}
	}

	return comment, nil
}

// CommentOnAnswer creates a comment on an answer and notifies the answer's
// author, unless they are commenting on their own answer.
// Returns store.ErrAnswerNotFound if the answer does not exist.
func (s *CommentService) CommentOnAnswer(
	ctx context.Context,
	req CommentRequest,
) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	answer, err := s.answers.GetByID(ctx, req.ParentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrAnswerNotFound
		}
		log.Error("failed to load answer",
			slog.String("error", err.Error()),
			slog.String("answer_id", req.ParentID.String()))
		return nil, fmt.Errorf("failed to load answer: %w", err)
	}

	comment, err := domain.NewComment(req.AuthorID, answer.ID, domain.CommentOnAnswer, req.Content)
	if err != nil {
		return nil, err
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		log.Error("failed to create comment",
			slog.String("error", err.Error()),
			slog.String("answer_id", answer.ID.String()))
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if answer.AuthorID != comment.AuthorID {
		if _, err := s.notifier.Notify(ctx, answer.AuthorID, "New comment on your answer", comment.Excerpt()); err != nil {
			log.Error("failed to notify answer author",
				slog.String("error", err.Error()),
				slog.String("comment_id", comment.ID.String()))
			return nil, err
		}
	}

	return comment, nil
}

// DeleteCommentRequest carries the input for both delete-comment flavors.
type DeleteCommentRequest struct {
	AuthorID  uuid.UUID
	CommentID uuid.UUID
}

// DeleteOnQuestion removes a question comment. Only the author may delete;
// a comment that exists but hangs off an answer is treated as not found so
// the two endpoints never shadow each other.
func (s *CommentService) DeleteOnQuestion(ctx context.Context, req DeleteCommentRequest) error {
	return s.delete(ctx, req, domain.CommentOnQuestion)
}

// DeleteOnAnswer removes an answer comment. Only the author may delete.
func (s *CommentService) DeleteOnAnswer(ctx context.Context, req DeleteCommentRequest) error {
	return s.delete(ctx, req, domain.CommentOnAnswer)
}

func (s *CommentService) delete(
	ctx context.Context,
	req DeleteCommentRequest,
	parentType domain.CommentParent,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	comment, err := s.comments.GetByID(ctx, req.CommentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ErrCommentNotFound
		}
		log.Error("failed to load comment",
			slog.String("error", err.Error()),
			slog.String("comment_id", req.CommentID.String()))
		return fmt.Errorf("failed to load comment: %w", err)
	}

	if comment.ParentType != parentType {
		return store.ErrCommentNotFound
	}

	if comment.AuthorID != req.AuthorID {
		return ErrNotAllowed
	}

	if err := s.comments.Delete(ctx, comment.ID); err != nil {
		log.Error("failed to delete comment",
			slog.String("error", err.Error()),
			slog.String("comment_id", comment.ID.String()))
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}

// FetchQuestionComments returns one page of a question's comments ordered
// most-recent-first, each carrying its author's name.
func (s *CommentService) FetchQuestionComments(
	ctx context.Context,
	questionID uuid.UUID,
	page int,
) ([]*domain.CommentWithAuthor, error) {
	return s.fetch(ctx, questionID, domain.CommentOnQuestion, page)
}

// FetchAnswerComments returns one page of an answer's comments ordered
// most-recent-first, each carrying its author's name.
func (s *CommentService) FetchAnswerComments(
	ctx context.Context,
	answerID uuid.UUID,
	page int,
) ([]*domain.CommentWithAuthor, error) {
	return s.fetch(ctx, answerID, domain.CommentOnAnswer, page)
}

func (s *CommentService) fetch(
	ctx context.Context,
	parentID uuid.UUID,
	parentType domain.CommentParent,
	page int,
) ([]*domain.CommentWithAuthor, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}

	comments, err := s.comments.ListByParent(ctx, parentID, parentType, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
