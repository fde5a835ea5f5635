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

// AnswerService implements the answer use-cases.
type AnswerService struct {
	answers   store.AnswerStore
	questions store.QuestionStore
	comments  store.CommentStore
	notifier  Notifier
	logger    *slog.Logger
}

// NewAnswerService creates a new AnswerService.
func NewAnswerService(
	answers store.AnswerStore,
	questions store.QuestionStore,
	comments store.CommentStore,
	notifier Notifier,
	log *slog.Logger,
) *AnswerService {
	if log == nil {
		log = slog.Default()
	}
	return &AnswerService{
		answers:   answers,
		questions: questions,
		comments:  comments,
		notifier:  notifier,
		logger:    log.With(slog.String("component", "answer_service")),
	}
}

// AnswerQuestionRequest carries the input for Answer.
type AnswerQuestionRequest struct {
	AuthorID      uuid.UUID
	QuestionID    uuid.UUID
	Content       string
	AttachmentIDs []uuid.UUID
}

// Answer creates an answer to a question and notifies the question's author,
// unless the author is answering their own question.
// Returns store.ErrQuestionNotFound if the question does not exist.
func (s *AnswerService) Answer(
	ctx context.Context,
	req AnswerQuestionRequest,
) (*domain.Answer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	question, err := s.questions.GetByID(ctx, req.QuestionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrQuestionNotFound
		}
		log.Error("failed to load question",
			slog.String("error", err.Error()),
			slog.String("question_id", req.QuestionID.String()))
		return nil, fmt.Errorf("failed to load question: %w", err)
	}

	answer, err := domain.NewAnswer(req.AuthorID, question.ID, req.Content, req.AttachmentIDs)
	if err != nil {
		return nil, err
	}

	if err := s.answers.Create(ctx, answer); err != nil {
		log.Error("failed to create answer",
			slog.String("error", err.Error()),
			slog.String("question_id", question.ID.String()))
		return nil, fmt.Errorf("failed to create answer: %w", err)
	}

	if question.AuthorID != answer.AuthorID {
		title := fmt.Sprintf("New answer on %q", question.TitleExcerpt(40))
		if _, err := s.notifier.Notify(ctx, question.AuthorID, title, answer.Excerpt()); err != nil {
			log.Error("failed to notify question author",
				slog.String("error", err.Error()),
				slog.String("question_id", question.ID.String()))
			return nil, err
		}
	}

	log.Info("answer created",
		slog.String("answer_id", answer.ID.String()),
		slog.String("question_id", question.ID.String()))
	return answer, nil
}

// EditAnswerRequest carries the input for Edit. Editable fields are replaced
// in full, including the attachment list.
type EditAnswerRequest struct {
	AuthorID      uuid.UUID
	AnswerID      uuid.UUID
	Content       string
	AttachmentIDs []uuid.UUID
}

// Edit replaces an answer's editable fields. Only the author may edit.
func (s *AnswerService) Edit(ctx context.Context, req EditAnswerRequest) (*domain.Answer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	answer, err := s.answers.GetByID(ctx, req.AnswerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrAnswerNotFound
		}
		log.Error("failed to load answer",
			slog.String("error", err.Error()),
			slog.String("answer_id", req.AnswerID.String()))
		return nil, fmt.Errorf("failed to load answer: %w", err)
	}

	if answer.AuthorID != req.AuthorID {
		return nil, ErrNotAllowed
	}

	if err := answer.ApplyEdit(req.Content, req.AttachmentIDs); err != nil {
		return nil, err
	}

	if err := s.answers.Update(ctx, answer); err != nil {
		log.Error("failed to save answer",
			slog.String("error", err.Error()),
			slog.String("answer_id", answer.ID.String()))
		return nil, fmt.Errorf("failed to save answer: %w", err)
	}

	return answer, nil
}

// DeleteAnswerRequest carries the input for Delete.
type DeleteAnswerRequest struct {
	AuthorID uuid.UUID
	AnswerID uuid.UUID
}

// Delete removes an answer together with its comments. Only the author may
// delete.
func (s *AnswerService) Delete(ctx context.Context, req DeleteAnswerRequest) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	answer, err := s.answers.GetByID(ctx, req.AnswerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ErrAnswerNotFound
		}
		log.Error("failed to load answer",
			slog.String("error", err.Error()),
			slog.String("answer_id", req.AnswerID.String()))
		return fmt.Errorf("failed to load answer: %w", err)
	}

	if answer.AuthorID != req.AuthorID {
		return ErrNotAllowed
	}

	if err := s.answers.Delete(ctx, answer.ID); err != nil {
		log.Error("failed to delete answer",
			slog.String("error", err.Error()),
			slog.String("answer_id", answer.ID.String()))
		return fmt.Errorf("failed to delete answer: %w", err)
	}

	// The comments table carries no foreign key to its parent, so dependent
	// comments go with the answer explicitly.
	if err := s.comments.DeleteByParent(ctx, answer.ID, domain.CommentOnAnswer); err != nil {
		log.Error("failed to delete answer comments",
			slog.String("error", err.Error()),
			slog.String("answer_id", answer.ID.String()))
		return fmt.Errorf("failed to delete answer comments: %w", err)
	}

	return nil
}

// FetchByQuestion returns one page of a question's answers ordered
// most-recent-first, each carrying its author's name.
func (s *AnswerService) FetchByQuestion(
	ctx context.Context,
	questionID uuid.UUID,
	page int,
) ([]*domain.AnswerWithAuthor, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}

	answers, err := s.answers.ListByQuestionID(ctx, questionID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	return answers, nil
}
