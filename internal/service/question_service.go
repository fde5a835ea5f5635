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

// QuestionService implements the question use-cases: create, edit, delete,
// point and paginated lookups, and choosing the best answer.
type QuestionService struct {
	questions store.QuestionStore
	answers   store.AnswerStore
	comments  store.CommentStore
	notifier  Notifier
	logger    *slog.Logger
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(
	questions store.QuestionStore,
	answers store.AnswerStore,
	comments store.CommentStore,
	notifier Notifier,
	log *slog.Logger,
) *QuestionService {
	if log == nil {
		log = slog.Default()
	}
	return &QuestionService{
		questions: questions,
		answers:   answers,
		comments:  comments,
		notifier:  notifier,
		logger:    log.With(slog.String("component", "question_service")),
	}
}

// CreateQuestionRequest carries the input for Create.
type CreateQuestionRequest struct {
	AuthorID      uuid.UUID
	Title         string
	Content       string
	AttachmentIDs []uuid.UUID
}

// Create builds a question (deriving its slug from the title), links the
// referenced attachments and persists it. Attachment IDs are taken as-is;
// whether they exist is the store layer's concern.
func (s *QuestionService) Create(
	ctx context.Context,
	req CreateQuestionRequest,
) (*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	question, err := domain.NewQuestion(req.AuthorID, req.Title, req.Content, req.AttachmentIDs)
	if err != nil {
		return nil, err
	}

	if err := s.questions.Create(ctx, question); err != nil {
		log.Error("failed to create question",
			slog.String("error", err.Error()),
			slog.String("author_id", req.AuthorID.String()))
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	log.Info("question created",
		slog.String("question_id", question.ID.String()),
		slog.String("slug", question.Slug))
	return question, nil
}

// EditQuestionRequest carries the input for Edit. Editable fields are
// replaced in full, including the attachment list.
type EditQuestionRequest struct {
	AuthorID      uuid.UUID
	QuestionID    uuid.UUID
	Title         string
	Content       string
	AttachmentIDs []uuid.UUID
}

// Edit replaces a question's editable fields. Only the author may edit:
// a missing question yields store.ErrQuestionNotFound and a non-author
// caller yields ErrNotAllowed, in that order.
func (s *QuestionService) Edit(
	ctx context.Context,
	req EditQuestionRequest,
) (*domain.Question, error) {
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

	if question.AuthorID != req.AuthorID {
		return nil, ErrNotAllowed
	}

	if err := question.ApplyEdit(req.Title, req.Content, req.AttachmentIDs); err != nil {
		return nil, err
	}

	if err := s.questions.Update(ctx, question); err != nil {
		log.Error("failed to save question",
			slog.String("error", err.Error()),
			slog.String("question_id", question.ID.String()))
		return nil, fmt.Errorf("failed to save question: %w", err)
	}

	return question, nil
}

// DeleteQuestionRequest carries the input for Delete.
type DeleteQuestionRequest struct {
	AuthorID   uuid.UUID
	QuestionID uuid.UUID
}

// Delete removes a question together with its comments. Only the author may
// delete; the order of failures mirrors Edit. Referenced attachments survive
// the deletion.
func (s *QuestionService) Delete(ctx context.Context, req DeleteQuestionRequest) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	question, err := s.questions.GetByID(ctx, req.QuestionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ErrQuestionNotFound
		}
		log.Error("failed to load question",
			slog.String("error", err.Error()),
			slog.String("question_id", req.QuestionID.String()))
		return fmt.Errorf("failed to load question: %w", err)
	}

	if question.AuthorID != req.AuthorID {
		return ErrNotAllowed
	}

	if err := s.questions.Delete(ctx, question.ID); err != nil {
		log.Error("failed to delete question",
			slog.String("error", err.Error()),
			slog.String("question_id", question.ID.String()))
		return fmt.Errorf("failed to delete question: %w", err)
	}

	// The comments table carries no foreign key to its parent, so dependent
	// comments go with the question explicitly.
	if err := s.comments.DeleteByParent(ctx, question.ID, domain.CommentOnQuestion); err != nil {
		log.Error("failed to delete question comments",
			slog.String("error", err.Error()),
			slog.String("question_id", question.ID.String()))
		return fmt.Errorf("failed to delete question comments: %w", err)
	}

	log.Info("question deleted", slog.String("question_id", question.ID.String()))
	return nil
}

// GetBySlug looks a question up by its URL slug.
// Returns store.ErrQuestionNotFound when no question matches.
func (s *QuestionService) GetBySlug(ctx context.Context, slug string) (*domain.Question, error) {
	question, err := s.questions.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to load question by slug: %w", err)
	}
	return question, nil
}

// FetchRecent returns one page of questions ordered most-recent-first.
// The page number is 1-based; anything below 1 fails with ErrInvalidPage
// before any store call.
func (s *QuestionService) FetchRecent(ctx context.Context, page int) ([]*domain.Question, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}

	questions, err := s.questions.ListRecent(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent questions: %w", err)
	}
	return questions, nil
}

// ChooseBestAnswerRequest carries the input for ChooseBestAnswer.
type ChooseBestAnswerRequest struct {
	AuthorID uuid.UUID
	AnswerID uuid.UUID
}

// ChooseBestAnswer marks an answer as its question's accepted solution.
// The answer is loaded first, then its question; authorization is checked
// against the question's author, not the answer's. The answer's author is
// notified unless they are also the question's author.
//
// Concurrent choices on the same question are not serialized here; the last
// persisted write wins.
func (s *QuestionService) ChooseBestAnswer(
	ctx context.Context,
	req ChooseBestAnswerRequest,
) (*domain.Question, error) {
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

	question, err := s.questions.GetByID(ctx, answer.QuestionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrQuestionNotFound
		}
		log.Error("failed to load question",
			slog.String("error", err.Error()),
			slog.String("question_id", answer.QuestionID.String()))
		return nil, fmt.Errorf("failed to load question: %w", err)
	}

	if question.AuthorID != req.AuthorID {
		return nil, ErrNotAllowed
	}

	if err := question.SetBestAnswer(answer); err != nil {
		return nil, err
	}

	if err := s.questions.Update(ctx, question); err != nil {
		log.Error("failed to save question",
			slog.String("error", err.Error()),
			slog.String("question_id", question.ID.String()))
		return nil, fmt.Errorf("failed to save question: %w", err)
	}

	if answer.AuthorID != question.AuthorID {
		title := fmt.Sprintf("Your answer on %q was chosen!", question.TitleExcerpt(20))
		if _, err := s.notifier.Notify(ctx, answer.AuthorID, title, answer.Excerpt()); err != nil {
			// The choice itself succeeded; a failed notification is logged
			// and propagated like any other store failure.
			log.Error("failed to notify answer author",
				slog.String("error", err.Error()),
				slog.String("answer_id", answer.ID.String()))
			return nil, err
		}
	}

	return question, nil
}
