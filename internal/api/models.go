package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/openlearn/forum-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the account registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=120"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the session creation endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// StudentID is the unique identifier for the authenticated student
	StudentID uuid.UUID `json:"student_id"`

	// Token is the JWT used for API authorization
	Token string `json:"token"`
}

// CreateQuestionRequest defines the payload for posting a new question.
type CreateQuestionRequest struct {
	Title         string      `json:"title"          validate:"required,min=1,max=255"`
	Content       string      `json:"content"        validate:"required,min=1"`
	AttachmentIDs []uuid.UUID `json:"attachment_ids" validate:"omitempty,dive,required"`
}

// EditQuestionRequest defines the payload for editing a question. Every
// editable field is replaced in full; omitting attachment_ids clears the
// list.
type EditQuestionRequest struct {
	Title         string      `json:"title"          validate:"required,min=1,max=255"`
	Content       string      `json:"content"        validate:"required,min=1"`
	AttachmentIDs []uuid.UUID `json:"attachment_ids" validate:"omitempty,dive,required"`
}

// QuestionResponse represents the response data for a question.
type QuestionResponse struct {
	ID            uuid.UUID   `json:"id"`
	AuthorID      uuid.UUID   `json:"author_id"`
	Title         string      `json:"title"`
	Slug          string      `json:"slug"`
	Content       string      `json:"content"`
	BestAnswerID  *uuid.UUID  `json:"best_answer_id,omitempty"`
	AttachmentIDs []uuid.UUID `json:"attachment_ids"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// CreateAnswerRequest defines the payload for answering a question.
type CreateAnswerRequest struct {
	Content       string      `json:"content"        validate:"required,min=1"`
	AttachmentIDs []uuid.UUID `json:"attachment_ids" validate:"omitempty,dive,required"`
}

// EditAnswerRequest defines the payload for editing an answer.
type EditAnswerRequest struct {
	Content       string      `json:"content"        validate:"required,min=1"`
	AttachmentIDs []uuid.UUID `json:"attachment_ids" validate:"omitempty,dive,required"`
}

// AnswerResponse represents the response data for an answer.
type AnswerResponse struct {
	ID            uuid.UUID   `json:"id"`
	AuthorID      uuid.UUID   `json:"author_id"`
	QuestionID    uuid.UUID   `json:"question_id"`
	Content       string      `json:"content"`
	AttachmentIDs []uuid.UUID `json:"attachment_ids"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	// AuthorName is set only on hydrated list reads.
	AuthorName string `json:"author_name,omitempty"`
}

// CreateCommentRequest defines the payload for commenting on a question or
// an answer.
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

// CommentResponse represents the response data for a comment.
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	ParentID  uuid.UUID `json:"parent_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// AuthorName is set only on hydrated list reads.
	AuthorName string `json:"author_name,omitempty"`
}

// NotificationResponse represents the response data for a notification.
type NotificationResponse struct {
	ID          uuid.UUID  `json:"id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AttachmentResponse represents the response data for an uploaded
// attachment.
type AttachmentResponse struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	URL   string    `json:"url"`
}

// questionToResponse converts a domain.Question to a QuestionResponse.
func questionToResponse(question *domain.Question) QuestionResponse {
	attachmentIDs := question.AttachmentIDs
	if attachmentIDs == nil {
		attachmentIDs = []uuid.UUID{}
	}
	return QuestionResponse{
		ID:            question.ID,
		AuthorID:      question.AuthorID,
		Title:         question.Title,
		Slug:          question.Slug,
		Content:       question.Content,
		BestAnswerID:  question.BestAnswerID,
		AttachmentIDs: attachmentIDs,
		CreatedAt:     question.CreatedAt,
		UpdatedAt:     question.UpdatedAt,
	}
}

// answerToResponse converts a domain.Answer to an AnswerResponse.
func answerToResponse(answer *domain.Answer) AnswerResponse {
	attachmentIDs := answer.AttachmentIDs
	if attachmentIDs == nil {
		attachmentIDs = []uuid.UUID{}
	}
	return AnswerResponse{
		ID:            answer.ID,
		AuthorID:      answer.AuthorID,
		QuestionID:    answer.QuestionID,
		Content:       answer.Content,
		AttachmentIDs: attachmentIDs,
		CreatedAt:     answer.CreatedAt,
		UpdatedAt:     answer.UpdatedAt,
	}
}

// commentToResponse converts a domain.Comment to a CommentResponse.
func commentToResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		AuthorID:  comment.AuthorID,
		ParentID:  comment.ParentID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// notificationToResponse converts a domain.Notification to a
// NotificationResponse.
func notificationToResponse(notification *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          notification.ID,
		RecipientID: notification.RecipientID,
		Title:       notification.Title,
		Content:     notification.Content,
		ReadAt:      notification.ReadAt,
		CreatedAt:   notification.CreatedAt,
	}
}
