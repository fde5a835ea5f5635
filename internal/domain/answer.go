package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Answer validation errors.
var (
	ErrAnswerIDEmpty       = errors.New("answer ID cannot be empty")
	ErrAnswerAuthorEmpty   = errors.New("answer author ID cannot be empty")
	ErrAnswerQuestionEmpty = errors.New("answer question ID cannot be empty")
	ErrAnswerContentEmpty  = errors.New("answer content cannot be empty")
)

// Answer is a student's answer to a question. The question reference is
// immutable after creation; only content and attachments can be edited.
type Answer struct {
	ID            uuid.UUID   `json:"id"`
	AuthorID      uuid.UUID   `json:"author_id"`
	QuestionID    uuid.UUID   `json:"question_id"`
	Content       string      `json:"content"`
	AttachmentIDs []uuid.UUID `json:"attachment_ids,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// NewAnswer creates a new Answer to the given question.
func NewAnswer(
	authorID, questionID uuid.UUID,
	content string,
	attachmentIDs []uuid.UUID,
) (*Answer, error) {
	now := time.Now().UTC()
	answer := &Answer{
		ID:            uuid.New(),
		AuthorID:      authorID,
		QuestionID:    questionID,
		Content:       content,
		AttachmentIDs: attachmentIDs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := answer.Validate(); err != nil {
		return nil, err
	}

	return answer, nil
}

// Validate checks if the Answer has valid data.
func (a *Answer) Validate() error {
	if a.ID == uuid.Nil {
		return ErrAnswerIDEmpty
	}
	if a.AuthorID == uuid.Nil {
		return ErrAnswerAuthorEmpty
	}
	if a.QuestionID == uuid.Nil {
		return ErrAnswerQuestionEmpty
	}
	if a.Content == "" {
		return ErrAnswerContentEmpty
	}
	return nil
}

// ApplyEdit replaces the editable fields in full: content and the referenced
// attachment list.
func (a *Answer) ApplyEdit(content string, attachmentIDs []uuid.UUID) error {
	a.Content = content
	a.AttachmentIDs = attachmentIDs
	a.UpdatedAt = time.Now().UTC()

	return a.Validate()
}

// Excerpt returns the leading portion of the answer content for use in
// notification bodies.
func (a *Answer) Excerpt() string {
	return excerpt(a.Content, 120)
}

// AnswerWithAuthor is a read model pairing an answer with its author's name.
// It is produced only by the store layer via a join; the contract is that the
// author is always resolved or the whole lookup fails.
type AnswerWithAuthor struct {
	Answer
	AuthorName string `json:"author_name"`
}
