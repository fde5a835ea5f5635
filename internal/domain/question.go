package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Question validation errors.
var (
	ErrQuestionIDEmpty       = errors.New("question ID cannot be empty")
	ErrQuestionAuthorEmpty   = errors.New("question author ID cannot be empty")
	ErrQuestionTitleEmpty    = errors.New("question title cannot be empty")
	ErrQuestionContentEmpty  = errors.New("question content cannot be empty")
	ErrBestAnswerWrongTarget = errors.New("best answer must belong to this question")
)

// Question is a student's question on the forum. Its slug is derived from the
// title at creation time and used for lookups instead of the opaque ID.
// Attachments are referenced by ID only; deleting a question never deletes
// the attachments it points at.
type Question struct {
	ID            uuid.UUID   `json:"id"`
	AuthorID      uuid.UUID   `json:"author_id"`
	Title         string      `json:"title"`
	Slug          string      `json:"slug"`
	Content       string      `json:"content"`
	BestAnswerID  *uuid.UUID  `json:"best_answer_id,omitempty"`
	AttachmentIDs []uuid.UUID `json:"attachment_ids,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// NewQuestion creates a new Question authored by the given student,
// deriving the slug from the title.
func NewQuestion(
	authorID uuid.UUID,
	title, content string,
	attachmentIDs []uuid.UUID,
) (*Question, error) {
	now := time.Now().UTC()
	question := &Question{
		ID:            uuid.New(),
		AuthorID:      authorID,
		Title:         title,
		Slug:          NewSlug(title),
		Content:       content,
		AttachmentIDs: attachmentIDs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := question.Validate(); err != nil {
		return nil, err
	}

	return question, nil
}

// Validate checks if the Question has valid data.
func (q *Question) Validate() error {
	if q.ID == uuid.Nil {
		return ErrQuestionIDEmpty
	}
	if q.AuthorID == uuid.Nil {
		return ErrQuestionAuthorEmpty
	}
	if q.Title == "" {
		return ErrQuestionTitleEmpty
	}
	if q.Content == "" {
		return ErrQuestionContentEmpty
	}
	return nil
}

// ApplyEdit replaces the editable fields in full: title (and with it the
// slug), content and the referenced attachment list. There are no
// partial-field patches.
func (q *Question) ApplyEdit(title, content string, attachmentIDs []uuid.UUID) error {
	q.Title = title
	q.Slug = NewSlug(title)
	q.Content = content
	q.AttachmentIDs = attachmentIDs
	q.UpdatedAt = time.Now().UTC()

	return q.Validate()
}

// SetBestAnswer marks the given answer as this question's accepted solution.
// Returns ErrBestAnswerWrongTarget if the answer belongs to another question.
// Choosing again with a different qualifying answer overwrites the previous
// choice; last writer wins.
func (q *Question) SetBestAnswer(answer *Answer) error {
	if answer.QuestionID != q.ID {
		return ErrBestAnswerWrongTarget
	}

	id := answer.ID
	q.BestAnswerID = &id
	q.UpdatedAt = time.Now().UTC()
	return nil
}

// TitleExcerpt returns the first n runes of the title, with an ellipsis when
// truncated. Used when rendering notification titles.
func (q *Question) TitleExcerpt(n int) string {
	return excerpt(q.Title, n)
}

// excerpt truncates s to at most n runes, appending an ellipsis when the
// text was cut.
func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
