package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Comment validation errors.
var (
	ErrCommentIDEmpty           = errors.New("comment ID cannot be empty")
	ErrCommentAuthorEmpty       = errors.New("comment author ID cannot be empty")
	ErrCommentParentEmpty       = errors.New("comment parent ID cannot be empty")
	ErrCommentContentEmpty      = errors.New("comment content cannot be empty")
	ErrCommentParentTypeInvalid = errors.New("comment parent type must be question or answer")
)

// CommentParent identifies which kind of aggregate a comment is attached to.
type CommentParent string

const (
	// CommentOnQuestion marks a comment attached directly to a question.
	CommentOnQuestion CommentParent = "question"

	// CommentOnAnswer marks a comment attached to an answer.
	CommentOnAnswer CommentParent = "answer"
)

// Comment is a remark on a question or on an answer. The parent reference is
// immutable after creation.
type Comment struct {
	ID         uuid.UUID     `json:"id"`
	AuthorID   uuid.UUID     `json:"author_id"`
	ParentID   uuid.UUID     `json:"parent_id"`
	ParentType CommentParent `json:"parent_type"`
	Content    string        `json:"content"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// NewComment creates a new Comment on the given parent aggregate.
func NewComment(
	authorID, parentID uuid.UUID,
	parentType CommentParent,
	content string,
) (*Comment, error) {
	now := time.Now().UTC()
	comment := &Comment{
		ID:         uuid.New(),
		AuthorID:   authorID,
		ParentID:   parentID,
		ParentType: parentType,
		Content:    content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks if the Comment has valid data.
func (c *Comment) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCommentIDEmpty
	}
	if c.AuthorID == uuid.Nil {
		return ErrCommentAuthorEmpty
	}
	if c.ParentID == uuid.Nil {
		return ErrCommentParentEmpty
	}
	if c.ParentType != CommentOnQuestion && c.ParentType != CommentOnAnswer {
		return ErrCommentParentTypeInvalid
	}
	if c.Content == "" {
		return ErrCommentContentEmpty
	}
	return nil
}

// Excerpt returns the leading portion of the comment content for use in
// notification bodies.
func (c *Comment) Excerpt() string {
	return excerpt(c.Content, 120)
}

// CommentWithAuthor is a read model pairing a comment with its author's name,
// produced only by the store layer via a join.
type CommentWithAuthor struct {
	Comment
	AuthorName string `json:"author_name"`
}
