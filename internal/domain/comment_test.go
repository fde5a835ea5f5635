package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewComment(t *testing.T) {
	t.Parallel()

	authorID := uuid.New()
	parentID := uuid.New()

	comment, err := NewComment(authorID, parentID, CommentOnQuestion, "Nice question!")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if comment.ParentID != parentID {
		t.Errorf("Expected parent ID %s, got %s", parentID, comment.ParentID)
	}

	if comment.ParentType != CommentOnQuestion {
		t.Errorf("Expected parent type %s, got %s", CommentOnQuestion, comment.ParentType)
	}

	// Test invalid parent type
	_, err = NewComment(authorID, parentID, CommentParent("post"), "content")
	if err != ErrCommentParentTypeInvalid {
		t.Errorf("Expected error %v, got %v", ErrCommentParentTypeInvalid, err)
	}

	// Test empty content
	_, err = NewComment(authorID, parentID, CommentOnAnswer, "")
	if err != ErrCommentContentEmpty {
		t.Errorf("Expected error %v, got %v", ErrCommentContentEmpty, err)
	}
}

func TestCommentExcerpt(t *testing.T) {
	t.Parallel()

	short, err := NewComment(uuid.New(), uuid.New(), CommentOnAnswer, "short comment")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if short.Excerpt() != "short comment" {
		t.Errorf("Expected short content untouched, got %q", short.Excerpt())
	}

	long, err := NewComment(uuid.New(), uuid.New(), CommentOnAnswer, strings.Repeat("a", 200))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got := long.Excerpt()
	if len([]rune(got)) != 123 || !strings.HasSuffix(got, "...") {
		t.Errorf("Expected 120 runes plus ellipsis, got %d runes", len([]rune(got)))
	}
}
