package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewQuestion(t *testing.T) {
	t.Parallel()

	authorID := uuid.New()
	attachmentIDs := []uuid.UUID{uuid.New(), uuid.New()}

	question, err := NewQuestion(authorID, "How to center a div", "I tried everything.", attachmentIDs)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if question.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if question.AuthorID != authorID {
		t.Errorf("Expected author ID %s, got %s", authorID, question.AuthorID)
	}

	if question.Slug != "how-to-center-a-div" {
		t.Errorf("Expected slug %q, got %q", "how-to-center-a-div", question.Slug)
	}

	if question.BestAnswerID != nil {
		t.Error("Expected no best answer on a new question")
	}

	if len(question.AttachmentIDs) != 2 {
		t.Errorf("Expected 2 attachment IDs, got %d", len(question.AttachmentIDs))
	}

	if question.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Test invalid author
	_, err = NewQuestion(uuid.Nil, "Title", "Content", nil)
	if err != ErrQuestionAuthorEmpty {
		t.Errorf("Expected error %v, got %v", ErrQuestionAuthorEmpty, err)
	}

	// Test empty title
	_, err = NewQuestion(authorID, "", "Content", nil)
	if err != ErrQuestionTitleEmpty {
		t.Errorf("Expected error %v, got %v", ErrQuestionTitleEmpty, err)
	}

	// Test empty content
	_, err = NewQuestion(authorID, "Title", "", nil)
	if err != ErrQuestionContentEmpty {
		t.Errorf("Expected error %v, got %v", ErrQuestionContentEmpty, err)
	}
}

func TestQuestionApplyEdit(t *testing.T) {
	t.Parallel()

	question, err := NewQuestion(uuid.New(), "Old title", "Old content", []uuid.UUID{uuid.New()})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	newAttachments := []uuid.UUID{uuid.New(), uuid.New()}
	if err := question.ApplyEdit("New title", "New content", newAttachments); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if question.Title != "New title" {
		t.Errorf("Expected title %q, got %q", "New title", question.Title)
	}

	if question.Slug != "new-title" {
		t.Errorf("Expected slug to follow the title, got %q", question.Slug)
	}

	if len(question.AttachmentIDs) != 2 {
		t.Errorf("Expected attachment list to be fully replaced, got %d entries", len(question.AttachmentIDs))
	}

	// Edits are full-replace: an empty title is rejected, not skipped.
	if err := question.ApplyEdit("", "New content", nil); err != ErrQuestionTitleEmpty {
		t.Errorf("Expected error %v, got %v", ErrQuestionTitleEmpty, err)
	}
}

func TestQuestionSetBestAnswer(t *testing.T) {
	t.Parallel()

	question, err := NewQuestion(uuid.New(), "How to center a div", "Please help.", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	first, err := NewAnswer(uuid.New(), question.ID, "use flexbox", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := question.SetBestAnswer(first); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if question.BestAnswerID == nil || *question.BestAnswerID != first.ID {
		t.Errorf("Expected best answer %s, got %v", first.ID, question.BestAnswerID)
	}

	// Choosing again overwrites the previous choice; last writer wins.
	second, err := NewAnswer(uuid.New(), question.ID, "use grid", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := question.SetBestAnswer(second); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if *question.BestAnswerID != second.ID {
		t.Errorf("Expected best answer %s, got %s", second.ID, *question.BestAnswerID)
	}

	// An answer to another question never qualifies.
	foreign, err := NewAnswer(uuid.New(), uuid.New(), "wrong thread", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := question.SetBestAnswer(foreign); err != ErrBestAnswerWrongTarget {
		t.Errorf("Expected error %v, got %v", ErrBestAnswerWrongTarget, err)
	}

	if *question.BestAnswerID != second.ID {
		t.Error("Expected a rejected choice to leave the best answer untouched")
	}
}
