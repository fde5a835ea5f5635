package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewStudent(t *testing.T) {
	t.Parallel()

	student, err := NewStudent("Jo Doe", "jo@example.com", "bcrypt-hash")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if student.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if student.Email != "jo@example.com" {
		t.Errorf("Expected email %q, got %q", "jo@example.com", student.Email)
	}

	// Test invalid emails
	for _, email := range []string{"", "no-at-sign", "@example.com", "jo@", "jo@example", "jo@.com"} {
		if _, err := NewStudent("Jo Doe", email, "bcrypt-hash"); err == nil {
			t.Errorf("Expected error for email %q, got nil", email)
		}
	}

	// Test missing hash
	_, err = NewStudent("Jo Doe", "jo@example.com", "")
	if err != ErrStudentPasswordEmpty {
		t.Errorf("Expected error %v, got %v", ErrStudentPasswordEmpty, err)
	}
}
