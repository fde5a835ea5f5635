package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Student validation errors.
var (
	ErrStudentIDEmpty       = errors.New("student ID cannot be empty")
	ErrStudentNameEmpty     = errors.New("student name cannot be empty")
	ErrStudentEmailEmpty    = errors.New("student email cannot be empty")
	ErrStudentEmailInvalid  = errors.New("invalid email format")
	ErrStudentPasswordEmpty = errors.New("student must have a hashed password")
)

// Student represents a registered user of the forum. Students author
// questions, answers and comments, and receive notifications.
type Student struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewStudent creates a new Student with the given name, email and
// already-hashed password. Password hashing is the caller's responsibility;
// the domain layer never sees plaintext credentials.
func NewStudent(name, email, hashedPassword string) (*Student, error) {
	now := time.Now().UTC()
	student := &Student{
		ID:             uuid.New(),
		Name:           name,
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := student.Validate(); err != nil {
		return nil, err
	}

	return student, nil
}

// Validate checks if the Student has valid data.
func (s *Student) Validate() error {
	if s.ID == uuid.Nil {
		return ErrStudentIDEmpty
	}
	if s.Name == "" {
		return ErrStudentNameEmpty
	}
	if s.Email == "" {
		return ErrStudentEmailEmpty
	}
	if !validEmailFormat(s.Email) {
		return ErrStudentEmailInvalid
	}
	if s.HashedPassword == "" {
		return ErrStudentPasswordEmpty
	}
	return nil
}

// validEmailFormat performs a minimal structural check: one '@' with a
// non-empty local part and a dotted domain. Anything stricter belongs to the
// transport layer's validator.
func validEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domainPart := email[at+1:]
	dot := strings.IndexByte(domainPart, '.')
	return dot > 0 && dot < len(domainPart)-1
}
