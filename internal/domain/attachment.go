package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Attachment validation errors.
var (
	ErrAttachmentIDEmpty    = errors.New("attachment ID cannot be empty")
	ErrAttachmentTitleEmpty = errors.New("attachment title cannot be empty")
	ErrAttachmentURLEmpty   = errors.New("attachment URL cannot be empty")
)

// Attachment is an uploaded file record. Attachments are created
// independently of any question or answer and then referenced by ID; they
// are never owned by the aggregates that point at them.
type Attachment struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	URL   string    `json:"url"`
}

// NewAttachment creates a new Attachment pointing at an already-uploaded
// object.
func NewAttachment(title, url string) (*Attachment, error) {
	attachment := &Attachment{
		ID:    uuid.New(),
		Title: title,
		URL:   url,
	}

	if err := attachment.Validate(); err != nil {
		return nil, err
	}

	return attachment, nil
}

// Validate checks if the Attachment has valid data.
func (a *Attachment) Validate() error {
	if a.ID == uuid.Nil {
		return ErrAttachmentIDEmpty
	}
	if a.Title == "" {
		return ErrAttachmentTitleEmpty
	}
	if a.URL == "" {
		return ErrAttachmentURLEmpty
	}
	return nil
}
