package mocks

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/openlearn/forum-api/internal/service"
)

// FakeHasher is a reversible stand-in for the bcrypt hasher so tests can
// assert that use-cases store hashes rather than plaintext.
type FakeHasher struct{}

// Hash prefixes the plaintext so tests can recognize hashed values.
func (FakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

// Compare reverses Hash.
func (FakeHasher) Compare(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

// FakeUploader records uploads and returns a predictable object key.
type FakeUploader struct {
	mu      sync.Mutex
	Uploads []service.UploadParams
	Err     error
}

// Upload implements service.Uploader.
func (u *FakeUploader) Upload(_ context.Context, params service.UploadParams) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.Err != nil {
		return "", u.Err
	}

	// Drain the body the way a real backend would.
	if params.Body != nil {
		if _, err := io.Copy(io.Discard, params.Body); err != nil {
			return "", err
		}
	}

	u.Uploads = append(u.Uploads, params)
	return "uploads/" + strings.ReplaceAll(params.FileName, " ", "-"), nil
}
