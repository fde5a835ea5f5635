package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/openlearn/forum-api/internal/mocks"
	"github.com/openlearn/forum-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachmentService_UploadAndCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid upload creates a record pointing at the stored object", func(t *testing.T) {
		attachments := mocks.NewAttachmentStore()
		uploader := &mocks.FakeUploader{}
		svc := service.NewAttachmentService(attachments, uploader, testLogger())

		attachment, err := svc.UploadAndCreate(ctx, service.UploadAttachmentRequest{
			FileName: "profile picture.png",
			FileType: "image/png",
			Body:     strings.NewReader("png-bytes"),
		})
		require.NoError(t, err)

		assert.Equal(t, "profile picture.png", attachment.Title)
		assert.Equal(t, "uploads/profile-picture.png", attachment.URL)

		stored, err := attachments.GetByID(ctx, attachment.ID)
		require.NoError(t, err)
		assert.Equal(t, attachment.URL, stored.URL)

		require.Len(t, uploader.Uploads, 1)
		assert.Equal(t, "image/png", uploader.Uploads[0].FileType)
	})

	t.Run("every allow-listed type is accepted", func(t *testing.T) {
		for _, fileType := range []string{"image/jpeg", "image/png", "application/pdf"} {
			attachments := mocks.NewAttachmentStore()
			svc := service.NewAttachmentService(attachments, &mocks.FakeUploader{}, testLogger())

			_, err := svc.UploadAndCreate(ctx, service.UploadAttachmentRequest{
				FileName: "file",
				FileType: fileType,
				Body:     strings.NewReader("bytes"),
			})
			assert.NoError(t, err, "type %s should be accepted", fileType)
		}
	})

	t.Run("disallowed type fails before anything is uploaded", func(t *testing.T) {
		attachments := mocks.NewAttachmentStore()
		uploader := &mocks.FakeUploader{}
		svc := service.NewAttachmentService(attachments, uploader, testLogger())

		_, err := svc.UploadAndCreate(ctx, service.UploadAttachmentRequest{
			FileName: "malware.exe",
			FileType: "application/x-msdownload",
			Body:     strings.NewReader("bytes"),
		})
		assert.ErrorIs(t, err, service.ErrInvalidAttachmentType)
		assert.Empty(t, uploader.Uploads)
	})

	t.Run("upload failure propagates and creates no record", func(t *testing.T) {
		attachments := mocks.NewAttachmentStore()
		uploader := &mocks.FakeUploader{Err: assert.AnError}
		svc := service.NewAttachmentService(attachments, uploader, testLogger())

		_, err := svc.UploadAndCreate(ctx, service.UploadAttachmentRequest{
			FileName: "notes.pdf",
			FileType: "application/pdf",
			Body:     strings.NewReader("bytes"),
		})
		assert.ErrorIs(t, err, assert.AnError)
	})
}
