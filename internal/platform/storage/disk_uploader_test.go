package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openlearn/forum-api/internal/config"
	"github.com/openlearn/forum-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskUploader_Upload(t *testing.T) {
	ctx := context.Background()

	newUploader := func(t *testing.T) (*DiskUploader, string) {
		t.Helper()
		dir := t.TempDir()
		uploader, err := NewDiskUploader(config.UploadConfig{Dir: dir, MaxBytes: 1 << 20}, nil)
		require.NoError(t, err)
		return uploader, dir
	}

	t.Run("stores the bytes under a unique key", func(t *testing.T) {
		uploader, dir := newUploader(t)

		key, err := uploader.Upload(ctx, service.UploadParams{
			FileName: "notes.pdf",
			FileType: "application/pdf",
			Body:     strings.NewReader("pdf-bytes"),
		})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(key, "-notes.pdf"), "key %q should end with the file name", key)

		data, err := os.ReadFile(filepath.Join(dir, key))
		require.NoError(t, err)
		assert.Equal(t, "pdf-bytes", string(data))
	})

	t.Run("same file name twice yields distinct keys", func(t *testing.T) {
		uploader, _ := newUploader(t)

		first, err := uploader.Upload(ctx, service.UploadParams{
			FileName: "diagram.png",
			FileType: "image/png",
			Body:     strings.NewReader("one"),
		})
		require.NoError(t, err)

		second, err := uploader.Upload(ctx, service.UploadParams{
			FileName: "diagram.png",
			FileType: "image/png",
			Body:     strings.NewReader("two"),
		})
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("path components in the file name are stripped", func(t *testing.T) {
		uploader, dir := newUploader(t)

		key, err := uploader.Upload(ctx, service.UploadParams{
			FileName: "../../etc/passwd",
			FileType: "image/png",
			Body:     strings.NewReader("x"),
		})
		require.NoError(t, err)
		assert.NotContains(t, key, "..")
		assert.NotContains(t, key, "/")

		_, err = os.Stat(filepath.Join(dir, key))
		assert.NoError(t, err)
	})
}
