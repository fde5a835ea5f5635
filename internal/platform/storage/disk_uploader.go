// Package storage provides the filesystem-backed attachment upload adapter.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/openlearn/forum-api/internal/config"
	"github.com/openlearn/forum-api/internal/platform/logger"
	"github.com/openlearn/forum-api/internal/service"
)

// DiskUploader stores uploaded attachment bytes on the local filesystem.
// Each upload gets a UUID-prefixed object key so colliding file names never
// overwrite each other. The returned location is the object key, which the
// attachment record stores as its URL.
type DiskUploader struct {
	dir    string
	logger *slog.Logger
}

// NewDiskUploader creates a DiskUploader writing into the configured
// directory, creating it if necessary.
// If log is nil, a default logger will be used.
func NewDiskUploader(cfg config.UploadConfig, log *slog.Logger) (*DiskUploader, error) {
	if log == nil {
		log = slog.Default()
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", cfg.Dir, err)
	}

	return &DiskUploader{
		dir:    cfg.Dir,
		logger: log.With(slog.String("component", "disk_uploader")),
	}, nil
}

// Ensure DiskUploader implements service.Uploader
var _ service.Uploader = (*DiskUploader)(nil)

// Upload implements service.Uploader.
func (u *DiskUploader) Upload(ctx context.Context, params service.UploadParams) (string, error) {
	log := logger.FromContextOrDefault(ctx, u.logger)

	key := uuid.New().String() + "-" + sanitizeFileName(params.FileName)
	path := filepath.Join(u.dir, key)

	file, err := os.Create(path)
	if err != nil {
		log.Error("failed to create upload file",
			slog.String("error", err.Error()),
			slog.String("key", key))
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	written, err := io.Copy(file, params.Body)
	if err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		log.Error("failed to write upload",
			slog.String("error", err.Error()),
			slog.String("key", key))
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to finish upload: %w", err)
	}

	log.Info("upload stored",
		slog.String("key", key),
		slog.Int64("bytes", written),
		slog.String("file_type", params.FileType))
	return key, nil
}

// sanitizeFileName strips path separators and whitespace so the object key
// stays a single flat path element.
func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "-")
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "file"
	}
	return name
}
