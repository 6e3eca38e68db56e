package storage

import (
	"context"
	"io"
	"time"
)

// Storage abstracts the document store behind upload/download URLs so the
// HTTP layer never touches the backing filesystem or bucket directly.
type Storage interface {
	// GenerateUploadURL returns a URL the client PUTs the file to.
	GenerateUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error)

	// GenerateDownloadURL returns a URL the client GETs the file from.
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// FileExists checks if a file exists and returns its size.
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes a file from storage.
	DeleteFile(ctx context.Context, key string) error

	// SaveFile and ReadFile are used by the local upload/download handlers.
	SaveFile(key string, reader io.Reader) error
	ReadFile(key string) (io.ReadCloser, error)
}
