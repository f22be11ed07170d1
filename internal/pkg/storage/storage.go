package storage

import (
	"context"
	"io"
)

type FileStorage interface {
	// Upload writes a file and returns its storage key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// GetURL returns a public URL for a stored file
	GetURL(ctx context.Context, path string) (string, error)

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
