package storage

import (
	"context"
	"io"
)

// FileStorage stores uploaded files under relative paths and serves them at public URLs.
type FileStorage interface {
	// Upload writes file at path and returns the cleaned relative path.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)
	// Delete removes the file at path; a missing file is not an error.
	Delete(ctx context.Context, path string) error
	// URL returns the public URL of a stored path.
	URL(path string) string
}
