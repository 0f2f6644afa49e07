package storage

import (
	"context"
	"io"
	"path"
	"strings"
)

// UploadedFile is a file received from the HTTP boundary, already checked
// against the upload policy.
type UploadedFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Extension returns the lower-cased extension of the original filename,
// including the leading dot, or "" when there is none.
func (f UploadedFile) Extension() string {
	return strings.ToLower(path.Ext(f.Filename))
}

// Disk is the storage backend that holds uploaded images.
type Disk interface {
	// Store writes the file under dir and returns its storage-relative path.
	Store(ctx context.Context, dir string, file UploadedFile) (string, error)
	// URL resolves a stored path to its public URL.
	URL(path string) string
	Exists(ctx context.Context, path string) (bool, error)
	// Delete removes the file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error
}
