package service

import (
	"context"
	"io"

	"storefront/internal/errors"
)

// ErrFileNotFound is returned when an object does not exist.
var ErrFileNotFound = errors.New("file not found")

// StoredFile describes an uploaded object.
type StoredFile struct {
	Key string // Storage key, relative to the bucket
	URL string // Public URL
}

// FileStorage stores uploaded images such as payment screenshots and QR codes.
type FileStorage interface {
	// Save writes data under key and returns where it can be fetched.
	Save(ctx context.Context, key, contentType string, data io.Reader) (*StoredFile, error)

	// Open returns a reader for key and its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
