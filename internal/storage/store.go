package storage

import (
	"context"
	"errors"
	"io"
)

// ErrFileNotFound is returned by Open for names with no stored object.
var ErrFileNotFound = errors.New("file not found in content store")

// Store is the content store holding uploaded image bytes, addressed by
// server-generated filename.
type Store interface {
	// Save persists data under name. The object is fully written when Save
	// returns nil; readers never observe partial content.
	Save(ctx context.Context, name string, data []byte) error
	// Open returns a reader over a stored object, or ErrFileNotFound.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
