package storage

import (
	"context"
	"io"
)

// BlobStore accepts raw bytes under a name and returns a durable retrieval
// URL. The URL format is opaque to callers and stored verbatim.
type BlobStore interface {
	// Put uploads the object and returns its public URL.
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)

	// Remove deletes the object.
	Remove(ctx context.Context, name string) error
}
