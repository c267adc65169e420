package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned when the requested object key does not exist.
var ErrObjectNotFound = errors.New("object not found in storage")

// FileStorage defines the interface for blob storage operations. Objects are
// addressed by opaque server-minted keys; the stored content type travels
// with the object so it can be replayed on retrieval.
type FileStorage interface {
	// Upload writes the object under the given key with its content type.
	Upload(ctx context.Context, objectKey string, contentType string, body io.Reader, size int64) error

	// Download returns a stream of the object's bytes together with the
	// content type it was stored with and its size in bytes (-1 when
	// unknown). The caller must close the stream.
	Download(ctx context.Context, objectKey string) (io.ReadCloser, string, int64, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}
