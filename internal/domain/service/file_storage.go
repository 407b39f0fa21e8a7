package service

import (
	"context"
	"io"

	"atelier/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrObjectNotFound is returned when a key does not exist in the bucket.
var ErrObjectNotFound = errors.New("object not found")

// FileStorage abstracts the uploads bucket.
type FileStorage interface {
	// List returns the objects under prefix.
	List(ctx context.Context, prefix string) ([]*entity.StoredFile, error)

	// Open returns a reader over the object and its attributes. The caller closes the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, *entity.StoredFile, error)

	// Upload writes the object and returns its attributes.
	Upload(ctx context.Context, key, contentType string, r io.Reader) (*entity.StoredFile, error)

	// Delete removes the object, returning ErrObjectNotFound when it is missing.
	Delete(ctx context.Context, key string) error

	// Ping checks that the bucket is accessible.
	Ping(ctx context.Context) error
}
