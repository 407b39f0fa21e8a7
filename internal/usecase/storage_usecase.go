package usecase

import (
	"context"
	"io"

	"atelier/internal/domain/entity"
)

// UploadInput is a file received from the dashboard
type UploadInput struct {
	Prefix      string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// StorageUsecase defines the dashboard file management use cases
type StorageUsecase interface {
	// List returns the files under prefix
	List(ctx context.Context, prefix string) ([]*entity.StoredFile, error)

	// Open streams a stored file for the public media route
	Open(ctx context.Context, key string) (io.ReadCloser, *entity.StoredFile, error)

	// Upload stores an image and returns its attributes
	Upload(ctx context.Context, input *UploadInput) (*entity.StoredFile, error)

	// Delete removes a file by key
	Delete(ctx context.Context, key string) error
}
