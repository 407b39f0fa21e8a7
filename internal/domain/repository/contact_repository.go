package repository

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrContactNotFound is returned when a contact submission is not found.
var ErrContactNotFound = errors.New("contact submission not found")

// ContactRepository defines the interface for contact form submissions.
type ContactRepository interface {
	// Create persists a new submission.
	Create(ctx context.Context, submission *entity.ContactSubmission) error

	// List returns submissions newest first.
	List(ctx context.Context, unreadOnly bool) ([]*entity.ContactSubmission, error)

	// MarkRead flags a submission as handled.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// Delete removes a submission.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountUnread returns how many submissions have not been read yet.
	CountUnread(ctx context.Context) (int64, error)
}
