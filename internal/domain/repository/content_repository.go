// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for content persistence.
var (
	// ErrContentNotFound is returned when a content record is not found.
	ErrContentNotFound = errors.New("content not found")
	// ErrDuplicateContent is returned when a unique key (such as a project slug) is already taken.
	ErrDuplicateContent = errors.New("content already exists")
)

// ContentRepository defines the persistence operations shared by every content collection.
type ContentRepository[E any] interface {
	// List returns the records ordered by sort order, optionally only published ones.
	List(ctx context.Context, publishedOnly bool) ([]*E, error)

	// FindByID retrieves a record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*E, error)

	// Create persists a new record and fills its generated fields.
	Create(ctx context.Context, record *E) error

	// Update overwrites every editable field of an existing record.
	Update(ctx context.Context, record *E) error

	// Delete removes a record by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of records in the collection.
	Count(ctx context.Context) (int64, error)

	// Reorder assigns sort orders following ids, atomically.
	Reorder(ctx context.Context, ids []uuid.UUID) error
}

// ProjectRepository adds slug lookups for portfolio detail pages.
type ProjectRepository interface {
	ContentRepository[entity.Project]

	// FindBySlug retrieves a project by its URL slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Project, error)
}

type (
	TestimonialRepository = ContentRepository[entity.Testimonial]
	HeroSlideRepository   = ContentRepository[entity.HeroSlide]
	OfficeRepository      = ContentRepository[entity.Office]
	ServiceRepository     = ContentRepository[entity.Service]
	WorkStageRepository   = ContentRepository[entity.WorkStage]
	TeamMemberRepository  = ContentRepository[entity.TeamMember]
	SocialLinkRepository  = ContentRepository[entity.SocialLink]
)
