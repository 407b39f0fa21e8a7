package usecase

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// ContentCollection is the type-erased view of one content collection used by
// the dashboard, which addresses collections by name.
type ContentCollection interface {
	// Kind names the collection.
	Kind() entity.ContentKind

	// New returns an empty record to decode a request body into.
	New() entity.Content

	// List returns the records ordered by sort order.
	List(ctx context.Context, publishedOnly bool) ([]entity.Content, error)

	// Get retrieves one record.
	Get(ctx context.Context, id uuid.UUID) (entity.Content, error)

	// Create stores a new record and returns it with generated fields set.
	Create(ctx context.Context, record entity.Content) (entity.Content, error)

	// Update replaces the record identified by id.
	Update(ctx context.Context, id uuid.UUID, record entity.Content) (entity.Content, error)

	// Delete removes the record identified by id.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the size of the collection.
	Count(ctx context.Context) (int64, error)

	// Reorder sets sort_order to each id's position in ids.
	Reorder(ctx context.Context, ids []uuid.UUID) error
}

// Overview summarises the dashboard landing page.
type Overview struct {
	Counts      map[entity.ContentKind]int64 `json:"counts"`
	UnreadLeads int64                        `json:"unread_leads"`
}

// ContentUsecase defines the dashboard content management use cases
type ContentUsecase interface {
	// Collection looks up a collection by its URL name.
	Collection(kind string) (ContentCollection, error)

	// Collections lists every collection in dashboard order.
	Collections() []ContentCollection

	// Overview counts records per collection and unread leads.
	Overview(ctx context.Context) (*Overview, error)
}
