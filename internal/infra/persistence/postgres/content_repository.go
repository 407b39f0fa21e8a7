// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contentRepository implements repository.ContentRepository for entity E stored as model M.
type contentRepository[E any, M any] struct {
	db         *gorm.DB
	name       string
	toDomain   func(*M) *E
	fromDomain func(*E) *M
}

func newContentRepository[E any, M any](db *gorm.DB, name string, toDomain func(*M) *E, fromDomain func(*E) *M) *contentRepository[E, M] {
	return &contentRepository[E, M]{
		db:         db,
		name:       name,
		toDomain:   toDomain,
		fromDomain: fromDomain,
	}
}

// List returns the records ordered by sort order, then creation time.
func (repo *contentRepository[E, M]) List(ctx context.Context, publishedOnly bool) ([]*E, error) {
	var rows []*M

	query := repo.db.WithContext(ctx).Order("sort_order ASC, created_at ASC")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	if err := query.Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list "+repo.name)
	}

	records := make([]*E, 0, len(rows))
	for _, row := range rows {
		records = append(records, repo.toDomain(row))
	}

	return records, nil
}

// FindByID retrieves a record by its unique ID.
func (repo *contentRepository[E, M]) FindByID(ctx context.Context, id uuid.UUID) (*E, error) {
	var row M

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find "+repo.name+" by ID")
	}

	return repo.toDomain(&row), nil
}

// Create persists a new record and copies the generated columns back.
func (repo *contentRepository[E, M]) Create(ctx context.Context, record *E) error {
	row := repo.fromDomain(record)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return repo.translateWriteError(err, "create")
	}

	*record = *repo.toDomain(row)

	return nil
}

// Update overwrites every editable column. Zero values are written too, so a
// field cleared in the dashboard is cleared in the table.
func (repo *contentRepository[E, M]) Update(ctx context.Context, record *E) error {
	row := repo.fromDomain(record)

	result := repo.db.WithContext(ctx).
		Model(row).
		Select("*").
		Omit("id", "created_at").
		Updates(row)

	if result.Error != nil {
		return repo.translateWriteError(result.Error, "update")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

// Delete removes a record by its ID.
func (repo *contentRepository[E, M]) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(new(M))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete "+repo.name)
	}

	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

// Count returns the number of records in the collection.
func (repo *contentRepository[E, M]) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).Model(new(M)).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count "+repo.name)
	}

	return count, nil
}

// Reorder writes sort_order = position for every id inside one transaction.
// An unknown id rolls the whole reorder back.
func (repo *contentRepository[E, M]) Reorder(ctx context.Context, ids []uuid.UUID) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range ids {
			result := tx.Model(new(M)).
				Where("id = ?", id).
				Update("sort_order", position)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return repository.ErrContentNotFound
			}
		}

		return nil
	})

	if err == nil || errors.Is(err, repository.ErrContentNotFound) {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to reorder "+repo.name)
}

func (repo *contentRepository[E, M]) translateWriteError(err error, op string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicateContent
	case isInvalidInput(err):
		return domainerrors.ErrValidationFailed.WithDetails(op + " " + repo.name + ": invalid or missing field")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(op + " " + repo.name + ": invalid reference")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to "+op+" "+repo.name)
	}
}
