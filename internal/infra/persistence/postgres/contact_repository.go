package postgres

import (
	"context"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// Create persists a new submission.
func (repo *contactRepository) Create(ctx context.Context, submission *entity.ContactSubmission) error {
	row := fromContactDomain(submission)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isInvalidInput(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required contact information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact submission")
	}

	// Update the entity with generated values
	submission.ID = row.ID
	submission.CreatedAt = row.CreatedAt

	return nil
}

// List returns submissions newest first.
func (repo *contactRepository) List(ctx context.Context, unreadOnly bool) ([]*entity.ContactSubmission, error) {
	var rows []*model.ContactSubmissionModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	if err := query.Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list contact submissions")
	}

	submissions := make([]*entity.ContactSubmission, 0, len(rows))
	for _, row := range rows {
		submissions = append(submissions, toContactDomain(row))
	}

	return submissions, nil
}

// MarkRead flags a submission as handled.
func (repo *contactRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ContactSubmissionModel{}).
		Where("id = ?", id).
		Update("read", true)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark contact submission read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// Delete removes a submission.
func (repo *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ContactSubmissionModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete contact submission")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// CountUnread returns how many submissions have not been read yet.
func (repo *contactRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ContactSubmissionModel{}).
		Where("read = ?", false).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count unread contact submissions")
	}

	return count, nil
}
