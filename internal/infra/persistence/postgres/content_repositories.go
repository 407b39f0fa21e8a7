package postgres

import (
	"context"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// projectRepository adds slug lookups on top of the shared content operations.
type projectRepository struct {
	*contentRepository[entity.Project, model.ProjectModel]
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{
		contentRepository: newContentRepository(db, "projects", toProjectDomain, fromProjectDomain),
	}
}

// FindBySlug retrieves a published or draft project by its URL slug.
func (repo *projectRepository) FindBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	var row model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find project by slug")
	}

	return toProjectDomain(&row), nil
}

// NewTestimonialRepository creates the testimonials repository.
func NewTestimonialRepository(db *gorm.DB) repository.TestimonialRepository {
	return newContentRepository(db, "testimonials", toTestimonialDomain, fromTestimonialDomain)
}

// NewHeroSlideRepository creates the hero slides repository.
func NewHeroSlideRepository(db *gorm.DB) repository.HeroSlideRepository {
	return newContentRepository(db, "hero slides", toHeroSlideDomain, fromHeroSlideDomain)
}

// NewOfficeRepository creates the offices repository.
func NewOfficeRepository(db *gorm.DB) repository.OfficeRepository {
	return newContentRepository(db, "offices", toOfficeDomain, fromOfficeDomain)
}

// NewServiceRepository creates the services repository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return newContentRepository(db, "services", toServiceDomain, fromServiceDomain)
}

// NewWorkStageRepository creates the work stages repository.
func NewWorkStageRepository(db *gorm.DB) repository.WorkStageRepository {
	return newContentRepository(db, "work stages", toWorkStageDomain, fromWorkStageDomain)
}

// NewTeamMemberRepository creates the team repository.
func NewTeamMemberRepository(db *gorm.DB) repository.TeamMemberRepository {
	return newContentRepository(db, "team members", toTeamMemberDomain, fromTeamMemberDomain)
}

// NewSocialLinkRepository creates the social links repository.
func NewSocialLinkRepository(db *gorm.DB) repository.SocialLinkRepository {
	return newContentRepository(db, "social links", toSocialLinkDomain, fromSocialLinkDomain)
}
