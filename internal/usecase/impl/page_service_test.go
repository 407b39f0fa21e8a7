package impl

import (
	"context"
	"testing"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	mockRepo "atelier/internal/mocks/repository"
	"atelier/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	english = entity.Locale{Tag: "en", Dir: entity.DirectionLTR}
	arabic  = entity.Locale{Tag: "ar", Dir: entity.DirectionRTL}
)

type pageServiceFixtures struct {
	service      usecase.PageUsecase
	projects     *mockRepo.MockProjectRepository
	testimonials *mockRepo.MockContentRepository[entity.Testimonial]
	heroSlides   *mockRepo.MockContentRepository[entity.HeroSlide]
	offices      *mockRepo.MockContentRepository[entity.Office]
	services     *mockRepo.MockContentRepository[entity.Service]
	workStages   *mockRepo.MockContentRepository[entity.WorkStage]
	team         *mockRepo.MockContentRepository[entity.TeamMember]
	socialLinks  *mockRepo.MockContentRepository[entity.SocialLink]
}

func createTestPageService(t *testing.T) pageServiceFixtures {
	fx := pageServiceFixtures{
		projects:     mockRepo.NewMockProjectRepository(t),
		testimonials: mockRepo.NewMockContentRepository[entity.Testimonial](t),
		heroSlides:   mockRepo.NewMockContentRepository[entity.HeroSlide](t),
		offices:      mockRepo.NewMockContentRepository[entity.Office](t),
		services:     mockRepo.NewMockContentRepository[entity.Service](t),
		workStages:   mockRepo.NewMockContentRepository[entity.WorkStage](t),
		team:         mockRepo.NewMockContentRepository[entity.TeamMember](t),
		socialLinks:  mockRepo.NewMockContentRepository[entity.SocialLink](t),
	}

	fx.service = NewPageService(PageServiceParams{
		Projects:     fx.projects,
		Testimonials: fx.testimonials,
		HeroSlides:   fx.heroSlides,
		Offices:      fx.offices,
		Services:     fx.services,
		WorkStages:   fx.workStages,
		Team:         fx.team,
		SocialLinks:  fx.socialLinks,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func (fx pageServiceFixtures) expectSocial() {
	fx.socialLinks.EXPECT().List(mock.Anything, true).Return([]*entity.SocialLink{
		{Platform: "instagram", URL: "https://instagram.com/atelier"},
	}, nil)
}

func TestPageService_HomeLocalizesAndPicksFeatured(t *testing.T) {
	fx := createTestPageService(t)
	fx.expectSocial()

	fx.heroSlides.EXPECT().List(mock.Anything, true).Return([]*entity.HeroSlide{
		{Title: entity.Localized{EN: "Light", AR: "ضوء"}, ImageURL: "hero.jpg"},
	}, nil)
	fx.services.EXPECT().List(mock.Anything, true).Return([]*entity.Service{
		{Title: entity.Localized{EN: "Interiors"}},
	}, nil)
	fx.testimonials.EXPECT().List(mock.Anything, true).Return([]*entity.Testimonial{}, nil)
	fx.projects.EXPECT().List(mock.Anything, true).Return([]*entity.Project{
		{Slug: "a", Featured: true, Title: entity.Localized{EN: "A", AR: "أ"}},
		{Slug: "b", Featured: false},
		{Slug: "c", Featured: true, Title: entity.Localized{EN: "C"}},
	}, nil)

	page, err := fx.service.Home(context.Background(), arabic)
	require.NoError(t, err)

	assert.Equal(t, "ar", page.Locale)
	assert.Equal(t, entity.DirectionRTL, page.Dir)
	assert.Equal(t, "ضوء", page.Slides[0].Title)
	// Missing Arabic text falls back to English.
	assert.Equal(t, "Interiors", page.Services[0].Title)
	require.Len(t, page.Featured, 2)
	assert.Equal(t, "أ", page.Featured[0].Title)
	assert.Equal(t, "c", page.Featured[1].Slug)
	assert.Empty(t, page.Featured[0].Description)
	assert.Len(t, page.Social, 1)
}

func TestPageService_HomeRepositoryError(t *testing.T) {
	fx := createTestPageService(t)

	fx.socialLinks.EXPECT().List(mock.Anything, true).Return(nil, nil).Maybe()
	fx.heroSlides.EXPECT().List(mock.Anything, true).Return(nil, errors.New("timeout")).Maybe()
	fx.services.EXPECT().List(mock.Anything, true).Return(nil, nil).Maybe()
	fx.testimonials.EXPECT().List(mock.Anything, true).Return(nil, nil).Maybe()
	fx.projects.EXPECT().List(mock.Anything, true).Return(nil, nil).Maybe()

	_, err := fx.service.Home(context.Background(), english)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestPageService_PortfolioFiltersByCategory(t *testing.T) {
	fx := createTestPageService(t)
	fx.expectSocial()

	fx.projects.EXPECT().List(mock.Anything, true).Return([]*entity.Project{
		{Slug: "villa", Category: "residential"},
		{Slug: "museum", Category: "cultural"},
		{Slug: "tower", Category: "residential"},
	}, nil)

	page, err := fx.service.Portfolio(context.Background(), english, "residential")
	require.NoError(t, err)

	assert.Equal(t, []string{"cultural", "residential"}, page.Categories)
	require.Len(t, page.Projects, 2)
	assert.Equal(t, "villa", page.Projects[0].Slug)
	assert.Equal(t, "tower", page.Projects[1].Slug)
}

func TestPageService_Project(t *testing.T) {
	fx := createTestPageService(t)
	ctx := context.Background()
	fx.expectSocial()

	fx.projects.EXPECT().FindBySlug(ctx, "villa").Return(&entity.Project{
		Meta:        entity.Meta{Published: true},
		Slug:        "villa",
		Description: entity.Localized{EN: "<p>Full text</p>"},
		Gallery:     []string{"1.jpg"},
	}, nil)

	page, err := fx.service.Project(ctx, english, "villa")
	require.NoError(t, err)
	assert.Equal(t, "<p>Full text</p>", page.Project.Description)
	assert.Equal(t, []string{"1.jpg"}, page.Project.Gallery)
}

func TestPageService_ProjectHidesDraftsAndMissing(t *testing.T) {
	fx := createTestPageService(t)
	ctx := context.Background()

	fx.projects.EXPECT().FindBySlug(ctx, "draft").Return(&entity.Project{Slug: "draft"}, nil)
	fx.projects.EXPECT().FindBySlug(ctx, "gone").Return(nil, repository.ErrContentNotFound)

	_, err := fx.service.Project(ctx, english, "draft")
	assert.ErrorIs(t, err, domainerrors.ErrPageNotFound)

	_, err = fx.service.Project(ctx, english, "gone")
	assert.ErrorIs(t, err, domainerrors.ErrPageNotFound)
}

func TestPageService_ContactsAndCareers(t *testing.T) {
	fx := createTestPageService(t)
	ctx := context.Background()

	fx.socialLinks.EXPECT().List(mock.Anything, true).Return(nil, nil).Times(2)
	fx.offices.EXPECT().List(mock.Anything, true).Return([]*entity.Office{
		{City: entity.Localized{EN: "Dubai", AR: "دبي"}, Latitude: 25.2, Longitude: 55.3},
	}, nil).Times(2)
	fx.team.EXPECT().List(mock.Anything, true).Return([]*entity.TeamMember{
		{Name: entity.Localized{EN: "Sara"}},
	}, nil)

	contacts, err := fx.service.Contacts(ctx, arabic)
	require.NoError(t, err)
	assert.Equal(t, "دبي", contacts.Offices[0].City)
	assert.NotNil(t, contacts.Social)

	careers, err := fx.service.Careers(ctx, english)
	require.NoError(t, err)
	assert.Equal(t, "Sara", careers.Team[0].Name)
	assert.Equal(t, "Dubai", careers.Offices[0].City)
}

func TestPageService_ServicesAndAbout(t *testing.T) {
	fx := createTestPageService(t)
	ctx := context.Background()

	fx.socialLinks.EXPECT().List(mock.Anything, true).Return(nil, nil).Times(2)
	fx.services.EXPECT().List(mock.Anything, true).Return([]*entity.Service{{Icon: "pen"}}, nil)
	fx.workStages.EXPECT().List(mock.Anything, true).Return([]*entity.WorkStage{
		{Step: 1, Title: entity.Localized{EN: "Brief"}},
	}, nil).Times(2)
	fx.team.EXPECT().List(mock.Anything, true).Return(nil, nil)
	fx.testimonials.EXPECT().List(mock.Anything, true).Return([]*entity.Testimonial{
		{Quote: entity.Localized{EN: "Great"}},
	}, nil)

	services, err := fx.service.Services(ctx, english)
	require.NoError(t, err)
	assert.Equal(t, "pen", services.Services[0].Icon)
	assert.Equal(t, 1, services.Stages[0].Step)

	about, err := fx.service.About(ctx, english)
	require.NoError(t, err)
	assert.Empty(t, about.Team)
	assert.Equal(t, "Great", about.Testimonials[0].Quote)
}
