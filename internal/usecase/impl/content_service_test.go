package impl

import (
	"context"
	"testing"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	mockRepo "atelier/internal/mocks/repository"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contentServiceFixtures struct {
	service      usecase.ContentUsecase
	projects     *mockRepo.MockProjectRepository
	testimonials *mockRepo.MockContentRepository[entity.Testimonial]
	heroSlides   *mockRepo.MockContentRepository[entity.HeroSlide]
	offices      *mockRepo.MockContentRepository[entity.Office]
	services     *mockRepo.MockContentRepository[entity.Service]
	workStages   *mockRepo.MockContentRepository[entity.WorkStage]
	team         *mockRepo.MockContentRepository[entity.TeamMember]
	socialLinks  *mockRepo.MockContentRepository[entity.SocialLink]
	contacts     *mockRepo.MockContactRepository
}

func createTestContentService(t *testing.T) contentServiceFixtures {
	fx := contentServiceFixtures{
		projects:     mockRepo.NewMockProjectRepository(t),
		testimonials: mockRepo.NewMockContentRepository[entity.Testimonial](t),
		heroSlides:   mockRepo.NewMockContentRepository[entity.HeroSlide](t),
		offices:      mockRepo.NewMockContentRepository[entity.Office](t),
		services:     mockRepo.NewMockContentRepository[entity.Service](t),
		workStages:   mockRepo.NewMockContentRepository[entity.WorkStage](t),
		team:         mockRepo.NewMockContentRepository[entity.TeamMember](t),
		socialLinks:  mockRepo.NewMockContentRepository[entity.SocialLink](t),
		contacts:     mockRepo.NewMockContactRepository(t),
	}

	fx.service = NewContentService(ContentServiceParams{
		Projects:     fx.projects,
		Testimonials: fx.testimonials,
		HeroSlides:   fx.heroSlides,
		Offices:      fx.offices,
		Services:     fx.services,
		WorkStages:   fx.workStages,
		Team:         fx.team,
		SocialLinks:  fx.socialLinks,
		Contacts:     fx.contacts,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestContentService_CollectionLookup(t *testing.T) {
	fx := createTestContentService(t)

	for _, kind := range entity.ContentKinds() {
		c, err := fx.service.Collection(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, c.Kind())
	}

	_, err := fx.service.Collection("blog-posts")
	assert.ErrorIs(t, err, domainerrors.ErrContentTypeNotFound)

	kinds := make([]entity.ContentKind, 0)
	for _, c := range fx.service.Collections() {
		kinds = append(kinds, c.Kind())
	}
	assert.Equal(t, entity.ContentKinds(), kinds)
}

func TestContentService_NewReturnsTypedRecord(t *testing.T) {
	fx := createTestContentService(t)

	c, err := fx.service.Collection("offices")
	require.NoError(t, err)

	_, ok := c.New().(*entity.Office)
	assert.True(t, ok)
}

func TestContentService_List(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()

	slides := []*entity.HeroSlide{
		{Meta: entity.Meta{ID: uuid.New(), SortOrder: 0}, ImageURL: "a.jpg"},
		{Meta: entity.Meta{ID: uuid.New(), SortOrder: 1}, ImageURL: "b.jpg"},
	}
	fx.heroSlides.EXPECT().List(ctx, false).Return(slides, nil)

	c, err := fx.service.Collection("hero-slides")
	require.NoError(t, err)

	items, err := c.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Same(t, slides[1], items[1])
}

func TestContentService_CreateProjectDerivesSummary(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()

	project := &entity.Project{
		Meta: entity.Meta{ID: uuid.New()},
		Slug: "  Harbour-Pavilion ",
		Description: entity.Localized{
			EN: "<h2>Brief</h2><p>A timber pavilion<br>on the harbour.</p><script>track()</script>",
			AR: "<p>جناح خشبي</p>",
		},
		Summary: entity.Localized{AR: "ملخص"},
	}

	fx.projects.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Project")).
		RunAndReturn(func(_ context.Context, p *entity.Project) error {
			assert.Equal(t, uuid.Nil, p.ID)
			p.ID = uuid.New()

			return nil
		})

	c, err := fx.service.Collection("projects")
	require.NoError(t, err)

	created, err := c.Create(ctx, project)
	require.NoError(t, err)

	got := created.(*entity.Project)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "harbour-pavilion", got.Slug)
	assert.Equal(t, "Brief A timber pavilion on the harbour.", got.Summary.EN)
	assert.Equal(t, "ملخص", got.Summary.AR)
}

func TestContentService_CreateWrongType(t *testing.T) {
	fx := createTestContentService(t)

	c, err := fx.service.Collection("projects")
	require.NoError(t, err)

	_, err = c.Create(context.Background(), &entity.Office{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestContentService_CreateDuplicateSlug(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()

	fx.projects.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Project")).
		Return(repository.ErrDuplicateContent)

	c, err := fx.service.Collection("projects")
	require.NoError(t, err)

	_, err = c.Create(ctx, &entity.Project{Slug: "taken"})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateContent)
}

func TestContentService_UpdateUsesPathID(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()
	id := uuid.New()
	stored := &entity.Service{Meta: entity.Meta{ID: id}, Icon: "compass"}

	fx.services.EXPECT().
		Update(ctx, mock.MatchedBy(func(s *entity.Service) bool { return s.ID == id })).
		Return(nil)
	fx.services.EXPECT().FindByID(ctx, id).Return(stored, nil)

	c, err := fx.service.Collection("services")
	require.NoError(t, err)

	updated, err := c.Update(ctx, id, &entity.Service{Meta: entity.Meta{ID: uuid.New()}, Icon: "compass"})
	require.NoError(t, err)
	assert.Same(t, stored, updated)
}

func TestContentService_NotFound(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.team.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrContentNotFound)
	fx.team.EXPECT().Delete(ctx, id).Return(repository.ErrContentNotFound)

	c, err := fx.service.Collection("team")
	require.NoError(t, err)

	_, err = c.Get(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrContentNotFound)
	assert.ErrorIs(t, c.Delete(ctx, id), domainerrors.ErrContentNotFound)
}

func TestContentService_Reorder(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	fx.workStages.EXPECT().Reorder(ctx, []uuid.UUID{b, a}).Return(nil)

	c, err := fx.service.Collection("work-stages")
	require.NoError(t, err)

	require.NoError(t, c.Reorder(ctx, []uuid.UUID{b, a}))
	assert.ErrorIs(t, c.Reorder(ctx, nil), domainerrors.ErrValidationFailed)
	assert.ErrorIs(t, c.Reorder(ctx, []uuid.UUID{a, a}), domainerrors.ErrValidationFailed)
}

func TestContentService_Overview(t *testing.T) {
	fx := createTestContentService(t)

	fx.projects.EXPECT().Count(mock.Anything).Return(int64(12), nil)
	fx.testimonials.EXPECT().Count(mock.Anything).Return(int64(4), nil)
	fx.heroSlides.EXPECT().Count(mock.Anything).Return(int64(3), nil)
	fx.offices.EXPECT().Count(mock.Anything).Return(int64(2), nil)
	fx.services.EXPECT().Count(mock.Anything).Return(int64(6), nil)
	fx.workStages.EXPECT().Count(mock.Anything).Return(int64(5), nil)
	fx.team.EXPECT().Count(mock.Anything).Return(int64(9), nil)
	fx.socialLinks.EXPECT().Count(mock.Anything).Return(int64(4), nil)
	fx.contacts.EXPECT().CountUnread(mock.Anything).Return(int64(7), nil)

	overview, err := fx.service.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), overview.Counts[entity.KindProjects])
	assert.Equal(t, int64(9), overview.Counts[entity.KindTeam])
	assert.Len(t, overview.Counts, len(entity.ContentKinds()))
	assert.Equal(t, int64(7), overview.UnreadLeads)
}

func TestContentService_OverviewError(t *testing.T) {
	fx := createTestContentService(t)

	fx.projects.EXPECT().Count(mock.Anything).Return(int64(0), errors.New("connection refused")).Maybe()
	fx.testimonials.EXPECT().Count(mock.Anything).Return(int64(0), nil).Maybe()
	fx.heroSlides.EXPECT().Count(mock.Anything).Return(int64(0), nil).Maybe()
	fx.offices.EXPECT().Count(mock.Anything).Return(int64(0), nil).Maybe()
	fx.services.EXPECT().Count(mock.Anything).Return(int64(0), nil).Maybe()
	fx.workStages.EXPECT().Count(mock.Anything).Return(int64(0), nil).Maybe()
	fx.team.EXPECT().Count(mock.Anything).Return(int64(0), nil).Maybe()
	fx.socialLinks.EXPECT().Count(mock.Anything).Return(int64(0), nil).Maybe()
	fx.contacts.EXPECT().CountUnread(mock.Anything).Return(int64(0), nil).Maybe()

	_, err := fx.service.Overview(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestHTMLExcerpt(t *testing.T) {
	assert.Empty(t, htmlExcerpt("   ", 160))
	assert.Equal(t, "One Two", htmlExcerpt("<ul><li>One</li><li>Two</li></ul>", 160))
	assert.Equal(t, "A timber…", htmlExcerpt("<p>A timber pavilion</p>", 12))
}
