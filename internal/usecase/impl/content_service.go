package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/usecase"
	"atelier/internal/util"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const summaryRunes = 160

// contentRecord ties an entity type to the pointer that implements entity.Content.
type contentRecord[E any] interface {
	*E
	entity.Content
}

// collection adapts a typed repository to the dashboard's by-name view.
type collection[E any, P contentRecord[E]] struct {
	kind    entity.ContentKind
	repo    repository.ContentRepository[E]
	prepare func(P)
}

func newCollection[E any, P contentRecord[E]](kind entity.ContentKind, repo repository.ContentRepository[E], prepare func(P)) *collection[E, P] {
	return &collection[E, P]{kind: kind, repo: repo, prepare: prepare}
}

func (c *collection[E, P]) Kind() entity.ContentKind {
	return c.kind
}

func (c *collection[E, P]) New() entity.Content {
	return P(new(E))
}

func (c *collection[E, P]) List(ctx context.Context, publishedOnly bool) ([]entity.Content, error) {
	records, err := c.repo.List(ctx, publishedOnly)
	if err != nil {
		return nil, translateContentError(err)
	}

	items := make([]entity.Content, 0, len(records))
	for _, record := range records {
		items = append(items, P(record))
	}

	return items, nil
}

func (c *collection[E, P]) Get(ctx context.Context, id uuid.UUID) (entity.Content, error) {
	record, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateContentError(err)
	}

	return P(record), nil
}

func (c *collection[E, P]) Create(ctx context.Context, record entity.Content) (entity.Content, error) {
	typed, err := c.cast(record)
	if err != nil {
		return nil, err
	}

	meta := typed.ContentMeta()
	meta.ID = uuid.Nil
	if c.prepare != nil {
		c.prepare(typed)
	}

	if err := c.repo.Create(ctx, (*E)(typed)); err != nil {
		return nil, translateContentError(err)
	}

	return typed, nil
}

func (c *collection[E, P]) Update(ctx context.Context, id uuid.UUID, record entity.Content) (entity.Content, error) {
	typed, err := c.cast(record)
	if err != nil {
		return nil, err
	}

	typed.ContentMeta().ID = id
	if c.prepare != nil {
		c.prepare(typed)
	}

	if err := c.repo.Update(ctx, (*E)(typed)); err != nil {
		return nil, translateContentError(err)
	}

	return c.Get(ctx, id)
}

func (c *collection[E, P]) Delete(ctx context.Context, id uuid.UUID) error {
	return translateContentError(c.repo.Delete(ctx, id))
}

func (c *collection[E, P]) Count(ctx context.Context) (int64, error) {
	count, err := c.repo.Count(ctx)

	return count, translateContentError(err)
}

func (c *collection[E, P]) Reorder(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("ids must not be empty")
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return domainerrors.ErrValidationFailed.WithDetails("duplicate id " + id.String())
		}
		seen[id] = struct{}{}
	}

	return translateContentError(c.repo.Reorder(ctx, ids))
}

func (c *collection[E, P]) cast(record entity.Content) (P, error) {
	typed, ok := record.(P)
	if !ok || typed == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("record does not belong to " + string(c.kind))
	}

	return typed, nil
}

func translateContentError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrContentNotFound):
		return domainerrors.ErrContentNotFound
	case errors.Is(err, repository.ErrDuplicateContent):
		return domainerrors.ErrDuplicateContent
	default:
		return err
	}
}

// contentService implements the ContentUsecase interface.
type contentService struct {
	collections map[entity.ContentKind]usecase.ContentCollection
	contacts    repository.ContactRepository
	logger      *slog.Logger
}

// ContentServiceParams holds dependencies for ContentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	Projects     repository.ProjectRepository
	Testimonials repository.TestimonialRepository
	HeroSlides   repository.HeroSlideRepository
	Offices      repository.OfficeRepository
	Services     repository.ServiceRepository
	WorkStages   repository.WorkStageRepository
	Team         repository.TeamMemberRepository
	SocialLinks  repository.SocialLinkRepository
	Contacts     repository.ContactRepository
	Logger       *slog.Logger
}

// NewContentService registers one collection per content kind.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	collections := []usecase.ContentCollection{
		newCollection(entity.KindProjects, repository.ContentRepository[entity.Project](params.Projects), prepareProject),
		newCollection[entity.Testimonial](entity.KindTestimonials, params.Testimonials, nil),
		newCollection[entity.HeroSlide](entity.KindHeroSlides, params.HeroSlides, nil),
		newCollection[entity.Office](entity.KindOffices, params.Offices, nil),
		newCollection[entity.Service](entity.KindServices, params.Services, nil),
		newCollection[entity.WorkStage](entity.KindWorkStages, params.WorkStages, nil),
		newCollection[entity.TeamMember](entity.KindTeam, params.Team, nil),
		newCollection(entity.KindSocialLinks, params.SocialLinks, prepareSocialLink),
	}

	byKind := make(map[entity.ContentKind]usecase.ContentCollection, len(collections))
	for _, c := range collections {
		byKind[c.Kind()] = c
	}

	return &contentService{
		collections: byKind,
		contacts:    params.Contacts,
		logger:      params.Logger,
	}
}

func (s *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *contentService) Collection(kind string) (usecase.ContentCollection, error) {
	c, ok := s.collections[entity.ContentKind(kind)]
	if !ok {
		return nil, domainerrors.ErrContentTypeNotFound.WithDetails(kind)
	}

	return c, nil
}

func (s *contentService) Collections() []usecase.ContentCollection {
	out := make([]usecase.ContentCollection, 0, len(s.collections))
	for _, kind := range entity.ContentKinds() {
		out = append(out, s.collections[kind])
	}

	return out
}

// Overview counts every collection concurrently.
func (s *contentService) Overview(ctx context.Context) (*usecase.Overview, error) {
	overview := &usecase.Overview{
		Counts: make(map[entity.ContentKind]int64, len(s.collections)),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	for _, c := range s.Collections() {
		g.Go(func() error {
			count, err := c.Count(gctx)
			if err != nil {
				return errors.Wrapf(err, "count %s", c.Kind())
			}

			mu.Lock()
			overview.Counts[c.Kind()] = count
			mu.Unlock()

			return nil
		})
	}

	g.Go(func() error {
		unread, err := s.contacts.CountUnread(gctx)
		if err != nil {
			return errors.Wrap(err, "count unread leads")
		}
		overview.UnreadLeads = unread

		return nil
	})

	if err := g.Wait(); err != nil {
		s.log(ctx).Error("Failed to build dashboard overview", slog.Any("error", err))

		return nil, err
	}

	return overview, nil
}

// prepareProject normalises the slug and fills missing summaries from the description.
func prepareProject(p *entity.Project) {
	p.Slug = strings.ToLower(strings.TrimSpace(p.Slug))

	if strings.TrimSpace(p.Summary.EN) == "" {
		p.Summary.EN = htmlExcerpt(p.Description.EN, summaryRunes)
	}
	if strings.TrimSpace(p.Summary.AR) == "" {
		p.Summary.AR = htmlExcerpt(p.Description.AR, summaryRunes)
	}
}

func prepareSocialLink(l *entity.SocialLink) {
	l.Platform = strings.ToLower(strings.TrimSpace(l.Platform))
}

// htmlExcerpt returns the visible text of an HTML fragment, shortened to limit runes.
func htmlExcerpt(html string, limit int) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	doc.Find("script, style").Remove()
	doc.Find("br").ReplaceWithHtml(" ")
	doc.Find("p, div, li, h1, h2, h3, h4, h5, h6, blockquote").AppendHtml(" ")

	text := strings.Join(strings.Fields(doc.Text()), " ")

	return util.TruncateRunes(text, limit)
}
