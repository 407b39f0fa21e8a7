package impl

import (
	"context"
	"log/slog"
	"slices"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const featuredProjectLimit = 6

// pageService implements the PageUsecase interface.
type pageService struct {
	projects     repository.ProjectRepository
	testimonials repository.TestimonialRepository
	heroSlides   repository.HeroSlideRepository
	offices      repository.OfficeRepository
	services     repository.ServiceRepository
	workStages   repository.WorkStageRepository
	team         repository.TeamMemberRepository
	socialLinks  repository.SocialLinkRepository
	logger       *slog.Logger
}

// PageServiceParams holds dependencies for PageService, injected by Fx.
type PageServiceParams struct {
	fx.In

	Projects     repository.ProjectRepository
	Testimonials repository.TestimonialRepository
	HeroSlides   repository.HeroSlideRepository
	Offices      repository.OfficeRepository
	Services     repository.ServiceRepository
	WorkStages   repository.WorkStageRepository
	Team         repository.TeamMemberRepository
	SocialLinks  repository.SocialLinkRepository
	Logger       *slog.Logger
}

// NewPageService is the constructor for pageService.
func NewPageService(params PageServiceParams) usecase.PageUsecase {
	return &pageService{
		projects:     params.Projects,
		testimonials: params.Testimonials,
		heroSlides:   params.HeroSlides,
		offices:      params.Offices,
		services:     params.Services,
		workStages:   params.WorkStages,
		team:         params.Team,
		socialLinks:  params.SocialLinks,
		logger:       params.Logger,
	}
}

// published loads the published records of one collection into dst.
func published[E any, V any](ctx context.Context, repo repository.ContentRepository[E], dst *[]V, view func(*E) V) func() error {
	return func() error {
		records, err := repo.List(ctx, true)
		if err != nil {
			return err
		}

		out := make([]V, 0, len(records))
		for _, record := range records {
			out = append(out, view(record))
		}
		*dst = out

		return nil
	}
}

func (s *pageService) Home(ctx context.Context, locale entity.Locale) (*usecase.HomePage, error) {
	page := &usecase.HomePage{Page: newPage(locale)}
	tag := locale.Tag

	var projects []*entity.Project

	g, gctx := errgroup.WithContext(ctx)
	g.Go(published(gctx, s.socialLinks, &page.Social, socialLinkView))
	g.Go(published(gctx, s.heroSlides, &page.Slides, func(h *entity.HeroSlide) *usecase.HeroSlideView { return heroSlideView(h, tag) }))
	g.Go(published(gctx, s.services, &page.Services, func(sv *entity.Service) *usecase.ServiceView { return serviceView(sv, tag) }))
	g.Go(published(gctx, s.testimonials, &page.Testimonials, func(t *entity.Testimonial) *usecase.TestimonialView { return testimonialView(t, tag) }))
	g.Go(published(gctx, repository.ContentRepository[entity.Project](s.projects), &projects, func(p *entity.Project) *entity.Project { return p }))

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to load home page")
	}

	page.Featured = make([]*usecase.ProjectView, 0, featuredProjectLimit)
	for _, p := range projects {
		if !p.Featured {
			continue
		}
		page.Featured = append(page.Featured, projectView(p, tag, false))
		if len(page.Featured) == featuredProjectLimit {
			break
		}
	}

	return page, nil
}

func (s *pageService) Portfolio(ctx context.Context, locale entity.Locale, category string) (*usecase.PortfolioPage, error) {
	page := &usecase.PortfolioPage{Page: newPage(locale)}

	var projects []*entity.Project

	g, gctx := errgroup.WithContext(ctx)
	g.Go(published(gctx, s.socialLinks, &page.Social, socialLinkView))
	g.Go(published(gctx, repository.ContentRepository[entity.Project](s.projects), &projects, func(p *entity.Project) *entity.Project { return p }))

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to load portfolio page")
	}

	page.Categories = make([]string, 0)
	page.Projects = make([]*usecase.ProjectView, 0, len(projects))
	for _, p := range projects {
		if p.Category != "" && !slices.Contains(page.Categories, p.Category) {
			page.Categories = append(page.Categories, p.Category)
		}
		if category != "" && p.Category != category {
			continue
		}
		page.Projects = append(page.Projects, projectView(p, locale.Tag, false))
	}
	slices.Sort(page.Categories)

	return page, nil
}

func (s *pageService) Project(ctx context.Context, locale entity.Locale, slug string) (*usecase.ProjectPage, error) {
	project, err := s.projects.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, domainerrors.ErrPageNotFound.WithDetails("project " + slug)
		}

		return nil, err
	}

	// Drafts are only visible in the dashboard.
	if !project.Published {
		return nil, domainerrors.ErrPageNotFound.WithDetails("project " + slug)
	}

	page := &usecase.ProjectPage{Page: newPage(locale), Project: projectView(project, locale.Tag, true)}
	if err := published(ctx, s.socialLinks, &page.Social, socialLinkView)(); err != nil {
		return nil, errors.Wrap(err, "failed to load project page")
	}

	return page, nil
}

func (s *pageService) Services(ctx context.Context, locale entity.Locale) (*usecase.ServicesPage, error) {
	page := &usecase.ServicesPage{Page: newPage(locale)}
	tag := locale.Tag

	g, gctx := errgroup.WithContext(ctx)
	g.Go(published(gctx, s.socialLinks, &page.Social, socialLinkView))
	g.Go(published(gctx, s.services, &page.Services, func(sv *entity.Service) *usecase.ServiceView { return serviceView(sv, tag) }))
	g.Go(published(gctx, s.workStages, &page.Stages, func(w *entity.WorkStage) *usecase.WorkStageView { return workStageView(w, tag) }))

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to load services page")
	}

	return page, nil
}

func (s *pageService) About(ctx context.Context, locale entity.Locale) (*usecase.AboutPage, error) {
	page := &usecase.AboutPage{Page: newPage(locale)}
	tag := locale.Tag

	g, gctx := errgroup.WithContext(ctx)
	g.Go(published(gctx, s.socialLinks, &page.Social, socialLinkView))
	g.Go(published(gctx, s.team, &page.Team, func(m *entity.TeamMember) *usecase.TeamMemberView { return teamMemberView(m, tag) }))
	g.Go(published(gctx, s.workStages, &page.Stages, func(w *entity.WorkStage) *usecase.WorkStageView { return workStageView(w, tag) }))
	g.Go(published(gctx, s.testimonials, &page.Testimonials, func(t *entity.Testimonial) *usecase.TestimonialView { return testimonialView(t, tag) }))

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to load about page")
	}

	return page, nil
}

func (s *pageService) Careers(ctx context.Context, locale entity.Locale) (*usecase.CareersPage, error) {
	page := &usecase.CareersPage{Page: newPage(locale)}
	tag := locale.Tag

	g, gctx := errgroup.WithContext(ctx)
	g.Go(published(gctx, s.socialLinks, &page.Social, socialLinkView))
	g.Go(published(gctx, s.team, &page.Team, func(m *entity.TeamMember) *usecase.TeamMemberView { return teamMemberView(m, tag) }))
	g.Go(published(gctx, s.offices, &page.Offices, func(o *entity.Office) *usecase.OfficeView { return officeView(o, tag) }))

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to load careers page")
	}

	return page, nil
}

func (s *pageService) Contacts(ctx context.Context, locale entity.Locale) (*usecase.ContactsPage, error) {
	page := &usecase.ContactsPage{Page: newPage(locale)}
	tag := locale.Tag

	g, gctx := errgroup.WithContext(ctx)
	g.Go(published(gctx, s.socialLinks, &page.Social, socialLinkView))
	g.Go(published(gctx, s.offices, &page.Offices, func(o *entity.Office) *usecase.OfficeView { return officeView(o, tag) }))

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to load contacts page")
	}

	return page, nil
}

// --- View builders ---

func newPage(locale entity.Locale) usecase.Page {
	return usecase.Page{Locale: locale.Tag, Dir: locale.Dir}
}

func projectView(p *entity.Project, tag string, full bool) *usecase.ProjectView {
	view := &usecase.ProjectView{
		ID:         p.ID,
		Slug:       p.Slug,
		Title:      p.Title.In(tag),
		Summary:    p.Summary.In(tag),
		Category:   p.Category,
		Location:   p.Location.In(tag),
		Year:       p.Year,
		CoverImage: p.CoverImage,
		Featured:   p.Featured,
	}
	if full {
		view.Description = p.Description.In(tag)
		view.Gallery = p.Gallery
	}

	return view
}

func testimonialView(t *entity.Testimonial, tag string) *usecase.TestimonialView {
	return &usecase.TestimonialView{
		Author:    t.Author.In(tag),
		Role:      t.Role.In(tag),
		Quote:     t.Quote.In(tag),
		AvatarURL: t.AvatarURL,
	}
}

func heroSlideView(h *entity.HeroSlide, tag string) *usecase.HeroSlideView {
	return &usecase.HeroSlideView{
		Title:    h.Title.In(tag),
		Subtitle: h.Subtitle.In(tag),
		ImageURL: h.ImageURL,
		LinkURL:  h.LinkURL,
	}
}

func officeView(o *entity.Office, tag string) *usecase.OfficeView {
	return &usecase.OfficeView{
		ID:        o.ID,
		City:      o.City.In(tag),
		Address:   o.Address.In(tag),
		Phone:     o.Phone,
		Email:     o.Email,
		Latitude:  o.Latitude,
		Longitude: o.Longitude,
	}
}

func serviceView(s *entity.Service, tag string) *usecase.ServiceView {
	return &usecase.ServiceView{
		Title:       s.Title.In(tag),
		Description: s.Description.In(tag),
		Icon:        s.Icon,
	}
}

func workStageView(w *entity.WorkStage, tag string) *usecase.WorkStageView {
	return &usecase.WorkStageView{
		Step:        w.Step,
		Title:       w.Title.In(tag),
		Description: w.Description.In(tag),
	}
}

func teamMemberView(m *entity.TeamMember, tag string) *usecase.TeamMemberView {
	return &usecase.TeamMemberView{
		Name:     m.Name.In(tag),
		Role:     m.Role.In(tag),
		Bio:      m.Bio.In(tag),
		PhotoURL: m.PhotoURL,
	}
}

func socialLinkView(l *entity.SocialLink) *usecase.SocialLinkView {
	return &usecase.SocialLinkView{Platform: l.Platform, URL: l.URL}
}
