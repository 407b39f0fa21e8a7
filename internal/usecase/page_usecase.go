package usecase

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// Page is the part shared by every public page.
type Page struct {
	Locale string               `json:"locale"`
	Dir    entity.TextDirection `json:"dir"`
	Social []*SocialLinkView    `json:"social"`
}

// ProjectView is a project with its text resolved for one locale.
type ProjectView struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Location    string    `json:"location,omitempty"`
	Year        int       `json:"year,omitempty"`
	CoverImage  string    `json:"cover_image,omitempty"`
	Gallery     []string  `json:"gallery,omitempty"`
	Featured    bool      `json:"featured"`
}

type TestimonialView struct {
	Author    string `json:"author"`
	Role      string `json:"role,omitempty"`
	Quote     string `json:"quote"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type HeroSlideView struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	ImageURL string `json:"image_url"`
	LinkURL  string `json:"link_url,omitempty"`
}

type OfficeView struct {
	ID        uuid.UUID `json:"id"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

type ServiceView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

type WorkStageView struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type TeamMemberView struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}

type SocialLinkView struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type HomePage struct {
	Page
	Slides       []*HeroSlideView   `json:"slides"`
	Featured     []*ProjectView     `json:"featured"`
	Services     []*ServiceView     `json:"services"`
	Testimonials []*TestimonialView `json:"testimonials"`
}

type PortfolioPage struct {
	Page
	Categories []string       `json:"categories"`
	Projects   []*ProjectView `json:"projects"`
}

type ProjectPage struct {
	Page
	Project *ProjectView `json:"project"`
}

type ServicesPage struct {
	Page
	Services []*ServiceView   `json:"services"`
	Stages   []*WorkStageView `json:"stages"`
}

type AboutPage struct {
	Page
	Team         []*TeamMemberView  `json:"team"`
	Stages       []*WorkStageView   `json:"stages"`
	Testimonials []*TestimonialView `json:"testimonials"`
}

type CareersPage struct {
	Page
	Team    []*TeamMemberView `json:"team"`
	Offices []*OfficeView     `json:"offices"`
}

type ContactsPage struct {
	Page
	Offices []*OfficeView `json:"offices"`
}

// PageUsecase assembles the data behind each public page.
type PageUsecase interface {
	Home(ctx context.Context, locale entity.Locale) (*HomePage, error)
	Portfolio(ctx context.Context, locale entity.Locale, category string) (*PortfolioPage, error)
	Project(ctx context.Context, locale entity.Locale, slug string) (*ProjectPage, error)
	Services(ctx context.Context, locale entity.Locale) (*ServicesPage, error)
	About(ctx context.Context, locale entity.Locale) (*AboutPage, error)
	Careers(ctx context.Context, locale entity.Locale) (*CareersPage, error)
	Contacts(ctx context.Context, locale entity.Locale) (*ContactsPage, error)
}
