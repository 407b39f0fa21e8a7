package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContentKind names an editable collection in the dashboard.
type ContentKind string

const (
	KindProjects     ContentKind = "projects"
	KindTestimonials ContentKind = "testimonials"
	KindHeroSlides   ContentKind = "hero-slides"
	KindOffices      ContentKind = "offices"
	KindServices     ContentKind = "services"
	KindWorkStages   ContentKind = "work-stages"
	KindTeam         ContentKind = "team"
	KindSocialLinks  ContentKind = "social-links"
)

// ContentKinds lists every collection in dashboard order.
func ContentKinds() []ContentKind {
	return []ContentKind{
		KindProjects,
		KindTestimonials,
		KindHeroSlides,
		KindOffices,
		KindServices,
		KindWorkStages,
		KindTeam,
		KindSocialLinks,
	}
}

// Meta carries the bookkeeping fields every content record shares.
type Meta struct {
	ID        uuid.UUID `json:"id"`
	SortOrder int       `json:"sort_order"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContentMeta exposes the shared fields of any record embedding Meta.
func (m *Meta) ContentMeta() *Meta {
	return m
}

// Content is satisfied by pointers to every content entity.
type Content interface {
	ContentMeta() *Meta
}

// Project is a portfolio entry.
type Project struct {
	Meta
	Slug        string    `json:"slug" validate:"required,max=120"`
	Title       Localized `json:"title"`
	Summary     Localized `json:"summary"`
	Description Localized `json:"description"` // HTML
	Category    string    `json:"category" validate:"max=60"`
	Location    Localized `json:"location"`
	Year        int       `json:"year" validate:"omitempty,min=1900,max=2200"`
	CoverImage  string    `json:"cover_image"`
	Gallery     []string  `json:"gallery"`
	Featured    bool      `json:"featured"`
}

// Testimonial is a client quote.
type Testimonial struct {
	Meta
	Author    Localized `json:"author"`
	Role      Localized `json:"role"`
	Quote     Localized `json:"quote"`
	AvatarURL string    `json:"avatar_url"`
}

// HeroSlide is one frame of the home page carousel.
type HeroSlide struct {
	Meta
	Title    Localized `json:"title"`
	Subtitle Localized `json:"subtitle"`
	ImageURL string    `json:"image_url" validate:"required"`
	LinkURL  string    `json:"link_url"`
}

// Office is a studio location.
type Office struct {
	Meta
	City      Localized `json:"city"`
	Address   Localized `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email" validate:"omitempty,email"`
	Latitude  float64   `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64   `json:"longitude" validate:"min=-180,max=180"`
}

// Service is a discipline the firm offers.
type Service struct {
	Meta
	Title       Localized `json:"title"`
	Description Localized `json:"description"`
	Icon        string    `json:"icon"`
}

// WorkStage is a step of the firm's delivery process.
type WorkStage struct {
	Meta
	Step        int       `json:"step" validate:"min=1"`
	Title       Localized `json:"title"`
	Description Localized `json:"description"`
}

// TeamMember is shown on the about page.
type TeamMember struct {
	Meta
	Name     Localized `json:"name"`
	Role     Localized `json:"role"`
	Bio      Localized `json:"bio"`
	PhotoURL string    `json:"photo_url"`
}

// SocialLink is a footer link to an external profile.
type SocialLink struct {
	Meta
	Platform string `json:"platform" validate:"required,max=40"`
	URL      string `json:"url" validate:"required,url"`
}
