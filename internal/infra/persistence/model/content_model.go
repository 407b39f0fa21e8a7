package model

// TestimonialModel is the GORM-specific struct for the 'testimonials' table.
type TestimonialModel struct {
	Base
	Author    Localized `gorm:"embedded;embeddedPrefix:author_"`
	Role      Localized `gorm:"embedded;embeddedPrefix:role_"`
	Quote     Localized `gorm:"embedded;embeddedPrefix:quote_"`
	AvatarURL string    `gorm:"type:text"`
}

func (TestimonialModel) TableName() string {
	return "testimonials"
}

// HeroSlideModel is the GORM-specific struct for the 'hero_slides' table.
type HeroSlideModel struct {
	Base
	Title    Localized `gorm:"embedded;embeddedPrefix:title_"`
	Subtitle Localized `gorm:"embedded;embeddedPrefix:subtitle_"`
	ImageURL string    `gorm:"type:text;not null"`
	LinkURL  string    `gorm:"type:text"`
}

func (HeroSlideModel) TableName() string {
	return "hero_slides"
}

// OfficeModel is the GORM-specific struct for the 'offices' table.
type OfficeModel struct {
	Base
	City      Localized `gorm:"embedded;embeddedPrefix:city_"`
	Address   Localized `gorm:"embedded;embeddedPrefix:address_"`
	Phone     string    `gorm:"type:varchar(40)"`
	Email     string    `gorm:"type:varchar(254)"`
	Latitude  float64   `gorm:"type:double precision;not null"`
	Longitude float64   `gorm:"type:double precision;not null"`
}

func (OfficeModel) TableName() string {
	return "offices"
}

// ServiceModel is the GORM-specific struct for the 'services' table.
type ServiceModel struct {
	Base
	Title       Localized `gorm:"embedded;embeddedPrefix:title_"`
	Description Localized `gorm:"embedded;embeddedPrefix:description_"`
	Icon        string    `gorm:"type:varchar(80)"`
}

func (ServiceModel) TableName() string {
	return "services"
}

// WorkStageModel is the GORM-specific struct for the 'work_stages' table.
type WorkStageModel struct {
	Base
	Step        int       `gorm:"not null"`
	Title       Localized `gorm:"embedded;embeddedPrefix:title_"`
	Description Localized `gorm:"embedded;embeddedPrefix:description_"`
}

func (WorkStageModel) TableName() string {
	return "work_stages"
}

// TeamMemberModel is the GORM-specific struct for the 'team_members' table.
type TeamMemberModel struct {
	Base
	Name     Localized `gorm:"embedded;embeddedPrefix:name_"`
	Role     Localized `gorm:"embedded;embeddedPrefix:role_"`
	Bio      Localized `gorm:"embedded;embeddedPrefix:bio_"`
	PhotoURL string    `gorm:"type:text"`
}

func (TeamMemberModel) TableName() string {
	return "team_members"
}

// SocialLinkModel is the GORM-specific struct for the 'social_links' table.
type SocialLinkModel struct {
	Base
	Platform string `gorm:"type:varchar(40);not null"`
	URL      string `gorm:"type:text;not null"`
}

func (SocialLinkModel) TableName() string {
	return "social_links"
}
