package model

// ProjectModel is the GORM-specific struct for the 'projects' table.
type ProjectModel struct {
	Base
	Slug        string    `gorm:"type:varchar(120);not null;uniqueIndex"`
	Title       Localized `gorm:"embedded;embeddedPrefix:title_"`
	Summary     Localized `gorm:"embedded;embeddedPrefix:summary_"`
	Description Localized `gorm:"embedded;embeddedPrefix:description_"`
	Category    string    `gorm:"type:varchar(60);index"`
	Location    Localized `gorm:"embedded;embeddedPrefix:location_"`
	Year        int
	CoverImage  string   `gorm:"type:text"`
	Gallery     []string `gorm:"type:jsonb;serializer:json"`
	Featured    bool     `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}
