// Package model holds the GORM table structs. They never leave the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base holds the columns shared by every content table.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SortOrder int       `gorm:"not null;default:0;index"`
	Published bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate assigns a time-ordered ID when the caller left it empty.
func (b *Base) BeforeCreate(*gorm.DB) error {
	if b.ID != uuid.Nil {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	b.ID = id

	return nil
}

// Localized maps to a pair of <prefix>en / <prefix>ar columns through an
// embeddedPrefix tag on the owning field.
type Localized struct {
	EN string `gorm:"column:en;type:text;not null;default:''"`
	AR string `gorm:"column:ar;type:text;not null;default:''"`
}

// All lists every table model in migration order.
func All() []any {
	return []any{
		&ProjectModel{},
		&TestimonialModel{},
		&HeroSlideModel{},
		&OfficeModel{},
		&ServiceModel{},
		&WorkStageModel{},
		&TeamMemberModel{},
		&SocialLinkModel{},
		&ContactSubmissionModel{},
	}
}
