package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactSubmissionModel is the GORM-specific struct for the 'contact_submissions' table.
type ContactSubmissionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Email     string    `gorm:"type:varchar(254);not null;index"`
	Phone     string    `gorm:"type:varchar(40)"`
	Company   string    `gorm:"type:varchar(120)"`
	Subject   string    `gorm:"type:varchar(200)"`
	Message   string    `gorm:"type:text;not null"`
	Locale    string    `gorm:"type:varchar(8);not null"`
	Language  string    `gorm:"type:varchar(8)"`
	Read      bool      `gorm:"not null;default:false;index"`
	RemoteIP  string    `gorm:"type:varchar(45)"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ContactSubmissionModel) TableName() string {
	return "contact_submissions"
}

// BeforeCreate assigns a time-ordered ID when the caller left it empty.
func (m *ContactSubmissionModel) BeforeCreate(*gorm.DB) error {
	if m.ID != uuid.Nil {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	m.ID = id

	return nil
}
