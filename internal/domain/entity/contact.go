package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is a lead captured by the public contact form.
type ContactSubmission struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone,omitempty"`
	Company  string    `json:"company,omitempty"`
	Subject  string    `json:"subject,omitempty"`
	Message  string    `json:"message"`
	Locale   string    `json:"locale"`
	Language string    `json:"language,omitempty"` // detected from the message body
	Read     bool      `json:"read"`
	RemoteIP string    `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
