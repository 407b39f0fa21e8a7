package usecase

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// ContactInput is a contact form submission as received from the site
type ContactInput struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Phone    string `json:"phone" validate:"omitempty,max=40"`
	Company  string `json:"company" validate:"omitempty,max=120"`
	Subject  string `json:"subject" validate:"omitempty,max=200"`
	Message  string `json:"message" validate:"required,max=5000"`
	Locale   string `json:"locale"`
	RemoteIP string `json:"-"`
}

// ContactUsecase defines the lead capture use cases
type ContactUsecase interface {
	// Submit stores a lead and notifies the sales inbox best-effort
	Submit(ctx context.Context, input *ContactInput) (*entity.ContactSubmission, error)

	// List returns leads newest first
	List(ctx context.Context, unreadOnly bool) ([]*entity.ContactSubmission, error)

	// MarkRead flags a lead as handled
	MarkRead(ctx context.Context, id uuid.UUID) error

	// Delete removes a lead
	Delete(ctx context.Context, id uuid.UUID) error
}
