package service

import (
	"context"
)

// LeadEvent is the payload sent to the sales inbox when a contact form is submitted
type LeadEvent struct {
	RequestID string `json:"request_id,omitempty"`
	LeadID    string `json:"lead_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
	Locale    string `json:"locale"`
	Language  string `json:"language,omitempty"`
	CreatedAt string `json:"created_at"`
}

// LeadNotifier defines the interface for delivering lead events to an external channel
type LeadNotifier interface {
	// NotifyLead delivers a lead event
	NotifyLead(ctx context.Context, event *LeadEvent) error

	// Close releases any resources held by the notifier
	Close() error
}
