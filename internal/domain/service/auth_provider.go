package service

import (
	"context"

	"atelier/internal/domain/entity"
)

// AuthProvider is the external identity platform that owns dashboard sessions.
//
// GetCurrentUser returns (nil, nil) when the presented tokens do not describe a
// valid session. A non-nil error means the provider could not be asked at all.
type AuthProvider interface {
	// GetCurrentUser verifies the session, refreshing it when the provider rotates tokens.
	GetCurrentUser(ctx context.Context, tokens *entity.SessionTokens) (*entity.AuthResult, error)

	// SignIn exchanges credentials for a new session. Rotated carries the issued tokens.
	SignIn(ctx context.Context, email, password string) (*entity.AuthResult, error)

	// SignOut revokes the session server side.
	SignOut(ctx context.Context, tokens *entity.SessionTokens) error

	// Health checks that the provider is reachable with the configured credentials.
	Health(ctx context.Context) error
}
