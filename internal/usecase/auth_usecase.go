package usecase

import (
	"context"
	"net/http"

	"atelier/internal/domain/entity"
)

// LoginResult is a successful sign in along with the cookies to set.
type LoginResult struct {
	User     *entity.User
	Cookies  []*http.Cookie
	Redirect string
}

// AuthUsecase defines the dashboard sign in and sign out flows.
type AuthUsecase interface {
	// Login exchanges credentials for session cookies.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Logout revokes the session best-effort and returns cookies that clear it.
	Logout(ctx context.Context, cookies []*http.Cookie) []*http.Cookie
}
