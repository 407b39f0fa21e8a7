package middleware

import (
	deliverycontext "atelier/internal/delivery/context"
	domainerrors "atelier/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards dashboard routes behind the session the gateway resolved.
type AuthMiddleware struct{}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{}
}

// RequireSession rejects requests the gateway did not attach a user to.
func (m *AuthMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetUser(c) == nil {
			return domainerrors.ErrUnauthorized
		}

		return next(c)
	}
}
