package middleware

import (
	"atelier/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HeaderSetupToken carries the one-time bootstrap secret.
const HeaderSetupToken = "X-Setup-Token"

// SetupMiddleware guards the credential bootstrap endpoints.
type SetupMiddleware struct {
	setup usecase.SetupUsecase
}

// NewSetupMiddleware creates the setup token check.
func NewSetupMiddleware(setup usecase.SetupUsecase) *SetupMiddleware {
	return &SetupMiddleware{setup: setup}
}

// RequireToken answers 404 while setup is disabled and 401 for a wrong token.
func (m *SetupMiddleware) RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := m.setup.Authorize(c.Request().Header.Get(HeaderSetupToken)); err != nil {
			return err
		}

		return next(c)
	}
}
