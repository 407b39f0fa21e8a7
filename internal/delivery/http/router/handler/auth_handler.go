package handler

import (
	"log/slog"
	"net/http"

	"atelier/config"
	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/delivery/http/response"
	"atelier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC  usecase.AuthUsecase
	Locales usecase.LocaleResolver
	Config  *config.Config
	Logger  *slog.Logger
}

// AuthHandler serves the dashboard sign in and sign out endpoints.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	locales usecase.LocaleResolver
	routes  *config.RoutesConfig
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		locales: params.Locales,
		routes:  params.Config.Routes,
		logger:  params.Logger,
	}
}

// LoginRequest is the sign in form.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginPage is what the sign in screen needs to render.
type LoginPage struct {
	Action    string `json:"action"`
	Dashboard string `json:"dashboard"`
	Locale    string `json:"locale"`
	Dir       string `json:"dir"`
}

// RedirectResponse tells the client where to go next.
type RedirectResponse struct {
	Redirect string `json:"redirect"`
}

// LoginPage returns the sign in screen data. Signed-in users never get here;
// the gateway redirects them to the dashboard.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	locale := h.locales.Default()

	return response.Success(c, http.StatusOK, &LoginPage{
		Action:    h.routes.Login,
		Dashboard: h.routes.Dashboard,
		Locale:    locale.Tag,
		Dir:       string(locale.Dir),
	})
}

// Login exchanges credentials for session cookies.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid sign in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	result, err := h.authUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	for _, cookie := range result.Cookies {
		c.SetCookie(cookie)
	}

	return response.Success(c, http.StatusOK, &RedirectResponse{Redirect: result.Redirect})
}

// Logout clears the session cookies and revokes the session best-effort.
func (h *AuthHandler) Logout(c echo.Context) error {
	for _, cookie := range h.authUC.Logout(c.Request().Context(), c.Cookies()) {
		c.SetCookie(cookie)
	}

	if user := deliverycontext.GetUser(c); user != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Info("Dashboard sign out", slog.String("user_id", user.ID))
	}

	return response.Success(c, http.StatusOK, &RedirectResponse{Redirect: h.routes.Login})
}

// Me returns the signed-in dashboard user.
func (h *AuthHandler) Me(c echo.Context) error {
	return response.Success(c, http.StatusOK, deliverycontext.GetUser(c))
}
