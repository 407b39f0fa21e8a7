package handler

import (
	"context"
	"net/http"

	"atelier/internal/delivery/http/response"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PageHandlerParams holds dependencies for PageHandler, injected by Fx.
type PageHandlerParams struct {
	fx.In

	PageUC  usecase.PageUsecase
	Locales usecase.LocaleResolver
}

// PageHandler serves the locale-routed public pages.
type PageHandler struct {
	pageUC  usecase.PageUsecase
	locales usecase.LocaleResolver
}

// NewPageHandler is the constructor for PageHandler
func NewPageHandler(params PageHandlerParams) *PageHandler {
	return &PageHandler{
		pageUC:  params.PageUC,
		locales: params.Locales,
	}
}

// Home serves /:locale.
func (h *PageHandler) Home(c echo.Context) error {
	return h.render(c, func(ctx context.Context, locale entity.Locale) (any, error) {
		return h.pageUC.Home(ctx, locale)
	})
}

// Portfolio serves /:locale/portfolio, filtered by ?category=.
func (h *PageHandler) Portfolio(c echo.Context) error {
	category := c.QueryParam("category")

	return h.render(c, func(ctx context.Context, locale entity.Locale) (any, error) {
		return h.pageUC.Portfolio(ctx, locale, category)
	})
}

// Project serves /:locale/portfolio/:slug.
func (h *PageHandler) Project(c echo.Context) error {
	slug := c.Param("slug")

	return h.render(c, func(ctx context.Context, locale entity.Locale) (any, error) {
		return h.pageUC.Project(ctx, locale, slug)
	})
}

// Services serves /:locale/services.
func (h *PageHandler) Services(c echo.Context) error {
	return h.render(c, func(ctx context.Context, locale entity.Locale) (any, error) {
		return h.pageUC.Services(ctx, locale)
	})
}

// About serves /:locale/about-us.
func (h *PageHandler) About(c echo.Context) error {
	return h.render(c, func(ctx context.Context, locale entity.Locale) (any, error) {
		return h.pageUC.About(ctx, locale)
	})
}

// Careers serves /:locale/careers.
func (h *PageHandler) Careers(c echo.Context) error {
	return h.render(c, func(ctx context.Context, locale entity.Locale) (any, error) {
		return h.pageUC.Careers(ctx, locale)
	})
}

// Contacts serves /:locale/contacts.
func (h *PageHandler) Contacts(c echo.Context) error {
	return h.render(c, func(ctx context.Context, locale entity.Locale) (any, error) {
		return h.pageUC.Contacts(ctx, locale)
	})
}

func (h *PageHandler) render(c echo.Context, load func(context.Context, entity.Locale) (any, error)) error {
	locale, ok := h.locale(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrPageNotFound)
	}

	page, err := load(c.Request().Context(), locale)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// locale accepts the :locale segment only when it is a supported tag.
func (h *PageHandler) locale(c echo.Context) (entity.Locale, bool) {
	return h.locales.Lookup(c.Param("locale"))
}
