package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/delivery/http/response"
	"atelier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/text/language"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler serves the public contact form and the dashboard lead inbox.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// Submit stores a contact form submission.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req usecase.ContactInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid contact input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	req.RemoteIP = c.RealIP()
	if req.Locale == "" {
		req.Locale = requestLocale(c)
	}

	submission, err := h.contactUC.Submit(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"id":     submission.ID,
		"locale": submission.Locale,
	})
}

// ListLeads returns leads newest first, ?unread=true for unread only.
func (h *ContactHandler) ListLeads(c echo.Context) error {
	unreadOnly, _ := strconv.ParseBool(c.QueryParam("unread"))

	leads, err := h.contactUC.List(c.Request().Context(), unreadOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, leads)
}

// MarkRead flags a lead as handled.
func (h *ContactHandler) MarkRead(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.contactUC.MarkRead(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteLead removes a lead.
func (h *ContactHandler) DeleteLead(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.contactUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// requestLocale prefers the locale the gateway resolved, then the first
// Accept-Language entry. The usecase maps anything unsupported to the default.
func requestLocale(c echo.Context) string {
	if locale, ok := deliverycontext.GetLocale(c); ok {
		return locale.Tag
	}

	tags, _, err := language.ParseAcceptLanguage(c.Request().Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return ""
	}

	base, _ := tags[0].Base()

	return base.String()
}
