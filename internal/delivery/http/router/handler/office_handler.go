package handler

import (
	"net/http"
	"strconv"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/delivery/http/response"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const geoJSONContentType = "application/geo+json"

// OfficeHandlerParams holds dependencies for OfficeHandler, injected by Fx.
type OfficeHandlerParams struct {
	fx.In

	OfficeUC usecase.OfficeUsecase
	Locales  usecase.LocaleResolver
}

// OfficeHandler serves the offices map endpoints.
type OfficeHandler struct {
	officeUC usecase.OfficeUsecase
	locales  usecase.LocaleResolver
}

// NewOfficeHandler is the constructor for OfficeHandler
func NewOfficeHandler(params OfficeHandlerParams) *OfficeHandler {
	return &OfficeHandler{
		officeUC: params.OfficeUC,
		locales:  params.Locales,
	}
}

// GeoJSON returns published offices as a FeatureCollection localized by ?locale=.
func (h *OfficeHandler) GeoJSON(c echo.Context) error {
	fc, err := h.officeUC.FeatureCollection(c.Request().Context(), h.locale(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body, err := fc.MarshalJSON()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInternalError.WrapMessage("encode offices"))
	}

	return c.Blob(http.StatusOK, geoJSONContentType, body)
}

// Nearest orders published offices by distance from ?lat=&lng=.
func (h *OfficeHandler) Nearest(c echo.Context) error {
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if latErr != nil || lngErr != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("lat and lng are required numbers"))
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	offices, err := h.officeUC.Nearest(c.Request().Context(), lat, lng, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offices)
}

// QRCode returns a PNG linking to the office on a map.
func (h *OfficeHandler) QRCode(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.officeUC.QRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, mediaCacheControl)

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *OfficeHandler) locale(c echo.Context) entity.Locale {
	if locale, ok := h.locales.Lookup(c.QueryParam("locale")); ok {
		return locale
	}
	if locale, ok := deliverycontext.GetLocale(c); ok {
		return locale
	}

	return h.locales.Default()
}
