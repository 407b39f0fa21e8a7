package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"atelier/internal/delivery/http/response"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContentHandlerParams holds dependencies for ContentHandler, injected by Fx.
type ContentHandlerParams struct {
	fx.In

	ContentUC usecase.ContentUsecase
	Logger    *slog.Logger
}

// ContentHandler serves the dashboard content CRUD endpoints.
type ContentHandler struct {
	contentUC usecase.ContentUsecase
	logger    *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler
func NewContentHandler(params ContentHandlerParams) *ContentHandler {
	return &ContentHandler{
		contentUC: params.ContentUC,
		logger:    params.Logger,
	}
}

// ReorderRequest lists record ids in their new order.
type ReorderRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

// Overview returns per-collection counts and unread leads.
func (h *ContentHandler) Overview(c echo.Context) error {
	overview, err := h.contentUC.Overview(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, overview)
}

// Kinds lists the editable collections.
func (h *ContentHandler) Kinds(c echo.Context) error {
	collections := h.contentUC.Collections()
	kinds := make([]entity.ContentKind, 0, len(collections))
	for _, collection := range collections {
		kinds = append(kinds, collection.Kind())
	}

	return response.Success(c, http.StatusOK, kinds)
}

// List returns a collection, optionally only published records.
func (h *ContentHandler) List(c echo.Context) error {
	collection, err := h.contentUC.Collection(c.Param("type"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	publishedOnly, _ := strconv.ParseBool(c.QueryParam("published"))

	records, err := collection.List(c.Request().Context(), publishedOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

// Get returns one record.
func (h *ContentHandler) Get(c echo.Context) error {
	collection, id, err := h.target(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := collection.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}

// Create stores a new record decoded from the request body.
func (h *ContentHandler) Create(c echo.Context) error {
	collection, err := h.contentUC.Collection(c.Param("type"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	record := collection.New()
	if err := c.Bind(record); err != nil {
		return response.BindingError(c, "Invalid "+string(collection.Kind())+" input")
	}

	if err := c.Validate(record); err != nil {
		return response.ValidationFailed(c, err)
	}

	created, err := collection.Create(c.Request().Context(), record)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created)
}

// Update replaces a record.
func (h *ContentHandler) Update(c echo.Context) error {
	collection, id, err := h.target(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	record := collection.New()
	if err := c.Bind(record); err != nil {
		return response.BindingError(c, "Invalid "+string(collection.Kind())+" input")
	}

	if err := c.Validate(record); err != nil {
		return response.ValidationFailed(c, err)
	}

	updated, err := collection.Update(c.Request().Context(), id, record)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated)
}

// Delete removes a record.
func (h *ContentHandler) Delete(c echo.Context) error {
	collection, id, err := h.target(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := collection.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Reorder assigns sort order from the position of each id.
func (h *ContentHandler) Reorder(c echo.Context) error {
	collection, err := h.contentUC.Collection(c.Param("type"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ReorderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid reorder input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	if err := collection.Reorder(c.Request().Context(), req.IDs); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// target resolves the :type and :id parameters.
func (h *ContentHandler) target(c echo.Context) (usecase.ContentCollection, uuid.UUID, error) {
	collection, err := h.contentUC.Collection(c.Param("type"))
	if err != nil {
		return nil, uuid.Nil, err
	}

	id, err := parseID(c)
	if err != nil {
		return nil, uuid.Nil, err
	}

	return collection, id, nil
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	return id, nil
}
