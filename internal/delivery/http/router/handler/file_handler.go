package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/delivery/http/response"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	mediaCacheControl = "public, max-age=86400"
	mediaCSP          = "default-src 'none'; sandbox"
)

// FileHandlerParams holds dependencies for FileHandler, injected by Fx.
type FileHandlerParams struct {
	fx.In

	StorageUC usecase.StorageUsecase
	Logger    *slog.Logger
}

// FileHandler serves dashboard file management and public media.
type FileHandler struct {
	storageUC usecase.StorageUsecase
	logger    *slog.Logger
}

// NewFileHandler is the constructor for FileHandler
func NewFileHandler(params FileHandlerParams) *FileHandler {
	return &FileHandler{
		storageUC: params.StorageUC,
		logger:    params.Logger,
	}
}

// List returns the files under ?prefix=.
func (h *FileHandler) List(c echo.Context) error {
	files, err := h.storageUC.List(c.Request().Context(), c.QueryParam("prefix"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, files)
}

// Upload stores the multipart "file" field under the optional "prefix" field.
func (h *FileHandler) Upload(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "Missing file field")
	}

	src, err := header.Open()
	if err != nil {
		return response.BindingError(c, "Unreadable file upload")
	}
	defer src.Close()

	stored, err := h.storageUC.Upload(c.Request().Context(), &usecase.UploadInput{
		Prefix:      c.FormValue("prefix"),
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Body:        src,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, stored)
}

// Delete removes the object named by ?key=.
func (h *FileHandler) Delete(c echo.Context) error {
	key := c.QueryParam("key")
	if key == "" {
		return response.HandleAppError(c, domainerrors.ErrInvalidFileKey.WithDetails("missing key"))
	}

	if err := h.storageUC.Delete(c.Request().Context(), key); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Media streams a stored object to the public site.
func (h *FileHandler) Media(c echo.Context) error {
	key, err := wildcardKey(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body, file, err := h.storageUC.Open(c.Request().Context(), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer body.Close()

	res := c.Response()
	res.Header().Set(echo.HeaderCacheControl, mediaCacheControl)
	res.Header().Set("X-Content-Type-Options", "nosniff")
	res.Header().Set(echo.HeaderContentSecurityPolicy, mediaCSP)
	if file.Size > 0 {
		res.Header().Set(echo.HeaderContentLength, strconv.FormatInt(file.Size, 10))
	}
	if !file.ModTime.IsZero() {
		res.Header().Set(echo.HeaderLastModified, file.ModTime.UTC().Format(http.TimeFormat))
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	if c.Request().Method == http.MethodHead {
		res.Header().Set(echo.HeaderContentType, contentType)
		res.WriteHeader(http.StatusOK)

		return nil
	}

	if err := c.Stream(http.StatusOK, contentType, body); err != nil {
		// Headers are gone; the client sees a truncated body.
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Warn("Media stream interrupted", slog.String("key", key), slog.Any("error", err))
	}

	return nil
}

func wildcardKey(c echo.Context) (string, error) {
	key, err := url.PathUnescape(c.Param("*"))
	if err != nil {
		return "", domainerrors.ErrInvalidFileKey.WithDetails(err.Error())
	}

	return key, nil
}
