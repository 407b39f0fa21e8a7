package context

import (
	"context"
	"log/slog"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey namespaces values stored on echo and std contexts.
type ContextKey string

const (
	KeyRequestID  ContextKey = "request_id"
	KeyLogger     ContextKey = "logger"
	KeyLocale     ContextKey = "locale"
	KeyUser       ContextKey = "user"
	KeyRouteClass ContextKey = "route_class"

	// HeaderXRequestID is echoed back on every response.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the id assigned by the request-id middleware. Handlers
// reached without it still get a fresh id for the response meta.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext is the std-context counterpart used below the
// delivery layer; it returns "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger carried by ctx, or
// fallback when ctx was not derived from a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetLocale stores the locale the gateway resolved for a page request.
func SetLocale(c echo.Context, locale entity.Locale) {
	c.Set(string(KeyLocale), locale)
}

func GetLocale(c echo.Context) (entity.Locale, bool) {
	locale, ok := c.Get(string(KeyLocale)).(entity.Locale)

	return locale, ok
}

// SetUser stores the dashboard user behind a validated session.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
}

// GetUser returns nil for anonymous requests.
func GetUser(c echo.Context) *entity.User {
	user, _ := c.Get(string(KeyUser)).(*entity.User)

	return user
}

func SetRouteClass(c echo.Context, class entity.RouteClass) {
	c.Set(string(KeyRouteClass), class)
}

// GetRouteClass returns "" when the gateway did not run.
func GetRouteClass(c echo.Context) entity.RouteClass {
	class, _ := c.Get(string(KeyRouteClass)).(entity.RouteClass)

	return class
}
