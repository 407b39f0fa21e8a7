package middleware

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"atelier/config"
	deliverycontext "atelier/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs one line per request. Successful requests are logged
// only in debug mode; 4xx and 5xx responses are always logged.
type LoggerMiddleware struct {
	logger         *slog.Logger
	debug          bool
	internalPrefix string
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:         logger,
		debug:          config.Env.Debug,
		internalPrefix: config.Routes.Internal,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// The error handler has not run yet; let it pick the final status.
			c.Error(err)
			status = c.Response().Status
		}

		if m.debug || status >= 400 {
			if !m.debug && strings.HasPrefix(c.Request().URL.Path, m.internalPrefix) && status < 500 {
				return nil
			}
			m.logRequest(c, start, status, err)
		}

		return nil
	}
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()
	latency := time.Since(start)

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if class := deliverycontext.GetRouteClass(c); class != "" {
		fields = append(fields, slog.String("route_class", string(class)))
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if status >= 400 {
		logLevel = slog.LevelWarn
	}
	if status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}
