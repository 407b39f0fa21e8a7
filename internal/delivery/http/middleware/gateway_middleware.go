package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/infra/metrics"
	"atelier/internal/usecase"

	"github.com/labstack/echo/v4"
)

const headerContentLanguage = "Content-Language"

// GatewayMiddleware applies the request gateway before routing.
type GatewayMiddleware struct {
	gateway usecase.RequestGateway
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewGatewayMiddleware creates the Pre middleware that runs the gateway.
func NewGatewayMiddleware(gateway usecase.RequestGateway, m *metrics.Metrics, logger *slog.Logger) *GatewayMiddleware {
	return &GatewayMiddleware{
		gateway: gateway,
		metrics: m,
		logger:  logger,
	}
}

// Handle must be registered with echo.Pre so a rewrite changes the route that
// matches. Rotated or cleared cookies are written on every outcome, redirects
// included.
func (m *GatewayMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		decision := m.gateway.Decide(req.Context(), req)

		m.metrics.GatewayDecisions.WithLabelValues(string(decision.Class), string(decision.Action)).Inc()
		if decision.AuthErr != nil {
			m.metrics.AuthProviderErrors.Inc()
		}

		for _, cookie := range decision.Cookies {
			c.SetCookie(cookie)
		}
		deliverycontext.SetRouteClass(c, decision.Class)

		switch decision.Action {
		case usecase.ActionRedirect:
			deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Debug("Gateway redirect",
				slog.String("from", req.URL.Path),
				slog.String("to", decision.Location),
				slog.String("class", string(decision.Class)),
			)

			return c.Redirect(http.StatusTemporaryRedirect, decision.Location)
		case usecase.ActionRewrite:
			req.URL.Path = decision.Path
			req.URL.RawPath = ""
		case usecase.ActionPass:
		}

		if decision.Locale != nil {
			deliverycontext.SetLocale(c, *decision.Locale)
			c.Response().Header().Set(headerContentLanguage, decision.Locale.Tag)
		}
		if decision.User != nil {
			deliverycontext.SetUser(c, decision.User)
		}

		return next(c)
	}
}
