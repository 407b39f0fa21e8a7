// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"time"

	"atelier/config"
	"atelier/internal/delivery/http/middleware"
	"atelier/internal/delivery/http/router/handler"
	"atelier/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	contactBurst         = 3
	contactLimiterExpiry = 10 * time.Minute
)

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	AuthHandler     *handler.AuthHandler
	ContentHandler  *handler.ContentHandler
	PageHandler     *handler.PageHandler
	ContactHandler  *handler.ContactHandler
	FileHandler     *handler.FileHandler
	OfficeHandler   *handler.OfficeHandler
	SetupHandler    *handler.SetupHandler
	AuthMiddleware  *middleware.AuthMiddleware
	SetupMiddleware *middleware.SetupMiddleware
	Metrics         *metrics.Metrics
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
	routes *config.RoutesConfig
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		params: params,
		routes: params.Config.Routes,
	}
}

// RegisterRoutes sets up every route. Paths are the ones seen after the
// gateway, so public pages are registered with their locale segment.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Server-owned endpoints
	internalGroup := e.Group(r.routes.Internal)
	{
		internalGroup.GET("/health", p.HealthHandler.Health)
		internalGroup.GET("/ready", p.HealthHandler.Ready)
		if p.Config.Metrics.Enabled {
			internalGroup.GET("/metrics", echo.WrapHandler(p.Metrics.Handler()))
		}
	}

	// Sign in
	e.GET(r.routes.Login, p.AuthHandler.LoginPage)
	e.POST(r.routes.Login, p.AuthHandler.Login)

	// Dashboard, behind the session the gateway resolved
	dashboardGroup := e.Group(r.routes.Dashboard, p.AuthMiddleware.RequireSession)
	{
		dashboardGroup.GET("", p.ContentHandler.Overview)
		dashboardGroup.GET("/overview", p.ContentHandler.Overview)
		dashboardGroup.GET("/me", p.AuthHandler.Me)
		dashboardGroup.POST("/logout", p.AuthHandler.Logout)

		contentGroup := dashboardGroup.Group("/content")
		contentGroup.GET("", p.ContentHandler.Kinds)
		contentGroup.GET("/:type", p.ContentHandler.List)
		contentGroup.POST("/:type", p.ContentHandler.Create)
		contentGroup.PUT("/:type/order", p.ContentHandler.Reorder)
		contentGroup.GET("/:type/:id", p.ContentHandler.Get)
		contentGroup.PUT("/:type/:id", p.ContentHandler.Update)
		contentGroup.DELETE("/:type/:id", p.ContentHandler.Delete)

		leadsGroup := dashboardGroup.Group("/leads")
		leadsGroup.GET("", p.ContactHandler.ListLeads)
		leadsGroup.PUT("/:id/read", p.ContactHandler.MarkRead)
		leadsGroup.DELETE("/:id", p.ContactHandler.DeleteLead)

		filesGroup := dashboardGroup.Group("/files")
		filesGroup.GET("", p.FileHandler.List)
		filesGroup.POST("", p.FileHandler.Upload)
		// Keys end in an extension, which the gateway treats as a static asset
		// when it appears in the path, so the key travels in the query.
		filesGroup.DELETE("", p.FileHandler.Delete)
	}

	// Public API
	apiGroup := e.Group(r.routes.API)
	{
		apiGroup.POST("/contact", p.ContactHandler.Submit, r.contactLimiter())
		apiGroup.GET("/offices.geojson", p.OfficeHandler.GeoJSON)
		apiGroup.GET("/offices/nearest", p.OfficeHandler.Nearest)
		apiGroup.GET("/offices/:id/qrcode", p.OfficeHandler.QRCode)
	}

	// Credential bootstrap
	setupGroup := e.Group(r.routes.Setup, p.SetupMiddleware.RequireToken)
	{
		setupGroup.POST("/credentials", p.SetupHandler.SaveCredentials)
		setupGroup.POST("/verify", p.SetupHandler.Verify)
	}

	// Uploaded media; keys carry an extension so the gateway passes them through
	e.GET("/media/*", p.FileHandler.Media)
	e.HEAD("/media/*", p.FileHandler.Media)

	// Locale-routed pages
	pageGroup := e.Group("/:locale")
	{
		pageGroup.GET("", p.PageHandler.Home)
		pageGroup.GET("/portfolio", p.PageHandler.Portfolio)
		pageGroup.GET("/portfolio/:slug", p.PageHandler.Project)
		pageGroup.GET("/services", p.PageHandler.Services)
		pageGroup.GET("/about-us", p.PageHandler.About)
		pageGroup.GET("/careers", p.PageHandler.Careers)
		pageGroup.GET("/contacts", p.PageHandler.Contacts)
	}
}

// contactLimiter throttles contact form submissions per client IP.
func (r *router) contactLimiter() echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(r.params.Config.RateLimit.ContactPerSecond),
		Burst:     contactBurst,
		ExpiresIn: contactLimiterExpiry,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, _ error) error {
			return echo.ErrForbidden
		},
		DenyHandler: func(_ echo.Context, _ string, _ error) error {
			return echo.ErrTooManyRequests
		},
	})
}
