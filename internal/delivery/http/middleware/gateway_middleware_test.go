package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/entity"
	"atelier/internal/infra/metrics"
	mockUsecase "atelier/internal/mocks/usecase"
	"atelier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type gatewayMiddlewareFixtures struct {
	middleware *GatewayMiddleware
	gateway    *mockUsecase.MockRequestGateway
	metrics    *metrics.Metrics
}

func createTestGatewayMiddleware(t *testing.T) gatewayMiddlewareFixtures {
	gateway := mockUsecase.NewMockRequestGateway(t)
	m := metrics.New()

	return gatewayMiddlewareFixtures{
		middleware: NewGatewayMiddleware(gateway, m, slog.New(slog.NewTextHandler(io.Discard, nil))),
		gateway:    gateway,
		metrics:    m,
	}
}

func TestGatewayMiddleware_Redirect(t *testing.T) {
	fx := createTestGatewayMiddleware(t)

	rotated := &http.Cookie{Name: "sb-access-token", Value: "", MaxAge: -1}
	fx.gateway.EXPECT().Decide(mock.Anything, mock.Anything).Return(&usecase.Decision{
		Class:    entity.RouteClassDashboard,
		Action:   usecase.ActionRedirect,
		Location: "/login",
		Cookies:  []*http.Cookie{rotated},
	})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/dashboard/content", nil), rec)

	called := false
	err := fx.middleware.Handle(func(echo.Context) error {
		called = true

		return nil
	})(c)
	require.NoError(t, err)

	assert.False(t, called)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "sb-access-token=")
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.GatewayDecisions.WithLabelValues("dashboard", "redirect")))
}

func TestGatewayMiddleware_RewriteSetsLocale(t *testing.T) {
	fx := createTestGatewayMiddleware(t)

	locale := entity.Locale{Tag: "en", Dir: entity.DirectionLTR}
	fx.gateway.EXPECT().Decide(mock.Anything, mock.Anything).Return(&usecase.Decision{
		Class:  entity.RouteClassPublic,
		Action: usecase.ActionRewrite,
		Path:   "/en/portfolio",
		Locale: &locale,
	})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/portfolio?category=villas", nil), rec)

	var seenPath, seenQuery string
	var seenLocale entity.Locale
	err := fx.middleware.Handle(func(c echo.Context) error {
		seenPath = c.Request().URL.Path
		seenQuery = c.Request().URL.RawQuery
		seenLocale, _ = deliverycontext.GetLocale(c)

		return nil
	})(c)
	require.NoError(t, err)

	assert.Equal(t, "/en/portfolio", seenPath)
	assert.Equal(t, "category=villas", seenQuery)
	assert.Equal(t, "en", seenLocale.Tag)
	assert.Equal(t, "en", rec.Header().Get("Content-Language"))
	assert.Equal(t, entity.RouteClassPublic, deliverycontext.GetRouteClass(c))
}

func TestGatewayMiddleware_PassWithUserAndProviderError(t *testing.T) {
	fx := createTestGatewayMiddleware(t)

	fx.gateway.EXPECT().Decide(mock.Anything, mock.Anything).Return(&usecase.Decision{
		Class:   entity.RouteClassLogin,
		Action:  usecase.ActionPass,
		Path:    "/login",
		AuthErr: errors.New("auth provider timed out"),
	}).Once()
	fx.gateway.EXPECT().Decide(mock.Anything, mock.Anything).Return(&usecase.Decision{
		Class:  entity.RouteClassDashboard,
		Action: usecase.ActionPass,
		Path:   "/dashboard",
		User:   &entity.User{ID: "u-1"},
	}).Once()

	e := echo.New()
	next := func(echo.Context) error { return nil }

	login := e.NewContext(httptest.NewRequest(http.MethodGet, "/login", nil), httptest.NewRecorder())
	require.NoError(t, fx.middleware.Handle(next)(login))
	assert.Nil(t, deliverycontext.GetUser(login))

	dashboard := e.NewContext(httptest.NewRequest(http.MethodGet, "/dashboard", nil), httptest.NewRecorder())
	require.NoError(t, fx.middleware.Handle(next)(dashboard))
	require.NotNil(t, deliverycontext.GetUser(dashboard))
	assert.Equal(t, "u-1", deliverycontext.GetUser(dashboard).ID)

	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.AuthProviderErrors))
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.GatewayDecisions.WithLabelValues("login", "pass")))
}
