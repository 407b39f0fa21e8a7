package impl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atelier/internal/domain/entity"
	mockSvc "atelier/internal/mocks/service"
	mockUsecase "atelier/internal/mocks/usecase"
	"atelier/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type gatewayFixtures struct {
	gateway  usecase.RequestGateway
	sessions *mockUsecase.MockSessionValidator
}

func createTestGateway(t *testing.T) gatewayFixtures {
	cfg := newTestConfig()
	sessions := mockUsecase.NewMockSessionValidator(t)

	return gatewayFixtures{
		gateway:  NewGatewayService(NewRouteClassifier(cfg), NewLocaleResolver(cfg), sessions, cfg),
		sessions: sessions,
	}
}

func newGatewayRequest(path string, withSession bool) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if withSession {
		for _, c := range sessionCookies() {
			req.AddCookie(c)
		}
	}

	return req
}

func TestGateway_StaticAssetsBypassRegardlessOfCookies(t *testing.T) {
	fx := createTestGateway(t)

	for _, path := range []string{"/images/logo.png", "/dashboard/app.js", "/login.css", "/ar/og.jpg"} {
		for _, withSession := range []bool{false, true} {
			decision := fx.gateway.Decide(context.Background(), newGatewayRequest(path, withSession))

			assert.Equal(t, entity.RouteClassStaticAsset, decision.Class, path)
			assert.Equal(t, usecase.ActionPass, decision.Action, path)
			assert.Equal(t, path, decision.Path)
			assert.Nil(t, decision.Locale)
		}
	}
}

func TestGateway_UnauthenticatedDashboardRedirectsToLogin(t *testing.T) {
	fx := createTestGateway(t)

	fx.sessions.EXPECT().
		Validate(mock.Anything, mock.Anything).
		Return(&usecase.SessionResult{})

	for _, path := range []string{"/dashboard", "/dashboard/projects", "/dashboard/content/offices/1"} {
		decision := fx.gateway.Decide(context.Background(), newGatewayRequest(path, false))

		assert.Equal(t, entity.RouteClassDashboard, decision.Class)
		assert.Equal(t, usecase.ActionRedirect, decision.Action)
		assert.Equal(t, "/login", decision.Location)
		assert.Nil(t, decision.User)
	}
}

func TestGateway_AuthenticatedDashboardPassesWithRotatedCookies(t *testing.T) {
	fx := createTestGateway(t)
	user := &entity.User{ID: "u-1"}
	rotated := []*http.Cookie{{Name: "sb-access-token", Value: "new"}}

	fx.sessions.EXPECT().
		Validate(mock.Anything, mock.Anything).
		Return(&usecase.SessionResult{Authenticated: true, User: user, Cookies: rotated}).
		Once()

	decision := fx.gateway.Decide(context.Background(), newGatewayRequest("/dashboard/projects", true))

	assert.Equal(t, usecase.ActionPass, decision.Action)
	assert.Equal(t, user, decision.User)
	assert.Equal(t, rotated, decision.Cookies)
	assert.Equal(t, "/dashboard/projects", decision.Path)
}

func TestGateway_AuthenticatedLoginRedirectsToDashboard(t *testing.T) {
	fx := createTestGateway(t)

	fx.sessions.EXPECT().
		Validate(mock.Anything, mock.Anything).
		Return(&usecase.SessionResult{Authenticated: true, User: &entity.User{ID: "u-1"}}).
		Once()

	decision := fx.gateway.Decide(context.Background(), newGatewayRequest("/login", true))

	assert.Equal(t, entity.RouteClassLogin, decision.Class)
	assert.Equal(t, usecase.ActionRedirect, decision.Action)
	assert.Equal(t, "/dashboard", decision.Location)
}

func TestGateway_UnauthenticatedLoginPasses(t *testing.T) {
	fx := createTestGateway(t)

	fx.sessions.EXPECT().
		Validate(mock.Anything, mock.Anything).
		Return(&usecase.SessionResult{}).
		Once()

	decision := fx.gateway.Decide(context.Background(), newGatewayRequest("/login", false))

	assert.Equal(t, usecase.ActionPass, decision.Action)
	assert.Equal(t, "/login", decision.Path)
	assert.Nil(t, decision.Locale)
}

func TestGateway_PublicPathsNeverCallProvider(t *testing.T) {
	fx := createTestGateway(t)

	// The mock has no expectations: any Validate call fails the test.
	for i := 0; i < 3; i++ {
		decision := fx.gateway.Decide(context.Background(), newGatewayRequest("/about-us", true))
		assert.Equal(t, entity.RouteClassPublic, decision.Class)
		assert.Equal(t, usecase.ActionRewrite, decision.Action)
		assert.Equal(t, "/en/about-us", decision.Path)
		require.NotNil(t, decision.Locale)
		assert.Equal(t, "en", decision.Locale.Tag)

		decision = fx.gateway.Decide(context.Background(), newGatewayRequest("/en/portfolio", true))
		assert.Equal(t, usecase.ActionPass, decision.Action)
		assert.Equal(t, "/en/portfolio", decision.Path)
	}
}

func TestGateway_BypassPrefixesNeverCallProvider(t *testing.T) {
	fx := createTestGateway(t)

	for _, path := range []string{"/api/contact", "/setup/verify", "/_internal/health"} {
		decision := fx.gateway.Decide(context.Background(), newGatewayRequest(path, true))
		assert.Equal(t, entity.RouteClassBypass, decision.Class)
		assert.Equal(t, usecase.ActionPass, decision.Action)
		assert.Nil(t, decision.Locale)
	}
}

func TestGateway_ProviderFailureRedirectsLikeUnauthenticated(t *testing.T) {
	failures := map[string]func(ctx context.Context, _ *entity.SessionTokens) (*entity.AuthResult, error){
		"network error": func(context.Context, *entity.SessionTokens) (*entity.AuthResult, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
		"timeout": func(ctx context.Context, _ *entity.SessionTokens) (*entity.AuthResult, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		},
		"no session": func(context.Context, *entity.SessionTokens) (*entity.AuthResult, error) {
			return nil, nil
		},
	}

	for name, failure := range failures {
		t.Run(name, func(t *testing.T) {
			cfg := newTestConfig()
			cfg.AuthProvider.Timeout = 20 * time.Millisecond

			provider := mockSvc.NewMockAuthProvider(t)
			provider.EXPECT().GetCurrentUser(mock.Anything, mock.Anything).RunAndReturn(failure).Once()

			sessions := NewSessionValidator(provider, NewSessionCookies(cfg), cfg, newDiscardLogger())
			gateway := NewGatewayService(NewRouteClassifier(cfg), NewLocaleResolver(cfg), sessions, cfg)

			decision := gateway.Decide(context.Background(), newGatewayRequest("/dashboard/projects", true))

			assert.Equal(t, usecase.ActionRedirect, decision.Action)
			assert.Equal(t, "/login", decision.Location)
			assert.Nil(t, decision.User)
		})
	}
}
