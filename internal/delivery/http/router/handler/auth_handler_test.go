package handler

import (
	"net/http"
	"testing"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	mockUsecase "atelier/internal/mocks/usecase"
	"atelier/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authHandlerFixtures struct {
	handler *AuthHandler
	authUC  *mockUsecase.MockAuthUsecase
}

func createTestAuthHandler(t *testing.T) authHandlerFixtures {
	authUC := mockUsecase.NewMockAuthUsecase(t)

	return authHandlerFixtures{
		handler: NewAuthHandler(AuthHandlerParams{
			AuthUC:  authUC,
			Locales: testLocales,
			Config:  newTestConfig(),
			Logger:  newDiscardLogger(),
		}),
		authUC: authUC,
	}
}

func TestAuthHandler_LoginPage(t *testing.T) {
	fx := createTestAuthHandler(t)

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/login", "")

	require.NoError(t, fx.handler.LoginPage(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var page LoginPage
	decodeData(t, rec, &page)
	assert.Equal(t, "/login", page.Action)
	assert.Equal(t, "/dashboard", page.Dashboard)
	assert.Equal(t, "en", page.Locale)
	assert.Equal(t, "ltr", page.Dir)
}

func TestAuthHandler_Login(t *testing.T) {
	fx := createTestAuthHandler(t)
	fx.authUC.EXPECT().
		Login(mock.Anything, "studio@example.com", "secret").
		Return(&usecase.LoginResult{
			User: &entity.User{ID: "u-1", Email: "studio@example.com"},
			Cookies: []*http.Cookie{
				{Name: "sb-access-token", Value: "a", HttpOnly: true},
				{Name: "sb-refresh-token", Value: "r", HttpOnly: true},
			},
			Redirect: "/dashboard",
		}, nil)

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/login", `{"email":"studio@example.com","password":"secret"}`)

	require.NoError(t, fx.handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, rec.Result().Cookies(), 2)

	var redirect RedirectResponse
	decodeData(t, rec, &redirect)
	assert.Equal(t, "/dashboard", redirect.Redirect)
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	fx := createTestAuthHandler(t)
	fx.authUC.EXPECT().Login(mock.Anything, "studio@example.com", "wrong").Return(nil, domainerrors.ErrInvalidCredentials)

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/login", `{"email":"studio@example.com","password":"wrong"}`)

	require.NoError(t, fx.handler.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_LoginMissingPassword(t *testing.T) {
	fx := createTestAuthHandler(t)

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/login", `{"email":"studio@example.com"}`)

	require.NoError(t, fx.handler.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"password"`)
}

func TestAuthHandler_Logout(t *testing.T) {
	fx := createTestAuthHandler(t)
	fx.authUC.EXPECT().
		Logout(mock.Anything, mock.Anything).
		Return([]*http.Cookie{
			{Name: "sb-access-token", MaxAge: -1},
			{Name: "sb-refresh-token", MaxAge: -1},
		})

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/dashboard/logout", "")
	deliverycontext.SetUser(c, &entity.User{ID: "u-1"})

	require.NoError(t, fx.handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, rec.Result().Cookies(), 2)

	var redirect RedirectResponse
	decodeData(t, rec, &redirect)
	assert.Equal(t, "/login", redirect.Redirect)
}

func TestAuthHandler_Me(t *testing.T) {
	fx := createTestAuthHandler(t)

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/dashboard/me", "")
	deliverycontext.SetUser(c, &entity.User{ID: "u-1", Email: "studio@example.com"})

	require.NoError(t, fx.handler.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "studio@example.com")
}
