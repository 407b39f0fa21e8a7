package handler

import (
	"net/http"
	"testing"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	mockUsecase "atelier/internal/mocks/usecase"
	"atelier/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pageHandlerFixtures struct {
	handler *PageHandler
	pageUC  *mockUsecase.MockPageUsecase
}

func createTestPageHandler(t *testing.T) pageHandlerFixtures {
	pageUC := mockUsecase.NewMockPageUsecase(t)

	return pageHandlerFixtures{
		handler: NewPageHandler(PageHandlerParams{PageUC: pageUC, Locales: testLocales}),
		pageUC:  pageUC,
	}
}

func TestPageHandler_Home(t *testing.T) {
	fx := createTestPageHandler(t)
	fx.pageUC.EXPECT().
		Home(mock.Anything, entity.Locale{Tag: "ar", Dir: entity.DirectionRTL}).
		Return(&usecase.HomePage{Page: usecase.Page{Locale: "ar", Dir: "rtl"}}, nil)

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/ar", "")
	c.SetParamNames("locale")
	c.SetParamValues("ar")

	require.NoError(t, fx.handler.Home(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dir":"rtl"`)
}

func TestPageHandler_PortfolioCategory(t *testing.T) {
	fx := createTestPageHandler(t)
	fx.pageUC.EXPECT().
		Portfolio(mock.Anything, mock.Anything, "residential").
		Return(&usecase.PortfolioPage{Page: usecase.Page{Locale: "en"}}, nil)

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/en/portfolio?category=residential", "")
	c.SetParamNames("locale")
	c.SetParamValues("en")

	require.NoError(t, fx.handler.Portfolio(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPageHandler_ProjectNotFound(t *testing.T) {
	fx := createTestPageHandler(t)
	fx.pageUC.EXPECT().Project(mock.Anything, mock.Anything, "draft-villa").Return(nil, domainerrors.ErrPageNotFound)

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/en/portfolio/draft-villa", "")
	c.SetParamNames("locale", "slug")
	c.SetParamValues("en", "draft-villa")

	require.NoError(t, fx.handler.Project(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PAGE_NOT_FOUND", decodeError(t, rec).Code)
}

func TestPageHandler_UnsupportedLocale(t *testing.T) {
	fx := createTestPageHandler(t)

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/fr/services", "")
	c.SetParamNames("locale")
	c.SetParamValues("fr")

	require.NoError(t, fx.handler.Services(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
