package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelier/config"
	httpmiddleware "atelier/internal/delivery/http/middleware"
	"atelier/internal/delivery/http/router"
	"atelier/internal/delivery/http/router/handler"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/infra/metrics"
	mockUsecase "atelier/internal/mocks/usecase"
	"atelier/internal/usecase"
	"atelier/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type serverFixtures struct {
	echo      *echo.Echo
	sessions  *mockUsecase.MockSessionValidator
	pageUC    *mockUsecase.MockPageUsecase
	setupUC   *mockUsecase.MockSetupUsecase
	contentUC *mockUsecase.MockContentUsecase
	contactUC *mockUsecase.MockContactUsecase
	storageUC *mockUsecase.MockStorageUsecase
}

func createTestServer(t *testing.T) serverFixtures {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()

	sessions := mockUsecase.NewMockSessionValidator(t)
	pageUC := mockUsecase.NewMockPageUsecase(t)
	setupUC := mockUsecase.NewMockSetupUsecase(t)
	authUC := mockUsecase.NewMockAuthUsecase(t)
	contentUC := mockUsecase.NewMockContentUsecase(t)
	contactUC := mockUsecase.NewMockContactUsecase(t)
	storageUC := mockUsecase.NewMockStorageUsecase(t)
	officeUC := mockUsecase.NewMockOfficeUsecase(t)

	locales := impl.NewLocaleResolver(cfg)
	gateway := impl.NewGatewayService(impl.NewRouteClassifier(cfg), locales, sessions, cfg)

	e := NewEcho(ServerParams{
		Cfg:               cfg,
		Logger:            logger,
		GatewayMiddleware: httpmiddleware.NewGatewayMiddleware(gateway, m, logger),
		MetricsMiddleware: httpmiddleware.NewMetricsMiddleware(m),
		ErrorMiddleware:   httpmiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			HealthHandler: handler.NewHealthHandler(setupUC, logger),
			AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
				AuthUC: authUC, Locales: locales, Config: cfg, Logger: logger,
			}),
			ContentHandler:  handler.NewContentHandler(handler.ContentHandlerParams{ContentUC: contentUC, Logger: logger}),
			PageHandler:     handler.NewPageHandler(handler.PageHandlerParams{PageUC: pageUC, Locales: locales}),
			ContactHandler:  handler.NewContactHandler(handler.ContactHandlerParams{ContactUC: contactUC, Logger: logger}),
			FileHandler:     handler.NewFileHandler(handler.FileHandlerParams{StorageUC: storageUC, Logger: logger}),
			OfficeHandler:   handler.NewOfficeHandler(handler.OfficeHandlerParams{OfficeUC: officeUC, Locales: locales}),
			SetupHandler:    handler.NewSetupHandler(setupUC),
			AuthMiddleware:  httpmiddleware.NewAuthMiddleware(),
			SetupMiddleware: httpmiddleware.NewSetupMiddleware(setupUC),
			Metrics:         m,
			Config:          cfg,
		},
	})

	return serverFixtures{
		echo:      e,
		sessions:  sessions,
		pageUC:    pageUC,
		setupUC:   setupUC,
		contentUC: contentUC,
		contactUC: contactUC,
		storageUC: storageUC,
	}
}

func (f serverFixtures) signedIn() *http.Cookie {
	f.sessions.EXPECT().Validate(mock.Anything, mock.Anything).Return(&usecase.SessionResult{
		Authenticated: true,
		User:          &entity.User{ID: "u-1", Email: "studio@example.com"},
	})

	return &http.Cookie{Name: "sb-access-token", Value: "a"}
}

func (f serverFixtures) do(method, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_RootRewritesToDefaultLocale(t *testing.T) {
	fx := createTestServer(t)
	fx.pageUC.EXPECT().
		Home(mock.Anything, entity.Locale{Tag: "en", Dir: entity.DirectionLTR}).
		Return(&usecase.HomePage{Page: usecase.Page{Locale: "en", Dir: entity.DirectionLTR}}, nil)

	rec := fx.do(http.MethodGet, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "en", rec.Header().Get("Content-Language"))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_LocalePrefixedPage(t *testing.T) {
	fx := createTestServer(t)
	fx.pageUC.EXPECT().
		Services(mock.Anything, entity.Locale{Tag: "ar", Dir: entity.DirectionRTL}).
		Return(&usecase.ServicesPage{Page: usecase.Page{Locale: "ar", Dir: entity.DirectionRTL}}, nil)

	rec := fx.do(http.MethodGet, "/ar/services")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ar", rec.Header().Get("Content-Language"))
}

func TestServer_DashboardWithoutSessionRedirects(t *testing.T) {
	fx := createTestServer(t)
	fx.sessions.EXPECT().Validate(mock.Anything, mock.Anything).Return(&usecase.SessionResult{})

	rec := fx.do(http.MethodGet, "/dashboard/content/projects")

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestServer_DashboardWithSession(t *testing.T) {
	fx := createTestServer(t)
	fx.sessions.EXPECT().Validate(mock.Anything, mock.Anything).Return(&usecase.SessionResult{
		Authenticated: true,
		User:          &entity.User{ID: "u-1", Email: "studio@example.com"},
	})

	rec := fx.do(http.MethodGet, "/dashboard/me", &http.Cookie{Name: "sb-access-token", Value: "a"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "studio@example.com")
}

func TestServer_LoginWithSessionRedirectsToDashboard(t *testing.T) {
	fx := createTestServer(t)
	fx.sessions.EXPECT().Validate(mock.Anything, mock.Anything).Return(&usecase.SessionResult{
		Authenticated: true,
		User:          &entity.User{ID: "u-1"},
	})

	rec := fx.do(http.MethodGet, "/login", &http.Cookie{Name: "sb-access-token", Value: "a"})

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
}

func TestServer_InternalHealthSkipsGateway(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/_internal/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Language"))
}

func TestServer_SetupRequiresToken(t *testing.T) {
	fx := createTestServer(t)
	fx.setupUC.EXPECT().Authorize("").Return(domainerrors.ErrSetupDisabled)

	rec := fx.do(http.MethodPost, "/setup/verify")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "SETUP_DISABLED")
}

func TestServer_DashboardFileDelete(t *testing.T) {
	fx := createTestServer(t)
	cookie := fx.signedIn()
	fx.storageUC.EXPECT().Delete(mock.Anything, "projects/villa.png").Return(nil)

	rec := fx.do(http.MethodDelete, "/dashboard/files?key=projects%2Fvilla.png", cookie)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_DashboardFileDeleteWithoutSessionRedirects(t *testing.T) {
	fx := createTestServer(t)
	fx.sessions.EXPECT().Validate(mock.Anything, mock.Anything).Return(&usecase.SessionResult{})

	rec := fx.do(http.MethodDelete, "/dashboard/files?key=projects%2Fvilla.png")

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestServer_DashboardContentDelete(t *testing.T) {
	fx := createTestServer(t)
	cookie := fx.signedIn()
	id := uuid.New()

	collection := mockUsecase.NewMockContentCollection(t)
	collection.EXPECT().Delete(mock.Anything, id).Return(nil)
	fx.contentUC.EXPECT().Collection("projects").Return(collection, nil)

	rec := fx.do(http.MethodDelete, "/dashboard/content/projects/"+id.String(), cookie)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_DashboardLeadMarkRead(t *testing.T) {
	fx := createTestServer(t)
	cookie := fx.signedIn()
	id := uuid.New()
	fx.contactUC.EXPECT().MarkRead(mock.Anything, id).Return(nil)

	rec := fx.do(http.MethodPut, "/dashboard/leads/"+id.String()+"/read", cookie)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
