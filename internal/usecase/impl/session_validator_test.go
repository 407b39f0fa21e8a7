package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"atelier/internal/domain/entity"
	mockSvc "atelier/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionValidatorFixtures struct {
	validator *sessionValidator
	provider  *mockSvc.MockAuthProvider
	cookies   *SessionCookies
}

func createTestSessionValidator(t *testing.T) sessionValidatorFixtures {
	cfg := newTestConfig()
	cfg.AuthProvider.Timeout = 50 * time.Millisecond

	provider := mockSvc.NewMockAuthProvider(t)
	cookies := NewSessionCookies(cfg)
	validator := NewSessionValidator(provider, cookies, cfg, newDiscardLogger()).(*sessionValidator)

	return sessionValidatorFixtures{
		validator: validator,
		provider:  provider,
		cookies:   cookies,
	}
}

func sessionCookies() []*http.Cookie {
	return []*http.Cookie{
		{Name: "sb-access-token", Value: "access"},
		{Name: "sb-refresh-token", Value: "refresh"},
	}
}

func TestSessionValidator_NoCookiesSkipsProvider(t *testing.T) {
	fx := createTestSessionValidator(t)

	result := fx.validator.Validate(context.Background(), []*http.Cookie{{Name: "theme", Value: "dark"}})

	assert.False(t, result.Authenticated)
	assert.Nil(t, result.User)
	assert.Empty(t, result.Cookies)
	assert.NoError(t, result.Err)
}

func TestSessionValidator_Authenticated(t *testing.T) {
	fx := createTestSessionValidator(t)
	user := &entity.User{ID: "u-1", Email: "editor@example.com"}

	fx.provider.EXPECT().
		GetCurrentUser(mock.Anything, &entity.SessionTokens{AccessToken: "access", RefreshToken: "refresh"}).
		Return(&entity.AuthResult{User: user}, nil).
		Once()

	result := fx.validator.Validate(context.Background(), sessionCookies())

	assert.True(t, result.Authenticated)
	assert.Equal(t, user, result.User)
	assert.Empty(t, result.Cookies)
}

func TestSessionValidator_PropagatesRotatedTokens(t *testing.T) {
	fx := createTestSessionValidator(t)

	fx.provider.EXPECT().
		GetCurrentUser(mock.Anything, mock.Anything).
		Return(&entity.AuthResult{
			User:    &entity.User{ID: "u-1"},
			Rotated: &entity.SessionTokens{AccessToken: "access-2", RefreshToken: "refresh-2"},
		}, nil).
		Once()

	result := fx.validator.Validate(context.Background(), sessionCookies())

	require.True(t, result.Authenticated)
	require.Len(t, result.Cookies, 2)
	assert.Equal(t, "sb-access-token", result.Cookies[0].Name)
	assert.Equal(t, "access-2", result.Cookies[0].Value)
	assert.Equal(t, "refresh-2", result.Cookies[1].Value)
	assert.True(t, result.Cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, result.Cookies[0].SameSite)
}

func TestSessionValidator_InvalidSessionClearsCookies(t *testing.T) {
	fx := createTestSessionValidator(t)

	fx.provider.EXPECT().
		GetCurrentUser(mock.Anything, mock.Anything).
		Return(nil, nil).
		Once()

	result := fx.validator.Validate(context.Background(), sessionCookies())

	assert.False(t, result.Authenticated)
	assert.NoError(t, result.Err)
	require.Len(t, result.Cookies, 2)
	for _, c := range result.Cookies {
		assert.Equal(t, -1, c.MaxAge)
		assert.Empty(t, c.Value)
	}
}

func TestSessionValidator_ProviderErrorFailsClosed(t *testing.T) {
	fx := createTestSessionValidator(t)

	fx.provider.EXPECT().
		GetCurrentUser(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).
		Once()

	result := fx.validator.Validate(context.Background(), sessionCookies())

	assert.False(t, result.Authenticated)
	assert.Nil(t, result.User)
	assert.Empty(t, result.Cookies)
	assert.Error(t, result.Err)
}

func TestSessionValidator_TimeoutFailsClosed(t *testing.T) {
	fx := createTestSessionValidator(t)

	fx.provider.EXPECT().
		GetCurrentUser(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *entity.SessionTokens) (*entity.AuthResult, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		}).
		Once()

	start := time.Now()
	result := fx.validator.Validate(context.Background(), sessionCookies())

	assert.Less(t, time.Since(start), time.Second)
	assert.False(t, result.Authenticated)
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, context.DeadlineExceeded)
	assert.Contains(t, result.Err.Error(), "timed out")
}
