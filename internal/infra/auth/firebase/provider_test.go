package firebase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthClient struct {
	token      *auth.Token
	verifyErr  error
	cookie     string
	revokedUID string
}

func (f *fakeAuthClient) VerifySessionCookie(_ context.Context, _ string) (*auth.Token, error) {
	return f.token, f.verifyErr
}

func (f *fakeAuthClient) VerifySessionCookieAndCheckRevoked(_ context.Context, _ string) (*auth.Token, error) {
	return f.token, f.verifyErr
}

func (f *fakeAuthClient) SessionCookie(_ context.Context, idToken string, _ time.Duration) (string, error) {
	return f.cookie + ":" + idToken, nil
}

func (f *fakeAuthClient) RevokeRefreshTokens(_ context.Context, uid string) error {
	f.revokedUID = uid

	return nil
}

func (f *fakeAuthClient) Users(_ context.Context, _ string) *auth.UserIterator {
	return nil
}

func newTestProvider(client authClient, toolkitURL string) *Provider {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newProvider(client, "web-key", toolkitURL, 24*time.Hour, logger)
}

func TestProvider_GetCurrentUser(t *testing.T) {
	client := &fakeAuthClient{token: &auth.Token{
		UID:    "uid-1",
		Claims: map[string]interface{}{"email": "editor@example.com", "role": "admin"},
	}}
	provider := newTestProvider(client, "")

	result, err := provider.GetCurrentUser(context.Background(), &entity.SessionTokens{AccessToken: "cookie"})
	require.NoError(t, err)
	assert.Equal(t, &entity.User{ID: "uid-1", Email: "editor@example.com", Role: "admin"}, result.User)
	assert.Nil(t, result.Rotated)
}

func TestProvider_GetCurrentUser_NoCookie(t *testing.T) {
	provider := newTestProvider(&fakeAuthClient{}, "")

	result, err := provider.GetCurrentUser(context.Background(), &entity.SessionTokens{RefreshToken: "ignored"})
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestProvider_GetCurrentUser_TransportError(t *testing.T) {
	provider := newTestProvider(&fakeAuthClient{verifyErr: errors.New("fetching public keys: timeout")}, "")

	result, err := provider.GetCurrentUser(context.Background(), &entity.SessionTokens{AccessToken: "cookie"})
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestProvider_SignIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:signInWithPassword", r.URL.Path)
		assert.Equal(t, "web-key", r.URL.Query().Get("key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, true, body["returnSecureToken"])

		w.Header().Set("Content-Type", "application/json")
		if body["password"] != "correct horse" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":400,"message":"INVALID_LOGIN_CREDENTIALS"}}`))

			return
		}
		_, _ = w.Write([]byte(`{"idToken":"id-1","localId":"uid-1","email":"editor@example.com","expiresIn":"3600"}`))
	}))
	defer srv.Close()

	client := &fakeAuthClient{cookie: "session"}
	provider := newTestProvider(client, srv.URL)

	result, err := provider.SignIn(context.Background(), "editor@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", result.User.ID)
	assert.Equal(t, "session:id-1", result.Rotated.AccessToken)
	assert.Empty(t, result.Rotated.RefreshToken)

	_, err = provider.SignIn(context.Background(), "editor@example.com", "nope")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestProvider_SignOutRevokesTokens(t *testing.T) {
	client := &fakeAuthClient{token: &auth.Token{UID: "uid-1"}}
	provider := newTestProvider(client, "")

	require.NoError(t, provider.SignOut(context.Background(), &entity.SessionTokens{AccessToken: "cookie"}))
	assert.Equal(t, "uid-1", client.revokedUID)

	assert.NoError(t, provider.SignOut(context.Background(), nil))
}
