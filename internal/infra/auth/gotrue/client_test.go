package gotrue

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewClient(srv.URL, "anon-key", time.Second, logger), &calls
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	}).SignedString([]byte("unknown-to-the-client"))
	require.NoError(t, err)

	return token
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestClient_GetCurrentUser_ValidToken(t *testing.T) {
	access := signedToken(t, time.Now().Add(time.Hour))

	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "Bearer "+access, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{
			"id":           "user-1",
			"email":        "editor@example.com",
			"role":         "authenticated",
			"app_metadata": map[string]any{"role": "admin"},
		})
	})

	result, err := client.GetCurrentUser(context.Background(), &entity.SessionTokens{AccessToken: access, RefreshToken: "r"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "user-1", result.User.ID)
	assert.Equal(t, "admin", result.User.Role)
	assert.Nil(t, result.Rotated)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_GetCurrentUser_RefreshesNearExpiry(t *testing.T) {
	access := signedToken(t, time.Now().Add(5*time.Second))

	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "refresh_token", r.URL.Query().Get("grant_type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "refresh-1", body["refresh_token"])

		writeJSON(w, http.StatusOK, map[string]any{
			"access_token":  "access-2",
			"refresh_token": "refresh-2",
			"expires_in":    3600,
			"user":          map[string]any{"id": "user-1", "email": "editor@example.com"},
		})
	})

	result, err := client.GetCurrentUser(context.Background(), &entity.SessionTokens{AccessToken: access, RefreshToken: "refresh-1"})
	require.NoError(t, err)
	require.NotNil(t, result.Rotated)
	assert.Equal(t, "access-2", result.Rotated.AccessToken)
	assert.Equal(t, "refresh-2", result.Rotated.RefreshToken)
	assert.False(t, result.Rotated.ExpiresAt.IsZero())
	assert.Equal(t, "user-1", result.User.ID)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_GetCurrentUser_RefreshOnlyCookie(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token":  "access-2",
			"refresh_token": "refresh-2",
			"user":          map[string]any{"id": "user-1"},
		})
	})

	result, err := client.GetCurrentUser(context.Background(), &entity.SessionTokens{RefreshToken: "refresh-1"})
	require.NoError(t, err)
	assert.Equal(t, "access-2", result.Rotated.AccessToken)
}

func TestClient_GetCurrentUser_RejectedSession(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   any
	}{
		{"unauthorized", http.StatusUnauthorized, map[string]any{"msg": "invalid JWT"}},
		{"forbidden", http.StatusForbidden, map[string]any{"msg": "forbidden"}},
		{"invalid grant", http.StatusBadRequest, map[string]any{"error": "invalid_grant"}},
		{"refresh token gone", http.StatusBadRequest, map[string]any{"error_code": "refresh_token_not_found"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			result, err := client.GetCurrentUser(context.Background(), &entity.SessionTokens{RefreshToken: "refresh-1"})
			assert.NoError(t, err)
			assert.Nil(t, result)
		})
	}
}

func TestClient_GetCurrentUser_ProviderErrors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		result, err := client.GetCurrentUser(context.Background(), &entity.SessionTokens{AccessToken: "opaque"})
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("unexpected bad request", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "validation_failed"})
		})

		_, err := client.GetCurrentUser(context.Background(), &entity.SessionTokens{AccessToken: "opaque"})
		assert.ErrorContains(t, err, "validation_failed")
	})

	t.Run("context deadline", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := client.GetCurrentUser(ctx, &entity.SessionTokens{AccessToken: "opaque"})
		assert.Error(t, err)
	})
}

func TestClient_GetCurrentUser_EmptyTokens(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	result, err := client.GetCurrentUser(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, int32(0), calls.Load())
}

func TestClient_SignIn(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "correct horse" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid_grant", "error_description": "Invalid login credentials"})

			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"access_token":  "access-1",
			"refresh_token": "refresh-1",
			"expires_at":    time.Now().Add(time.Hour).Unix(),
			"user":          map[string]any{"id": "user-1", "email": body["email"]},
		})
	})

	result, err := client.SignIn(context.Background(), "editor@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "editor@example.com", result.User.Email)
	assert.Equal(t, "access-1", result.Rotated.AccessToken)

	_, err = client.SignIn(context.Background(), "editor@example.com", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestClient_SignOutAndHealth(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/logout":
			assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusNoContent)
		case "/auth/v1/health":
			writeJSON(w, http.StatusOK, map[string]any{"name": "GoTrue"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	assert.NoError(t, client.SignOut(context.Background(), &entity.SessionTokens{AccessToken: "access-1"}))
	assert.NoError(t, client.SignOut(context.Background(), nil))
	assert.NoError(t, client.Health(context.Background()))
}
