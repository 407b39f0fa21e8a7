// Package firebase implements the auth provider with Firebase session cookies.
package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// authClient is the subset of *auth.Client the provider needs.
type authClient interface {
	VerifySessionCookie(ctx context.Context, sessionCookie string) (*auth.Token, error)
	VerifySessionCookieAndCheckRevoked(ctx context.Context, sessionCookie string) (*auth.Token, error)
	SessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
	Users(ctx context.Context, nextPageToken string) *auth.UserIterator
}

// Provider implements service.AuthProvider. The access cookie holds a Firebase
// session cookie; there is no separate refresh token.
type Provider struct {
	client     authClient
	apiKey     string
	toolkitURL string
	sessionTTL time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// NewProvider initializes the Firebase app from a service account file.
func NewProvider(ctx context.Context, projectID, credentialsPath, apiKey string, sessionTTL time.Duration, logger *slog.Logger) (*Provider, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return newProvider(client, apiKey, identityToolkitURL, sessionTTL, logger), nil
}

func newProvider(client authClient, apiKey, toolkitURL string, sessionTTL time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		client:     client,
		apiKey:     apiKey,
		toolkitURL: toolkitURL,
		sessionTTL: sessionTTL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

var _ service.AuthProvider = (*Provider)(nil)

// GetCurrentUser verifies the session cookie and checks it was not revoked.
func (p *Provider) GetCurrentUser(ctx context.Context, tokens *entity.SessionTokens) (*entity.AuthResult, error) {
	if tokens == nil || tokens.AccessToken == "" {
		return nil, nil
	}

	token, err := p.client.VerifySessionCookieAndCheckRevoked(ctx, tokens.AccessToken)
	if err != nil {
		if isRejectedCookie(err) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "verify session cookie")
	}

	return &entity.AuthResult{User: userFromToken(token)}, nil
}

type signInResponse struct {
	IDToken   string `json:"idToken"`
	LocalID   string `json:"localId"`
	Email     string `json:"email"`
	ExpiresIn string `json:"expiresIn"`
}

type toolkitError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn exchanges a password for an ID token through the Identity Toolkit
// REST API, then mints a session cookie from it.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*entity.AuthResult, error) {
	raw, err := json.Marshal(map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	endpoint := p.toolkitURL + "/accounts:signInWithPassword?key=" + url.QueryEscape(p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(raw))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "identity toolkit sign in")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		var apiErr toolkitError
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		_ = json.Unmarshal(body, &apiErr)
		p.logger.InfoContext(ctx, "Firebase sign in rejected", slog.String("reason", apiErr.Error.Message))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("identity toolkit returned status %d", resp.StatusCode)
	}

	var signIn signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&signIn); err != nil {
		return nil, errors.Wrap(err, "decode sign in response")
	}

	cookie, err := p.client.SessionCookie(ctx, signIn.IDToken, p.sessionTTL)
	if err != nil {
		return nil, errors.Wrap(err, "create session cookie")
	}

	return &entity.AuthResult{
		User: &entity.User{ID: signIn.LocalID, Email: signIn.Email},
		Rotated: &entity.SessionTokens{
			AccessToken: cookie,
			ExpiresAt:   time.Now().Add(p.sessionTTL),
		},
	}, nil
}

// SignOut revokes every refresh token of the cookie's user, which invalidates
// all of their session cookies.
func (p *Provider) SignOut(ctx context.Context, tokens *entity.SessionTokens) error {
	if tokens == nil || tokens.AccessToken == "" {
		return nil
	}

	token, err := p.client.VerifySessionCookie(ctx, tokens.AccessToken)
	if err != nil {
		if isRejectedCookie(err) {
			return nil
		}

		return errors.Wrap(err, "verify session cookie")
	}

	return errors.Wrap(p.client.RevokeRefreshTokens(ctx, token.UID), "revoke refresh tokens")
}

// Health lists a single user, which needs working credentials and network.
func (p *Provider) Health(ctx context.Context) error {
	_, err := p.client.Users(ctx, "").Next()
	if err != nil && !errors.Is(err, iterator.Done) {
		return errors.Wrap(err, "firebase auth health")
	}

	return nil
}

func isRejectedCookie(err error) bool {
	return auth.IsSessionCookieInvalid(err) || auth.IsSessionCookieRevoked(err) || auth.IsUserDisabled(err) || auth.IsUserNotFound(err)
}

func userFromToken(token *auth.Token) *entity.User {
	user := &entity.User{ID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		user.Email = email
	}
	if role, ok := token.Claims["role"].(string); ok {
		user.Role = role
	}

	return user
}
