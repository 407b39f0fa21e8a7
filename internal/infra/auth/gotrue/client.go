// Package gotrue talks to a GoTrue-compatible auth REST API.
package gotrue

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	// refreshLeeway is how close to expiry an access token may be before the
	// single verification call becomes a refresh grant.
	refreshLeeway = 10 * time.Second

	maxErrorBody = 4 << 10
)

// Client implements service.AuthProvider against /auth/v1.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewClient creates a GoTrue client. The request timeout is applied by callers
// through the context, the http client timeout is only a backstop.
func NewClient(baseURL, anonKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/auth/v1",
		anonKey: anonKey,
		httpClient: &http.Client{
			Timeout: 2 * timeout,
		},
		logger: logger,
		now:    time.Now,
	}
}

var _ service.AuthProvider = (*Client)(nil)

type userResponse struct {
	ID          string         `json:"id"`
	Email       string         `json:"email"`
	Role        string         `json:"role"`
	AppMetadata map[string]any `json:"app_metadata"`
}

type tokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	ExpiresAt    int64         `json:"expires_at"`
	User         *userResponse `json:"user"`
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
}

// GetCurrentUser makes exactly one call: a refresh grant when the access token
// is about to expire and a refresh token is available, otherwise GET /user.
func (c *Client) GetCurrentUser(ctx context.Context, tokens *entity.SessionTokens) (*entity.AuthResult, error) {
	if tokens.IsEmpty() {
		return nil, nil
	}

	if tokens.RefreshToken != "" && c.needsRefresh(tokens.AccessToken) {
		return c.refresh(ctx, tokens.RefreshToken)
	}

	if tokens.AccessToken == "" {
		return nil, nil
	}

	var user userResponse
	status, err := c.do(ctx, http.MethodGet, "/user", tokens.AccessToken, nil, &user)
	if err != nil {
		return nil, err
	}
	if isSessionRejected(status) {
		return nil, nil
	}

	return &entity.AuthResult{User: user.toEntity()}, nil
}

// SignIn uses the password grant.
func (c *Client) SignIn(ctx context.Context, email, password string) (*entity.AuthResult, error) {
	var token tokenResponse
	status, err := c.do(ctx, http.MethodPost, "/token?grant_type=password", "",
		map[string]string{"email": email, "password": password}, &token)
	if err != nil {
		return nil, err
	}
	if isSessionRejected(status) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return token.toResult(c.now()), nil
}

// SignOut revokes the refresh token family server side.
func (c *Client) SignOut(ctx context.Context, tokens *entity.SessionTokens) error {
	if tokens == nil || tokens.AccessToken == "" {
		return nil
	}

	// 401 and 403 mean the session is already gone, which do reports without error.
	_, err := c.do(ctx, http.MethodPost, "/logout", tokens.AccessToken, nil, nil)

	return err
}

// Health calls the public health endpoint with the anon key.
func (c *Client) Health(ctx context.Context) error {
	status, err := c.do(ctx, http.MethodGet, "/health", "", nil, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return errors.Errorf("auth provider health returned status %d", status)
	}

	return nil
}

func (c *Client) refresh(ctx context.Context, refreshToken string) (*entity.AuthResult, error) {
	c.logger.DebugContext(ctx, "Access token near expiry, refreshing session")

	var token tokenResponse
	status, err := c.do(ctx, http.MethodPost, "/token?grant_type=refresh_token", "",
		map[string]string{"refresh_token": refreshToken}, &token)
	if err != nil {
		return nil, err
	}
	if isSessionRejected(status) {
		return nil, nil
	}

	return token.toResult(c.now()), nil
}

// needsRefresh reads exp without verifying the signature; the provider still
// verifies whatever token is finally presented.
func (c *Client) needsRefresh(accessToken string) bool {
	if accessToken == "" {
		return true
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Time.Before(c.now().Add(refreshLeeway))
}

// do sends the request. Statuses the caller treats as "no session" are returned
// without an error; any other non-2xx status is an error.
func (c *Client) do(ctx context.Context, method, path, bearer string, payload, out any) (int, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, errors.WithStack(err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	} else if c.anonKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.anonKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrapf(err, "auth provider %s %s", method, redactQuery(path))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return resp.StatusCode, nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, errors.Wrap(err, "decode auth provider response")
		}

		return resp.StatusCode, nil

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return resp.StatusCode, nil

	case resp.StatusCode == http.StatusBadRequest:
		var apiErr errorResponse
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		_ = json.Unmarshal(raw, &apiErr)
		if apiErr.isInvalidGrant() {
			return resp.StatusCode, nil
		}

		return resp.StatusCode, errors.Errorf("auth provider %s %s returned 400: %s", method, redactQuery(path), apiErr.message())

	default:
		return resp.StatusCode, errors.Errorf("auth provider %s %s returned status %d", method, redactQuery(path), resp.StatusCode)
	}
}

func isSessionRejected(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden || status == http.StatusBadRequest
}

func (e errorResponse) isInvalidGrant() bool {
	switch e.ErrorCode {
	case "invalid_credentials", "refresh_token_not_found", "refresh_token_already_used", "session_not_found", "session_expired":
		return true
	}

	return e.Error == "invalid_grant"
}

func (e errorResponse) message() string {
	for _, s := range []string{e.ErrorDescription, e.Msg, e.Error, e.ErrorCode} {
		if s != "" {
			return s
		}
	}

	return "unknown error"
}

func (u *userResponse) toEntity() *entity.User {
	if u == nil || u.ID == "" {
		return nil
	}

	role := u.Role
	if r, ok := u.AppMetadata["role"].(string); ok && r != "" {
		role = r
	}

	return &entity.User{ID: u.ID, Email: u.Email, Role: role}
}

func (t *tokenResponse) toResult(now time.Time) *entity.AuthResult {
	rotated := &entity.SessionTokens{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
	}
	switch {
	case t.ExpiresAt > 0:
		rotated.ExpiresAt = time.Unix(t.ExpiresAt, 0)
	case t.ExpiresIn > 0:
		rotated.ExpiresAt = now.Add(time.Duration(t.ExpiresIn) * time.Second)
	}

	return &entity.AuthResult{User: t.User.toEntity(), Rotated: rotated}
}

func redactQuery(path string) string {
	u, err := url.Parse(path)
	if err != nil {
		return path
	}

	return u.Path
}
