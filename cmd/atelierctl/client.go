package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"atelier/internal/delivery/http/middleware"
	"atelier/internal/delivery/http/response"
	"atelier/internal/usecase"

	"github.com/pkg/errors"
)

const requestTimeout = 30 * time.Second

// client calls the setup endpoints of a running server.
type client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func newClient(baseURL, token string) *client {
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// saveResult mirrors the credentials endpoint payload.
type saveResult struct {
	EnvFile         string `json:"env_file"`
	RestartRequired bool   `json:"restart_required"`
}

// apiError is an error envelope returned by the server.
type apiError struct {
	Status int
	Info   *response.ErrorInfo
}

func (e *apiError) Error() string {
	msg := fmt.Sprintf("%s (HTTP %d): %s", e.Info.Code, e.Status, e.Info.Message)
	if e.Info.Details != nil {
		msg += fmt.Sprintf(" %v", e.Info.Details)
	}

	return msg
}

func (c *client) saveCredentials(ctx context.Context, creds *usecase.Credentials) (*saveResult, error) {
	var out saveResult
	if err := c.post(ctx, "/setup/credentials", creds, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// verify returns the report even when a check failed; the server answers 502
// with the report as data in that case.
func (c *client) verify(ctx context.Context) (*usecase.VerifyReport, error) {
	var out usecase.VerifyReport
	if err := c.post(ctx, "/setup/verify", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *client) post(ctx context.Context, path string, body, out any) error {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return errors.Wrap(err, "failed to encode request")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &payload)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderSetupToken, c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to reach %s", c.baseURL)
	}
	defer resp.Body.Close()

	var envelope struct {
		Data  json.RawMessage     `json:"data"`
		Error *response.ErrorInfo `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return errors.Wrapf(err, "unexpected response (HTTP %d)", resp.StatusCode)
	}

	if envelope.Error != nil {
		return &apiError{Status: resp.StatusCode, Info: envelope.Error}
	}

	if out == nil || len(envelope.Data) == 0 {
		return nil
	}

	return errors.Wrap(json.Unmarshal(envelope.Data, out), "failed to decode response data")
}
