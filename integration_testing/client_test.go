//go:build integration_test || all_tests

package integration_testing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/2beens/liftlog/internal/auth"
)

type apiClient struct {
	endpoint   string
	httpClient *http.Client
}

func newAPIClient(endpoint string) *apiClient {
	return &apiClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID int    `json:"userId"`
}

// do sends body as JSON and decodes a 2xx response into out, when out is not nil.
func (c *apiClient) do(ctx context.Context, method, path, token string, body, out any) (int, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reqBody)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(auth.TokenHeader, token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read body: %w", err)
	}

	if out != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := json.Unmarshal(respBytes, out); err != nil {
			return resp.StatusCode, fmt.Errorf("unmarshal [%s]: %w", respBytes, err)
		}
	}

	return resp.StatusCode, nil
}

func (c *apiClient) ping(ctx context.Context) error {
	status, err := c.do(ctx, "GET", "/program", "", nil, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", status)
	}
	return nil
}

func (c *apiClient) registerAndLogin(ctx context.Context, username, password string) (loginResponse, error) {
	creds := auth.Credentials{Username: username, Password: password}

	status, err := c.do(ctx, "POST", "/a/register", "", creds, nil)
	if err != nil {
		return loginResponse{}, err
	}
	if status != http.StatusCreated {
		return loginResponse{}, fmt.Errorf("register %s: status %d", username, status)
	}

	var login loginResponse
	status, err = c.do(ctx, "POST", "/a/login", "", creds, &login)
	if err != nil {
		return loginResponse{}, err
	}
	if status != http.StatusOK {
		return loginResponse{}, fmt.Errorf("login %s: status %d", username, status)
	}
	return login, nil
}
