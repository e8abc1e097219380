package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/habitsync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines the remote API surface consumed by the sync
// engine and the auth service. Every call can fail with a transport
// error or a server-reported one; the push phase treats both the same.
type ClientAPI interface {
	// Register creates a new account
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// Login authenticates and returns an access token
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// ListHabits returns all habits of the authenticated principal
	ListHabits(ctx context.Context, token string) ([]api.Habit, error)

	// CreateHabit creates a habit and returns it with its remote identity
	CreateHabit(ctx context.Context, token string, req api.HabitRequest) (*api.Habit, error)

	// UpdateHabit updates a habit; the server keeps the newer version
	UpdateHabit(ctx context.Context, token, habitID string, req api.HabitRequest) (*api.Habit, error)

	// DeleteHabit deletes a habit and all its logs
	DeleteHabit(ctx context.Context, token, habitID string) error

	// ListLogs returns all completion logs of the authenticated principal
	ListLogs(ctx context.Context, token string) ([]api.HabitLog, error)

	// CreateLog records a completion; idempotent per (habit, date)
	CreateLog(ctx context.Context, token, habitID string, req api.HabitLogRequest) (*api.HabitLog, error)

	// DeleteLog removes a completion mark
	DeleteLog(ctx context.Context, token, habitID, date string) error
}

// Client is the HTTP implementation of ClientAPI
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Register creates a new account
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login authenticates the user
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// ListHabits returns all habits of the authenticated principal
func (c *Client) ListHabits(ctx context.Context, token string) ([]api.Habit, error) {
	var resp []api.Habit
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/habits", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("list habits request failed: %w", err)
	}
	return resp, nil
}

// CreateHabit creates a habit on the server
func (c *Client) CreateHabit(ctx context.Context, token string, req api.HabitRequest) (*api.Habit, error) {
	var resp api.Habit
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/habits", token, req, &resp); err != nil {
		return nil, fmt.Errorf("create habit request failed: %w", err)
	}
	return &resp, nil
}

// UpdateHabit updates a habit on the server
func (c *Client) UpdateHabit(ctx context.Context, token, habitID string, req api.HabitRequest) (*api.Habit, error) {
	var resp api.Habit
	path := "/api/v1/habits/" + url.PathEscape(habitID)
	if err := c.doRequest(ctx, http.MethodPut, path, token, req, &resp); err != nil {
		return nil, fmt.Errorf("update habit request failed: %w", err)
	}
	return &resp, nil
}

// DeleteHabit deletes a habit on the server
func (c *Client) DeleteHabit(ctx context.Context, token, habitID string) error {
	path := "/api/v1/habits/" + url.PathEscape(habitID)
	if err := c.doRequest(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete habit request failed: %w", err)
	}
	return nil
}

// ListLogs returns all completion logs of the authenticated principal
func (c *Client) ListLogs(ctx context.Context, token string) ([]api.HabitLog, error) {
	var resp []api.HabitLog
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/logs", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("list logs request failed: %w", err)
	}
	return resp, nil
}

// CreateLog records a completion on the server
func (c *Client) CreateLog(ctx context.Context, token, habitID string, req api.HabitLogRequest) (*api.HabitLog, error) {
	var resp api.HabitLog
	path := "/api/v1/habits/" + url.PathEscape(habitID) + "/logs"
	if err := c.doRequest(ctx, http.MethodPost, path, token, req, &resp); err != nil {
		return nil, fmt.Errorf("create log request failed: %w", err)
	}
	return &resp, nil
}

// DeleteLog removes a completion mark on the server
func (c *Client) DeleteLog(ctx context.Context, token, habitID, date string) error {
	path := "/api/v1/habits/" + url.PathEscape(habitID) + "/logs/" + url.PathEscape(date)
	if err := c.doRequest(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete log request failed: %w", err)
	}
	return nil
}

// doRequest performs one HTTP request with optional bearer auth and
// JSON body/response
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			if errResp.Message != "" {
				return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
			}
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}
