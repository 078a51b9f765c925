package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"notesvc/pkg/api"
)

// Client is the HTTP client for the notes server.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates an API client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects.
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetToken sets the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.doRequest(ctx, http.MethodPost, "/auth/register", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/auth/login", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// CreateNote creates a note owned by the authenticated user.
func (c *Client) CreateNote(ctx context.Context, req api.NoteRequest) (*api.Note, error) {
	var resp api.Note
	err := c.doRequest(ctx, http.MethodPost, "/notes/", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("create note request failed: %w", err)
	}
	return &resp, nil
}

// ListNotes returns all notes owned by the authenticated user.
func (c *Client) ListNotes(ctx context.Context) ([]api.Note, error) {
	var resp []api.Note
	err := c.doRequest(ctx, http.MethodGet, "/notes/", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list notes request failed: %w", err)
	}
	return resp, nil
}

// UpdateNote replaces the title and content of an owned note.
func (c *Client) UpdateNote(ctx context.Context, id int64, req api.NoteRequest) (*api.Note, error) {
	var resp api.Note
	url := fmt.Sprintf("/notes/%d", id)
	err := c.doRequest(ctx, http.MethodPut, url, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("update note request failed: %w", err)
	}
	return &resp, nil
}

// DeleteNote removes an owned note.
func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	url := fmt.Sprintf("/notes/%d", id)
	err := c.doRequest(ctx, http.MethodDelete, url, nil, nil)
	if err != nil {
		return fmt.Errorf("delete note request failed: %w", err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
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
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
