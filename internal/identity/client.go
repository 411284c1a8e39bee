// Package identity talks to the external authentication backend that is
// authoritative for email and password changes.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Alexiva1995/Networkx-back/internal/httpx"
)

type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Response is the upstream decision. Status false means the change was
// rejected; UserID echoes the subject when the upstream includes it.
type Response struct {
	Status bool `json:"status"`
	UserID uint `json:"user_id,omitempty"`
}

func (c *Client) doRequest(ctx context.Context, endpoint string, body interface{}) (*Response, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := fmt.Sprintf("%s%s", c.BaseURL, endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.APIKey)
	req.Header.Set("Idempotence-Key", uuid.New().String())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", httpx.ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", httpx.ErrUpstream, err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: %s (status: %d)", httpx.ErrUpstream, string(respBody), resp.StatusCode)
	}

	var decision Response
	if err := json.Unmarshal(respBody, &decision); err != nil {
		return nil, fmt.Errorf("%w: unmarshal response: %v", httpx.ErrUpstream, err)
	}

	return &decision, nil
}

type changeDataRequest struct {
	ID       uint   `json:"id"`
	Name     string `json:"name,omitempty"`
	LastName string `json:"last_name,omitempty"`
	Email    string `json:"email,omitempty"`
}

// ChangeData forwards a profile change request.
func (c *Client) ChangeData(ctx context.Context, id uint, name, lastName, email string) (*Response, error) {
	return c.doRequest(ctx, "change-data", changeDataRequest{
		ID:       id,
		Name:     name,
		LastName: lastName,
		Email:    email,
	})
}

type changePasswordRequest struct {
	ID       uint   `json:"id"`
	Password string `json:"password"`
}

// ChangePassword forwards a password change request.
func (c *Client) ChangePassword(ctx context.Context, id uint, password string) (*Response, error) {
	return c.doRequest(ctx, "change-password", changePasswordRequest{
		ID:       id,
		Password: password,
	})
}

type checkCredentialsRequest struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CheckCredentials verifies the email/password pair ahead of an email change.
func (c *Client) CheckCredentials(ctx context.Context, id uint, email, password string) (*Response, error) {
	return c.doRequest(ctx, "check-credentials-email", checkCredentialsRequest{
		ID:       id,
		Email:    email,
		Password: password,
	})
}
