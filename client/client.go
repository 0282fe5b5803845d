// Package client is a typed HTTP client for the cabinkeep API, plus the
// debounced autosave scheduler used by form frontends.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cabinkeep/models"
	"cabinkeep/services/auth"
	"cabinkeep/services/checklist"
)

// Client talks to a cabinkeep server. AccessToken is attached as a bearer
// credential; refreshing it on 401 is the caller's concern.
type Client struct {
	BaseURL     string
	AccessToken string
	HTTPClient  *http.Client
}

// New returns a Client for the given server base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		msg := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
			if errBody.Error != "" {
				msg = errBody.Error
			} else if errBody.Message != "" {
				msg = errBody.Message
			}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// SignInWithGoogle exchanges a Google ID token for an access/refresh pair and
// installs the access token on the client.
func (c *Client) SignInWithGoogle(ctx context.Context, idToken string) (*auth.TokenPair, error) {
	var pair auth.TokenPair
	err := c.do(ctx, http.MethodPost, "/auth/google", map[string]string{"idToken": idToken}, &pair)
	if err != nil {
		return nil, err
	}
	c.AccessToken = pair.AccessToken
	return &pair, nil
}

// Refresh exchanges a refresh token for a new pair and installs the access
// token on the client.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	var pair auth.TokenPair
	err := c.do(ctx, http.MethodPost, "/refresh", map[string]string{"refreshToken": refreshToken}, &pair)
	if err != nil {
		return nil, err
	}
	c.AccessToken = pair.AccessToken
	return &pair, nil
}

// ListChecklists returns every record, newest first.
func (c *Client) ListChecklists(ctx context.Context) ([]models.ChecklistRecord, error) {
	var records []models.ChecklistRecord
	if err := c.do(ctx, http.MethodGet, "/api/checklists", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetChecklist fetches one record; nil when the ID is unknown.
func (c *Client) GetChecklist(ctx context.Context, id string) (*models.ChecklistRecord, error) {
	var rec *models.ChecklistRecord
	if err := c.do(ctx, http.MethodGet, "/api/checklists/"+id, nil, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// SaveOpenChecklist writes the cabin's open checklist (create-or-update).
func (c *Client) SaveOpenChecklist(ctx context.Context, rec models.ChecklistRecord) (*models.ChecklistRecord, error) {
	var saved models.ChecklistRecord
	if err := c.do(ctx, http.MethodPost, "/api/checklists", rec, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdateChecklist fully replaces a record by ID.
func (c *Client) UpdateChecklist(ctx context.Context, id string, rec models.ChecklistRecord) (*models.ChecklistRecord, error) {
	var updated *models.ChecklistRecord
	if err := c.do(ctx, http.MethodPut, "/api/checklists/"+id, rec, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteChecklist removes a record ("reset cabin").
func (c *Client) DeleteChecklist(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/checklists/"+id, nil, nil)
}

// PendingSummaries fetches the restock aggregation.
func (c *Client) PendingSummaries(ctx context.Context) (*checklist.RestockSummary, error) {
	var summary checklist.RestockSummary
	if err := c.do(ctx, http.MethodGet, "/api/pending-summaries", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Schema fetches the declarative field schema used to render the form.
func (c *Client) Schema(ctx context.Context) ([]models.FieldSpec, error) {
	var specs []models.FieldSpec
	if err := c.do(ctx, http.MethodGet, "/api/schema", nil, &specs); err != nil {
		return nil, err
	}
	return specs, nil
}

// GetCart fetches the caller's supply-request list.
func (c *Client) GetCart(ctx context.Context) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := c.do(ctx, http.MethodGet, "/api/cart", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddCartItem appends a line and returns the updated list.
func (c *Client) AddCartItem(ctx context.Context, item string, quantity int, cabin *int) ([]models.CartItem, error) {
	body := map[string]any{"item": item, "quantity": quantity, "cabin": cabin}
	var items []models.CartItem
	if err := c.do(ctx, http.MethodPost, "/api/cart", body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveCartItem removes the line at the given position and returns the
// updated list.
func (c *Client) RemoveCartItem(ctx context.Context, index int) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cart/%d", index), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
