// Package tabular is the HTTP client for the hosted tabular backend that
// stores all ride data. The backend exposes per-table list/create/update
// endpoints under /{baseID}/{table}, authenticated with a bearer API key.
package tabular

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"time"

	"github.com/tawseela/tawseela/internal/pkg/logger"
	"github.com/tawseela/tawseela/internal/pkg/models"
)

// DefaultTimeout for backend requests
const DefaultTimeout = 30 * time.Second

// Record is a single row in a backend table. The record id and creation time
// are assigned by the backend, never by this service.
type Record struct {
	ID          string                 `json:"id"`
	CreatedTime time.Time              `json:"createdTime"`
	Fields      map[string]interface{} `json:"fields"`
}

type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

// Client talks to the tabular backend
type Client struct {
	client  *nethttp.Client
	baseURL string
	apiKey  string
	baseID  string
}

// NewClient creates a backend client from configuration
func NewClient(cfg models.BackendConfig) *Client {
	timeout := DefaultTimeout
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}
	return &Client{
		client:  &nethttp.Client{Timeout: timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		baseID:  cfg.BaseID,
	}
}

// TablePath returns the request path for a table
func (c *Client) TablePath(table string) string {
	return "/" + c.baseID + "/" + url.PathEscape(table)
}

// RecordPath returns the request path for a single record
func (c *Client) RecordPath(table, recordID string) string {
	return c.TablePath(table) + "/" + url.PathEscape(recordID)
}

// List fetches all records of a table matching the query, following the
// backend's offset pagination until exhausted.
func (c *Client) List(ctx context.Context, table string, query url.Values) ([]Record, error) {
	var records []Record
	offset := ""
	for {
		q := url.Values{}
		for k, vs := range query {
			q[k] = vs
		}
		if offset != "" {
			q.Set("offset", offset)
		}

		var page listResponse
		if err := c.DoJSON(ctx, nethttp.MethodGet, c.TablePath(table), q, nil, &page); err != nil {
			return nil, err
		}
		records = append(records, page.Records...)
		if page.Offset == "" {
			return records, nil
		}
		offset = page.Offset
	}
}

// Create inserts a new record and returns it with its backend-assigned id
func (c *Client) Create(ctx context.Context, table string, fields map[string]interface{}) (*Record, error) {
	var rec Record
	body := map[string]interface{}{"fields": fields}
	if err := c.DoJSON(ctx, nethttp.MethodPost, c.TablePath(table), nil, body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update patches the given fields of an existing record
func (c *Client) Update(ctx context.Context, table, recordID string, fields map[string]interface{}) (*Record, error) {
	var rec Record
	body := map[string]interface{}{"fields": fields}
	if err := c.DoJSON(ctx, nethttp.MethodPatch, c.RecordPath(table, recordID), nil, body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// DoJSON performs a backend request with bearer authentication and decodes
// the JSON response into out. Non-2xx responses are returned as *Error.
func (c *Client) DoJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u = u + "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	logger.Debug("Backend request",
		logger.String("method", method),
		logger.String("path", path))

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error("Backend request failed",
			logger.String("method", method),
			logger.String("path", path),
			logger.Err(err))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// FieldString reads a string field, tolerating absent values
func (r *Record) FieldString(name string) string {
	if v, ok := r.Fields[name].(string); ok {
		return v
	}
	return ""
}

// FieldInt reads an integer field. The backend returns numbers as JSON
// floats; string digits are accepted for fields typed as text.
func (r *Record) FieldInt(name string) int {
	switch v := r.Fields[name].(type) {
	case float64:
		return int(v)
	case string:
		var n int
		fmt.Sscanf(v, "%d", &n)
		return n
	}
	return 0
}

// FieldBool reads a checkbox field; absent means false
func (r *Record) FieldBool(name string) bool {
	v, _ := r.Fields[name].(bool)
	return v
}

// FieldNumericString reads a field stored either as text or as a number and
// returns its string form. Price fields use this.
func (r *Record) FieldNumericString(name string) string {
	switch v := r.Fields[name].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%g", v)
	}
	return ""
}
