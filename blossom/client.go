package blossom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client is an authenticated client for the Blossom REST API.
type Client struct {
	baseURL  string
	apiKey   string
	email    string
	password string
	http     *http.Client
}

// New creates a Blossom client for the given base URL and credentials.
// The API key is the primary authentication; email and password are the
// fallback for deployments without a key.
func New(baseURL, apiKey, email, password string) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiKey:   apiKey,
		email:    email,
		password: password,
		http:     &http.Client{Timeout: defaultTimeout},
	}
}

// resultsPage is the envelope Blossom wraps every list response in.
type resultsPage[T any] struct {
	Results []T `json:"results"`
}

// get performs an authenticated GET against the given endpoint and decodes
// the JSON response body into out. Any non-2xx status is returned as a
// *FetchError.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Api-Key "+c.apiKey)
	} else if c.email != "" {
		req.SetBasicAuth(c.email, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &FetchError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
