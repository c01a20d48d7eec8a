package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public OpenAI API endpoint.
const DefaultBaseURL = "https://api.openai.com/v1"

// ErrNotActivated is returned when a client method is called before a
// successful Activate.
var ErrNotActivated = errors.New("openai client is not activated")

// Model describes one model offered by the provider.
type Model struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}

// modelList is the raw list envelope returned by the models endpoint.
type modelList struct {
	Object string  `json:"object"`
	Data   []Model `json:"data"`
}

// Client is a read-only client for the provider's model-listing API.
//
// Construction is two-phase: NewClient only records the settings, Activate
// validates them and builds the underlying HTTP client. Every API method
// fails with ErrNotActivated until Activate has succeeded.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an unactivated client descriptor.
// An empty baseURL selects the public OpenAI API.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Activate validates the configuration and builds the underlying HTTP
// client. It must be called once before any API method; a failure here is
// fatal to construction.
func (c *Client) Activate() error {
	if c.apiKey == "" {
		return fmt.Errorf("activating openai client: api key is empty (set OPENAI_API_KEY)")
	}
	c.httpClient = &http.Client{
		Timeout: 30 * time.Second,
	}
	return nil
}

// ListModels returns all models available to the configured API key.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	var list modelList
	if err := c.get(ctx, "/models", &list); err != nil {
		return nil, fmt.Errorf("listing models: %w", err)
	}
	return list.Data, nil
}

// GetModel returns details for a single model by ID.
func (c *Client) GetModel(ctx context.Context, modelID string) (*Model, error) {
	var m Model
	if err := c.get(ctx, "/models/"+url.PathEscape(modelID), &m); err != nil {
		return nil, fmt.Errorf("fetching model %s: %w", modelID, err)
	}
	return &m, nil
}

// IsModelAvailable reports whether the given model exists and is reachable.
func (c *Client) IsModelAvailable(ctx context.Context, modelID string) bool {
	_, err := c.GetModel(ctx, modelID)
	return err == nil
}

// get performs an authenticated GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	if c.httpClient == nil {
		return ErrNotActivated
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
