// Package dgidb provides a client for the DGIdb v5 GraphQL API.
//
// Every query method flattens the nested GraphQL response into flat row
// slices that are ready for tabular output or graph construction.
package dgidb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public DGIdb GraphQL endpoint.
	DefaultBaseURL = "https://dgidb.org/api/graphql"

	// EnvBaseURL overrides the endpoint when set.
	EnvBaseURL = "DGIDB_API_URL"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 20 * time.Second

	// RateLimit is a polite ceiling on requests per second.
	RateLimit = 5.0
)

// Client is a rate-limited HTTP client for the DGIdb GraphQL API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom GraphQL endpoint (also used for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithRateLimit overrides the default requests-per-second ceiling.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a new DGIdb GraphQL client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    DefaultBaseURL,
	}

	if url := os.Getenv(EnvBaseURL); url != "" {
		c.baseURL = url
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// graphQLRequest is the standard GraphQL-over-HTTP POST body.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphQLError is a single entry in the response "errors" array.
type graphQLError struct {
	Message string `json:"message"`
}

// execute posts a GraphQL document and decodes the "data" object into out.
func (c *Client) execute(ctx context.Context, query string, vars map[string]any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if len(envelope.Errors) > 0 {
		msgs := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			msgs[i] = e.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Messages: msgs}
	}

	if len(envelope.Data) == 0 {
		return fmt.Errorf("%w: missing data object", ErrInvalidResponse)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

// attribute is a name/value pair as returned by DGIdb attribute fields.
type attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// groupAttributes collapses repeated attribute names into name -> values.
func groupAttributes(attrs []attribute) map[string][]string {
	grouped := make(map[string][]string, len(attrs))
	for _, attr := range attrs {
		grouped[attr.Name] = append(grouped[attr.Name], attr.Value)
	}
	return grouped
}
