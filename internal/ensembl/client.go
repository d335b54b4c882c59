// Package ensembl provides a client for the Ensembl REST API overlap
// endpoint, used to map genomic coordinates to genes.
package ensembl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the Ensembl REST API base URL.
	BaseURL = "https://rest.ensembl.org"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// RateLimit is 15 requests per second per Ensembl REST guidance.
	RateLimit = 15.0
)

// Errors returned by the Ensembl client.
var (
	// ErrNetworkError indicates a network connectivity issue.
	ErrNetworkError = errors.New("network error communicating with Ensembl")

	// ErrInvalidResponse indicates an unexpected API response.
	ErrInvalidResponse = errors.New("invalid response from Ensembl")
)

// APIError represents a non-2xx response from Ensembl.
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Ensembl API error (status %d)", e.StatusCode)
}

// Gene is a gene feature overlapping a queried region.
type Gene struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	GeneID      string `json:"gene_id"`
}

// Client is a rate-limited HTTP client for Ensembl overlap lookups.
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

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a new Ensembl REST client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GenesAtPosition maps a chromosome/position pair to overlapping human
// genes. Features without an external name are skipped.
func (c *Client) GenesAtPosition(ctx context.Context, chromosome string, position int) ([]Gene, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	url := fmt.Sprintf("%s/overlap/region/human/%s:%d-%d?feature=gene", c.baseURL, chromosome, position, position)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode}
	}

	var features []struct {
		FeatureType  string `json:"feature_type"`
		ExternalName string `json:"external_name"`
		Description  string `json:"description"`
		GeneID       string `json:"gene_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&features); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	genes := make([]Gene, 0, len(features))
	for _, f := range features {
		if f.FeatureType != "gene" || f.ExternalName == "" {
			continue
		}
		genes = append(genes, Gene{
			Name:        f.ExternalName,
			Description: f.Description,
			GeneID:      f.GeneID,
		})
	}
	return genes, nil
}
