// Package openfda provides a client for the Drugs@FDA endpoint of the
// openFDA API.
package openfda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the Drugs@FDA endpoint.
	BaseURL = "https://api.fda.gov/drug/drugsfda.json"

	// EnvAPIKey names the environment variable holding an openFDA API key.
	EnvAPIKey = "OPENFDA_API_KEY"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 20 * time.Second

	// RateLimit is 240 requests per minute per openFDA documentation for
	// keyless clients.
	RateLimit = 240.0 / 60.0

	// userAgent identifies the client; openFDA rejects empty agents.
	userAgent = "dgigo"
)

// Errors returned by the openFDA client.
var (
	// ErrNotFound indicates no products exist for the application number.
	ErrNotFound = errors.New("application not found in Drugs@FDA")

	// ErrNetworkError indicates a network connectivity issue.
	ErrNetworkError = errors.New("network error communicating with openFDA")

	// ErrInvalidResponse indicates an unexpected API response.
	ErrInvalidResponse = errors.New("invalid response from openFDA")

	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("openFDA rate limit exceeded")
)

// APIError represents a non-2xx response from openFDA.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("openFDA API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("openFDA API error (status %d)", e.StatusCode)
}

// IsNotFound returns true if the error indicates a missing application.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Product is a marketed drug product attached to an ANDA/NDA application.
type Product struct {
	ApplicationNo   string `json:"application"`
	BrandName       string `json:"brand_name"`
	MarketingStatus string `json:"marketing_status"`
	DosageForm      string `json:"dosage_form"`
	DosageStrength  string `json:"dosage_strength"`
}

// Client is a rate-limited HTTP client for Drugs@FDA lookups.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	apiKey     string
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAPIKey sets the openFDA API key.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

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

// NewClient creates a new openFDA client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	if key := os.Getenv(EnvAPIKey); key != "" {
		c.apiKey = key
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetProducts fetches the marketed products registered under an ANDA/NDA
// application number (e.g. "NDA212099").
func (c *Client) GetProducts(ctx context.Context, appNo string) ([]Product, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("search", fmt.Sprintf("openfda.application_number:%q", appNo))
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// openFDA reports empty result sets as 404s.
		return nil, fmt.Errorf("%w: %s", ErrNotFound, appNo)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	case resp.StatusCode >= 400:
		return nil, &APIError{StatusCode: resp.StatusCode}
	}

	var payload struct {
		Results []struct {
			Products []struct {
				BrandName         string `json:"brand_name"`
				MarketingStatus   string `json:"marketing_status"`
				DosageForm        string `json:"dosage_form"`
				ActiveIngredients []struct {
					Strength string `json:"strength"`
				} `json:"active_ingredients"`
			} `json:"products"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if len(payload.Results) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, appNo)
	}

	products := make([]Product, 0, len(payload.Results[0].Products))
	for _, p := range payload.Results[0].Products {
		strength := ""
		if len(p.ActiveIngredients) > 0 {
			strength = p.ActiveIngredients[0].Strength
		}
		products = append(products, Product{
			ApplicationNo:   appNo,
			BrandName:       p.BrandName,
			MarketingStatus: p.MarketingStatus,
			DosageForm:      p.DosageForm,
			DosageStrength:  strength,
		})
	}
	return products, nil
}
