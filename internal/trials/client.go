// Package trials provides a client for the ClinicalTrials.gov v2 API.
package trials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the ClinicalTrials.gov v2 studies endpoint.
	BaseURL = "https://clinicaltrials.gov/api/v2/studies"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 20 * time.Second

	// RateLimit keeps requests under the documented 50/min guidance.
	RateLimit = 50.0 / 60.0

	// DefaultPageSize is the studies page size requested per call.
	DefaultPageSize = 100

	// DefaultMaxPages caps pagination per search term.
	DefaultMaxPages = 5

	// pediatricAgeGroup is the standard age value marking pediatric trials.
	pediatricAgeGroup = "CHILD"
)

// Errors returned by the trials client.
var (
	// ErrNetworkError indicates a network connectivity issue.
	ErrNetworkError = errors.New("network error communicating with ClinicalTrials.gov")

	// ErrInvalidResponse indicates an unexpected API response.
	ErrInvalidResponse = errors.New("invalid response from ClinicalTrials.gov")
)

// APIError represents a non-2xx response from ClinicalTrials.gov.
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ClinicalTrials.gov API error (status %d)", e.StatusCode)
}

// Intervention is a study arm intervention.
type Intervention struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Study is a flattened clinical trial record.
type Study struct {
	SearchTerm    string         `json:"search_term"`
	TrialID       string         `json:"trial_id"`
	Brief         string         `json:"brief"`
	StudyType     string         `json:"study_type"`
	MinAge        string         `json:"min_age,omitempty"`
	MaxAge        string         `json:"max_age,omitempty"`
	AgeGroups     []string       `json:"age_groups"`
	Pediatric     bool           `json:"pediatric"`
	Conditions    []string       `json:"conditions"`
	Interventions []Intervention `json:"interventions"`
}

// Client is a rate-limited HTTP client for clinical trial lookups.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	pageSize   int
	maxPages   int
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

// WithPageSize sets the studies page size.
func WithPageSize(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithMaxPages caps how many pages are fetched per term.
func WithMaxPages(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.maxPages = n
		}
	}
}

// NewClient creates a new ClinicalTrials.gov client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
		pageSize:   DefaultPageSize,
		maxPages:   DefaultMaxPages,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// studyRaw is the wire shape of a v2 study record, limited to the modules
// the flattened Study needs.
type studyRaw struct {
	ProtocolSection struct {
		IdentificationModule struct {
			NCTID      string `json:"nctId"`
			BriefTitle string `json:"briefTitle"`
		} `json:"identificationModule"`
		DesignModule struct {
			StudyType string `json:"studyType"`
		} `json:"designModule"`
		EligibilityModule struct {
			MinimumAge string   `json:"minimumAge"`
			MaximumAge string   `json:"maximumAge"`
			StdAges    []string `json:"stdAges"`
		} `json:"eligibilityModule"`
		ConditionsModule struct {
			Conditions []string `json:"conditions"`
		} `json:"conditionsModule"`
		ArmsInterventionsModule struct {
			Interventions []Intervention `json:"interventions"`
		} `json:"armsInterventionsModule"`
	} `json:"protocolSection"`
}

// GetStudies fetches clinical trials whose interventions match drugs of
// interest, one flattened row per (term, study) pair.
func (c *Client) GetStudies(ctx context.Context, terms []string) ([]Study, error) {
	var rows []Study
	for _, term := range terms {
		studies, err := c.studiesForTerm(ctx, term)
		if err != nil {
			return nil, fmt.Errorf("fetching trials for %q: %w", term, err)
		}
		rows = append(rows, studies...)
	}
	if rows == nil {
		rows = []Study{}
	}
	return rows, nil
}

func (c *Client) studiesForTerm(ctx context.Context, term string) ([]Study, error) {
	var rows []Study
	pageToken := ""

	for page := 0; page < c.maxPages; page++ {
		raw, nextToken, err := c.fetchPage(ctx, term, pageToken)
		if err != nil {
			return nil, err
		}

		for _, study := range raw {
			rows = append(rows, flattenStudy(term, study))
		}

		if nextToken == "" {
			break
		}
		pageToken = nextToken
	}

	return rows, nil
}

func (c *Client) fetchPage(ctx context.Context, term, pageToken string) ([]studyRaw, string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, "", fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("query.intr", term)
	params.Set("pageSize", strconv.Itoa(c.pageSize))
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, "", &APIError{StatusCode: resp.StatusCode}
	}

	var payload struct {
		Studies       []studyRaw `json:"studies"`
		NextPageToken string     `json:"nextPageToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return payload.Studies, payload.NextPageToken, nil
}

func flattenStudy(term string, raw studyRaw) Study {
	protocol := raw.ProtocolSection
	ageGroups := protocol.EligibilityModule.StdAges

	pediatric := false
	for _, group := range ageGroups {
		if group == pediatricAgeGroup {
			pediatric = true
			break
		}
	}

	return Study{
		SearchTerm:    strings.ToUpper(term),
		TrialID:       protocol.IdentificationModule.NCTID,
		Brief:         protocol.IdentificationModule.BriefTitle,
		StudyType:     protocol.DesignModule.StudyType,
		MinAge:        protocol.EligibilityModule.MinimumAge,
		MaxAge:        protocol.EligibilityModule.MaximumAge,
		AgeGroups:     ageGroups,
		Pediatric:     pediatric,
		Conditions:    protocol.ConditionsModule.Conditions,
		Interventions: protocol.ArmsInterventionsModule.Interventions,
	}
}
