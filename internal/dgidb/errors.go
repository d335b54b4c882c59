package dgidb

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors returned by the DGIdb client.
var (
	// ErrInvalidSearchMode indicates an unsupported interaction search mode.
	ErrInvalidSearchMode = errors.New(`search mode must be "genes" or "drugs"`)

	// ErrNetworkError indicates a network connectivity issue.
	ErrNetworkError = errors.New("network error communicating with DGIdb")

	// ErrInvalidResponse indicates an unexpected API response.
	ErrInvalidResponse = errors.New("invalid response from DGIdb")

	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("DGIdb rate limit exceeded")
)

// APIError represents an error reported by the DGIdb GraphQL API, either as
// a non-2xx HTTP status or as entries in the response "errors" array.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("DGIdb API error (status %d): %s", e.StatusCode, strings.Join(e.Messages, "; "))
	}
	return fmt.Sprintf("DGIdb API error (status %d)", e.StatusCode)
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}
