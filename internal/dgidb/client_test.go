package dgidb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient points a client at a test server with rate limiting
// effectively disabled.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(WithBaseURL(srv.URL), WithRateLimit(1000))
}

func TestExecuteSendsGraphQLRequest(t *testing.T) {
	var gotBody graphQLRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %s, want application/json", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		w.Write([]byte(`{"data": {"genes": {"nodes": []}}}`))
	})

	if _, err := client.GetGenes(context.Background(), []string{"BRAF"}); err != nil {
		t.Fatalf("GetGenes() error = %v", err)
	}

	if gotBody.Query != queryGenes {
		t.Errorf("query document mismatch")
	}
	names, ok := gotBody.Variables["names"].([]interface{})
	if !ok || len(names) != 1 || names[0] != "BRAF" {
		t.Errorf("variables = %v, want names [BRAF]", gotBody.Variables)
	}
}

func TestExecuteGraphQLErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors": [{"message": "Field 'bogus' doesn't exist"}]}`))
	})

	_, err := client.GetGenes(context.Background(), []string{"BRAF"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if len(apiErr.Messages) != 1 || apiErr.Messages[0] != "Field 'bogus' doesn't exist" {
		t.Errorf("messages = %v", apiErr.Messages)
	}
}

func TestExecuteHTTPErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		check      func(error) bool
	}{
		{"rate limited", http.StatusTooManyRequests, IsRateLimited},
		{"server error", http.StatusInternalServerError, func(err error) bool {
			var apiErr *APIError
			return errors.As(err, &apiErr) && apiErr.StatusCode == 500
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			})
			_, err := client.GetGenes(context.Background(), []string{"BRAF"})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.check(err) {
				t.Errorf("error = %v failed check", err)
			}
		})
	}
}

func TestExecuteInvalidResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not JSON", `<html>oops</html>`},
		{"missing data", `{}`},
		{"wrong data shape", `{"data": {"genes": "nope"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			_, err := client.GetGenes(context.Background(), []string{"BRAF"})
			if !errors.Is(err, ErrInvalidResponse) {
				t.Errorf("error = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestGroupAttributes(t *testing.T) {
	attrs := []attribute{
		{Name: "Drug Class", Value: "kinase inhibitor"},
		{Name: "Drug Class", Value: "antineoplastic"},
		{Name: "Year of Approval", Value: "2001"},
	}

	grouped := groupAttributes(attrs)
	if len(grouped) != 2 {
		t.Fatalf("got %d attribute names, want 2", len(grouped))
	}
	if got := grouped["Drug Class"]; len(got) != 2 || got[0] != "kinase inhibitor" {
		t.Errorf(`grouped["Drug Class"] = %v`, got)
	}
	if got := grouped["Year of Approval"]; len(got) != 1 || got[0] != "2001" {
		t.Errorf(`grouped["Year of Approval"] = %v`, got)
	}
}
