package trials

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const studyPage = `{
  "studies": [
    {
      "protocolSection": {
        "identificationModule": {"nctId": "NCT00031265", "briefTitle": "Imatinib in Treating Patients"},
        "designModule": {"studyType": "INTERVENTIONAL"},
        "eligibilityModule": {"minimumAge": "2 Years", "maximumAge": "18 Years", "stdAges": ["CHILD", "ADULT"]},
        "conditionsModule": {"conditions": ["Leukemia"]},
        "armsInterventionsModule": {
          "interventions": [{"type": "DRUG", "name": "imatinib mesylate"}]
        }
      }
    }
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...ClientOption) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(append([]ClientOption{WithBaseURL(srv.URL)}, opts...)...)
	c.limiter.SetLimit(1000)
	return c
}

func TestGetStudies(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query.intr")
		w.Write([]byte(studyPage))
	})

	rows, err := client.GetStudies(context.Background(), []string{"imatinib"})
	if err != nil {
		t.Fatalf("GetStudies() error = %v", err)
	}

	if gotQuery != "imatinib" {
		t.Errorf("query.intr = %q, want imatinib", gotQuery)
	}

	want := []Study{
		{
			SearchTerm: "IMATINIB",
			TrialID:    "NCT00031265",
			Brief:      "Imatinib in Treating Patients",
			StudyType:  "INTERVENTIONAL",
			MinAge:     "2 Years",
			MaxAge:     "18 Years",
			AgeGroups:  []string{"CHILD", "ADULT"},
			Pediatric:  true,
			Conditions: []string{"Leukemia"},
			Interventions: []Intervention{
				{Type: "DRUG", Name: "imatinib mesylate"},
			},
		},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("studies mismatch (-want +got):\n%s", diff)
	}
}

func TestGetStudiesPagination(t *testing.T) {
	var tokens []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("pageToken")
		tokens = append(tokens, token)
		switch token {
		case "":
			fmt.Fprint(w, `{"studies": [{"protocolSection": {"identificationModule": {"nctId": "NCT1"}}}], "nextPageToken": "page2"}`)
		case "page2":
			fmt.Fprint(w, `{"studies": [{"protocolSection": {"identificationModule": {"nctId": "NCT2"}}}]}`)
		default:
			t.Errorf("unexpected page token %q", token)
		}
	})

	rows, err := client.GetStudies(context.Background(), []string{"imatinib"})
	if err != nil {
		t.Fatalf("GetStudies() error = %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].TrialID != "NCT1" || rows[1].TrialID != "NCT2" {
		t.Errorf("trial IDs = %s, %s", rows[0].TrialID, rows[1].TrialID)
	}
	if len(tokens) != 2 {
		t.Errorf("made %d requests, want 2", len(tokens))
	}
}

func TestGetStudiesMaxPagesCap(t *testing.T) {
	requests := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprintf(w, `{"studies": [], "nextPageToken": "page%d"}`, requests)
	}, WithMaxPages(3))

	if _, err := client.GetStudies(context.Background(), []string{"imatinib"}); err != nil {
		t.Fatalf("GetStudies() error = %v", err)
	}
	if requests != 3 {
		t.Errorf("made %d requests, want 3", requests)
	}
}

func TestGetStudiesMissingModules(t *testing.T) {
	// Studies missing eligibility or arms modules flatten to zero values
	// rather than failing.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"studies": [
			{"protocolSection": {"identificationModule": {"nctId": "NCT3", "briefTitle": "Sparse"}}}
		]}`))
	})

	rows, err := client.GetStudies(context.Background(), []string{"imatinib"})
	if err != nil {
		t.Fatalf("GetStudies() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	row := rows[0]
	if row.MinAge != "" || row.MaxAge != "" || row.Pediatric {
		t.Errorf("eligibility fields not zero: %+v", row)
	}
	if len(row.AgeGroups) != 0 || len(row.Interventions) != 0 {
		t.Errorf("slice fields not empty: %+v", row)
	}
}

func TestGetStudiesHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetStudies(context.Background(), []string{"imatinib"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 500 {
		t.Errorf("error = %v, want *APIError with status 500", err)
	}
}

func TestGetStudiesNoTerms(t *testing.T) {
	client := NewClient()
	rows, err := client.GetStudies(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetStudies() error = %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Errorf("rows = %v, want empty slice", rows)
	}
}
