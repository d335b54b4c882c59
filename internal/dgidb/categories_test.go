package dgidb

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetCategories(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"genes": {"nodes": [
			{
				"name": "BRAF",
				"longName": "B-Raf proto-oncogene, serine/threonine kinase",
				"geneCategoriesWithSources": [
					{"name": "KINASE", "sourceNames": ["dGene", "HopkinsGroom"]},
					{"name": "DRUGGABLE GENOME", "sourceNames": ["dGene"]}
				]
			}
		]}}}`))
	})

	rows, err := client.GetCategories(context.Background(), []string{"BRAF"})
	if err != nil {
		t.Fatalf("GetCategories() error = %v", err)
	}

	want := []CategoryAnnotation{
		{
			Gene:     "BRAF",
			FullName: "B-Raf proto-oncogene, serine/threonine kinase",
			Category: "KINASE",
			Sources:  []string{"dGene", "HopkinsGroom"},
		},
		{
			Gene:     "BRAF",
			FullName: "B-Raf proto-oncogene, serine/threonine kinase",
			Category: "DRUGGABLE GENOME",
			Sources:  []string{"dGene"},
		},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestGetSources(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"sources": {"nodes": [
			{
				"fullName": "Drug Target Commons",
				"sourceDbName": "DTC",
				"sourceDbVersion": "9/2/20",
				"drugClaimsCount": 7830,
				"geneClaimsCount": 1307,
				"interactionClaimsCount": 19154
			}
		]}}}`))
	})

	rows, err := client.GetSources(context.Background(), SourceTypeInteraction)
	if err != nil {
		t.Fatalf("GetSources() error = %v", err)
	}

	want := []Source{
		{
			Name:              "Drug Target Commons",
			ShortName:         "DTC",
			Version:           "9/2/20",
			DrugClaims:        7830,
			GeneClaims:        1307,
			InteractionClaims: 19154,
		},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("sources mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSourceType(t *testing.T) {
	tests := []struct {
		input   string
		want    SourceType
		wantErr bool
	}{
		{"drug", SourceTypeDrug, false},
		{"GENE", SourceTypeGene, false},
		{"interaction", SourceTypeInteraction, false},
		{"potentially_druggable", SourceTypePotentiallyDruggable, false},
		{"bogus", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSourceType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSourceType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSourceType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
