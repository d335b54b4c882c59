package export

import (
	"testing"

	"github.com/genomicmedlab/dgigo/internal/dgidb"
	"github.com/genomicmedlab/dgigo/internal/trials"
)

func TestInteractionsTable(t *testing.T) {
	rows := []dgidb.Interaction{
		{
			GeneName:     "BRAF",
			GeneLongName: "B-Raf proto-oncogene",
			DrugName:     "VEMURAFENIB",
			DrugApproved: true,
			Score:        12.92,
			Attributes:   map[string][]string{"Interaction Type": {"inhibitor"}},
			Sources:      []string{"MyCancerGenome", "CIViC"},
			PMIDs:        []int{21639808, 22608338},
		},
	}

	table := InteractionsTable(rows)
	if len(table.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(table.Rows))
	}
	if len(table.Rows[0]) != len(table.Header) {
		t.Fatalf("row width %d != header width %d", len(table.Rows[0]), len(table.Header))
	}

	row := table.Rows[0]
	if row[0] != "BRAF" || row[2] != "VEMURAFENIB" {
		t.Errorf("name cells = %q, %q", row[0], row[2])
	}
	if row[3] != "true" {
		t.Errorf("approved cell = %q, want true", row[3])
	}
	if row[4] != "12.92" {
		t.Errorf("score cell = %q, want 12.92", row[4])
	}
	if row[6] != "MyCancerGenome;CIViC" {
		t.Errorf("sources cell = %q", row[6])
	}
	if row[7] != "21639808;22608338" {
		t.Errorf("pmids cell = %q", row[7])
	}
}

func TestDrugsTableWidths(t *testing.T) {
	table := DrugsTable([]dgidb.DrugRecord{
		{Name: "IMATINIB", ConceptID: "rxcui:282388", Approved: true},
	})
	if len(table.Rows) != 1 || len(table.Rows[0]) != len(table.Header) {
		t.Fatalf("table shape mismatch: %d rows, header %d", len(table.Rows), len(table.Header))
	}
}

func TestTrialsTable(t *testing.T) {
	table := TrialsTable([]trials.Study{
		{
			SearchTerm: "IMATINIB",
			TrialID:    "NCT00031265",
			AgeGroups:  []string{"CHILD", "ADULT"},
			Pediatric:  true,
			Conditions: []string{"Leukemia"},
		},
	})
	if len(table.Rows) != 1 || len(table.Rows[0]) != len(table.Header) {
		t.Fatalf("table shape mismatch")
	}

	row := table.Rows[0]
	if row[6] != "CHILD;ADULT" {
		t.Errorf("age groups cell = %q", row[6])
	}
	if row[7] != "true" {
		t.Errorf("pediatric cell = %q, want true", row[7])
	}
}

func TestApplicationsTable(t *testing.T) {
	table := ApplicationsTable([]ApplicationProduct{
		{
			DrugName:        "IMATINIB",
			ApplicationNo:   "NDA021588",
			BrandName:       "GLEEVEC",
			MarketingStatus: "Prescription",
			DosageForm:      "TABLET",
			DosageStrength:  "100MG",
		},
	})
	if len(table.Rows) != 1 || len(table.Rows[0]) != len(table.Header) {
		t.Fatalf("table shape mismatch")
	}
	if table.Rows[0][2] != "GLEEVEC" {
		t.Errorf("brand cell = %q", table.Rows[0][2])
	}
}
