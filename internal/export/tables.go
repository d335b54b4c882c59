package export

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/genomicmedlab/dgigo/internal/dgidb"
	"github.com/genomicmedlab/dgigo/internal/trials"
)

// InteractionsTable converts interaction rows to tabular form.
func InteractionsTable(rows []dgidb.Interaction) Table {
	t := Table{Header: []string{
		"gene_name", "gene_long_name", "drug_name", "drug_approved",
		"interaction_score", "interaction_attributes", "interaction_sources", "interaction_pmids",
	}}
	for _, row := range rows {
		t.Rows = append(t.Rows, []string{
			row.GeneName,
			row.GeneLongName,
			row.DrugName,
			strconv.FormatBool(row.DrugApproved),
			formatScore(row.Score),
			jsonCell(row.Attributes),
			strings.Join(row.Sources, ";"),
			joinInts(row.PMIDs),
		})
	}
	return t
}

// DrugsTable converts drug records to tabular form.
func DrugsTable(rows []dgidb.DrugRecord) Table {
	t := Table{Header: []string{
		"name", "concept_id", "aliases", "attributes",
		"antineoplastic", "immunotherapy", "approved", "approval_ratings", "fda_applications",
	}}
	for _, row := range rows {
		t.Rows = append(t.Rows, []string{
			row.Name,
			row.ConceptID,
			strings.Join(row.Aliases, ";"),
			jsonCell(row.Attributes),
			strconv.FormatBool(row.AntiNeoplastic),
			strconv.FormatBool(row.Immunotherapy),
			strconv.FormatBool(row.Approved),
			jsonCell(row.ApprovalRatings),
			strings.Join(row.FDAApplications, ";"),
		})
	}
	return t
}

// GenesTable converts gene records to tabular form.
func GenesTable(rows []dgidb.GeneRecord) Table {
	t := Table{Header: []string{"name", "concept_id", "aliases", "attributes"}}
	for _, row := range rows {
		t.Rows = append(t.Rows, []string{
			row.Name,
			row.ConceptID,
			strings.Join(row.Aliases, ";"),
			jsonCell(row.Attributes),
		})
	}
	return t
}

// CategoriesTable converts category annotations to tabular form.
func CategoriesTable(rows []dgidb.CategoryAnnotation) Table {
	t := Table{Header: []string{"gene", "full_name", "category", "sources"}}
	for _, row := range rows {
		t.Rows = append(t.Rows, []string{
			row.Gene,
			row.FullName,
			row.Category,
			strings.Join(row.Sources, ";"),
		})
	}
	return t
}

// SourcesTable converts source records to tabular form.
func SourcesTable(rows []dgidb.Source) Table {
	t := Table{Header: []string{
		"name", "short_name", "version", "drug_claims", "gene_claims", "interaction_claims",
	}}
	for _, row := range rows {
		t.Rows = append(t.Rows, []string{
			row.Name,
			row.ShortName,
			row.Version,
			strconv.Itoa(row.DrugClaims),
			strconv.Itoa(row.GeneClaims),
			strconv.Itoa(row.InteractionClaims),
		})
	}
	return t
}

// ConceptsTable converts name/concept-id pairs to tabular form.
func ConceptsTable(rows []dgidb.ConceptRecord) Table {
	t := Table{Header: []string{"name", "concept_id"}}
	for _, row := range rows {
		t.Rows = append(t.Rows, []string{row.Name, row.ConceptID})
	}
	return t
}

// ApplicationProduct is a drug application joined with one Drugs@FDA
// product record.
type ApplicationProduct struct {
	DrugName        string `json:"name"`
	ApplicationNo   string `json:"application"`
	BrandName       string `json:"brand_name"`
	MarketingStatus string `json:"marketing_status"`
	DosageForm      string `json:"dosage_form"`
	DosageStrength  string `json:"dosage_strength"`
}

// ApplicationsTable converts application/product rows to tabular form.
func ApplicationsTable(rows []ApplicationProduct) Table {
	t := Table{Header: []string{
		"name", "application", "brand_name", "marketing_status", "dosage_form", "dosage_strength",
	}}
	for _, row := range rows {
		t.Rows = append(t.Rows, []string{
			row.DrugName,
			row.ApplicationNo,
			row.BrandName,
			row.MarketingStatus,
			row.DosageForm,
			row.DosageStrength,
		})
	}
	return t
}

// TrialsTable converts clinical trial records to tabular form.
func TrialsTable(rows []trials.Study) Table {
	t := Table{Header: []string{
		"search_term", "trial_id", "brief", "study_type",
		"min_age", "max_age", "age_groups", "pediatric", "conditions", "interventions",
	}}
	for _, row := range rows {
		t.Rows = append(t.Rows, []string{
			row.SearchTerm,
			row.TrialID,
			row.Brief,
			row.StudyType,
			row.MinAge,
			row.MaxAge,
			strings.Join(row.AgeGroups, ";"),
			strconv.FormatBool(row.Pediatric),
			strings.Join(row.Conditions, ";"),
			jsonCell(row.Interventions),
		})
	}
	return t
}

// jsonCell renders structured values as compact JSON inside a cell.
func jsonCell(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func formatScore(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func joinInts(ints []int) string {
	parts := make([]string, len(ints))
	for i, n := range ints {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ";")
}
