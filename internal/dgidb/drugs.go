package dgidb

import "context"

// ApprovalRating is a regulatory approval rating attributed to a source.
type ApprovalRating struct {
	Rating string `json:"rating"`
	Source string `json:"source"`
}

// DrugRecord is a flattened DGIdb drug record.
type DrugRecord struct {
	Name            string              `json:"drug_name"`
	ConceptID       string              `json:"drug_concept_id"`
	Aliases         []string            `json:"drug_aliases"`
	Attributes      map[string][]string `json:"drug_attributes"`
	AntiNeoplastic  bool                `json:"drug_is_antineoplastic"`
	Immunotherapy   bool                `json:"drug_is_immunotherapy"`
	Approved        bool                `json:"drug_is_approved"`
	ApprovalRatings []ApprovalRating    `json:"drug_approval_ratings"`
	FDAApplications []string            `json:"drug_applications"`
}

// DrugFilters are optional filters for GetDrugs. Nil fields are omitted
// from the query variables.
type DrugFilters struct {
	Immunotherapy  *bool
	AntiNeoplastic *bool
}

// GetDrugs performs a record lookup for drugs of interest. Unknown terms
// are absent from results; the returned slice is empty (never nil) when
// nothing matches.
func (c *Client) GetDrugs(ctx context.Context, terms []string, filters DrugFilters) ([]DrugRecord, error) {
	vars := map[string]any{"names": terms}
	if filters.Immunotherapy != nil {
		vars["immunotherapy"] = *filters.Immunotherapy
	}
	if filters.AntiNeoplastic != nil {
		vars["antiNeoplastic"] = *filters.AntiNeoplastic
	}

	var data struct {
		Drugs struct {
			Nodes []struct {
				Name        string `json:"name"`
				ConceptID   string `json:"conceptId"`
				DrugAliases []struct {
					Alias string `json:"alias"`
				} `json:"drugAliases"`
				DrugAttributes []attribute `json:"drugAttributes"`
				AntiNeoplastic bool        `json:"antiNeoplastic"`
				Immunotherapy  bool        `json:"immunotherapy"`
				Approved       bool        `json:"approved"`
				ApprovalRating []struct {
					Rating string `json:"rating"`
					Source struct {
						SourceDbName string `json:"sourceDbName"`
					} `json:"source"`
				} `json:"drugApprovalRatings"`
				DrugApplications []struct {
					AppNo string `json:"appNo"`
				} `json:"drugApplications"`
			} `json:"nodes"`
		} `json:"drugs"`
	}
	if err := c.execute(ctx, queryDrugs, vars, &data); err != nil {
		return nil, err
	}

	records := make([]DrugRecord, 0, len(data.Drugs.Nodes))
	for _, node := range data.Drugs.Nodes {
		aliases := make([]string, 0, len(node.DrugAliases))
		for _, a := range node.DrugAliases {
			aliases = append(aliases, a.Alias)
		}

		ratings := make([]ApprovalRating, 0, len(node.ApprovalRating))
		for _, r := range node.ApprovalRating {
			ratings = append(ratings, ApprovalRating{Rating: r.Rating, Source: r.Source.SourceDbName})
		}

		apps := make([]string, 0, len(node.DrugApplications))
		for _, app := range node.DrugApplications {
			apps = append(apps, app.AppNo)
		}

		records = append(records, DrugRecord{
			Name:            node.Name,
			ConceptID:       node.ConceptID,
			Aliases:         aliases,
			Attributes:      groupAttributes(node.DrugAttributes),
			AntiNeoplastic:  node.AntiNeoplastic,
			Immunotherapy:   node.Immunotherapy,
			Approved:        node.Approved,
			ApprovalRatings: ratings,
			FDAApplications: apps,
		})
	}
	return records, nil
}

// ConceptRecord is a bare name/concept-id pair, as returned by the gene and
// drug list queries used to populate dashboard dropdowns.
type ConceptRecord struct {
	Name      string `json:"name"`
	ConceptID string `json:"concept_id"`
}

// GetDrugList returns the names and concept IDs of all drugs in DGIdb.
func (c *Client) GetDrugList(ctx context.Context) ([]ConceptRecord, error) {
	var data struct {
		Drugs struct {
			Nodes []ConceptRecordRaw `json:"nodes"`
		} `json:"drugs"`
	}
	if err := c.execute(ctx, queryDrugList, nil, &data); err != nil {
		return nil, err
	}
	return conceptRecords(data.Drugs.Nodes), nil
}

// ConceptRecordRaw is the wire shape of a name/concept-id node.
type ConceptRecordRaw struct {
	Name      string `json:"name"`
	ConceptID string `json:"conceptId"`
}

func conceptRecords(nodes []ConceptRecordRaw) []ConceptRecord {
	records := make([]ConceptRecord, 0, len(nodes))
	for _, n := range nodes {
		records = append(records, ConceptRecord{Name: n.Name, ConceptID: n.ConceptID})
	}
	return records
}
