package dgidb

import (
	"context"
	"strings"
)

// DrugApplication pairs a drug name with a normalized ANDA/NDA application
// number.
type DrugApplication struct {
	DrugName      string `json:"drug_name"`
	ApplicationNo string `json:"application"`
}

// GetDrugApplications looks up ANDA/NDA application numbers for drugs of
// interest. One row is returned per (drug, application) pair.
func (c *Client) GetDrugApplications(ctx context.Context, terms []string) ([]DrugApplication, error) {
	var data struct {
		Drugs struct {
			Nodes []struct {
				Name             string `json:"name"`
				DrugApplications []struct {
					AppNo string `json:"appNo"`
				} `json:"drugApplications"`
			} `json:"nodes"`
		} `json:"drugs"`
	}
	if err := c.execute(ctx, queryDrugApplications, map[string]any{"names": terms}, &data); err != nil {
		return nil, err
	}

	rows := make([]DrugApplication, 0, len(data.Drugs.Nodes))
	for _, node := range data.Drugs.Nodes {
		for _, app := range node.DrugApplications {
			rows = append(rows, DrugApplication{
				DrugName:      node.Name,
				ApplicationNo: NormalizeAppNo(app.AppNo),
			})
		}
	}
	return rows, nil
}

// NormalizeAppNo converts a DGIdb application CURIE like "fda.nda:212099"
// to the "NDA212099" form used by the Drugs@FDA API. Inputs without the
// CURIE prefix are uppercased with separators removed.
func NormalizeAppNo(appNo string) string {
	if _, after, found := strings.Cut(appNo, "."); found {
		appNo = after
	}
	return strings.ToUpper(strings.ReplaceAll(appNo, ":", ""))
}
