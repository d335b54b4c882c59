package dgidb

import (
	"context"
	"fmt"
	"strings"
)

// SourceType constrains the source categories accepted by GetSources.
type SourceType string

const (
	SourceTypeDrug                 SourceType = "drug"
	SourceTypeGene                 SourceType = "gene"
	SourceTypeInteraction          SourceType = "interaction"
	SourceTypePotentiallyDruggable SourceType = "potentially_druggable"
)

// ParseSourceType validates a user-supplied source type string.
func ParseSourceType(s string) (SourceType, error) {
	switch t := SourceType(strings.ToLower(s)); t {
	case SourceTypeDrug, SourceTypeGene, SourceTypeInteraction, SourceTypePotentiallyDruggable:
		return t, nil
	default:
		return "", fmt.Errorf("invalid source type %q: must be drug, gene, interaction, or potentially_druggable", s)
	}
}

// Source is a flattened DGIdb aggregate source record.
type Source struct {
	Name              string `json:"name"`
	ShortName         string `json:"short_name"`
	Version           string `json:"version"`
	DrugClaims        int    `json:"drug_claims"`
	GeneClaims        int    `json:"gene_claims"`
	InteractionClaims int    `json:"interaction_claims"`
}

// GetSources looks up aggregate sources, optionally constrained to one
// source type. An empty sourceType fetches all sources.
func (c *Client) GetSources(ctx context.Context, sourceType SourceType) ([]Source, error) {
	var vars map[string]any
	if sourceType != "" {
		vars = map[string]any{"sourceType": strings.ToUpper(string(sourceType))}
	}

	var data struct {
		Sources struct {
			Nodes []struct {
				FullName               string `json:"fullName"`
				SourceDbName           string `json:"sourceDbName"`
				SourceDbVersion        string `json:"sourceDbVersion"`
				DrugClaimsCount        int    `json:"drugClaimsCount"`
				GeneClaimsCount        int    `json:"geneClaimsCount"`
				InteractionClaimsCount int    `json:"interactionClaimsCount"`
			} `json:"nodes"`
		} `json:"sources"`
	}
	if err := c.execute(ctx, querySources, vars, &data); err != nil {
		return nil, err
	}

	rows := make([]Source, 0, len(data.Sources.Nodes))
	for _, node := range data.Sources.Nodes {
		rows = append(rows, Source{
			Name:              node.FullName,
			ShortName:         node.SourceDbName,
			Version:           node.SourceDbVersion,
			DrugClaims:        node.DrugClaimsCount,
			GeneClaims:        node.GeneClaimsCount,
			InteractionClaims: node.InteractionClaimsCount,
		})
	}
	return rows, nil
}
