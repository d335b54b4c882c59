package dgidb

import "context"

// GeneRecord is a flattened DGIdb gene record.
type GeneRecord struct {
	Name       string              `json:"gene_name"`
	ConceptID  string              `json:"gene_concept_id"`
	Aliases    []string            `json:"gene_aliases"`
	Attributes map[string][]string `json:"gene_attributes"`
}

// GetGenes performs a record lookup for genes of interest.
func (c *Client) GetGenes(ctx context.Context, terms []string) ([]GeneRecord, error) {
	var data struct {
		Genes struct {
			Nodes []struct {
				Name        string `json:"name"`
				ConceptID   string `json:"conceptId"`
				GeneAliases []struct {
					Alias string `json:"alias"`
				} `json:"geneAliases"`
				GeneAttributes []attribute `json:"geneAttributes"`
			} `json:"nodes"`
		} `json:"genes"`
	}
	if err := c.execute(ctx, queryGenes, map[string]any{"names": terms}, &data); err != nil {
		return nil, err
	}

	records := make([]GeneRecord, 0, len(data.Genes.Nodes))
	for _, node := range data.Genes.Nodes {
		aliases := make([]string, 0, len(node.GeneAliases))
		for _, a := range node.GeneAliases {
			aliases = append(aliases, a.Alias)
		}
		records = append(records, GeneRecord{
			Name:       node.Name,
			ConceptID:  node.ConceptID,
			Aliases:    aliases,
			Attributes: groupAttributes(node.GeneAttributes),
		})
	}
	return records, nil
}

// GetGeneList returns the names and concept IDs of all genes in DGIdb.
func (c *Client) GetGeneList(ctx context.Context) ([]ConceptRecord, error) {
	var data struct {
		Genes struct {
			Nodes []ConceptRecordRaw `json:"nodes"`
		} `json:"genes"`
	}
	if err := c.execute(ctx, queryGeneList, nil, &data); err != nil {
		return nil, err
	}
	return conceptRecords(data.Genes.Nodes), nil
}
