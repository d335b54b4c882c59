package dgidb

import "context"

// CategoryAnnotation is a druggable-category annotation for a gene.
type CategoryAnnotation struct {
	Gene     string   `json:"gene"`
	FullName string   `json:"full_name"`
	Category string   `json:"category"`
	Sources  []string `json:"sources"`
}

// GetCategories performs a category annotation lookup for genes of
// interest. One row is returned per (gene, category) pair.
func (c *Client) GetCategories(ctx context.Context, terms []string) ([]CategoryAnnotation, error) {
	var data struct {
		Genes struct {
			Nodes []struct {
				Name       string `json:"name"`
				LongName   string `json:"longName"`
				Categories []struct {
					Name        string   `json:"name"`
					SourceNames []string `json:"sourceNames"`
				} `json:"geneCategoriesWithSources"`
			} `json:"nodes"`
		} `json:"genes"`
	}
	if err := c.execute(ctx, queryGeneCategories, map[string]any{"names": terms}, &data); err != nil {
		return nil, err
	}

	rows := make([]CategoryAnnotation, 0, len(data.Genes.Nodes))
	for _, node := range data.Genes.Nodes {
		for _, cat := range node.Categories {
			rows = append(rows, CategoryAnnotation{
				Gene:     node.Name,
				FullName: node.LongName,
				Category: cat.Name,
				Sources:  cat.SourceNames,
			})
		}
	}
	return rows, nil
}
