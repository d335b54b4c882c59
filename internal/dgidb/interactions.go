package dgidb

import "context"

// SearchMode selects whether interaction lookups are keyed by gene or drug
// names.
type SearchMode string

const (
	SearchGenes SearchMode = "genes"
	SearchDrugs SearchMode = "drugs"
)

// ParseSearchMode validates a user-supplied search mode string.
func ParseSearchMode(s string) (SearchMode, error) {
	switch SearchMode(s) {
	case SearchGenes:
		return SearchGenes, nil
	case SearchDrugs:
		return SearchDrugs, nil
	default:
		return "", ErrInvalidSearchMode
	}
}

// Interaction is a flattened drug-gene interaction row. GeneLongName is
// only populated for gene-mode searches; DGIdb does not return it on the
// drug side.
type Interaction struct {
	GeneName     string              `json:"gene_name"`
	GeneLongName string              `json:"gene_long_name,omitempty"`
	DrugName     string              `json:"drug_name"`
	DrugApproved bool                `json:"drug_approved"`
	Score        float64             `json:"interaction_score"`
	Attributes   map[string][]string `json:"interaction_attributes"`
	Sources      []string            `json:"interaction_sources"`
	PMIDs        []int               `json:"interaction_pmids"`
}

// InteractionFilters are optional filters for GetInteractions. Nil fields
// are omitted from the query variables.
type InteractionFilters struct {
	Immunotherapy   *bool
	AntiNeoplastic  *bool
	Source          *string
	PMID            *int
	InteractionType *string
	Approved        *bool
}

func (f InteractionFilters) vars(terms []string) map[string]any {
	vars := map[string]any{"names": terms}
	if f.Immunotherapy != nil {
		vars["immunotherapy"] = *f.Immunotherapy
	}
	if f.AntiNeoplastic != nil {
		vars["antiNeoplastic"] = *f.AntiNeoplastic
	}
	if f.Source != nil {
		vars["sourceDbName"] = *f.Source
	}
	if f.PMID != nil {
		vars["pmid"] = *f.PMID
	}
	if f.InteractionType != nil {
		vars["interactionType"] = *f.InteractionType
	}
	if f.Approved != nil {
		vars["approved"] = *f.Approved
	}
	return vars
}

// interactionRaw is the wire shape shared by both interaction queries.
type interactionRaw struct {
	Drug struct {
		Name     string `json:"name"`
		Approved bool   `json:"approved"`
	} `json:"drug"`
	Gene struct {
		Name string `json:"name"`
	} `json:"gene"`
	InteractionScore      float64     `json:"interactionScore"`
	InteractionAttributes []attribute `json:"interactionAttributes"`
	InteractionClaims     []struct {
		Source struct {
			SourceDbName string `json:"sourceDbName"`
		} `json:"source"`
		Publications []struct {
			PMID int `json:"pmid"`
		} `json:"publications"`
	} `json:"interactionClaims"`
}

// claimData collects claim sources and publication PMIDs.
func (i interactionRaw) claimData() ([]string, []int) {
	sources := make([]string, 0, len(i.InteractionClaims))
	pmids := make([]int, 0, len(i.InteractionClaims))
	for _, claim := range i.InteractionClaims {
		sources = append(sources, claim.Source.SourceDbName)
		for _, pub := range claim.Publications {
			pmids = append(pmids, pub.PMID)
		}
	}
	return sources, pmids
}

// GetInteractions performs an interaction lookup for drugs or genes of
// interest. One row is returned per (term, interaction) pair.
func (c *Client) GetInteractions(ctx context.Context, terms []string, mode SearchMode, filters InteractionFilters) ([]Interaction, error) {
	switch mode {
	case SearchGenes:
		return c.interactionsByGenes(ctx, terms, filters)
	case SearchDrugs:
		return c.interactionsByDrugs(ctx, terms, filters)
	default:
		return nil, ErrInvalidSearchMode
	}
}

func (c *Client) interactionsByGenes(ctx context.Context, terms []string, filters InteractionFilters) ([]Interaction, error) {
	var data struct {
		Genes struct {
			Nodes []struct {
				Name         string           `json:"name"`
				LongName     string           `json:"longName"`
				Interactions []interactionRaw `json:"interactions"`
			} `json:"nodes"`
		} `json:"genes"`
	}
	if err := c.execute(ctx, queryInteractionsByGenes, filters.vars(terms), &data); err != nil {
		return nil, err
	}

	rows := make([]Interaction, 0, len(data.Genes.Nodes))
	for _, node := range data.Genes.Nodes {
		for _, in := range node.Interactions {
			sources, pmids := in.claimData()
			rows = append(rows, Interaction{
				GeneName:     node.Name,
				GeneLongName: node.LongName,
				DrugName:     in.Drug.Name,
				DrugApproved: in.Drug.Approved,
				Score:        in.InteractionScore,
				Attributes:   groupAttributes(in.InteractionAttributes),
				Sources:      sources,
				PMIDs:        pmids,
			})
		}
	}
	return rows, nil
}

func (c *Client) interactionsByDrugs(ctx context.Context, terms []string, filters InteractionFilters) ([]Interaction, error) {
	var data struct {
		Drugs struct {
			Nodes []struct {
				Name         string           `json:"name"`
				Approved     bool             `json:"approved"`
				Interactions []interactionRaw `json:"interactions"`
			} `json:"nodes"`
		} `json:"drugs"`
	}
	if err := c.execute(ctx, queryInteractionsByDrugs, filters.vars(terms), &data); err != nil {
		return nil, err
	}

	rows := make([]Interaction, 0, len(data.Drugs.Nodes))
	for _, node := range data.Drugs.Nodes {
		for _, in := range node.Interactions {
			sources, pmids := in.claimData()
			rows = append(rows, Interaction{
				GeneName:     in.Gene.Name,
				DrugName:     node.Name,
				DrugApproved: node.Approved,
				Score:        in.InteractionScore,
				Attributes:   groupAttributes(in.InteractionAttributes),
				Sources:      sources,
				PMIDs:        pmids,
			})
		}
	}
	return rows, nil
}
