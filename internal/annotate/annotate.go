// Package annotate maps VCF variant records to genes via Ensembl and
// looks up drug-gene interactions for the mapped genes.
package annotate

import (
	"context"
	"fmt"
	"sort"

	"github.com/genomicmedlab/dgigo/internal/dgidb"
	"github.com/genomicmedlab/dgigo/internal/ensembl"
	"github.com/genomicmedlab/dgigo/internal/vcf"
)

// Result is the output of an annotation run.
type Result struct {
	Records      int                 `json:"records"`
	Genes        []ensembl.Gene      `json:"genes"`
	Interactions []dgidb.Interaction `json:"interactions"`
}

// Annotator wires the Ensembl mapper to the DGIdb interaction lookup.
type Annotator struct {
	dgidb   *dgidb.Client
	ensembl *ensembl.Client
}

// New creates an Annotator from the two clients it depends on.
func New(dgidbClient *dgidb.Client, ensemblClient *ensembl.Client) *Annotator {
	return &Annotator{dgidb: dgidbClient, ensembl: ensemblClient}
}

// Annotate maps each variant position to genes and queries DGIdb for
// interactions across the deduplicated gene set.
func (a *Annotator) Annotate(ctx context.Context, records []vcf.Record) (*Result, error) {
	seen := make(map[string]ensembl.Gene)
	for _, rec := range records {
		genes, err := a.ensembl.GenesAtPosition(ctx, rec.Chromosome, rec.Position)
		if err != nil {
			return nil, fmt.Errorf("mapping %s:%d: %w", rec.Chromosome, rec.Position, err)
		}
		for _, g := range genes {
			seen[g.Name] = g
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	genes := make([]ensembl.Gene, 0, len(names))
	for _, name := range names {
		genes = append(genes, seen[name])
	}

	result := &Result{
		Records:      len(records),
		Genes:        genes,
		Interactions: []dgidb.Interaction{},
	}
	if len(names) == 0 {
		return result, nil
	}

	interactions, err := a.dgidb.GetInteractions(ctx, names, dgidb.SearchGenes, dgidb.InteractionFilters{})
	if err != nil {
		return nil, fmt.Errorf("querying interactions: %w", err)
	}
	result.Interactions = interactions

	return result, nil
}
