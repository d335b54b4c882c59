package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/genomicmedlab/dgigo/internal/dgidb"
	"github.com/genomicmedlab/dgigo/internal/export"
)

var geneListCmd = &cobra.Command{
	Use:   "gene-list",
	Short: "List all gene names in DGIdb",
	Long: `List the names and concept IDs of all genes in DGIdb.

This is a large result set; it backs the dashboard term dropdowns.`,
	Args: cobra.NoArgs,
	Run:  runGeneList,
}

var drugListCmd = &cobra.Command{
	Use:   "drug-list",
	Short: "List all drug names in DGIdb",
	Long: `List the names and concept IDs of all drugs in DGIdb.

This is a large result set; it backs the dashboard term dropdowns.`,
	Args: cobra.NoArgs,
	Run:  runDrugList,
}

func init() {
	rootCmd.AddCommand(geneListCmd)
	rootCmd.AddCommand(drugListCmd)
}

func runGeneList(cmd *cobra.Command, args []string) {
	client := newDGIdbClient()
	records, err := client.GetGeneList(context.Background())
	if err != nil {
		exitWithError(apiExitCode(err), "fetching gene list: %v", err)
	}
	emitConcepts(records)
}

func runDrugList(cmd *cobra.Command, args []string) {
	client := newDGIdbClient()
	records, err := client.GetDrugList(context.Background())
	if err != nil {
		exitWithError(apiExitCode(err), "fetching drug list: %v", err)
	}
	emitConcepts(records)
}

func emitConcepts(records []dgidb.ConceptRecord) {
	if humanOutput {
		for _, rec := range records {
			fmt.Printf("%s\t%s\n", rec.Name, rec.ConceptID)
		}
		os.Exit(ExitSuccess)
	}
	emitResult(records, export.ConceptsTable(records))
}
