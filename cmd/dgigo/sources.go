package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/genomicmedlab/dgigo/internal/dgidb"
	"github.com/genomicmedlab/dgigo/internal/export"
)

var sourcesType string

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List DGIdb aggregate sources",
	Long: `List the sources DGIdb aggregates, with claim counts.

The --type flag restricts output to one source category: drug, gene,
interaction, or potentially_druggable.

Examples:
  dgigo sources
  dgigo sources --type interaction --human`,
	Args: cobra.NoArgs,
	Run:  runSources,
}

func init() {
	sourcesCmd.Flags().StringVar(&sourcesType, "type", "", "Source type: drug, gene, interaction, or potentially_druggable")
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, args []string) {
	var sourceType dgidb.SourceType
	if sourcesType != "" {
		var err error
		sourceType, err = dgidb.ParseSourceType(sourcesType)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
	}

	client := newDGIdbClient()

	rows, err := client.GetSources(context.Background(), sourceType)
	if err != nil {
		exitWithError(apiExitCode(err), "fetching sources: %v", err)
	}

	if humanOutput {
		for _, row := range rows {
			fmt.Printf("%s (%s %s)\n", row.Name, row.ShortName, row.Version)
			fmt.Printf("  drug claims: %d | gene claims: %d | interaction claims: %d\n",
				row.DrugClaims, row.GeneClaims, row.InteractionClaims)
		}
		os.Exit(ExitSuccess)
	}

	emitResult(rows, export.SourcesTable(rows))
}
