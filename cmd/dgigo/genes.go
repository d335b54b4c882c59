package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/genomicmedlab/dgigo/internal/export"
)

var genesCmd = &cobra.Command{
	Use:   "genes <term>...",
	Short: "Look up gene records by name",
	Long: `Look up DGIdb gene records for one or more gene symbols.

Terms can be passed as separate arguments or comma-separated. Unknown
terms are silently absent from the results.

Examples:
  dgigo genes BRAF
  dgigo genes BRAF,EGFR --human
  dgigo genes BRAF EGFR --format tsv`,
	Args: cobra.MinimumNArgs(1),
	Run:  runGenes,
}

func init() {
	rootCmd.AddCommand(genesCmd)
}

func runGenes(cmd *cobra.Command, args []string) {
	client := newDGIdbClient()

	records, err := client.GetGenes(context.Background(), splitTerms(args))
	if err != nil {
		exitWithError(apiExitCode(err), "fetching genes: %v", err)
	}

	if humanOutput {
		for _, rec := range records {
			fmt.Printf("%s (%s)\n", rec.Name, rec.ConceptID)
			if len(rec.Aliases) > 0 {
				fmt.Printf("  Aliases: %s\n", strings.Join(rec.Aliases, ", "))
			}
			for name, values := range rec.Attributes {
				fmt.Printf("  %s: %s\n", name, strings.Join(values, ", "))
			}
			fmt.Println()
		}
		if len(records) == 0 {
			fmt.Println("No matching genes.")
		}
		os.Exit(ExitSuccess)
	}

	emitResult(records, export.GenesTable(records))
}
