package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/genomicmedlab/dgigo/internal/export"
)

var trialsCmd = &cobra.Command{
	Use:   "trials <term>...",
	Short: "Look up clinical trials for drugs",
	Long: `Look up ClinicalTrials.gov studies involving drugs of interest.

One row is returned per (drug, study) pair. Results are paginated
server-side; the page size comes from configuration.

Examples:
  dgigo trials imatinib
  dgigo trials imatinib,sunitinib --human`,
	Args: cobra.MinimumNArgs(1),
	Run:  runTrials,
}

func init() {
	rootCmd.AddCommand(trialsCmd)
}

func runTrials(cmd *cobra.Command, args []string) {
	client := newTrialsClient()

	rows, err := client.GetStudies(context.Background(), splitTerms(args))
	if err != nil {
		exitWithError(ExitAPIError, "fetching trials: %v", err)
	}

	if humanOutput {
		for _, row := range rows {
			fmt.Printf("%s [%s]\n", row.TrialID, row.SearchTerm)
			fmt.Printf("  %s\n", truncateString(row.Brief, BriefMaxLen))
			if row.Pediatric {
				fmt.Println("  includes pediatric participants")
			}
		}
		if len(rows) == 0 {
			fmt.Println("No trials found.")
		}
		os.Exit(ExitSuccess)
	}

	emitResult(rows, export.TrialsTable(rows))
}
