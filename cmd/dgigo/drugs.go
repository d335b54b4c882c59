package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/genomicmedlab/dgigo/internal/dgidb"
	"github.com/genomicmedlab/dgigo/internal/export"
)

var (
	drugsImmunotherapy  bool
	drugsAntineoplastic bool
)

var drugsCmd = &cobra.Command{
	Use:   "drugs <term>...",
	Short: "Look up drug records by name",
	Long: `Look up DGIdb drug records for one or more drug names.

Terms can be passed as separate arguments or comma-separated. Unknown
terms are silently absent from the results.

Examples:
  dgigo drugs imatinib
  dgigo drugs imatinib,sunitinib --human
  dgigo drugs pembrolizumab --immunotherapy`,
	Args: cobra.MinimumNArgs(1),
	Run:  runDrugs,
}

func init() {
	drugsCmd.Flags().BoolVar(&drugsImmunotherapy, "immunotherapy", false, "Only immunotherapy drugs")
	drugsCmd.Flags().BoolVar(&drugsAntineoplastic, "antineoplastic", false, "Only antineoplastic drugs")
	rootCmd.AddCommand(drugsCmd)
}

func runDrugs(cmd *cobra.Command, args []string) {
	client := newDGIdbClient()

	var filters dgidb.DrugFilters
	if cmd.Flags().Changed("immunotherapy") {
		filters.Immunotherapy = &drugsImmunotherapy
	}
	if cmd.Flags().Changed("antineoplastic") {
		filters.AntiNeoplastic = &drugsAntineoplastic
	}

	records, err := client.GetDrugs(context.Background(), splitTerms(args), filters)
	if err != nil {
		exitWithError(apiExitCode(err), "fetching drugs: %v", err)
	}

	if humanOutput {
		for _, rec := range records {
			fmt.Printf("%s (%s)\n", rec.Name, rec.ConceptID)
			var traits []string
			if rec.Approved {
				traits = append(traits, "approved")
			}
			if rec.AntiNeoplastic {
				traits = append(traits, "antineoplastic")
			}
			if rec.Immunotherapy {
				traits = append(traits, "immunotherapy")
			}
			if len(traits) > 0 {
				fmt.Printf("  %s\n", strings.Join(traits, " | "))
			}
			if len(rec.FDAApplications) > 0 {
				fmt.Printf("  FDA applications: %s\n", strings.Join(rec.FDAApplications, ", "))
			}
			fmt.Println()
		}
		if len(records) == 0 {
			fmt.Println("No matching drugs.")
		}
		os.Exit(ExitSuccess)
	}

	emitResult(records, export.DrugsTable(records))
}
