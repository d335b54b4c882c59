package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/genomicmedlab/dgigo/internal/dgidb"
	"github.com/genomicmedlab/dgigo/internal/export"
)

var (
	interactionsMode            string
	interactionsApproved        bool
	interactionsImmunotherapy   bool
	interactionsAntineoplastic  bool
	interactionsSource          string
	interactionsPMID            int
	interactionsInteractionType string
	interactionsSave            bool
)

var interactionsCmd = &cobra.Command{
	Use:   "interactions <term>...",
	Short: "Look up drug-gene interactions",
	Long: `Look up drug-gene interactions for genes or drugs of interest.

The --mode flag selects whether terms are gene symbols or drug names.
One row is returned per (term, interaction) pair.

Examples:
  dgigo interactions BRAF --mode genes
  dgigo interactions imatinib,sunitinib --mode drugs --approved
  dgigo interactions EGFR --mode genes --source DTC --save`,
	Args: cobra.MinimumNArgs(1),
	Run:  runInteractions,
}

func init() {
	interactionsCmd.Flags().StringVar(&interactionsMode, "mode", "genes", `Search mode: "genes" or "drugs"`)
	interactionsCmd.Flags().BoolVar(&interactionsApproved, "approved", false, "Only interactions with approved drugs")
	interactionsCmd.Flags().BoolVar(&interactionsImmunotherapy, "immunotherapy", false, "Only immunotherapy drugs")
	interactionsCmd.Flags().BoolVar(&interactionsAntineoplastic, "antineoplastic", false, "Only antineoplastic drugs")
	interactionsCmd.Flags().StringVar(&interactionsSource, "source", "", "Only interactions claimed by this source")
	interactionsCmd.Flags().IntVar(&interactionsPMID, "pmid", 0, "Only interactions citing this PubMed ID")
	interactionsCmd.Flags().StringVar(&interactionsInteractionType, "interaction-type", "", "Only interactions of this type (e.g. inhibitor)")
	interactionsCmd.Flags().BoolVar(&interactionsSave, "save", false, "Save the result set as a snapshot")
	rootCmd.AddCommand(interactionsCmd)
}

func interactionFilters(cmd *cobra.Command) dgidb.InteractionFilters {
	var filters dgidb.InteractionFilters
	if cmd.Flags().Changed("approved") {
		filters.Approved = &interactionsApproved
	}
	if cmd.Flags().Changed("immunotherapy") {
		filters.Immunotherapy = &interactionsImmunotherapy
	}
	if cmd.Flags().Changed("antineoplastic") {
		filters.AntiNeoplastic = &interactionsAntineoplastic
	}
	if cmd.Flags().Changed("source") {
		filters.Source = &interactionsSource
	}
	if cmd.Flags().Changed("pmid") {
		filters.PMID = &interactionsPMID
	}
	if cmd.Flags().Changed("interaction-type") {
		filters.InteractionType = &interactionsInteractionType
	}
	return filters
}

func runInteractions(cmd *cobra.Command, args []string) {
	mode, err := dgidb.ParseSearchMode(interactionsMode)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	terms := splitTerms(args)
	client := newDGIdbClient()

	rows, err := client.GetInteractions(context.Background(), terms, mode, interactionFilters(cmd))
	if err != nil {
		exitWithError(apiExitCode(err), "fetching interactions: %v", err)
	}

	if interactionsSave {
		db := openSnapshotStore()
		defer db.Close()

		snap, err := db.SaveInteractions(mode, terms, rows)
		if err != nil {
			exitWithError(ExitError, "saving snapshot: %v", err)
		}
		fmt.Fprintf(os.Stderr, "saved snapshot %s\n", snap.ID)
	}

	if humanOutput {
		for _, row := range rows {
			approved := "unapproved"
			if row.DrugApproved {
				approved = "approved"
			}
			fmt.Printf("%s - %s [%s, score %.2f]\n", row.GeneName, row.DrugName, approved, row.Score)
		}
		if len(rows) == 0 {
			fmt.Println("No interactions found.")
		}
		os.Exit(ExitSuccess)
	}

	emitResult(rows, export.InteractionsTable(rows))
}
