package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/genomicmedlab/dgigo/internal/export"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories <term>...",
	Short: "Look up druggable categories for genes",
	Long: `Look up druggable gene category annotations for genes of interest.

One row is returned per (gene, category, source) combination.

Examples:
  dgigo categories BRAF
  dgigo categories BRAF,EGFR --format csv`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) {
	client := newDGIdbClient()

	rows, err := client.GetCategories(context.Background(), splitTerms(args))
	if err != nil {
		exitWithError(apiExitCode(err), "fetching categories: %v", err)
	}

	if humanOutput {
		for _, row := range rows {
			fmt.Printf("%s: %s (%s)\n", row.Gene, row.Category, strings.Join(row.Sources, ", "))
		}
		if len(rows) == 0 {
			fmt.Println("No category annotations found.")
		}
		os.Exit(ExitSuccess)
	}

	emitResult(rows, export.CategoriesTable(rows))
}
