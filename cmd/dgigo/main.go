// Package main provides the dgigo CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// outputFormat selects json, csv, or tsv output for query commands
var outputFormat string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dgigo",
	Short: "Query drug-gene interactions from DGIdb",
	Long: `dgigo is a CLI for the Drug-Gene Interaction Database (DGIdb).

It looks up drug-gene interactions, gene categories, and drug records,
enriches results with openFDA product data and ClinicalTrials.gov
studies, and renders interaction networks as standalone HTML pages.

All commands output JSON by default for easy integration with other
tools. Use --format csv or --format tsv for tabular output, or --human
for a readable summary.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env if present; environment values win over config file
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "json", "Output format: json, csv, or tsv")
	rootCmd.Version = Version
}
