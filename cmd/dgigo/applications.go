package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/genomicmedlab/dgigo/internal/export"
	"github.com/genomicmedlab/dgigo/internal/openfda"
)

var applicationsCmd = &cobra.Command{
	Use:   "applications <term>...",
	Short: "Look up FDA applications and products for drugs",
	Long: `Look up ANDA/NDA application numbers for drugs of interest and
enrich each with product records from the Drugs@FDA API.

One row is returned per (drug, application, product). Applications
unknown to Drugs@FDA are skipped.

Examples:
  dgigo applications imatinib
  dgigo applications imatinib,sunitinib --format csv`,
	Args: cobra.MinimumNArgs(1),
	Run:  runApplications,
}

func init() {
	rootCmd.AddCommand(applicationsCmd)
}

func runApplications(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	dgidbClient := newDGIdbClient()
	fdaClient := newOpenFDAClient()

	apps, err := dgidbClient.GetDrugApplications(ctx, splitTerms(args))
	if err != nil {
		exitWithError(apiExitCode(err), "fetching drug applications: %v", err)
	}

	rows := []export.ApplicationProduct{}
	for _, app := range apps {
		products, err := fdaClient.GetProducts(ctx, app.ApplicationNo)
		if err != nil {
			if openfda.IsNotFound(err) {
				continue
			}
			exitWithError(apiExitCode(err), "fetching products for %s: %v", app.ApplicationNo, err)
		}
		for _, p := range products {
			rows = append(rows, export.ApplicationProduct{
				DrugName:        app.DrugName,
				ApplicationNo:   app.ApplicationNo,
				BrandName:       p.BrandName,
				MarketingStatus: p.MarketingStatus,
				DosageForm:      p.DosageForm,
				DosageStrength:  p.DosageStrength,
			})
		}
	}

	if humanOutput {
		for _, row := range rows {
			fmt.Printf("%s (%s): %s %s, %s [%s]\n", row.DrugName, row.ApplicationNo,
				row.BrandName, row.DosageStrength, row.DosageForm, row.MarketingStatus)
		}
		if len(rows) == 0 {
			fmt.Println("No FDA products found.")
		}
		os.Exit(ExitSuccess)
	}

	emitResult(rows, export.ApplicationsTable(rows))
}
