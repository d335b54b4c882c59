package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/genomicmedlab/dgigo/internal/annotate"
	"github.com/genomicmedlab/dgigo/internal/ensembl"
	"github.com/genomicmedlab/dgigo/internal/export"
	"github.com/genomicmedlab/dgigo/internal/vcf"
)

var (
	annotateContig string
	annotateLimit  int
)

var annotateCmd = &cobra.Command{
	Use:   "annotate <vcf-file>",
	Short: "Annotate VCF variants with drug-gene interactions",
	Long: `Map variant positions from a VCF file to genes via the Ensembl REST
API, then look up drug-gene interactions for the mapped genes.

Gzip-compressed files (.gz, .bgz) are decompressed transparently. Use
--contig to restrict to one chromosome and --limit to cap the number of
records mapped; each record costs one Ensembl request.

Examples:
  dgigo annotate variants.vcf.gz --contig 7 --limit 50
  dgigo annotate variants.vcf --format tsv`,
	Args: cobra.ExactArgs(1),
	Run:  runAnnotate,
}

func init() {
	annotateCmd.Flags().StringVar(&annotateContig, "contig", "", "Only map records on this chromosome")
	annotateCmd.Flags().IntVar(&annotateLimit, "limit", 100, "Maximum number of VCF records to map (0 = no limit)")
	rootCmd.AddCommand(annotateCmd)
}

func runAnnotate(cmd *cobra.Command, args []string) {
	records, err := vcf.ReadFile(args[0], annotateContig, annotateLimit)
	if err != nil {
		exitWithError(ExitError, "reading VCF: %v", err)
	}

	annotator := annotate.New(newDGIdbClient(), ensembl.NewClient())
	result, err := annotator.Annotate(context.Background(), records)
	if err != nil {
		exitWithError(ExitAPIError, "annotating variants: %v", err)
	}

	if humanOutput {
		names := make([]string, len(result.Genes))
		for i, g := range result.Genes {
			names[i] = g.Name
		}
		fmt.Printf("Mapped %d records to %d genes: %s\n",
			result.Records, len(result.Genes), strings.Join(names, ", "))
		for _, row := range result.Interactions {
			fmt.Printf("%s - %s [score %.2f]\n", row.GeneName, row.DrugName, row.Score)
		}
		os.Exit(ExitSuccess)
	}

	emitResult(result, export.InteractionsTable(result.Interactions))
}
