package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/genomicmedlab/dgigo/internal/dgidb"
	"github.com/genomicmedlab/dgigo/internal/netgraph"
	"github.com/genomicmedlab/dgigo/internal/viz"
)

var (
	graphMode     string
	graphLayout   string
	graphOut      string
	graphTitle    string
	graphSnapshot string
	graphSave     bool
)

var graphCmd = &cobra.Command{
	Use:   "graph [term]...",
	Short: "Render an interaction network as HTML",
	Long: `Build a drug-gene interaction network and render it as a standalone
HTML page.

Terms are queried live against DGIdb, or a saved snapshot can be
re-rendered with --snapshot (no network access needed). The spring
layout precomputes force-directed coordinates; force, circle, and grid
delegate to Cytoscape.js.

Examples:
  dgigo graph BRAF,EGFR --mode genes -o network.html
  dgigo graph imatinib --mode drugs --layout circle
  dgigo graph --snapshot 2f1f9a1e-... -o network.html`,
	Run: runGraph,
}

func init() {
	graphCmd.Flags().StringVar(&graphMode, "mode", "genes", `Search mode: "genes" or "drugs"`)
	graphCmd.Flags().StringVar(&graphLayout, "layout", "spring", "Layout: spring, force, circle, or grid")
	graphCmd.Flags().StringVarP(&graphOut, "out", "o", "network.html", "Output HTML file")
	graphCmd.Flags().StringVar(&graphTitle, "title", "", "Page title")
	graphCmd.Flags().StringVar(&graphSnapshot, "snapshot", "", "Render a saved snapshot instead of querying")
	graphCmd.Flags().BoolVar(&graphSave, "save", false, "Save the queried result set as a snapshot")
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) {
	var (
		mode  dgidb.SearchMode
		terms []string
		rows  []dgidb.Interaction
	)

	if graphSnapshot != "" {
		if len(args) > 0 {
			exitWithError(ExitError, "terms and --snapshot are mutually exclusive")
		}
		mode, terms, rows = loadSnapshot(graphSnapshot)
	} else {
		if len(args) == 0 {
			exitWithError(ExitError, "at least one search term (or --snapshot) is required")
		}

		var err error
		mode, err = dgidb.ParseSearchMode(graphMode)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}

		terms = splitTerms(args)
		client := newDGIdbClient()
		rows, err = client.GetInteractions(context.Background(), terms, mode, dgidb.InteractionFilters{})
		if err != nil {
			exitWithError(apiExitCode(err), "fetching interactions: %v", err)
		}

		if graphSave {
			db := openSnapshotStore()
			defer db.Close()

			snap, err := db.SaveInteractions(mode, terms, rows)
			if err != nil {
				exitWithError(ExitError, "saving snapshot: %v", err)
			}
			fmt.Fprintf(os.Stderr, "saved snapshot %s\n", snap.ID)
		}
	}

	graph := netgraph.New(rows, terms, mode)

	opts := viz.DefaultOptions()
	opts.Layout = graphLayout
	if graphTitle != "" {
		opts.Title = graphTitle
	}

	html, err := viz.GenerateHTML(graph, opts)
	if err != nil {
		exitWithError(ExitError, "generating HTML: %v", err)
	}

	if err := os.WriteFile(graphOut, []byte(html), 0644); err != nil {
		exitWithError(ExitError, "writing %s: %v", graphOut, err)
	}

	if humanOutput {
		fmt.Printf("Wrote %s (%d nodes, %d edges)\n", graphOut, len(graph.Nodes), len(graph.Edges))
	} else {
		outputJSON(StatusResponse{Status: "written", Path: graphOut})
	}
}

// loadSnapshot fetches a snapshot's mode, terms, and interaction rows.
func loadSnapshot(id string) (dgidb.SearchMode, []string, []dgidb.Interaction) {
	db := openSnapshotStore()
	defer db.Close()

	snap, err := db.GetSnapshot(id)
	if err != nil {
		exitWithError(ExitError, "loading snapshot: %v", err)
	}
	if snap == nil {
		exitWithError(ExitNotFound, "snapshot %s not found", id)
	}

	rows, err := db.GetInteractions(id)
	if err != nil {
		exitWithError(ExitError, "loading snapshot interactions: %v", err)
	}

	return dgidb.SearchMode(snap.Mode), snap.Terms, rows
}
