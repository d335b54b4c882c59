package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/genomicmedlab/dgigo/internal/config"
	"github.com/genomicmedlab/dgigo/internal/export"
	"github.com/genomicmedlab/dgigo/internal/store"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage saved interaction snapshots",
	Long: `Manage interaction result sets saved with --save.

Snapshots live in a local SQLite database and can be re-rendered as
graphs or exported without re-querying DGIdb.`,
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved snapshots",
	Args:  cobra.NoArgs,
	Run:   runSnapshotList,
}

var snapshotShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a snapshot's interaction rows",
	Args:  cobra.ExactArgs(1),
	Run:   runSnapshotShow,
}

var snapshotDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a snapshot",
	Args:  cobra.ExactArgs(1),
	Run:   runSnapshotDelete,
}

func init() {
	snapshotCmd.AddCommand(snapshotListCmd)
	snapshotCmd.AddCommand(snapshotShowCmd)
	snapshotCmd.AddCommand(snapshotDeleteCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// openSnapshotStore opens the configured snapshot database or exits.
func openSnapshotStore() *store.DB {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	db, err := store.OpenDB(cfg.SnapshotPath)
	if err != nil {
		exitWithError(ExitError, "opening snapshot database: %v", err)
	}
	return db
}

func runSnapshotList(cmd *cobra.Command, args []string) {
	db := openSnapshotStore()
	defer db.Close()

	snaps, err := db.ListSnapshots()
	if err != nil {
		exitWithError(ExitError, "listing snapshots: %v", err)
	}

	if humanOutput {
		for _, snap := range snaps {
			fmt.Printf("%s  %s  %-5s  %s\n", snap.ID,
				snap.CreatedAt.Format("2006-01-02 15:04"), snap.Mode,
				truncateString(strings.Join(snap.Terms, ","), TermsMaxLen))
		}
		if len(snaps) == 0 {
			fmt.Println("No snapshots saved.")
		}
		os.Exit(ExitSuccess)
	}

	if snaps == nil {
		snaps = []store.Snapshot{}
	}
	outputJSON(snaps)
}

func runSnapshotShow(cmd *cobra.Command, args []string) {
	db := openSnapshotStore()
	defer db.Close()

	snap, err := db.GetSnapshot(args[0])
	if err != nil {
		exitWithError(ExitError, "loading snapshot: %v", err)
	}
	if snap == nil {
		exitWithError(ExitNotFound, "snapshot %s not found", args[0])
	}

	rows, err := db.GetInteractions(args[0])
	if err != nil {
		exitWithError(ExitError, "loading snapshot interactions: %v", err)
	}

	if humanOutput {
		fmt.Printf("%s (%s, %s)\n", snap.ID, snap.Mode, strings.Join(snap.Terms, ","))
		for _, row := range rows {
			fmt.Printf("  %s - %s [score %.2f]\n", row.GeneName, row.DrugName, row.Score)
		}
		os.Exit(ExitSuccess)
	}

	emitResult(rows, export.InteractionsTable(rows))
}

func runSnapshotDelete(cmd *cobra.Command, args []string) {
	db := openSnapshotStore()
	defer db.Close()

	deleted, err := db.Delete(args[0])
	if err != nil {
		exitWithError(ExitError, "deleting snapshot: %v", err)
	}
	if !deleted {
		exitWithError(ExitNotFound, "snapshot %s not found", args[0])
	}

	if humanOutput {
		fmt.Printf("Deleted %s\n", args[0])
	} else {
		outputJSON(StatusResponse{Status: "deleted", ID: args[0]})
	}
}
