package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/genomicmedlab/dgigo/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values.

Usage:
  dgigo config                               # Show all config
  dgigo config api_url                       # Get specific value
  dgigo config api_url https://staging/api   # Set value

Keys:
  api_url          DGIdb GraphQL endpoint override
  openfda_api_key  API key for the Drugs@FDA API
  snapshot_path    Path to the snapshot SQLite database

Environment variables (DGIDB_API_URL, OPENFDA_API_KEY) take precedence
over file values.`,
	Args: cobra.MaximumNArgs(2),
	Run:  runConfigCmd,
}

// ConfigResponse is the response for config get commands.
type ConfigResponse struct {
	APIURL         string `json:"api_url,omitempty"`
	OpenFDAAPIKey  string `json:"openfda_api_key,omitempty"`
	TrialsPageSize int    `json:"trials_page_size,omitempty"`
	SnapshotPath   string `json:"snapshot_path,omitempty"`
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

func runConfigCmd(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	// No args: show all config
	if len(args) == 0 {
		if humanOutput {
			fmt.Printf("api_url:          %s\n", cfg.APIURL)
			fmt.Printf("openfda_api_key:  %s\n", cfg.OpenFDAAPIKey)
			fmt.Printf("trials_page_size: %d\n", cfg.TrialsPageSize)
			fmt.Printf("snapshot_path:    %s\n", cfg.SnapshotPath)
		} else {
			outputJSON(ConfigResponse{
				APIURL:         cfg.APIURL,
				OpenFDAAPIKey:  cfg.OpenFDAAPIKey,
				TrialsPageSize: cfg.TrialsPageSize,
				SnapshotPath:   cfg.SnapshotPath,
			})
		}
		return
	}

	key := args[0]

	// One arg: get specific value
	if len(args) == 1 {
		var value string
		switch key {
		case "api_url":
			value = cfg.APIURL
		case "openfda_api_key":
			value = cfg.OpenFDAAPIKey
		case "snapshot_path":
			value = cfg.SnapshotPath
		default:
			exitWithError(ExitError, "unknown configuration key: %s", key)
		}
		if humanOutput {
			fmt.Println(value)
		} else {
			outputJSON(map[string]string{key: value})
		}
		return
	}

	// Two args: set value
	value := args[1]
	if err := cfg.Set(key, value); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if err := cfg.Save(); err != nil {
		exitWithError(ExitConfigError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Updated %s to %s\n", key, value)
		os.Exit(ExitSuccess)
	}
	outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
}
