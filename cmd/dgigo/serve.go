package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/genomicmedlab/dgigo/internal/dashboard"
)

var (
	serveAddress string
	serveDebug   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the browser dashboard",
	Long: `Run the interactive dashboard for exploring drug-gene interaction
networks in a browser.

The dashboard queries DGIdb on demand and renders networks with
Cytoscape.js. It shuts down gracefully on SIGINT/SIGTERM.

Examples:
  dgigo serve
  dgigo serve --address :9000 --debug`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddress, "address", ":8080", "Listen address")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging and request dumps")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	var (
		logger *zap.Logger
		err    error
	)
	if serveDebug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		exitWithError(ExitError, "creating logger: %v", err)
	}
	defer logger.Sync()

	server := dashboard.New(newDGIdbClient(), logger, Version, serveDebug)
	if err := server.Run(serveAddress); err != nil {
		exitWithError(ExitError, "%v", err)
	}
}
