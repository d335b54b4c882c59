package main

import (
	"github.com/genomicmedlab/dgigo/internal/config"
	"github.com/genomicmedlab/dgigo/internal/dgidb"
	"github.com/genomicmedlab/dgigo/internal/openfda"
	"github.com/genomicmedlab/dgigo/internal/trials"
)

// newDGIdbClient builds a DGIdb client honoring the configured endpoint.
func newDGIdbClient() *dgidb.Client {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	var opts []dgidb.ClientOption
	if cfg.APIURL != "" {
		opts = append(opts, dgidb.WithBaseURL(cfg.APIURL))
	}
	return dgidb.NewClient(opts...)
}

// newOpenFDAClient builds a Drugs@FDA client with the configured API key.
func newOpenFDAClient() *openfda.Client {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	var opts []openfda.ClientOption
	if cfg.OpenFDAAPIKey != "" {
		opts = append(opts, openfda.WithAPIKey(cfg.OpenFDAAPIKey))
	}
	return openfda.NewClient(opts...)
}

// newTrialsClient builds a ClinicalTrials.gov client with the configured
// page size.
func newTrialsClient() *trials.Client {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	var opts []trials.ClientOption
	if cfg.TrialsPageSize > 0 {
		opts = append(opts, trials.WithPageSize(cfg.TrialsPageSize))
	}
	return trials.NewClient(opts...)
}

// apiExitCode maps client errors to exit codes.
func apiExitCode(err error) int {
	if dgidb.IsRateLimited(err) {
		return ExitAPIError
	}
	if openfda.IsNotFound(err) {
		return ExitNotFound
	}
	return ExitAPIError
}
