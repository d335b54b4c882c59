package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/genomicmedlab/dgigo/internal/export"
)

// Title truncation lengths by context
const (
	BriefMaxLen = 70 // Used in trials command summaries
	TermsMaxLen = 60 // Used in snapshot list output
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	ID     string `json:"id,omitempty"`
	Path   string `json:"path,omitempty"`
}

// emitResult writes a query result honoring the --format flag. The table
// form is used for csv and tsv; the value itself is used for json.
func emitResult(v interface{}, t export.Table) {
	switch strings.ToLower(outputFormat) {
	case "", "json":
		if err := outputJSON(v); err != nil {
			exitWithError(ExitError, "encoding JSON: %v", err)
		}
	case "csv":
		if err := export.WriteCSV(os.Stdout, t); err != nil {
			exitWithError(ExitError, "writing CSV: %v", err)
		}
	case "tsv":
		if err := export.WriteTSV(os.Stdout, t); err != nil {
			exitWithError(ExitError, "writing TSV: %v", err)
		}
	default:
		exitWithError(ExitError, "invalid format %q: must be json, csv, or tsv", outputFormat)
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// splitTerms splits comma-separated argument lists and trims whitespace,
// so both "BRAF,EGFR" and "BRAF EGFR" forms work.
func splitTerms(args []string) []string {
	var terms []string
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if part = strings.TrimSpace(part); part != "" {
				terms = append(terms, part)
			}
		}
	}
	return terms
}
