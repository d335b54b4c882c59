package main

// Exit codes shared by all commands
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing config, invalid paths)
	ExitAPIError    = 3 // Upstream API error (rate limit, network, bad response)
	ExitNotFound    = 4 // Requested record not found
)
