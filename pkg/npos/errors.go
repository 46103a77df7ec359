package npos

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	cfg, err := config.Load(path)
//	if errors.Is(err, npos.ErrInvalidConfig) {
//	    // Handle a malformed npos.yaml
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUsage indicates the command line was misused.
	ErrUsage = errors.New("usage error")

	// ErrPathNotFound indicates a virtual path requested from the CLI does not exist.
	ErrPathNotFound = errors.New("path not found")
)

// usagePatterns are prefixes of the errors cobra and pflag return for bad invocations.
var usagePatterns = []string{
	"unknown command",
	"unknown flag",
	"unknown shorthand flag",
	"accepts ",
	"requires at least",
	"requires at most",
	"invalid argument",
	"required flag",
	"flag needs an argument",
	"missing required argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrPathNotFound):
		return ExitNotFound
	}

	errStr := err.Error()
	for _, p := range usagePatterns {
		if strings.HasPrefix(errStr, p) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
