package npos

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Session ended normally
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration
	ExitNotFound     = 14 // Requested virtual path does not exist
)

const (
	// DefaultUser is the login name of the simulated account.
	DefaultUser = "user"

	// DefaultHostname is the simulated machine name shown in the prompt.
	DefaultHostname = "np-os"

	// DefaultHistoryLimit is the number of submitted lines kept for recall.
	DefaultHistoryLimit = 20

	// ExitDelay is how long the shutdown message stays visible before the
	// shell view is left.
	ExitDelay = 1 * time.Second

	// BootSettleDelay is the pause after the last boot line before input is enabled.
	BootSettleDelay = 200 * time.Millisecond

	// OSName is printed by `uname` without flags.
	OSName = "NP-OS"

	// SystemIdentification is printed by `uname -a`.
	SystemIdentification = "NP-OS Linux 6.7.8-hckr-edition x86_64 GNU/Linux (Simulated)"
)

// HomeDir returns the home directory path for user.
func HomeDir(user string) string {
	return "/home/" + user
}
