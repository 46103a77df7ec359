package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/np-os/npos/pkg/npos"
)

// RequireVirtualPath validates that exactly one virtual path argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
// Errors wrap npos.ErrUsage.
func RequireVirtualPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`%w: missing required argument: <path>

Usage: %s

Example:
  %s documents/resume.txt

Relative paths start in the home directory. Use 'npos tree' to see them all.`, npos.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts 1 arg(s), received %d", npos.ErrUsage, len(args))
	}
	return nil
}
