package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "npos",
	Short: "NP-OS, a simulated hacker terminal",
	Long: asciiLogo + `

npos boots a make-believe Linux box in your terminal. Browse a small virtual
filesystem with ls, cd and cat, read the resume under ~/documents, and type
exit when you are done. Nothing you do touches the real filesystem.

Running npos without a subcommand starts the shell. It takes over the screen
when stdin and stdout are terminals and reads commands line by line otherwise.

Configuration is read from ./npos.yaml (or --config), then NPOS_* environment
variables and .env, then flags.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  14 - Virtual path not found`,
	Args:         cobra.NoArgs,
	RunE:         runShell,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for npos")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", "", "Path to npos.yaml (default: ./npos.yaml when present)")
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file")

	addShellFlags(rootCmd)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func getStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return v
}
