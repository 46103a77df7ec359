package cli

import (
	"github.com/spf13/cobra"

	"github.com/np-os/npos/internal/lineio"
	"github.com/np-os/npos/internal/tui"
)

// shellOpts holds the shell flag values. The root command and the shell
// subcommand bind the same fields.
var shellOpts struct {
	skipBoot  bool
	bootSpeed float64
	plain     bool
	noColor   bool
	showKeys  bool
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the NP-OS shell (default command)",
	Long: `Boot NP-OS and start an interactive shell session.

The shell runs full screen when stdin and stdout are terminals. With piped
input, redirected output, CI=true, NPOS_NON_INTERACTIVE=1 or --plain it reads
commands line by line and prints each prompt and result.

Keys in full-screen mode:
  enter      run the line
  up/down    walk the command history
  tab        complete command names and paths
  ctrl+l     clear the screen
  pgup/pgdn  scroll
  ctrl+c     quit immediately`,
	Example: `  npos
  npos shell --skip-boot
  printf 'ls\ncat notes.txt\n' | npos shell --plain`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.PersistentFlags().String("user", "", "User name shown in the prompt (env NPOS_USER)")
	rootCmd.PersistentFlags().String("hostname", "", "Host name shown in the prompt (env NPOS_HOSTNAME)")

	addShellFlags(shellCmd)
	rootCmd.AddCommand(shellCmd)
}

func addShellFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&shellOpts.skipBoot, "skip-boot", false, "Skip the boot sequence (env NPOS_SKIP_BOOT)")
	cmd.Flags().Float64Var(&shellOpts.bootSpeed, "boot-speed", 1, "Boot delay multiplier, 0 skips the delays (env NPOS_BOOT_SPEED)")
	cmd.Flags().BoolVar(&shellOpts.plain, "plain", false, "Force line mode even on a terminal")
	cmd.Flags().BoolVar(&shellOpts.noColor, "no-color", false, "Disable colors in line mode")
	cmd.Flags().BoolVar(&shellOpts.showKeys, "show-keys", false, "Show the key bindings under the prompt")
}

func runShell(cmd *cobra.Command, args []string) error {
	mode := tui.DetectMode()
	if shellOpts.plain {
		mode = tui.ModeNonInteractive
	}
	fullScreen := mode == tui.ModeInteractive

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cmd, fullScreen)
	if err != nil {
		return err
	}
	defer closeLog()

	session, err := newSession(cfg, logger)
	if err != nil {
		return err
	}
	logger.Verbose("session %s: %s mode", session.ID(), mode)

	if fullScreen {
		return tui.Run(cmd.Context(), session, tui.Options{ShowHelp: shellOpts.showKeys})
	}

	host := lineio.New(session, lineio.Options{
		In:         cmd.InOrStdin(),
		Out:        cmd.OutOrStdout(),
		Boot:       true,
		Echo:       true,
		WaitOnExit: true,
		NoColor:    shellOpts.noColor,
	})
	return host.Run(cmd.Context())
}
