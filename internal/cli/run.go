package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/np-os/npos/internal/lineio"
)

var runFlags struct {
	echo    bool
	noColor bool
}

var runCmd = &cobra.Command{
	Use:   "run [lines...]",
	Short: "Run shell command lines without booting",
	Long: `Run one or more NP-OS command lines and print what they output.

Each argument is one command line. Without arguments, lines are read from
stdin. The session starts in the home directory with an empty screen, and
stops early at exit.`,
	Example: `  npos run ls "cat notes.txt"
  echo "uname -a" | npos run
  npos run --echo "cd /etc" ls`,
	RunE: runLines,
}

func init() {
	runCmd.Flags().BoolVar(&runFlags.echo, "echo", false, "Print each line with its prompt before its output")
	runCmd.Flags().BoolVar(&runFlags.noColor, "no-color", false, "Disable colors")
	rootCmd.AddCommand(runCmd)
}

func runLines(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	session, err := newSession(cfg, logger)
	if err != nil {
		return err
	}
	session.CompleteBoot()
	session.ClearScreen()

	var in io.Reader = cmd.InOrStdin()
	if len(args) > 0 {
		in = strings.NewReader(strings.Join(args, "\n") + "\n")
	}

	host := lineio.New(session, lineio.Options{
		In:      in,
		Out:     cmd.OutOrStdout(),
		Echo:    runFlags.echo,
		NoColor: runFlags.noColor,
	})
	return host.Run(cmd.Context())
}
