package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const asciiLogo = `
 _   _ ____        ___  ____
| \ | |  _ \      / _ \/ ___|
|  \| | |_) |____| | | \___ \
| |\  |  __/_____| |_| |___) |
|_| \_|_|         \___/|____/`

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		writeVersionInfo(cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// resolveVersionInfo returns the ldflags version, falling back to the module
// build info for binaries built with go install.
func resolveVersionInfo() (string, string, string) {
	v, c, d := version, commit, date
	if v != "dev" {
		return v, c, d
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v, c, d
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		v = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			c = s.Value
		case "vcs.time":
			d = s.Value
		}
	}
	return v, c, d
}

// printVersionInfo prints version information to the process streams.
func printVersionInfo() {
	writeVersionInfo(os.Stdout, os.Stderr)
}

// writeVersionInfo writes the machine-parseable version line to out and the
// logo and tagline to decor.
func writeVersionInfo(out, decor io.Writer) {
	v, c, d := resolveVersionInfo()
	fmt.Fprintln(decor, asciiLogo)
	fmt.Fprintln(decor)
	fmt.Fprintf(out, "npos %s (%s, %s) %s/%s\n", v, c, d, runtime.GOOS, runtime.GOARCH)
	fmt.Fprintln(decor, "Simulated hacker terminal")
}
