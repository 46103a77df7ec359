package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/np-os/npos/internal/vfs"
	"github.com/np-os/npos/pkg/npos"
)

var catCmd = &cobra.Command{
	Use:   "cat <path>",
	Short: "Print a file from the virtual filesystem",
	Long: `Print one NP-OS file without starting the shell.
Relative paths start in the home directory.`,
	Example: `  npos cat documents/resume.txt
  npos cat /etc/os-release`,
	Args:              RequireVirtualPath,
	ValidArgsFunction: completeVirtualPaths,
	RunE:              runCat,
}

func init() {
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tree, err := buildTree(cfg)
	if err != nil {
		return err
	}

	content, err := tree.ReadFile(vfs.Resolve(args[0], npos.HomeDir(cfg.User)))
	if err != nil {
		return mapPathError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, content)
	if !strings.HasSuffix(content, "\n") {
		fmt.Fprintln(out)
	}
	return nil
}
