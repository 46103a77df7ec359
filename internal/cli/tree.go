package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/np-os/npos/internal/vfs"
	"github.com/np-os/npos/pkg/npos"
)

var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Print the virtual filesystem as a tree",
	Long: `Print the NP-OS virtual filesystem below path, / by default.
Relative paths start in the home directory.`,
	Example: `  npos tree
  npos tree documents
  npos tree --user alice /home`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeVirtualDirs,
	RunE:              runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tree, err := buildTree(cfg)
	if err != nil {
		return err
	}

	p := vfs.Separator
	if len(args) == 1 {
		p = vfs.Resolve(args[0], npos.HomeDir(cfg.User))
	}

	out, err := tree.RenderTree(p)
	if err != nil {
		return mapPathError(err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// mapPathError turns a virtual filesystem miss into the path-not-found exit code.
func mapPathError(err error) error {
	if errors.Is(err, vfs.ErrNotFound) {
		return fmt.Errorf("%w: %w", npos.ErrPathNotFound, err)
	}
	return err
}
