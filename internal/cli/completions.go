package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/np-os/npos/internal/config"
	"github.com/np-os/npos/internal/vfs"
	"github.com/np-os/npos/pkg/npos"
)

// completeVirtualPaths provides shell completion for files and directories of the virtual filesystem.
func completeVirtualPaths(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeVirtual(cmd, args, toComplete, false)
}

// completeVirtualDirs provides shell completion for directories of the virtual filesystem.
func completeVirtualDirs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeVirtual(cmd, args, toComplete, true)
}

func completeVirtual(cmd *cobra.Command, args []string, toComplete string, dirsOnly bool) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		cfg = config.Default()
	}
	tree, err := buildTree(cfg)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return virtualMatches(tree, npos.HomeDir(cfg.User), toComplete, dirsOnly), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

// virtualMatches lists the entries of the directory part of toComplete whose
// names start with the rest, keeping the directory part as typed.
func virtualMatches(tree *vfs.Tree, home, toComplete string, dirsOnly bool) []string {
	i := strings.LastIndex(toComplete, vfs.Separator)
	parent, prefix := toComplete[:i+1], toComplete[i+1:]

	entries, err := tree.ReadDir(vfs.Resolve(parent, home))
	if err != nil {
		return nil
	}

	var matches []string
	for _, e := range entries {
		if dirsOnly && !e.IsDir {
			continue
		}
		if strings.HasPrefix(e.Name, prefix) {
			matches = append(matches, parent+e.DisplayName())
		}
	}
	return matches
}
