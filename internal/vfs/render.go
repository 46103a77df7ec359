package vfs

import (
	"path"
	"strings"
)

// RenderTree draws the subtree at p with box-drawing branches, one node per line.
// Directories carry a trailing slash.
func (t *Tree) RenderTree(p string) (string, error) {
	var sb strings.Builder
	root := Resolve(p, Separator)
	indents := make(map[string]string)

	err := t.Walk(p, func(np string, n Node) error {
		if np == root {
			label := root
			if _, ok := n.(*Dir); ok && root != Separator {
				label += Separator
			}
			sb.WriteString(label + "\n")
			return nil
		}

		parent, name := path.Dir(np), path.Base(np)
		pn, err := t.Lookup(parent)
		if err != nil {
			return err
		}
		siblings := pn.(*Dir).Names()

		branch, next := "├── ", "│   "
		if siblings[len(siblings)-1] == name {
			branch, next = "└── ", "    "
		}
		indent := indents[parent]
		indents[np] = indent + next

		sb.WriteString(indent + branch + entryFor(name, n).DisplayName() + "\n")
		return nil
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
