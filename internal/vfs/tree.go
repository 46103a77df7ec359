package vfs

import (
	"fmt"
	"path"
)

// Tree is an immutable virtual filesystem rooted at "/".
type Tree struct {
	root *Dir
}

// NewTree creates a tree over root. A nil root yields an empty tree.
func NewTree(root *Dir) *Tree {
	if root == nil {
		root = NewDir(nil)
	}
	return &Tree{root: root}
}

// Root returns the root directory.
func (t *Tree) Root() *Dir { return t.root }

// Lookup returns the node at the absolute path p.
// Empty segments are ignored. The walk fails with ErrNotFound as soon as a
// segment is missing or an intermediate node is not a directory.
func (t *Tree) Lookup(p string) (Node, error) {
	var cur Node = t.root
	for _, seg := range Split(p) {
		switch n := cur.(type) {
		case *Dir:
			child, ok := n.Child(seg)
			if !ok {
				return nil, fmt.Errorf("%s: %w", p, ErrNotFound)
			}
			cur = child
		case *File:
			return nil, fmt.Errorf("%s: %w", p, ErrNotFound)
		default:
			return nil, fmt.Errorf("%s: unexpected node %T", p, n)
		}
	}
	return cur, nil
}

// ReadFile returns the content of the file at p.
func (t *Tree) ReadFile(p string) (string, error) {
	n, err := t.Lookup(p)
	if err != nil {
		return "", err
	}
	switch n := n.(type) {
	case *File:
		return n.Content(), nil
	case *Dir:
		return "", fmt.Errorf("%s: %w", p, ErrIsDirectory)
	}
	return "", fmt.Errorf("%s: unexpected node %T", p, n)
}

// ReadDir returns the entries of the directory at p, sorted by name.
func (t *Tree) ReadDir(p string) ([]Entry, error) {
	n, err := t.Lookup(p)
	if err != nil {
		return nil, err
	}
	dir, ok := n.(*Dir)
	if !ok {
		return nil, fmt.Errorf("%s: %w", p, ErrNotDirectory)
	}
	names := dir.Names()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		child, _ := dir.Child(name)
		entries = append(entries, entryFor(name, child))
	}
	return entries, nil
}

// Stat returns the entry describing the node at p.
func (t *Tree) Stat(p string) (Entry, error) {
	n, err := t.Lookup(p)
	if err != nil {
		return Entry{}, err
	}
	segs := Split(p)
	name := Separator
	if len(segs) > 0 {
		name = segs[len(segs)-1]
	}
	return entryFor(name, n), nil
}

// WalkFunc is called for every node visited by Walk.
// Returning an error stops the walk.
type WalkFunc func(p string, n Node) error

// Walk visits the node at root and everything below it, depth first,
// children in lexical order.
func (t *Tree) Walk(root string, fn WalkFunc) error {
	n, err := t.Lookup(root)
	if err != nil {
		return err
	}
	return walk(Resolve(root, Separator), n, fn)
}

func walk(p string, n Node, fn WalkFunc) error {
	if err := fn(p, n); err != nil {
		return err
	}
	dir, ok := n.(*Dir)
	if !ok {
		return nil
	}
	for _, name := range dir.Names() {
		child, _ := dir.Child(name)
		if err := walk(path.Join(p, name), child, fn); err != nil {
			return err
		}
	}
	return nil
}
