package vfs

import (
	"errors"
	"sort"
)

// Sentinel errors returned by Tree queries.
var (
	// ErrNotFound indicates a path segment is missing or traverses a file.
	ErrNotFound = errors.New("no such file or directory")

	// ErrIsDirectory indicates a file operation was attempted on a directory.
	ErrIsDirectory = errors.New("is a directory")

	// ErrNotDirectory indicates a directory operation was attempted on a file.
	ErrNotDirectory = errors.New("not a directory")
)

// Node is a filesystem node: either *Dir or *File.
// The interface is sealed; no other implementations exist.
type Node interface {
	node()
}

// File is a leaf node holding text content.
type File struct {
	content string
}

// NewFile creates a file node. Empty content is allowed.
func NewFile(content string) *File {
	return &File{content: content}
}

// Content returns the file content.
func (f *File) Content() string { return f.content }

// Size returns the content length in bytes.
func (f *File) Size() int { return len(f.content) }

func (*File) node() {}

// Dir is a directory node mapping names to child nodes.
type Dir struct {
	children map[string]Node
}

// NewDir creates a directory node from the given children.
// The map is copied, so later changes by the caller do not reach the tree.
func NewDir(children map[string]Node) *Dir {
	d := &Dir{children: make(map[string]Node, len(children))}
	for name, child := range children {
		d.children[name] = child
	}
	return d
}

// Child returns the named child.
func (d *Dir) Child(name string) (Node, bool) {
	n, ok := d.children[name]
	return n, ok
}

// Names returns the child names in lexical order.
func (d *Dir) Names() []string {
	names := make([]string, 0, len(d.children))
	for name := range d.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of children.
func (d *Dir) Len() int { return len(d.children) }

func (*Dir) node() {}

// Entry describes a node as seen from its parent directory.
type Entry struct {
	Name  string
	IsDir bool
	Size  int
}

// DisplayName returns the name as listed by ls: directories get a trailing slash.
func (e Entry) DisplayName() string {
	if e.IsDir {
		return e.Name + "/"
	}
	return e.Name
}

func entryFor(name string, n Node) Entry {
	switch n := n.(type) {
	case *Dir:
		return Entry{Name: name, IsDir: true}
	case *File:
		return Entry{Name: name, Size: n.Size()}
	}
	return Entry{Name: name}
}
