// Package vfs provides the read-only virtual filesystem behind the simulated shell.
//
// The tree is a sum type of two node kinds:
//   - *Dir: named children, no content
//   - *File: text content, possibly empty
//
// A Tree is built once (see Seed) and never mutated afterwards, so a single
// instance can be shared by any number of sessions without locking.
//
// Path handling:
//   - Resolve: pure path algebra turning a typed path and a working directory
//     into a canonical absolute path
//   - Tree.Lookup: walks a path segment by segment against the tree
package vfs
