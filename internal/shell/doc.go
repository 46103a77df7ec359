// Package shell implements the NP-OS command interpreter and its per-view session state.
//
// A Session starts in the booting state: the boot script is appended to the
// output log step by step and every input entry point is inert. Once the boot
// completes the session is interactive for the rest of its life. Each
// submitted line is echoed, recorded in history and dispatched to a fixed
// command table that reads the shared, immutable vfs.Tree.
//
// Sessions are not safe for concurrent use; each is owned by one host loop.
package shell
