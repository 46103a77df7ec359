package vfs

import "strings"

// Separator is the virtual path separator.
const Separator = "/"

// Split breaks a path into its non-empty segments.
// "/a//b/" and "a/b" both yield [a b].
func Split(p string) []string {
	parts := strings.Split(p, Separator)
	segs := parts[:0]
	for _, part := range parts {
		if part != "" {
			segs = append(segs, part)
		}
	}
	return segs
}

// Resolve converts a typed path into a canonical absolute path.
//
// Relative input is appended to cwd. Empty and "." segments are dropped,
// ".." pops the previous segment and is a no-op at the root. Absolute input
// goes through the same normalization, so "/a/../b" resolves to "/b".
// The result always starts with "/" and never contains "." or ".." segments.
//
// Resolve does not consult any tree; existence is checked by Tree.Lookup.
func Resolve(input, cwd string) string {
	var segs []string
	if !strings.HasPrefix(input, Separator) {
		segs = strings.Split(cwd, Separator)
	}
	segs = append(segs, strings.Split(input, Separator)...)

	resolved := make([]string, 0, len(segs))
	for _, seg := range segs {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(resolved) > 0 {
				resolved = resolved[:len(resolved)-1]
			}
		default:
			resolved = append(resolved, seg)
		}
	}
	return Separator + strings.Join(resolved, Separator)
}

// Within reports whether p is base or lies below it, comparing whole segments.
// "/home/username" is not within "/home/user".
func Within(p, base string) bool {
	if base == Separator {
		return strings.HasPrefix(p, Separator)
	}
	return p == base || strings.HasPrefix(p, base+Separator)
}
