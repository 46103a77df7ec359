package shell

import (
	"sort"
	"strings"

	"github.com/np-os/npos/internal/vfs"
)

// Completer provides tab-completion and cycling for the last word of an input line.
// The first word completes against command names, later words against virtual paths.
// It tracks state across Tab presses to cycle through matches.
//
// Usage:
//
//	// On Tab press:
//	line = completer.Next(tree, cwd, line)
//
//	// On any other edit:
//	completer.Reset()
type Completer struct {
	matches    []string
	cycleIndex int
	lastKey    string
}

// Next returns the next completion of line.
// On first call (or after the completed context changes) it computes matches;
// subsequent calls with the same context cycle through them.
func (c *Completer) Next(tree *vfs.Tree, cwd, line string) string {
	head, word := splitLastWord(line)
	parent, prefix := splitPathWord(word)
	isCommand := strings.TrimSpace(head) == ""
	if isCommand {
		parent, prefix = "", word
	}

	key := head + "\x00" + parent
	if key != c.lastKey || c.matches == nil {
		if isCommand {
			c.matches = matchCommands(prefix)
		} else {
			c.matches = matchEntries(tree, vfs.Resolve(parent, cwd), prefix)
		}
		c.cycleIndex = 0
		c.lastKey = key

		if len(c.matches) == 0 {
			return line
		}

		// First Tab: extend to the common prefix if that adds anything
		if len(c.matches) > 1 {
			common := longestCommonPrefix(c.matches)
			if len(common) > len(prefix) {
				return head + parent + common
			}
		}
		return head + parent + c.matches[c.cycleIndex]
	}

	if len(c.matches) == 0 {
		return line
	}
	c.cycleIndex = (c.cycleIndex + 1) % len(c.matches)
	return head + parent + c.matches[c.cycleIndex]
}

// Reset clears the cycle state. Call this when the line is edited by other means.
func (c *Completer) Reset() {
	c.matches = nil
	c.cycleIndex = 0
	c.lastKey = ""
}

func matchCommands(prefix string) []string {
	low := strings.ToLower(prefix)
	var matches []string
	for _, name := range Commands() {
		if strings.HasPrefix(name, low) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	return matches
}

func matchEntries(tree *vfs.Tree, dir, prefix string) []string {
	entries, err := tree.ReadDir(dir)
	if err != nil {
		return nil
	}
	low := strings.ToLower(prefix)
	var matches []string
	for _, e := range entries {
		if strings.HasPrefix(strings.ToLower(e.Name), low) {
			matches = append(matches, e.DisplayName())
		}
	}
	return matches
}

// splitLastWord splits line into everything up to the last word and the word itself.
//
//	"cat doc" → ("cat ", "doc")
//	"cat "    → ("cat ", "")
//	"ca"      → ("", "ca")
func splitLastWord(line string) (head, word string) {
	i := strings.LastIndexAny(line, " \t")
	return line[:i+1], line[i+1:]
}

// splitPathWord splits a path word into its directory part (kept verbatim,
// including the trailing slash) and the name prefix being completed.
//
//	"documents/re" → ("documents/", "re")
//	"/etc/"        → ("/etc/", "")
//	"no"           → ("", "no")
func splitPathWord(word string) (parent, prefix string) {
	i := strings.LastIndex(word, vfs.Separator)
	return word[:i+1], word[i+1:]
}

// longestCommonPrefix finds the longest common prefix among strs (case-insensitive).
func longestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	if len(strs) == 1 {
		return strs[0]
	}

	lowered := make([]string, len(strs))
	for i, s := range strs {
		lowered[i] = strings.ToLower(s)
	}

	first := lowered[0]
	rest := lowered[1:]
	for i := 0; i < len(first); i++ {
		ch := first[i]
		for _, s := range rest {
			if i >= len(s) || s[i] != ch {
				return strs[0][:i]
			}
		}
	}
	return strs[0]
}
