package shell

import "github.com/np-os/npos/pkg/npos"

// History keeps the most recent submitted lines, newest first, and a browsing cursor.
// A cursor of -1 means a fresh line is being edited.
type History struct {
	entries []string
	limit   int
	cursor  int
}

// NewHistory creates a history bounded to limit entries.
// A non-positive limit falls back to npos.DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = npos.DefaultHistoryLimit
	}
	return &History{limit: limit, cursor: -1}
}

// Push records line as the most recent entry, evicting the oldest past the limit,
// and resets the cursor.
func (h *History) Push(line string) {
	h.entries = append([]string{line}, h.entries...)
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
	h.cursor = -1
}

// Up moves one step towards older entries and returns the entry under the cursor.
// ok is false when there is nothing older.
func (h *History) Up() (line string, ok bool) {
	if h.cursor+1 >= len(h.entries) {
		return "", false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// Down moves one step towards newer entries. Moving past the newest entry
// returns to the fresh line and yields "". ok is false when not browsing.
func (h *History) Down() (line string, ok bool) {
	switch {
	case h.cursor > 0:
		h.cursor--
		return h.entries[h.cursor], true
	case h.cursor == 0:
		h.cursor = -1
		return "", true
	}
	return "", false
}

// Cursor returns the browsing position, -1 when not browsing.
func (h *History) Cursor() int { return h.cursor }

// Len returns the number of stored entries.
func (h *History) Len() int { return len(h.entries) }

// Entries returns a copy of the stored entries, newest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
