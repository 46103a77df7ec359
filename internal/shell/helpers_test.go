package shell

import (
	"testing"
	"time"

	"github.com/np-os/npos/internal/resume"
	"github.com/np-os/npos/internal/vfs"
)

var fixedNow = time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	tree := vfs.Seed(vfs.SeedOptions{User: "user", Hostname: "np-os", Resume: resume.Default()})
	return NewSession(Options{
		Tree:     tree,
		User:     "user",
		Hostname: "np-os",
		Clock:    func() time.Time { return fixedNow },
	})
}

func newBootedSession(t *testing.T) *Session {
	t.Helper()
	s := newTestSession(t)
	s.CompleteBoot()
	s.ClearScreen()
	return s
}

// run executes line and returns the lines it appended after the input echo.
func run(t *testing.T, s *Session, line string) []OutputLine {
	t.Helper()
	before := len(s.Lines())
	s.Execute(line)
	after := s.Lines()
	if len(after) <= before {
		return nil
	}
	return after[before+1:]
}

func texts(lines []OutputLine) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}
