package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/np-os/npos/internal/resume"
	"github.com/np-os/npos/internal/vfs"
	"github.com/np-os/npos/pkg/npos"
)

func TestHelp(t *testing.T) {
	s := newBootedSession(t)
	out := run(t, s, "help")

	require.Len(t, out, 1)
	assert.Equal(t, KindOutput, out[0].Kind)
	assert.True(t, strings.HasPrefix(out[0].Text, "Available commands:\n"))
	for _, name := range Commands() {
		assert.Contains(t, out[0].Text, "  "+name, "help must mention %s", name)
	}
}

func TestCommandNameIsCaseInsensitive(t *testing.T) {
	s := newBootedSession(t)
	out := run(t, s, "PWD")

	require.Len(t, out, 1)
	assert.Equal(t, "/home/user", out[0].Text)
}

func TestLs_Home(t *testing.T) {
	s := newBootedSession(t)
	out := run(t, s, "ls")

	require.Len(t, out, 1)
	assert.Equal(t, "documents/\nnotes.txt\nprojects/\nwelcome.txt", out[0].Text)
}

func TestLs_Path(t *testing.T) {
	s := newBootedSession(t)
	out := run(t, s, "ls /etc")

	require.Len(t, out, 1)
	assert.Equal(t, "hostname\nos-release", out[0].Text)
}

func TestLs_EmptyDirectory(t *testing.T) {
	s := newBootedSession(t)
	out := run(t, s, "ls projects/secret_project_alpha")

	require.Len(t, out, 1)
	assert.Equal(t, KindOutput, out[0].Kind)
	assert.Equal(t, "(empty directory)", out[0].Text)
}

func TestLs_Errors(t *testing.T) {
	s := newBootedSession(t)

	out := run(t, s, "ls nowhere")
	require.Len(t, out, 1)
	assert.Equal(t, KindError, out[0].Kind)
	assert.Equal(t, "ls: cannot access 'nowhere': No such file or directory", out[0].Text)

	out = run(t, s, "ls notes.txt")
	require.Len(t, out, 1)
	assert.Equal(t, "ls: cannot access 'notes.txt': No such file or directory", out[0].Text)
}

func TestCat(t *testing.T) {
	s := newBootedSession(t)

	out := run(t, s, "cat notes.txt")
	require.Len(t, out, 1)
	assert.Equal(t, KindOutput, out[0].Kind)
	assert.Equal(t, vfs.NotesContent, out[0].Text)

	out = run(t, s, "cat documents/resume.txt")
	require.Len(t, out, 1)
	assert.Equal(t, resume.Default().Text(), out[0].Text)
}

func TestCat_EmptyFile(t *testing.T) {
	s := newBootedSession(t)
	out := run(t, s, "cat /bin/ls")

	require.Len(t, out, 1)
	assert.Equal(t, "(empty file)", out[0].Text)
}

func TestCat_Errors(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"cat", "cat: missing operand"},
		{"cat documents", "cat: documents: Is a directory"},
		{"cat missing.txt", "cat: missing.txt: No such file or directory"},
		{"cat notes.txt/x", "cat: notes.txt/x: No such file or directory"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			s := newBootedSession(t)
			out := run(t, s, tt.line)
			require.Len(t, out, 1)
			assert.Equal(t, KindError, out[0].Kind)
			assert.Equal(t, tt.want, out[0].Text)
		})
	}
}

func TestCd(t *testing.T) {
	s := newBootedSession(t)

	assert.Empty(t, run(t, s, "cd documents"))
	assert.Equal(t, "/home/user/documents", s.Cwd())

	run(t, s, "cd ../projects/./secret_project_alpha")
	assert.Equal(t, "/home/user/projects/secret_project_alpha", s.Cwd())

	run(t, s, "cd ../../../../../..")
	assert.Equal(t, "/", s.Cwd())

	run(t, s, "cd")
	assert.Equal(t, "/home/user", s.Cwd())
}

func TestCd_AbsolutePathIsNormalized(t *testing.T) {
	s := newBootedSession(t)

	run(t, s, "cd /home/../etc/")
	assert.Equal(t, "/etc", s.Cwd())

	_, err := s.tree.Lookup(s.Cwd())
	assert.NoError(t, err)
}

func TestCd_Errors(t *testing.T) {
	s := newBootedSession(t)

	out := run(t, s, "cd notes.txt")
	require.Len(t, out, 1)
	assert.Equal(t, KindError, out[0].Kind)
	assert.Equal(t, "cd: notes.txt: Not a directory", out[0].Text)

	out = run(t, s, "cd nowhere")
	require.Len(t, out, 1)
	assert.Equal(t, "cd: nowhere: No such file or directory", out[0].Text)

	assert.Equal(t, "/home/user", s.Cwd(), "failed cd leaves cwd unchanged")
}

func TestCd_ResolvedPathsAlwaysLookUp(t *testing.T) {
	s := newBootedSession(t)
	targets := []string{"documents", "..", "/", "etc", "../bin", "/home/user/projects", "secret_project_alpha", "../..", "."}

	for _, target := range targets {
		run(t, s, "cd "+target)
		n, err := s.tree.Lookup(s.Cwd())
		require.NoError(t, err, "cwd %s after cd %s", s.Cwd(), target)
		_, ok := n.(*vfs.Dir)
		assert.True(t, ok, "cwd %s must be a directory", s.Cwd())
	}
}

func TestEcho(t *testing.T) {
	s := newBootedSession(t)

	out := run(t, s, "echo   hello    world ")
	require.Len(t, out, 1)
	assert.Equal(t, "hello world", out[0].Text)

	out = run(t, s, "echo")
	require.Len(t, out, 1)
	assert.Equal(t, "", out[0].Text)
}

func TestClear(t *testing.T) {
	s := newBootedSession(t)
	run(t, s, "cd /etc")
	run(t, s, "ls")

	s.Execute("clear")

	assert.Empty(t, s.Lines())
	assert.Equal(t, "/etc", s.Cwd())
	assert.Equal(t, []string{"clear", "ls", "cd /etc"}, s.History().Entries())
}

func TestDate(t *testing.T) {
	s := newBootedSession(t)
	out := run(t, s, "date")

	require.Len(t, out, 1)
	assert.Equal(t, "Wed Oct 14 2026 09:30:00 GMT+0000 (UTC)", out[0].Text)
}

func TestWhoami(t *testing.T) {
	s := newBootedSession(t)
	out := run(t, s, "whoami")

	require.Len(t, out, 1)
	assert.Equal(t, "user", out[0].Text)
}

func TestUname(t *testing.T) {
	s := newBootedSession(t)

	out := run(t, s, "uname")
	require.Len(t, out, 1)
	assert.Equal(t, npos.OSName, out[0].Text)

	out = run(t, s, "uname -a")
	require.Len(t, out, 1)
	assert.Equal(t, npos.SystemIdentification, out[0].Text)
}

func TestExit(t *testing.T) {
	s := newBootedSession(t)
	before := len(s.Lines())

	res := s.Execute("exit")

	assert.True(t, res.Exit)
	assert.Equal(t, npos.ExitDelay, res.ExitDelay)
	assert.True(t, s.ExitRequested())

	lines := s.Lines()[before:]
	require.Len(t, lines, 2)
	assert.Equal(t, KindInput, lines[0].Kind)
	assert.Equal(t, KindSystem, lines[1].Kind)
	assert.Equal(t, "Shutting down NP-OS...", lines[1].Text)
}

func TestOnlyExitRequestsNavigation(t *testing.T) {
	s := newBootedSession(t)
	for _, line := range []string{"help", "ls", "cat", "cd", "pwd", "echo x", "clear", "date", "whoami", "uname", "bogus", ""} {
		res := s.Execute(line)
		assert.False(t, res.Exit, "%q must not request exit", line)
	}
	assert.False(t, s.ExitRequested())
}

func TestEmptyLine(t *testing.T) {
	s := newBootedSession(t)

	assert.Empty(t, run(t, s, "   "))
	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, KindInput, lines[0].Kind)
	assert.Equal(t, []string{"   "}, s.History().Entries())
}

func TestUnknownCommand(t *testing.T) {
	s := newBootedSession(t)
	out := run(t, s, "Hack the-planet")

	require.Len(t, out, 1)
	assert.Equal(t, KindError, out[0].Kind)
	assert.Equal(t, "Hack: command not found", out[0].Text)
}

func TestFailuresProduceExactlyOneErrorLine(t *testing.T) {
	s := newBootedSession(t)
	var errs []OutputLine
	for _, line := range []string{"cat", "cat nope", "cat documents", "cd nope", "cd notes.txt", "ls nope", "nope"} {
		out := run(t, s, line)
		require.Len(t, out, 1, line)
		assert.Equal(t, KindError, out[0].Kind, line)
		errs = append(errs, out...)
	}
	assert.Equal(t, []string{
		"cat: missing operand",
		"cat: nope: No such file or directory",
		"cat: documents: Is a directory",
		"cd: nope: No such file or directory",
		"cd: notes.txt: Not a directory",
		"ls: cannot access 'nope': No such file or directory",
		"nope: command not found",
	}, texts(errs))
	assert.Equal(t, "/home/user", s.Cwd())
}
