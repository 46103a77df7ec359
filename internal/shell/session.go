package shell

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/np-os/npos/internal/logging"
	"github.com/np-os/npos/internal/resume"
	"github.com/np-os/npos/internal/vfs"
	"github.com/np-os/npos/pkg/npos"
)

// Options configures a new Session.
type Options struct {
	Tree         *vfs.Tree
	User         string
	Hostname     string
	HistoryLimit int
	Boot         BootScript // nil selects DefaultBootScript
	Clock        func() time.Time
	Logger       npos.Logger
}

// Result reports side effects of a submitted line that the host must carry out.
type Result struct {
	// Exit asks the host to leave the shell view after ExitDelay.
	Exit      bool
	ExitDelay time.Duration
}

// Session is the state of one shell view.
type Session struct {
	id       uuid.UUID
	tree     *vfs.Tree
	user     string
	hostname string
	home     string
	clock    func() time.Time
	logger   npos.Logger

	cwd       string
	lines     []OutputLine
	nextID    int
	history   *History
	buffer    string
	completer Completer

	boot     BootScript
	bootNext int
	booted   bool

	exitRequested bool
}

// NewSession creates a booting session rooted in the user's home directory.
// A nil Tree is seeded with the defaults and the embedded resume.
func NewSession(opts Options) *Session {
	if opts.User == "" {
		opts.User = npos.DefaultUser
	}
	if opts.Hostname == "" {
		opts.Hostname = npos.DefaultHostname
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNullLogger()
	}
	if opts.Tree == nil {
		opts.Tree = vfs.Seed(vfs.SeedOptions{User: opts.User, Hostname: opts.Hostname, Resume: resume.Default()})
	}
	if opts.Boot == nil {
		opts.Boot = DefaultBootScript(opts.User, opts.Clock())
	}

	home := npos.HomeDir(opts.User)
	s := &Session{
		id:       uuid.New(),
		tree:     opts.Tree,
		user:     opts.User,
		hostname: opts.Hostname,
		home:     home,
		clock:    opts.Clock,
		logger:   opts.Logger,
		cwd:      home,
		history:  NewHistory(opts.HistoryLimit),
		boot:     opts.Boot,
	}
	s.logger.Verbose("session %s: created for %s@%s", s.id, s.user, s.hostname)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// User returns the logged-in user name.
func (s *Session) User() string { return s.user }

// Hostname returns the simulated host name.
func (s *Session) Hostname() string { return s.hostname }

// Home returns the home directory path.
func (s *Session) Home() string { return s.home }

// Cwd returns the current working directory.
func (s *Session) Cwd() string { return s.cwd }

// Lines returns a copy of the output log.
func (s *Session) Lines() []OutputLine {
	out := make([]OutputLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// History returns the session history.
func (s *Session) History() *History { return s.history }

// Buffer returns the current input line.
func (s *Session) Buffer() string { return s.buffer }

// ExitRequested reports whether exit has been run.
func (s *Session) ExitRequested() bool { return s.exitRequested }

// Booted reports whether the session accepts input.
func (s *Session) Booted() bool { return s.booted }

// BootScript returns the script this session boots with.
func (s *Session) BootScript() BootScript { return s.boot }

// EmitBoot appends boot step i. Steps are accepted strictly in order:
// any index other than the next pending one is ignored and false is returned.
func (s *Session) EmitBoot(i int) bool {
	if s.booted || i != s.bootNext || i >= len(s.boot) {
		return false
	}
	s.appendLine(KindBoot, s.boot[i].Text, "")
	s.bootNext++
	return true
}

// BootPending returns the number of boot steps not yet emitted.
func (s *Session) BootPending() int { return len(s.boot) - s.bootNext }

// CompleteBoot emits any pending boot steps and enables input.
// The transition happens once; later calls are no-ops.
func (s *Session) CompleteBoot() {
	if s.booted {
		return
	}
	for s.bootNext < len(s.boot) {
		s.EmitBoot(s.bootNext)
	}
	s.booted = true
	s.logger.Verbose("session %s: boot complete", s.id)
}

// SetBuffer replaces the input line. Ignored while booting.
func (s *Session) SetBuffer(text string) {
	if !s.booted {
		return
	}
	if text != s.buffer {
		s.completer.Reset()
	}
	s.buffer = text
}

// Complete replaces the last word of the input line with its next completion.
func (s *Session) Complete() {
	if !s.booted {
		return
	}
	s.buffer = s.completer.Next(s.tree, s.cwd, s.buffer)
}

// Submit runs the input line and clears it. Ignored while booting.
func (s *Session) Submit() Result {
	if !s.booted {
		return Result{}
	}
	line := s.buffer
	s.buffer = ""
	s.completer.Reset()
	return s.Execute(line)
}

// HistoryUp recalls the next older history entry into the input line.
func (s *Session) HistoryUp() {
	if !s.booted {
		return
	}
	if line, ok := s.history.Up(); ok {
		s.buffer = line
		s.completer.Reset()
	}
}

// HistoryDown recalls the next newer history entry, clearing the input line
// when moving past the newest one.
func (s *Session) HistoryDown() {
	if !s.booted {
		return
	}
	if line, ok := s.history.Down(); ok {
		s.buffer = line
		s.completer.Reset()
	}
}

// ClearScreen empties the output log, leaving history and cwd untouched.
func (s *Session) ClearScreen() {
	if !s.booted {
		return
	}
	s.lines = nil
}

// Execute echoes line, records it in history and dispatches it.
// Ignored while booting.
func (s *Session) Execute(line string) Result {
	if !s.booted {
		return Result{}
	}

	fields := strings.Fields(line)
	var name string
	var args []string
	if len(fields) > 0 {
		name = strings.ToLower(fields[0])
		args = fields[1:]
	}

	s.appendLine(KindInput, line, s.cwd)
	s.history.Push(line)

	if name == "" {
		return Result{}
	}

	cmd, ok := commands[name]
	if !ok {
		s.logger.Verbose("session %s: unknown command %q", s.id, fields[0])
		s.errorf("%s: command not found", fields[0])
		return Result{}
	}
	s.logger.Verbose("session %s: %s %v (cwd %s)", s.id, name, args, s.cwd)
	return cmd(s, args)
}

// Prompt returns the prompt for the current working directory.
func (s *Session) Prompt() string {
	return s.PromptFor(s.cwd)
}

// PromptFor returns the prompt shown for path, abbreviating the home directory to "~".
func (s *Session) PromptFor(path string) string {
	return s.user + "@" + s.hostname + ":" + s.DisplayPath(path) + "$ "
}

// DisplayPath abbreviates path with "~" when it lies within the home directory.
func (s *Session) DisplayPath(path string) string {
	if vfs.Within(path, s.home) {
		return "~" + strings.TrimPrefix(path, s.home)
	}
	return path
}

func (s *Session) appendLine(kind LineKind, text, path string) {
	s.nextID++
	s.lines = append(s.lines, OutputLine{ID: s.nextID, Kind: kind, Text: text, Path: path})
}

func (s *Session) println(text string) {
	s.appendLine(KindOutput, text, "")
}
