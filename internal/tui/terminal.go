package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/np-os/npos/internal/shell"
)

// TickFunc schedules fn after d. It has the signature of tea.Tick.
type TickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Options configures a Terminal.
type Options struct {
	Keys KeyMap
	// Now and Tick drive the boot and exit timers. Zero values use time.Now and tea.Tick.
	Now  func() time.Time
	Tick TickFunc
	// ShowHelp renders the key binding summary under the prompt.
	ShowHelp bool
}

type bootStepMsg struct{ index int }

type bootDoneMsg struct{}

type exitMsg struct{}

// Terminal is the full-screen host of a shell session.
// It renders the session log in a scrollable viewport with the prompt and
// input line below it, and plays the boot script before accepting input.
type Terminal struct {
	session  *shell.Session
	keys     KeyMap
	now      func() time.Time
	tick     TickFunc
	showHelp bool

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	bootStart time.Time
	width     int
	height    int
	exiting   bool
	quitting  bool
}

// NewTerminal creates a terminal view over session.
// A session that has already completed its boot starts accepting input immediately.
func NewTerminal(session *shell.Session, opts Options) Terminal {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Tick == nil {
		opts.Tick = tea.Tick
	}
	if len(opts.Keys.Submit.Keys()) == 0 {
		opts.Keys = DefaultKeyMap()
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.TextStyle = InputStyle
	ti.Cursor.Style = InputStyle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	t := Terminal{
		session:   session,
		keys:      opts.Keys,
		now:       opts.Now,
		tick:      opts.Tick,
		showHelp:  opts.ShowHelp,
		input:     ti,
		viewport:  viewport.New(80, 23),
		spinner:   sp,
		bootStart: opts.Now(),
		width:     80,
		height:    24,
	}
	if session.Booted() {
		t.input.Focus()
	}
	t.refresh()
	return t
}

// Init implements tea.Model.
func (t Terminal) Init() tea.Cmd {
	if t.session.Booted() {
		return textinput.Blink
	}
	return tea.Batch(t.spinner.Tick, t.scheduleBoot(0))
}

// scheduleBoot waits for boot step i, or for the end of the boot once all steps are out.
func (t Terminal) scheduleBoot(i int) tea.Cmd {
	script := t.session.BootScript()
	elapsed := t.now().Sub(t.bootStart)
	if i < len(script) {
		return t.tick(script.Wait(i, elapsed), func(time.Time) tea.Msg {
			return bootStepMsg{index: i}
		})
	}
	wait := script.Duration() - elapsed
	if wait < 0 {
		wait = 0
	}
	return t.tick(wait, func(time.Time) tea.Msg { return bootDoneMsg{} })
}

// Update implements tea.Model.
func (t Terminal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.resize(msg.Width, msg.Height)
		return t, nil

	case bootStepMsg:
		t.session.EmitBoot(msg.index)
		t.refresh()
		return t, t.scheduleBoot(msg.index + 1)

	case bootDoneMsg:
		t.session.CompleteBoot()
		t.refresh()
		cmd := t.input.Focus()
		return t, cmd

	case exitMsg:
		t.quitting = true
		return t, tea.Quit

	case spinner.TickMsg:
		if t.session.Booted() {
			return t, nil
		}
		var cmd tea.Cmd
		t.spinner, cmd = t.spinner.Update(msg)
		return t, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		t.viewport, cmd = t.viewport.Update(msg)
		return t, cmd

	case tea.KeyMsg:
		// ctrl+c always quits
		if key.Matches(msg, t.keys.Quit) {
			t.quitting = true
			return t, tea.Quit
		}
		if key.Matches(msg, t.keys.ScrollUp, t.keys.ScrollDown) {
			var cmd tea.Cmd
			t.viewport, cmd = t.viewport.Update(msg)
			return t, cmd
		}
		if !t.session.Booted() || t.exiting {
			return t, nil
		}
		return t.updatePrompt(msg)
	}

	if t.session.Booted() && !t.exiting {
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return t, cmd
	}
	return t, nil
}

func (t Terminal) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, t.keys.Submit):
		t.session.SetBuffer(t.input.Value())
		res := t.session.Submit()
		t.syncInput()
		t.refresh()
		if res.Exit {
			t.exiting = true
			t.input.Blur()
			return t, t.tick(res.ExitDelay, func(time.Time) tea.Msg { return exitMsg{} })
		}
		return t, nil

	case key.Matches(msg, t.keys.HistoryUp):
		t.session.HistoryUp()
		t.syncInput()
		return t, nil

	case key.Matches(msg, t.keys.HistoryDown):
		t.session.HistoryDown()
		t.syncInput()
		return t, nil

	case key.Matches(msg, t.keys.Clear):
		t.session.ClearScreen()
		t.refresh()
		return t, nil

	case key.Matches(msg, t.keys.Complete):
		t.session.SetBuffer(t.input.Value())
		t.session.Complete()
		t.syncInput()
		return t, nil
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	t.session.SetBuffer(t.input.Value())
	return t, cmd
}

// syncInput copies the session buffer into the input field.
func (t *Terminal) syncInput() {
	t.input.SetValue(t.session.Buffer())
	t.input.CursorEnd()
}

func (t *Terminal) resize(width, height int) {
	t.width = width
	t.height = height
	t.viewport.Width = width
	t.viewport.Height = max(height-t.footerHeight(), 1)
	t.refresh()
}

func (t Terminal) footerHeight() int {
	if t.showHelp {
		return 2
	}
	return 1
}

// refresh re-renders the session log into the viewport, scrolls to the newest
// line and fits the input field to what the current prompt leaves of the row.
func (t *Terminal) refresh() {
	t.viewport.SetContent(Render(t.session, t.width))
	t.viewport.GotoBottom()
	t.input.Width = max(t.width-lipgloss.Width(t.session.Prompt())-1, 1)
}

// View implements tea.Model.
func (t Terminal) View() string {
	if t.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(t.viewport.View())
	b.WriteString("\n")

	switch {
	case !t.session.Booted():
		b.WriteString(t.spinner.View() + " " + BootStyle.Render("booting..."))
	case t.exiting:
		b.WriteString(SystemStyle.Render("logout"))
	default:
		b.WriteString(PromptStyle.Render(t.session.Prompt()))
		b.WriteString(t.input.View())
	}

	if t.showHelp {
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render(t.keys.HelpText()))
	}
	return b.String()
}

// Session returns the session driven by the terminal.
func (t Terminal) Session() *shell.Session {
	return t.session
}

// Render draws the session log. Input lines are prefixed with the prompt of the
// directory they were typed in. A positive width wraps long lines.
func Render(session *shell.Session, width int) string {
	lines := session.Lines()
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		style := LineStyle(line.Kind)
		if width > 0 {
			style = style.Width(width)
		}
		if line.Kind == shell.KindInput {
			out = append(out, style.Render(PromptStyle.Render(session.PromptFor(line.Path))+line.Text))
			continue
		}
		out = append(out, style.Render(line.Text))
	}
	return strings.Join(out, "\n")
}
