package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for the shell host.
type Mode int

const (
	// ModeNonInteractive is used for scripts, CI and piped input. The shell runs line by line.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal. The shell runs full screen.
	ModeInteractive
)

// String returns the mode name used in verbose logs.
func (m Mode) String() string {
	if m == ModeInteractive {
		return "interactive"
	}
	return "line"
}

// DetectMode determines whether the shell should run full screen or line by line.
//
// Returns ModeNonInteractive if:
//   - NPOS_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - stdin or stdout is not a terminal (piped input, redirected output)
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	return detectMode(os.Getenv, func(f *os.File) bool {
		return term.IsTerminal(int(f.Fd()))
	})
}

func detectMode(getenv func(string) string, isTerminal func(*os.File) bool) Mode {
	// Check environment overrides first
	if getenv("NPOS_NON_INTERACTIVE") == "1" {
		return ModeNonInteractive
	}
	if getenv("CI") != "" {
		return ModeNonInteractive
	}

	// Keystrokes are read from stdin and the alt screen is drawn on stdout
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
