package tui

import (
	"os"
	"testing"
)

func envOf(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func allTerminals(*os.File) bool { return true }

func TestDetectMode_NPOS_NON_INTERACTIVE(t *testing.T) {
	got := detectMode(envOf(map[string]string{"NPOS_NON_INTERACTIVE": "1"}), allTerminals)
	if got != ModeNonInteractive {
		t.Errorf("detectMode() = %v, want ModeNonInteractive", got)
	}
}

func TestDetectMode_NPOS_NON_INTERACTIVE_WrongValue(t *testing.T) {
	// Only "1" triggers non-interactive, not "true" or "yes"
	got := detectMode(envOf(map[string]string{"NPOS_NON_INTERACTIVE": "true"}), allTerminals)
	if got != ModeInteractive {
		t.Errorf("detectMode() = %v, want ModeInteractive", got)
	}
}

func TestDetectMode_CI(t *testing.T) {
	got := detectMode(envOf(map[string]string{"CI": "true"}), allTerminals)
	if got != ModeNonInteractive {
		t.Errorf("detectMode() = %v, want ModeNonInteractive", got)
	}
}

func TestDetectMode_StdoutRedirected(t *testing.T) {
	got := detectMode(envOf(nil), func(f *os.File) bool { return f == os.Stdin })
	if got != ModeNonInteractive {
		t.Errorf("detectMode() = %v, want ModeNonInteractive", got)
	}
}

func TestDetectMode_Terminal(t *testing.T) {
	if got := detectMode(envOf(nil), allTerminals); got != ModeInteractive {
		t.Errorf("detectMode() = %v, want ModeInteractive", got)
	}
}

func TestDetectMode_NoTerminal(t *testing.T) {
	// In test context, stdin/stdout are not terminals
	t.Setenv("NPOS_NON_INTERACTIVE", "")
	t.Setenv("CI", "")

	if got := DetectMode(); got != ModeNonInteractive {
		t.Errorf("DetectMode() = %v, want ModeNonInteractive (no terminal in test)", got)
	}
}

func TestIsInteractive_ReturnsFalseInTests(t *testing.T) {
	t.Setenv("NPOS_NON_INTERACTIVE", "")
	t.Setenv("CI", "")

	if IsInteractive() {
		t.Error("IsInteractive() = true in test environment, want false")
	}
}

func TestMode_String(t *testing.T) {
	if ModeInteractive.String() != "interactive" || ModeNonInteractive.String() != "line" {
		t.Errorf("unexpected mode names %q %q", ModeInteractive, ModeNonInteractive)
	}
}
