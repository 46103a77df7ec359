package npos_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/np-os/npos/pkg/npos"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, npos.ExitSuccess},
		{"unknown flag", errors.New("unknown flag: --foo"), npos.ExitUsageError},
		{"missing argument", errors.New("missing required argument: <path>"), npos.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), npos.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), npos.ExitUsageError},
		{"unknown command", errors.New(`unknown command "foo" for "npos"`), npos.ExitUsageError},
		{"invalid config", npos.ErrInvalidConfig, npos.ExitConfigError},
		{"wrapped invalid config", fmt.Errorf("load npos.yaml: %w", npos.ErrInvalidConfig), npos.ExitConfigError},
		{"wrapped usage", fmt.Errorf("cat: %w", npos.ErrUsage), npos.ExitUsageError},
		{"path not found", fmt.Errorf("/nope: %w", npos.ErrPathNotFound), npos.ExitNotFound},
		{"general error", errors.New("something went wrong"), npos.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := npos.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHomeDir(t *testing.T) {
	if got := npos.HomeDir("user"); got != "/home/user" {
		t.Errorf("HomeDir(user) = %q, want /home/user", got)
	}
}
