package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/np-os/npos/internal/shell"
)

// Run plays session full screen until the user exits or quits, or ctx is done.
func Run(ctx context.Context, session *shell.Session, opts Options) error {
	terminal := NewTerminal(session, opts)
	p := tea.NewProgram(terminal,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}
