package lineio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/np-os/npos/internal/shell"
)

// Options configures Run.
type Options struct {
	In  io.Reader
	Out io.Writer
	// Boot plays the session boot script before reading input. When false, a
	// session still booting is completed immediately.
	Boot bool
	// Echo writes each input line with its prompt, which keeps transcripts
	// readable when input is piped.
	Echo bool
	// WaitOnExit holds Run for the exit delay after the exit command.
	WaitOnExit bool
	NoColor    bool
	// Sleep waits for d or until ctx is done. Nil uses a timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Host drives a session from a line stream.
type Host struct {
	session *shell.Session
	opts    Options
	printer *Printer
	lastID  int
}

// New creates a host for session.
func New(session *shell.Session, opts Options) *Host {
	if opts.Sleep == nil {
		opts.Sleep = Sleep
	}
	return &Host{
		session: session,
		opts:    opts,
		printer: NewPrinter(opts.Out, opts.Echo, opts.NoColor),
		lastID:  -1,
	}
}

// Run boots the session, then executes input lines until the reader is
// exhausted, the exit command runs, or ctx is done. Cancellation is noticed
// while waiting for input; the reader goroutine is left blocked until the
// reader itself returns.
func (h *Host) Run(ctx context.Context) error {
	if err := h.boot(ctx); err != nil {
		return err
	}

	scanCtx, stop := context.WithCancel(ctx)
	defer stop()
	lines, errc := scanLines(scanCtx, h.opts.In)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					return fmt.Errorf("read input: %w", err)
				}
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			h.session.SetBuffer(line)
			res := h.session.Submit()
			if err := h.flush(); err != nil {
				return err
			}

			if res.Exit {
				if h.opts.WaitOnExit {
					return h.opts.Sleep(ctx, res.ExitDelay)
				}
				return nil
			}
		}
	}
}

// scanLines reads r line by line on its own goroutine. lines is closed after
// the last line, and errc then receives exactly one value: the scan error,
// ctx.Err() if the reader was abandoned, or nil at end of input.
func scanLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

func (h *Host) boot(ctx context.Context) error {
	if h.session.Booted() {
		return h.flush()
	}
	if !h.opts.Boot {
		h.session.CompleteBoot()
		return h.flush()
	}

	script := h.session.BootScript()
	start := time.Now()
	for i := range script {
		if err := h.opts.Sleep(ctx, script.Wait(i, time.Since(start))); err != nil {
			return err
		}
		h.session.EmitBoot(i)
		if err := h.flush(); err != nil {
			return err
		}
	}
	if err := h.opts.Sleep(ctx, script.Duration()-time.Since(start)); err != nil {
		return err
	}
	h.session.CompleteBoot()
	return h.flush()
}

// flush prints the log lines added since the last flush. Lines removed by
// clear are never printed twice because IDs keep increasing.
func (h *Host) flush() error {
	for _, line := range h.session.Lines() {
		if line.ID <= h.lastID {
			continue
		}
		if err := h.printer.Print(line, h.session.PromptFor); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		h.lastID = line.ID
	}
	return nil
}

// Sleep waits for d or until ctx is done, returning the context error in that case.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
