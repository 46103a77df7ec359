package lineio

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/np-os/npos/internal/shell"
)

// Printer writes session log lines to a stream.
type Printer struct {
	out    io.Writer
	echo   bool
	prompt *color.Color
	kinds  map[shell.LineKind]*color.Color
}

// NewPrinter creates a printer writing to out. Input lines are written with
// their prompt only when echo is set. noColor disables ANSI colors regardless
// of the terminal.
func NewPrinter(out io.Writer, echo, noColor bool) *Printer {
	p := &Printer{
		out:    out,
		echo:   echo,
		prompt: color.New(color.FgBlue, color.Bold),
		kinds: map[shell.LineKind]*color.Color{
			shell.KindInput:  color.New(color.FgGreen),
			shell.KindOutput: color.New(color.FgGreen),
			shell.KindError:  color.New(color.FgRed),
			shell.KindSystem: color.New(color.FgYellow, color.Bold),
			shell.KindBoot:   color.New(color.FgHiBlack),
		},
	}
	if noColor {
		p.prompt.DisableColor()
		for _, c := range p.kinds {
			c.DisableColor()
		}
	}
	return p
}

// Print writes line. prompt renders the prompt of an input line.
func (p *Printer) Print(line shell.OutputLine, prompt func(path string) string) error {
	c, ok := p.kinds[line.Kind]
	if !ok {
		c = p.kinds[shell.KindOutput]
	}

	if line.Kind == shell.KindInput {
		if !p.echo {
			return nil
		}
		_, err := fmt.Fprintln(p.out, p.prompt.Sprint(prompt(line.Path))+c.Sprint(line.Text))
		return err
	}
	_, err := fmt.Fprintln(p.out, c.Sprint(line.Text))
	return err
}
