package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/np-os/npos/internal/cli"
	"github.com/np-os/npos/pkg/npos"
)

func main() {
	os.Exit(run())
}

// run executes the CLI and returns the process exit code. Cobra prints
// command errors itself, so only panics are reported here.
func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			code = npos.ExitPanic
		}
	}()

	if os.Getenv("NPOS_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	return npos.ExitCodeForError(cli.Execute())
}
