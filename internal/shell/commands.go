package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/np-os/npos/internal/vfs"
	"github.com/np-os/npos/pkg/npos"
)

const helpText = `Available commands:
  help          Show this help message
  ls [path]     List directory contents
  cat <file>    Display file content
  cd <dir>      Change directory
  pwd           Print working directory
  echo <text>   Display text
  clear         Clear the terminal
  date          Show current date/time
  whoami        Display current user
  uname -a      Display system info
  exit          Exit NP-OS`

// dateLayout mimics a browser's Date.toString rendering.
const dateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

type command func(s *Session, args []string) Result

var commands map[string]command

func init() {
	commands = map[string]command{
		"help":   cmdHelp,
		"ls":     cmdLs,
		"cat":    cmdCat,
		"cd":     cmdCd,
		"pwd":    cmdPwd,
		"echo":   cmdEcho,
		"clear":  cmdClear,
		"date":   cmdDate,
		"whoami": cmdWhoami,
		"uname":  cmdUname,
		"exit":   cmdExit,
	}
}

// Commands returns the names of the built-in commands.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	return names
}

func cmdHelp(s *Session, _ []string) Result {
	s.println(helpText)
	return Result{}
}

func cmdLs(s *Session, args []string) Result {
	target, shown := s.cwd, "."
	if len(args) > 0 {
		target, shown = vfs.Resolve(args[0], s.cwd), args[0]
	}

	entries, err := s.tree.ReadDir(target)
	if err != nil {
		s.errorf("ls: cannot access '%s': No such file or directory", shown)
		return Result{}
	}
	if len(entries) == 0 {
		s.println("(empty directory)")
		return Result{}
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.DisplayName()
	}
	s.println(strings.Join(names, "\n"))
	return Result{}
}

func cmdCat(s *Session, args []string) Result {
	if len(args) == 0 {
		s.errorf("cat: missing operand")
		return Result{}
	}

	content, err := s.tree.ReadFile(vfs.Resolve(args[0], s.cwd))
	switch {
	case errors.Is(err, vfs.ErrIsDirectory):
		s.errorf("cat: %s: Is a directory", args[0])
	case err != nil:
		s.errorf("cat: %s: No such file or directory", args[0])
	case content == "":
		s.println("(empty file)")
	default:
		s.println(content)
	}
	return Result{}
}

func cmdCd(s *Session, args []string) Result {
	if len(args) == 0 {
		s.cwd = s.home
		return Result{}
	}

	target := vfs.Resolve(args[0], s.cwd)
	e, err := s.tree.Stat(target)
	if err != nil {
		s.errorf("cd: %s: No such file or directory", args[0])
		return Result{}
	}
	if !e.IsDir {
		s.errorf("cd: %s: Not a directory", args[0])
		return Result{}
	}
	s.cwd = target
	return Result{}
}

func cmdPwd(s *Session, _ []string) Result {
	s.println(s.cwd)
	return Result{}
}

func cmdEcho(s *Session, args []string) Result {
	s.println(strings.Join(args, " "))
	return Result{}
}

func cmdClear(s *Session, _ []string) Result {
	s.lines = nil
	return Result{}
}

func cmdDate(s *Session, _ []string) Result {
	s.println(s.clock().Format(dateLayout))
	return Result{}
}

func cmdWhoami(s *Session, _ []string) Result {
	s.println(s.user)
	return Result{}
}

func cmdUname(s *Session, args []string) Result {
	if len(args) > 0 && args[0] == "-a" {
		s.println(npos.SystemIdentification)
	} else {
		s.println(npos.OSName)
	}
	return Result{}
}

func cmdExit(s *Session, _ []string) Result {
	s.appendLine(KindSystem, "Shutting down NP-OS...", "")
	s.exitRequested = true
	s.logger.Info("session %s: shutdown requested", s.id)
	return Result{Exit: true, ExitDelay: npos.ExitDelay}
}

func (s *Session) errorf(format string, args ...interface{}) {
	s.appendLine(KindError, fmt.Sprintf(format, args...), "")
}
