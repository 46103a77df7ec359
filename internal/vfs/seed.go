package vfs

import (
	"github.com/np-os/npos/internal/resume"
	"github.com/np-os/npos/pkg/npos"
)

// Seeded file contents.
const (
	NotesContent   = "TODO:\n1. Conquer the digital world.\n2. Automate coffee machine.\n3. Debug life."
	WelcomeContent = "Welcome to NP-OS!\nType 'help' for a list of available commands.\nYour mission, should you choose to accept it... explore!"
	OSRelease      = "NAME=\"NP-OS\"\nVERSION=\"1.0 (Hacker Edition)\""
)

// binEntries are the illustrative placeholders under /bin.
var binEntries = []string{"cat", "cd", "clear", "date", "echo", "exit", "help", "ls", "pwd", "uname", "whoami"}

// SeedOptions configures the seeded tree.
type SeedOptions struct {
	User     string
	Hostname string
	Resume   resume.Resume
}

// Seed builds the canonical NP-OS tree:
//
//	/bin/<command>             empty placeholders
//	/etc/os-release, hostname
//	/home/<user>/documents/resume.txt
//	/home/<user>/notes.txt
//	/home/<user>/projects/secret_project_alpha/
//	/home/<user>/welcome.txt
func Seed(opts SeedOptions) *Tree {
	user := opts.User
	if user == "" {
		user = npos.DefaultUser
	}
	hostname := opts.Hostname
	if hostname == "" {
		hostname = npos.DefaultHostname
	}

	bin := make(map[string]Node, len(binEntries))
	for _, name := range binEntries {
		bin[name] = NewFile("")
	}

	home := NewDir(map[string]Node{
		"documents": NewDir(map[string]Node{
			"resume.txt": NewFile(opts.Resume.Text()),
		}),
		"notes.txt": NewFile(NotesContent),
		"projects": NewDir(map[string]Node{
			"secret_project_alpha": NewDir(nil),
		}),
		"welcome.txt": NewFile(WelcomeContent),
	})

	return NewTree(NewDir(map[string]Node{
		"bin": NewDir(bin),
		"etc": NewDir(map[string]Node{
			"os-release": NewFile(OSRelease),
			"hostname":   NewFile(hostname),
		}),
		"home": NewDir(map[string]Node{
			user: home,
		}),
	}))
}
