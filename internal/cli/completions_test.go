package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/np-os/npos/internal/resume"
	"github.com/np-os/npos/internal/vfs"
)

func TestVirtualMatches(t *testing.T) {
	tree := vfs.Seed(vfs.SeedOptions{Resume: resume.Default()})
	home := "/home/user"

	tests := []struct {
		name       string
		toComplete string
		dirsOnly   bool
		want       []string
	}{
		{"home entries", "", false, []string{"documents/", "notes.txt", "projects/", "welcome.txt"}},
		{"home dirs", "", true, []string{"documents/", "projects/"}},
		{"prefix", "no", false, []string{"notes.txt"}},
		{"nested", "documents/", false, []string{"documents/resume.txt"}},
		{"absolute", "/e", false, []string{"/etc/"}},
		{"parent", "../", true, []string{"../user/"}},
		{"missing parent", "nowhere/", false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, virtualMatches(tree, home, tt.toComplete, tt.dirsOnly))
		})
	}
}
