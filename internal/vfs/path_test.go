package vfs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		input string
		cwd   string
		want  string
	}{
		{"..", "/", "/"},
		{"../../..", "/home", "/"},
		{"a/b/../c", "/x", "/x/a/c"},
		{".", "/home/user", "/home/user"},
		{"", "/home/user", "/home/user"},
		{"./documents/", "/home/user", "/home/user/documents"},
		{"documents//resume.txt", "/home/user", "/home/user/documents/resume.txt"},
		{"..", "/home/user", "/home"},
		{"../user/./projects", "/home/user", "/home/user/projects"},
		{"/etc", "/home/user", "/etc"},
		{"/", "/home/user", "/"},
		{"/a/../b", "/home/user", "/b"},
		{"/home//user/", "/", "/home/user"},
		{"/..", "/home", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.cwd+"|"+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.input, tt.cwd))
		})
	}
}

func TestResolve_NeverEmitsDotSegments(t *testing.T) {
	inputs := []string{"..", ".", "a/./b", "a/../../b", "./../.", "x/y/z/../../..", "...", "a/.../b"}
	cwds := []string{"/", "/home", "/home/user", "/a/b/c"}

	for _, cwd := range cwds {
		for _, in := range inputs {
			got := Resolve(in, cwd)
			assert.True(t, strings.HasPrefix(got, "/"), "Resolve(%q, %q) = %q does not start with /", in, cwd, got)
			for _, seg := range Split(got) {
				assert.NotEqual(t, ".", seg, "Resolve(%q, %q) = %q", in, cwd, got)
				assert.NotEqual(t, "..", seg, "Resolve(%q, %q) = %q", in, cwd, got)
			}
		}
	}
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Split("/a//b/"))
	assert.Equal(t, []string{"a", "b"}, Split("a/b"))
	assert.Empty(t, Split("/"))
	assert.Empty(t, Split(""))
}

func TestWithin(t *testing.T) {
	assert.True(t, Within("/home/user", "/home/user"))
	assert.True(t, Within("/home/user/documents", "/home/user"))
	assert.False(t, Within("/home/username", "/home/user"))
	assert.False(t, Within("/etc", "/home/user"))
	assert.True(t, Within("/etc", "/"))
}
