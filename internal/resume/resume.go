// Package resume holds the resume data seeded into the virtual filesystem
// and renders it as the plain text served by documents/resume.txt.
package resume

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed resume.yaml
var defaultResume []byte

// ErrNoName is returned when a resume document has no name.
var ErrNoName = errors.New("resume has no name")

// Default returns the embedded resume.
// It panics if the embedded document is malformed, which is a build defect.
func Default() Resume {
	r, err := Parse(defaultResume)
	if err != nil {
		panic(fmt.Sprintf("embedded resume.yaml: %v", err))
	}
	return r
}

// Parse decodes a resume YAML document.
func Parse(data []byte) (Resume, error) {
	var r Resume
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Resume{}, fmt.Errorf("failed to parse resume: %w", err)
	}
	if r.Name == "" {
		return Resume{}, ErrNoName
	}
	return r, nil
}

// Load reads and decodes a resume YAML file from disk.
func Load(path string) (Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Resume{}, fmt.Errorf("failed to read resume %s: %w", path, err)
	}
	return Parse(data)
}
