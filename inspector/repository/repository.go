package repository

import (
	"strings"

	"golang.org/x/mod/modfile"
)

// Project represents information about a detected project
type Project struct {
	RootURL      string          `yaml:"rootURL"`                // URL of the project root directory
	Type         string          `yaml:"type"`                   // Type of project (javascript, go, git, unknown)
	Name         string          `yaml:"name,omitempty"`         // Name of the project (extracted from marker files)
	Origin       string          `yaml:"origin,omitempty"`       // git origin URL when the root holds a repository
	RelativePath string          `yaml:"relativePath,omitempty"` // Path from project root to the inspected location
	GoModule     *modfile.Module `yaml:"-"`
}

// TreePath returns the source tree node path of the project root for sources loaded
// by absolute file path, empty for remote roots
func (p *Project) TreePath() string {
	path := strings.TrimPrefix(p.RootURL, "file://")
	if path == p.RootURL || !strings.HasPrefix(path, "/") {
		return ""
	}
	return "file://" + strings.TrimSuffix(path, "/")
}
