package repository

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"golang.org/x/mod/modfile"
)

// Detector identifies project root folders and provides project-related information
type Detector struct {
	fs afs.Service
	// Common project root marker files/directories
	markers []string
}

// New creates a new project detector instance
func New(fs afs.Service) *Detector {
	if fs == nil {
		fs = afs.New()
	}
	return &Detector{
		fs: fs,
		markers: []string{
			"package.json", // JavaScript/Node projects
			"go.mod",       // Go projects serving web assets
			".git",         // Generic VCS marker
		},
	}
}

// DetectProject identifies the project root for the given file or directory location.
// Local paths are resolved to absolute file URLs.
func (d *Detector) DetectProject(ctx context.Context, location string) (*Project, error) {
	location, err := normalize(location)
	if err != nil {
		return nil, err
	}
	object, err := d.fs.Object(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect %v: %w", location, err)
	}
	startDir := location
	if !object.IsDir() {
		startDir, _ = url.Split(location, "file")
	}

	info := &Project{Type: "unknown", RootURL: startDir}
	rootURL, projectType := d.findProjectRoot(ctx, startDir)
	if rootURL != "" {
		info.RootURL = rootURL
		info.Type = projectType
	}
	info.RelativePath = strings.TrimPrefix(strings.TrimPrefix(location, info.RootURL), "/")
	info.Origin = d.extractGitOrigin(ctx, info.RootURL)

	switch info.Type {
	case "javascript":
		info.Name = d.extractJSPackageName(ctx, url.Join(info.RootURL, "package.json"))
	case "go":
		info.GoModule = d.extractGoModule(ctx, url.Join(info.RootURL, "go.mod"))
		if info.GoModule != nil {
			info.Name = info.GoModule.Mod.Path
		}
	case "git":
		info.Name = gitProjectName(info.Origin)
	}
	if info.Name == "" {
		_, info.Name = url.Split(info.RootURL, "file")
	}
	return info, nil
}

// findProjectRoot searches up from the start directory for project markers
func (d *Detector) findProjectRoot(ctx context.Context, startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if ok, _ := d.fs.Exists(ctx, url.Join(dir, marker)); ok {
				return dir, determineProjectType(marker)
			}
		}
		parent, _ := url.Split(dir, "file")
		if parent == "" || len(parent) >= len(dir) {
			break
		}
		dir = parent
	}
	return "", ""
}

// extractGitOrigin extracts the origin URL from git config
func (d *Detector) extractGitOrigin(ctx context.Context, rootURL string) string {
	content, err := d.fs.DownloadWithURL(ctx, url.Join(url.Join(rootURL, ".git"), "config"))
	if err != nil {
		return ""
	}
	scanner := bufio.NewScanner(bytes.NewReader(content))
	foundRemote := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") {
			foundRemote = line == `[remote "origin"]`
			continue
		}
		if foundRemote && strings.HasPrefix(line, "url = ") {
			return strings.TrimPrefix(line, "url = ")
		}
	}
	return ""
}

func (d *Detector) extractJSPackageName(ctx context.Context, packageJSONURL string) string {
	content, err := d.fs.DownloadWithURL(ctx, packageJSONURL)
	if err != nil {
		return ""
	}
	manifest := struct {
		Name string `json:"name"`
	}{}
	if err = json.Unmarshal(content, &manifest); err != nil {
		return ""
	}
	return manifest.Name
}

func (d *Detector) extractGoModule(ctx context.Context, goModURL string) *modfile.Module {
	content, err := d.fs.DownloadWithURL(ctx, goModURL)
	if err != nil || len(content) == 0 {
		return nil
	}
	mod, err := modfile.ParseLax(goModURL, content, nil)
	if err != nil {
		return nil
	}
	return mod.Module
}

func gitProjectName(origin string) string {
	origin = strings.TrimSuffix(origin, ".git")
	if i := strings.LastIndexAny(origin, "/:"); i != -1 {
		return origin[i+1:]
	}
	return origin
}

// determineProjectType identifies the type of project based on the marker file
func determineProjectType(marker string) string {
	switch marker {
	case "go.mod":
		return "go"
	case "package.json":
		return "javascript"
	case ".git":
		return "git"
	default:
		return "unknown"
	}
}

func normalize(location string) (string, error) {
	if strings.Contains(location, "://") {
		return strings.TrimSuffix(location, "/"), nil
	}
	absPath, err := filepath.Abs(location)
	if err != nil {
		return "", err
	}
	return "file://" + filepath.ToSlash(absPath), nil
}
