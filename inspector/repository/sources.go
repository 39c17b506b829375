package repository

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/jsdbg/inspector/graph"
)

// SourceExtensions lists file extensions loaded as debuggee sources
var SourceExtensions = []string{".js", ".mjs", ".cjs", ".html", ".htm"}

// Load returns the source at location, or every source below it when location is a directory.
// Local files get their absolute path as URL, other storages keep their URL.
func Load(ctx context.Context, fs afs.Service, location string) ([]*graph.Source, error) {
	if fs == nil {
		fs = afs.New()
	}
	location, err := normalize(location)
	if err != nil {
		return nil, err
	}
	object, err := fs.Object(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect %v: %w", location, err)
	}
	if !object.IsDir() {
		content, err := fs.DownloadWithURL(ctx, location)
		if err != nil {
			return nil, fmt.Errorf("failed to load %v: %w", location, err)
		}
		return []*graph.Source{newSource(location, content)}, nil
	}

	var sources []*graph.Source
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return !strings.HasPrefix(info.Name(), ".") && info.Name() != "node_modules", nil
		}
		if !HasSourceExtension(info.Name()) {
			return true, nil
		}
		dir := baseURL
		if parent != "" {
			dir = url.Join(baseURL, parent)
		}
		URL := url.Join(dir, info.Name())
		var content []byte
		var err error
		if reader != nil {
			content, err = io.ReadAll(reader)
		} else {
			content, err = fs.DownloadWithURL(ctx, URL)
		}
		if err != nil {
			return false, fmt.Errorf("failed to read source %s: %w", URL, err)
		}
		sources = append(sources, newSource(URL, content))
		return true, nil
	}
	if err = fs.Walk(ctx, location, visitor); err != nil {
		return nil, err
	}
	return sources, nil
}

// HasSourceExtension returns true for file names with a debuggee source extension
func HasSourceExtension(name string) bool {
	for _, ext := range SourceExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func newSource(URL string, content []byte) *graph.Source {
	sourceURL := URL
	if strings.HasPrefix(URL, "file://") {
		sourceURL = strings.TrimPrefix(URL, "file://")
	}
	return &graph.Source{
		ID:          URL,
		URL:         sourceURL,
		Text:        string(content),
		ContentType: graph.ContentTypeOf(URL),
	}
}
