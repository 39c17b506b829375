package sourcetree

import (
	"net/url"
	"strings"
)

// URL is a source URL split for tree insertion
type URL struct {
	Group    string // host or scheme label, the first tree level
	Path     string // decoded path starting with /
	Filename string // last path segment, IndexName for directory URLs
}

// IsValid returns true when the URL can be placed in a tree
func (u URL) IsValid() bool {
	return u.Group != ""
}

// IsDirectory returns true when the URL denotes a directory's default document
func (u URL) IsDirectory() bool {
	return len(u.Segments()) == 0 || strings.HasSuffix(u.Path, "/")
}

// Segments returns the non empty path segments
func (u URL) Segments() []string {
	var result []string
	for _, part := range strings.Split(u.Path, "/") {
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

// Parts returns the group followed by the path segments
func (u URL) Parts() []string {
	return append([]string{u.Group}, u.Segments()...)
}

// NodePath returns the path of the leaf that holds a source with this URL
func (u URL) NodePath() string {
	parts := u.Parts()
	if u.IsDirectory() {
		parts = append(parts, u.Filename)
	}
	return strings.Join(parts, "/")
}

// ParseURL splits a source URL into group, path and file name.
// debuggeeURL supplies the group of relative URLs. An invalid URL is returned for
// empty, unparseable and javascript: URLs.
func ParseURL(rawURL, debuggeeURL string) URL {
	if rawURL == "" {
		return URL{}
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return URL{}
	}
	scheme := strings.ToLower(parsed.Scheme)
	switch scheme {
	case "javascript":
		return URL{}
	case "http", "https":
		return newURL(parsed.Host, parsed.Path)
	case "webpack", "ng":
		return newURL(scheme+"://", parsed.Host+parsed.Path)
	case "about":
		return URL{Group: rawURL, Path: "/", Filename: IndexName}
	case "data":
		return URL{Group: NoDomain, Path: "/", Filename: rawURL}
	case "file":
		return newURL("file://", parsed.Path)
	case "":
		if strings.HasPrefix(parsed.Path, "/") {
			return newURL("file://", parsed.Path)
		}
		return newURL(Domain(debuggeeURL), "/"+parsed.Path)
	}
	return newURL(scheme+"://"+parsed.Host, parsed.Path)
}

func newURL(group, path string) URL {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	filename := path[strings.LastIndex(path, "/")+1:]
	if filename == "" {
		filename = IndexName
	}
	return URL{Group: group, Path: path, Filename: filename}
}

// Domain returns the host of rawURL without a www. prefix
func Domain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return trimWWW(parsed.Host)
}

func trimWWW(host string) string {
	return strings.TrimPrefix(host, "www.")
}
