package graph

import (
	"path"
	"strings"
)

// ContentType identifies how source text is parsed
type ContentType string

const (
	ContentTypeJavaScript ContentType = "javascript"
	ContentTypeHTML       ContentType = "html"
)

// Source represents one script or document loaded by the debuggee
type Source struct {
	ID          string      `yaml:"id" json:"id"`
	URL         string      `yaml:"url,omitempty" json:"url,omitempty"`
	Text        string      `yaml:"-" json:"text,omitempty"`
	ContentType ContentType `yaml:"contentType,omitempty" json:"contentType,omitempty"`
}

// Hash returns a fingerprint of the source text
func (s *Source) Hash() uint64 {
	hash, _ := Hash([]byte(s.Text))
	return hash
}

// IsHTML returns true if the source is an HTML document
func (s *Source) IsHTML() bool {
	return s.ContentType == ContentTypeHTML
}

// ContentTypeOf infers a content type from a URL or file name extension
func ContentTypeOf(location string) ContentType {
	if i := strings.IndexAny(location, "?#"); i != -1 {
		location = location[:i]
	}
	switch strings.ToLower(path.Ext(location)) {
	case ".html", ".htm", ".xhtml":
		return ContentTypeHTML
	}
	return ContentTypeJavaScript
}
