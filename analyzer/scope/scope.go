package scope

import (
	"slices"

	"github.com/viant/jsdbg/inspector/graph"
)

// Kind classifies a lexical scope
type Kind string

const (
	KindProgram  Kind = "program"
	KindFunction Kind = "function"
	KindBlock    Kind = "block"
)

// NoParent marks the program scope
const NoParent = -1

// Scope represents one level of lexical nesting
type Scope struct {
	ID       int        `yaml:"id" json:"id"`                         // index in the owning Table
	Kind     Kind       `yaml:"kind" json:"kind"`                     // program, function or block
	Name     string     `yaml:"name,omitempty" json:"name,omitempty"` // function name, empty for blocks
	Node     int        `yaml:"-" json:"-"`                           // ast node id owning the scope
	ParentID int        `yaml:"parentId" json:"parentId"`             // ID of the parent scope
	Bindings []string   `yaml:"bindings,omitempty" json:"bindings,omitempty"`
	Span     graph.Span `yaml:"span" json:"span"`

	bound map[string]bool
}

// Binds returns true if name is declared at this level.
// Scopes decoded from JSON or YAML carry only Bindings, which are scanned instead.
func (s *Scope) Binds(name string) bool {
	if s.bound != nil {
		return s.bound[name]
	}
	return slices.Contains(s.Bindings, name)
}

// IsRoot returns true for the program scope
func (s *Scope) IsRoot() bool {
	return s.ParentID == NoParent
}

func (s *Scope) bind(name string) {
	if name == "" || s.bound[name] {
		return
	}
	if s.bound == nil {
		s.bound = make(map[string]bool)
	}
	s.bound[name] = true
	s.Bindings = append(s.Bindings, name)
}
