package sourcetree

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sorter orders siblings. A collator is not safe for concurrent use so every Builder owns one.
type sorter struct {
	collator *collate.Collator
}

func newSorter() *sorter {
	return &sorter{collator: collate.New(language.Und)}
}

// DetermineFileSortOrder returns the index in siblings at which a node named name should be inserted.
// debuggeeHost is only honored for the group level, pass "" elsewhere.
func DetermineFileSortOrder(siblings []*Node, name string, isDir bool, debuggeeHost string) int {
	return newSorter().index(siblings, name, isDir, debuggeeHost)
}

func (s *sorter) index(siblings []*Node, name string, isDir bool, debuggeeHost string) int {
	for i, sibling := range siblings {
		if s.before(name, isDir, sibling, debuggeeHost) {
			return i
		}
	}
	return len(siblings)
}

// before reports whether a new node sorts ahead of sibling
func (s *sorter) before(name string, isDir bool, sibling *Node, debuggeeHost string) bool {
	switch {
	case sibling.Name == IndexName:
		return false
	case name == IndexName:
		return true
	}
	if debuggeeHost != "" {
		switch {
		case trimWWW(sibling.Name) == debuggeeHost:
			return false
		case trimWWW(name) == debuggeeHost:
			return true
		}
	}
	if isDir != sibling.IsDirectory() {
		return isDir
	}
	return s.collator.CompareString(sibling.Name, name) >= 0
}
