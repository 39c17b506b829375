package graph

import (
	"fmt"
	"strings"
)

// Position is a point in source text. Line is 1-based, Column is 0-based.
type Position struct {
	Line   int `yaml:"line" json:"line"`
	Column int `yaml:"column" json:"column"`
}

// Location is a position in a specific source
type Location struct {
	SourceID string `yaml:"sourceId" json:"sourceId"`
	Line     int    `yaml:"line" json:"line"`
	Column   int    `yaml:"column" json:"column"`
}

// Span represents the start and end of a parsed node
type Span struct {
	Start Position `yaml:"start" json:"start"`
	End   Position `yaml:"end" json:"end"`
}

// Position returns the location position without the source id
func (l Location) Position() Position {
	return Position{Line: l.Line, Column: l.Column}
}

// At returns a location of p in the source identified by sourceID
func (p Position) At(sourceID string) Location {
	return Location{SourceID: sourceID, Line: p.Line, Column: p.Column}
}

// Before reports whether p sorts strictly before o, by line then column
func (p Position) Before(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Column < o.Column
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ContainsPosition reports whether p falls inside s, both ends inclusive.
//
// A single line span contains p only on that line between the start and end columns.
// A multi line span contains any column after the start on the first line, any column
// up to the end on the last line and every column of the lines in between.
func (s Span) ContainsPosition(p Position) bool {
	startsBefore := s.Start.Line < p.Line || (s.Start.Line == p.Line && s.Start.Column <= p.Column)
	endsAfter := s.End.Line > p.Line || (s.End.Line == p.Line && s.End.Column >= p.Column)
	return startsBefore && endsAfter
}

// ContainsSpan reports whether inner is fully nested in s
func (s Span) ContainsSpan(inner Span) bool {
	return s.ContainsPosition(inner.Start) && s.ContainsPosition(inner.End)
}

// IsZero returns true for an unset span
func (s Span) IsZero() bool {
	return s == Span{}
}

func (s Span) String() string {
	return s.Start.String() + "-" + s.End.String()
}

// SpanOf returns a span covering all of text
func SpanOf(text string) Span {
	lines := strings.Count(text, "\n")
	lastLine := text[strings.LastIndex(text, "\n")+1:]
	return Span{
		Start: Position{Line: 1},
		End:   Position{Line: lines + 1, Column: len(lastLine)},
	}
}

// PositionAt converts a byte offset in text into a position
func PositionAt(text string, offset int) Position {
	if offset > len(text) {
		offset = len(text)
	}
	prefix := text[:offset]
	return Position{
		Line:   strings.Count(prefix, "\n") + 1,
		Column: offset - strings.LastIndex(prefix, "\n") - 1,
	}
}
