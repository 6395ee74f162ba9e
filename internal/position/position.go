package position

import (
	"fmt"
	"sort"
	"unicode/utf8"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Position is a 1-based line and column in a source file. Columns count
// characters, not bytes.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// String formats the position as line:column
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p comes strictly before o
func (p Position) Before(o Position) bool {
	return p.Line < o.Line || (p.Line == o.Line && p.Column < o.Column)
}

// Range is a half-open span between two positions
type Range struct {
	Start Position `json:"start" yaml:"start"`
	End   Position `json:"end" yaml:"end"`
}

// Shift moves p, which is relative to an embedded region starting at
// origin, into the coordinates of the enclosing file. Only the first line of
// the region is offset in columns.
func Shift(p, origin Position) Position {
	if p.Line == 1 {
		p.Column += origin.Column - 1
	}
	p.Line += origin.Line - 1
	return p
}

// ShiftRange applies Shift to both ends of r
func ShiftRange(r Range, origin Position) Range {
	return Range{Start: Shift(r.Start, origin), End: Shift(r.End, origin)}
}

// Index maps byte offsets of a source text to positions
type Index struct {
	src        string
	lineStarts []int
}

// NewIndex builds a line index for src
func NewIndex(src string) *Index {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Index{src: src, lineStarts: starts}
}

// At returns the position of a byte offset
func (ix *Index) At(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(ix.src) {
		offset = len(ix.src)
	}
	line := sort.Search(len(ix.lineStarts), func(i int) bool {
		return ix.lineStarts[i] > offset
	}) - 1
	col := utf8.RuneCountInString(ix.src[ix.lineStarts[line]:offset])
	return Position{Line: line + 1, Column: col + 1}
}

// Node returns the range covered by a tree-sitter node
func (ix *Index) Node(n *sitter.Node) Range {
	return Range{
		Start: ix.At(int(n.StartByte())), //nolint:gosec // G115: offsets are bounded by file size
		End:   ix.At(int(n.EndByte())),   //nolint:gosec // G115: offsets are bounded by file size
	}
}

// Lines returns the number of lines in the source
func (ix *Index) Lines() int {
	return len(ix.lineStarts)
}

// Line returns the text of a 1-based line without its terminator
func (ix *Index) Line(n int) string {
	if n < 1 || n > len(ix.lineStarts) {
		return ""
	}
	start := ix.lineStarts[n-1]
	end := len(ix.src)
	if n < len(ix.lineStarts) {
		end = ix.lineStarts[n] - 1
	}
	line := ix.src[start:end]
	if l := len(line); l > 0 && line[l-1] == '\r' {
		line = line[:l-1]
	}
	return line
}
