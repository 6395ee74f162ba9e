package html

import (
	"github.com/brianc020801/INFO-340-Problem-4/internal/parser/css"
	"github.com/brianc020801/INFO-340-Problem-4/internal/position"
)

// Range is a span in the parsed document
type Range = position.Range

// RegionType identifies the kind of CSS region found in HTML
type RegionType int

const (
	// UnknownRegion is the zero value, indicating an uninitialized region type
	UnknownRegion RegionType = iota
	// StyleTag represents CSS inside a <style> element
	StyleTag
	// StyleAttribute represents CSS inside a style="..." attribute
	StyleAttribute
)

// CSSRegion represents a region of CSS content found in an HTML document
type CSSRegion struct {
	Content string
	Start   position.Position
	Type    RegionType
}

// EmbeddedCSS is the parsed CSS of one region, with ranges in the
// coordinates of the HTML file
type EmbeddedCSS struct {
	Type RegionType
	*css.ParseResult
}

// Doctype is the <!DOCTYPE ...> declaration
type Doctype struct {
	Text  string
	Range Range
}

// Attribute is a name="value" pair on a start tag
type Attribute struct {
	Name string
	// Value is the unquoted value; HasValue is false for bare attributes
	Value    string
	HasValue bool
	// Quote is the quote character around the value, 0 when unquoted
	Quote      byte
	NameRange  Range
	ValueRange Range
	Range      Range
}

// Element is an HTML element with its tag and attributes
type Element struct {
	// Tag is lower-cased; RawTag is the name as written
	Tag        string
	RawTag     string
	Attributes []*Attribute
	// Text is the element's own text, without descendants' text
	Text     string
	Parent   *Element
	Children []*Element
	// TagRange covers the start tag, Range the whole element
	TagRange Range
	Range    Range
}

// Attr returns the first attribute with the given name
func (e *Element) Attr(name string) (*Attribute, bool) {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

// Node is a top-level node of the document
type Node struct {
	Kind  string
	Range Range
}

// SyntaxError is an ERROR or MISSING node, or a stray end tag
type SyntaxError struct {
	Text string
	// EndTag is true for an end tag with no open element to close
	EndTag bool
	Range  Range
}

// ParseResult contains the results of parsing HTML
type ParseResult struct {
	Doctype *Doctype
	// First is the first top-level node that is not a comment or whitespace
	First    *Node
	Elements []*Element
	Roots    []*Element
	Comments []Range
	Errors   []*SyntaxError
}

// ElementsByTag returns every element with the given lower-case tag
func (r *ParseResult) ElementsByTag(tag string) []*Element {
	var out []*Element
	for _, e := range r.Elements {
		if e.Tag == tag {
			out = append(out, e)
		}
	}
	return out
}
