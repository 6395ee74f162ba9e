// Package dom is the read-only query surface rubrics use: a parsed HTML
// document searchable by CSS selector, plus helpers that read the computed
// styles an inliner left in style attributes.
package dom

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brianc020801/INFO-340-Problem-4/internal/collections"
	"github.com/brianc020801/INFO-340-Problem-4/internal/cssom"
	"github.com/brianc020801/INFO-340-Problem-4/internal/log"
	"golang.org/x/net/html"
)

// Document is a parsed HTML document
type Document struct {
	doc *goquery.Document
}

// Parse reads an HTML document
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}
	return &Document{doc: doc}, nil
}

// ParseString parses an HTML string
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// FromNode wraps an already parsed tree
func FromNode(root *html.Node) *Document {
	return &Document{doc: goquery.NewDocumentFromNode(root)}
}

// Find returns the elements matching selector
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Root returns the document selection
func (d *Document) Root() *goquery.Selection {
	return d.doc.Selection
}

// HTML renders the document
func (d *Document) HTML() (string, error) {
	return d.doc.Html()
}

// Styles parses the style attribute of the first element in sel
func Styles(sel *goquery.Selection) map[string]string {
	out := map[string]string{}
	raw, ok := sel.First().Attr("style")
	if !ok || strings.TrimSpace(raw) == "" {
		return out
	}
	decls, err := cssom.ParseDeclarations(raw)
	if err != nil {
		log.Debug("unparseable style attribute %q: %v", raw, err)
		return out
	}
	for _, d := range decls {
		out[d.Property] = d.Value
	}
	return out
}

// CSS returns the value the style attribute of the first element in sel
// assigns to prop, or "" when it has none. A longhand missing from the
// attribute is read from its four-sided shorthand (margin-top from margin).
func CSS(sel *goquery.Selection, prop string) string {
	styles := Styles(sel)
	if v, ok := styles[prop]; ok {
		return v
	}
	if short, ok := cssom.ShorthandOf(prop); ok {
		if v, ok := styles[short]; ok {
			if sides, err := cssom.SplitShorthand(short, v); err == nil {
				return sides[prop]
			}
		}
	}
	return ""
}

// TagName returns the lower-case tag of the i-th element in sel
func TagName(sel *goquery.Selection, i int) string {
	if i < 0 || i >= sel.Length() {
		return ""
	}
	return goquery.NodeName(sel.Eq(i))
}

// Class returns the class attribute of the first element in sel
func Class(sel *goquery.Selection) string {
	c, _ := sel.First().Attr("class")
	return c
}

// Classes returns the class names of the first element in sel
func Classes(sel *goquery.Selection) collections.Set[string] {
	return collections.NewSet(strings.Fields(Class(sel))...)
}

// ClassMatches reports whether the class attribute of the first element in
// sel matches re.
func ClassMatches(sel *goquery.Selection, re *regexp.Regexp) bool {
	return re.MatchString(Class(sel))
}
