// Package htmllint checks HTML documents with the rules and option shapes
// of htmllint.
package htmllint

import (
	"context"

	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/brianc020801/INFO-340-Problem-4/internal/parser/html"
	"github.com/brianc020801/INFO-340-Problem-4/internal/position"
)

// Document is what rules inspect: the parsed tree plus the raw lines
type Document struct {
	Source string
	Lines  *position.Index
	HTML   *html.ParseResult

	// classStyle is set when class-style takes over class names from
	// id-class-style
	classStyle bool
}

// NewDocument parses source for linting
func NewDocument(ctx context.Context, source string) (*Document, error) {
	p := html.AcquireParser()
	defer html.ReleaseParser(p)
	parsed, err := p.Parse(ctx, source)
	if err != nil {
		return nil, err
	}
	return FromParsed(source, parsed), nil
}

// FromParsed wraps an already parsed document
func FromParsed(source string, parsed *html.ParseResult) *Document {
	return &Document{Source: source, Lines: position.NewIndex(source), HTML: parsed}
}

// RuleDef is an HTML rule
type RuleDef = diagnostic.RuleDef[*Document]

var registry = diagnostic.NewRegistry[*Document]()

// Register adds a rule to the HTML linter
func Register(def RuleDef) {
	registry.Register(def)
}

// Rules returns every registered rule ordered by id
func Rules() []RuleDef {
	return registry.All()
}

// DefaultOptions mirrors htmllint's default preset for the rules
// implemented here. Keys of unimplemented rules are accepted by Lint and
// ignored.
func DefaultOptions() diagnostic.Options {
	return diagnostic.Options{
		"attr-bans": []any{
			"align", "background", "bgcolor", "border", "frameborder",
			"longdesc", "marginwidth", "marginheight", "scrolling", "style", "width",
		},
		"attr-no-dup":                 true,
		"attr-quote-style":            "double",
		"attr-req-value":              true,
		"class-no-dup":                true,
		"class-style":                 false,
		"doctype-first":               false,
		"doctype-html5":               false,
		"head-req-title":              true,
		"html-req-lang":               false,
		"id-class-no-ad":              true,
		"id-class-style":              "dash",
		"id-no-dup":                   true,
		"img-req-alt":                 true,
		"img-req-src":                 true,
		"input-radio-req-name":        true,
		"lang-style":                  "case",
		"line-no-trailing-whitespace": true,
		"link-req-noopener":           true,
		"tag-bans":                    []any{"style", "b", "i"},
		"tag-name-lowercase":          true,
		"tag-name-match":              true,
		"title-max-len":               float64(60),
		"title-no-dup":                true,
	}
}

// Lint runs the rules enabled in opts, applied over DefaultOptions
func Lint(doc *Document, opts diagnostic.Options) []diagnostic.Diagnostic {
	if doc == nil {
		return nil
	}
	merged := diagnostic.Merge(DefaultOptions(), opts)
	// class-style "none" still takes classes away from id-class-style
	doc.classStyle = merged.Enabled("class-style")
	return registry.Run(doc, merged)
}

// LintSource parses and lints an HTML document
func LintSource(ctx context.Context, source string, opts diagnostic.Options) ([]diagnostic.Diagnostic, error) {
	doc, err := NewDocument(ctx, source)
	if err != nil {
		return nil, err
	}
	return Lint(doc, opts), nil
}

// startOf is the zero-width range at the start of r
func startOf(r html.Range) html.Range {
	return html.Range{Start: r.Start, End: r.Start}
}

// attrs returns every attribute with the given name across the document
func (d *Document) attrs(name string) []*html.Attribute {
	var out []*html.Attribute
	for _, el := range d.HTML.Elements {
		for _, a := range el.Attributes {
			if a.Name == name {
				out = append(out, a)
			}
		}
	}
	return out
}
