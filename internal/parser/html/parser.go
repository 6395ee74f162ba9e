package html

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/brianc020801/INFO-340-Problem-4/internal/parser/css"
	"github.com/brianc020801/INFO-340-Problem-4/internal/position"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
)

// Parser handles parsing HTML with tree-sitter
type Parser struct {
	parser     *sitter.Parser
	styleQuery *sitter.Query
	attrQuery  *sitter.Query
}

var htmlLang = sitter.NewLanguage(tree_sitter_html.Language())

// parserPool is a pool of reusable HTML parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(htmlLang); err != nil {
			panic(fmt.Sprintf("failed to set HTML language: %v", err))
		}

		styleQuery, qerr := sitter.NewQuery(htmlLang, `(style_element (raw_text) @css)`)
		if qerr != nil {
			panic(fmt.Sprintf("failed to compile style query: %v", qerr))
		}

		attrQuery, qerr := sitter.NewQuery(htmlLang, `
			(attribute
				(attribute_name) @attr_name
				(quoted_attribute_value (attribute_value) @attr_value)
				(#eq? @attr_name "style"))
		`)
		if qerr != nil {
			panic(fmt.Sprintf("failed to compile attribute query: %v", qerr))
		}

		return &Parser{
			parser:     parser,
			styleQuery: styleQuery,
			attrQuery:  attrQuery,
		}
	},
}

// AcquireParser gets a parser from the pool
func AcquireParser() *Parser {
	p := parserPool.Get().(*Parser)
	p.parser.Reset()
	return p
}

// ReleaseParser returns a parser to the pool
func ReleaseParser(p *Parser) {
	if p != nil {
		parserPool.Put(p)
	}
}

// Close closes the parser and releases its resources
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
	if p.styleQuery != nil {
		p.styleQuery.Close()
	}
	if p.attrQuery != nil {
		p.attrQuery.Close()
	}
}

// Parse parses an HTML document into elements, attributes and syntax errors
func (p *Parser) Parse(ctx context.Context, source string) (*ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src := []byte(source)
	tree := p.parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse HTML")
	}
	defer tree.Close()

	w := &walker{src: src, ix: position.NewIndex(source), result: &ParseResult{}}
	root := tree.RootNode()
	w.collectErrors(root)
	for i := uint(0); i < root.ChildCount(); i++ {
		w.node(root.Child(i), nil, true)
	}
	return w.result, nil
}

type walker struct {
	src    []byte
	ix     *position.Index
	result *ParseResult
}

func (w *walker) text(n *sitter.Node) string {
	return string(w.src[n.StartByte():n.EndByte()])
}

func (w *walker) node(n *sitter.Node, parent *Element, top bool) {
	kind := n.Kind()
	blank := kind == "comment" || (kind == "text" && strings.TrimSpace(w.text(n)) == "")
	if top && w.result.First == nil && !blank {
		w.result.First = &Node{Kind: kind, Range: w.ix.Node(n)}
	}

	switch kind {
	case "doctype":
		if w.result.Doctype == nil {
			w.result.Doctype = &Doctype{Text: w.text(n), Range: w.ix.Node(n)}
		}
	case "comment":
		w.result.Comments = append(w.result.Comments, w.ix.Node(n))
	case "element", "script_element", "style_element":
		w.element(n, parent)
	case "erroneous_end_tag":
		w.result.Errors = append(w.result.Errors, &SyntaxError{Text: w.text(n), EndTag: true, Range: w.ix.Node(n)})
	case "text", "entity":
		if parent != nil {
			parent.Text += w.text(n)
		}
	}
}

func (w *walker) element(n *sitter.Node, parent *Element) {
	el := &Element{Parent: parent, Range: w.ix.Node(n)}
	if parent != nil {
		parent.Children = append(parent.Children, el)
	} else {
		w.result.Roots = append(w.result.Roots, el)
	}
	w.result.Elements = append(w.result.Elements, el)

	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		switch child.Kind() {
		case "start_tag", "self_closing_tag":
			el.TagRange = w.ix.Node(child)
			w.startTag(child, el)
		case "end_tag", "raw_text":
		default:
			w.node(child, el, false)
		}
	}
}

func (w *walker) startTag(n *sitter.Node, el *Element) {
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		switch child.Kind() {
		case "tag_name":
			el.RawTag = w.text(child)
			el.Tag = strings.ToLower(el.RawTag)
		case "attribute":
			el.Attributes = append(el.Attributes, w.attribute(child))
		}
	}
}

func (w *walker) attribute(n *sitter.Node) *Attribute {
	a := &Attribute{Range: w.ix.Node(n)}
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		switch child.Kind() {
		case "attribute_name":
			a.Name = strings.ToLower(w.text(child))
			a.NameRange = w.ix.Node(child)
		case "attribute_value":
			a.Value, a.HasValue = w.text(child), true
			a.ValueRange = w.ix.Node(child)
		case "quoted_attribute_value":
			a.HasValue = true
			a.ValueRange = w.ix.Node(child)
			if raw := w.text(child); raw != "" {
				a.Quote = raw[0]
			}
			for j := uint(0); j < child.ChildCount(); j++ {
				if v := child.Child(j); v.Kind() == "attribute_value" {
					a.Value = w.text(v)
					a.ValueRange = w.ix.Node(v)
				}
			}
		}
	}
	return a
}

func (w *walker) collectErrors(n *sitter.Node) {
	if n.IsError() || n.IsMissing() {
		w.result.Errors = append(w.result.Errors, &SyntaxError{Text: w.text(n), Range: w.ix.Node(n)})
		if n.IsError() {
			return
		}
	}
	if !n.HasError() {
		return
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		w.collectErrors(n.Child(i))
	}
}

// ParseCSSRegions extracts CSS regions from HTML source
func (p *Parser) ParseCSSRegions(source string) []CSSRegion {
	sourceBytes := []byte(source)
	tree := p.parser.Parse(sourceBytes, nil)
	if tree == nil {
		return nil
	}
	defer tree.Close()

	root := tree.RootNode()
	ix := position.NewIndex(source)
	var regions []CSSRegion

	// Find <style> tag contents
	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	matches := cursor.Matches(p.styleQuery, root, sourceBytes)
	for match := matches.Next(); match != nil; match = matches.Next() {
		for _, capture := range match.Captures {
			node := capture.Node
			regions = append(regions, CSSRegion{
				Content: string(sourceBytes[node.StartByte():node.EndByte()]),
				Start:   ix.At(int(node.StartByte())), //nolint:gosec // G115: offsets are bounded by file size
				Type:    StyleTag,
			})
		}
	}

	// Find style="..." attribute values
	cursor2 := sitter.NewQueryCursor()
	defer cursor2.Close()

	attrMatches := cursor2.Matches(p.attrQuery, root, sourceBytes)
	for match := attrMatches.Next(); match != nil; match = attrMatches.Next() {
		for _, capture := range match.Captures {
			if p.attrQuery.CaptureNames()[capture.Index] != "attr_value" {
				continue
			}
			node := capture.Node
			regions = append(regions, CSSRegion{
				Content: string(sourceBytes[node.StartByte():node.EndByte()]),
				Start:   ix.At(int(node.StartByte())), //nolint:gosec // G115: offsets are bounded by file size
				Type:    StyleAttribute,
			})
		}
	}

	return regions
}

// ParseCSS parses every CSS region of an HTML document, with positions
// mapped back into the HTML file.
func (p *Parser) ParseCSS(source string) []*EmbeddedCSS {
	regions := p.ParseCSSRegions(source)
	if len(regions) == 0 {
		return nil
	}

	cssParser := css.AcquireParser()
	defer css.ReleaseParser(cssParser)

	var results []*EmbeddedCSS
	for _, region := range regions {
		switch region.Type {
		case StyleTag:
			parsed, err := cssParser.Parse(region.Content)
			if err != nil {
				continue
			}
			parsed.Shift(region.Start)
			results = append(results, &EmbeddedCSS{Type: StyleTag, ParseResult: parsed})

		case StyleAttribute:
			// Wrap in a dummy rule; the "x{" prefix is taken back out of the
			// first line's columns
			parsed, err := cssParser.Parse("x{" + region.Content + "}")
			if err != nil {
				continue
			}
			origin := region.Start
			origin.Column -= 2
			parsed.Shift(origin)
			results = append(results, &EmbeddedCSS{Type: StyleAttribute, ParseResult: parsed})
		}
	}
	return results
}
