package css

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/brianc020801/INFO-340-Problem-4/internal/position"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

// Parser handles parsing CSS with tree-sitter
type Parser struct {
	parser *sitter.Parser
}

var cssLang = sitter.NewLanguage(tree_sitter_css.Language())

// parserPool is a pool of reusable CSS parsers
var parserPool = sync.Pool{
	New: func() any {
		return NewParser()
	},
}

// NewParser creates a new CSS parser
func NewParser() *Parser {
	parser := sitter.NewParser()
	if err := parser.SetLanguage(cssLang); err != nil {
		panic(fmt.Sprintf("failed to set CSS language: %v", err))
	}
	return &Parser{parser: parser}
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
}

// Parse parses a stylesheet
func (p *Parser) Parse(source string) (*ParseResult, error) {
	return p.ParseContext(context.Background(), source)
}

// ParseContext parses a stylesheet, giving up when ctx is cancelled
func (p *Parser) ParseContext(ctx context.Context, source string) (*ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src := []byte(source)
	tree := p.parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse CSS")
	}
	defer tree.Close()

	w := &walker{src: src, ix: position.NewIndex(source), result: &ParseResult{}}
	w.stylesheet(tree.RootNode())
	return w.result, nil
}

// Parse is a convenience wrapper around a pooled parser
func Parse(source string) (*ParseResult, error) {
	p := AcquireParser()
	defer ReleaseParser(p)
	return p.Parse(source)
}

type walker struct {
	src    []byte
	ix     *position.Index
	result *ParseResult
}

func (w *walker) text(n *sitter.Node) string {
	return string(w.src[n.StartByte():n.EndByte()])
}

func (w *walker) rng(n *sitter.Node) Range {
	return w.ix.Node(n)
}

func (w *walker) stylesheet(root *sitter.Node) {
	w.collectErrors(root)
	for i := uint(0); i < root.ChildCount(); i++ {
		w.statement(root.Child(i), nil)
	}
}

func (w *walker) statement(n *sitter.Node, media *MediaStatement) {
	switch n.Kind() {
	case "rule_set":
		rs := w.ruleSet(n, media)
		if media != nil {
			media.Rules = append(media.Rules, rs)
		} else {
			w.result.RuleSets = append(w.result.RuleSets, rs)
		}
	case "media_statement":
		w.mediaStatement(n)
	case "comment":
		w.comment(n)
	case "declaration":
		// Stray top-level declarations are still checked by declaration rules
		w.result.Declarations = append(w.result.Declarations, w.declaration(n))
	case "import_statement", "charset_statement", "namespace_statement",
		"keyframes_statement", "supports_statement", "scope_statement",
		"at_rule", "postcss_statement":
		w.atRule(n, media)
	}
}

func (w *walker) collectErrors(n *sitter.Node) {
	if n.IsError() || n.IsMissing() {
		text := w.text(n)
		if n.IsMissing() {
			// A missing node has no text; its kind names the expected token
			text = n.Kind()
		}
		w.result.Errors = append(w.result.Errors, &SyntaxError{
			Text:    text,
			Missing: n.IsMissing(),
			Range:   w.rng(n),
		})
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

func (w *walker) comment(n *sitter.Node) {
	text := w.text(n)
	body := strings.TrimPrefix(text, "/*")
	body = strings.TrimSuffix(body, "*/")
	w.result.Comments = append(w.result.Comments, &Comment{
		Text:  text,
		Body:  strings.TrimSpace(body),
		Range: w.rng(n),
	})
}

func (w *walker) ruleSet(n *sitter.Node, media *MediaStatement) *RuleSet {
	rs := &RuleSet{Range: w.rng(n), Media: media}
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		switch child.Kind() {
		case "selectors":
			rs.SelectorText = normalizeSpace(w.text(child))
			rs.Selectors = w.selectors(child)
		case "block":
			rs.BlockRange = w.rng(child)
			rs.Empty = true
			w.block(child, func(grand *sitter.Node) {
				rs.Empty = false
				switch grand.Kind() {
				case "declaration":
					d := w.declaration(grand)
					rs.Declarations = append(rs.Declarations, d)
					w.result.Declarations = append(w.result.Declarations, d)
				default:
					// Nested rules are flattened next to their parent
					w.statement(grand, media)
				}
			})
		}
	}
	return rs
}

// block calls fn for every child of a block except its braces
func (w *walker) block(n *sitter.Node, fn func(*sitter.Node)) {
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		switch child.Kind() {
		case "{", "}", ";":
			continue
		}
		if child.IsMissing() {
			continue
		}
		fn(child)
	}
}

func (w *walker) selectors(n *sitter.Node) []*Selector {
	var out []*Selector
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child.Kind() == "," || child.Kind() == "comment" {
			continue
		}
		sel := &Selector{Text: normalizeSpace(w.text(child)), Range: w.rng(child)}
		w.typeNames(child, sel)
		out = append(out, sel)
	}
	return out
}

func (w *walker) typeNames(n *sitter.Node, sel *Selector) {
	switch n.Kind() {
	case "tag_name":
		sel.TypeNames = append(sel.TypeNames, Token{Text: w.text(n), Range: w.rng(n)})
		return
	case "arguments", "attribute_selector", "string_value":
		return
	case "pseudo_class_selector", "pseudo_element_selector":
		w.pseudo(n, sel)
		return
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		w.typeNames(n.Child(i), sel)
	}
}

// pseudo records the name after the colons and keeps walking the compound
// selector before them. Pseudo-element names are tag_name nodes in the tree.
func (w *walker) pseudo(n *sitter.Node, sel *Selector) {
	afterColon := false
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		switch kind := child.Kind(); {
		case kind == ":" || kind == "::":
			afterColon = true
		case !afterColon:
			w.typeNames(child, sel)
		case kind == "class_name" || kind == "tag_name":
			tok := Token{Text: w.text(child), Range: w.rng(child)}
			if n.Kind() == "pseudo_element_selector" {
				sel.PseudoElements = append(sel.PseudoElements, tok)
			} else {
				sel.PseudoClasses = append(sel.PseudoClasses, tok)
			}
		case kind == "arguments":
			// :not(p) and friends select elements too
			for j := uint(0); j < child.ChildCount(); j++ {
				w.typeNames(child.Child(j), sel)
			}
		}
	}
}

func (w *walker) declaration(n *sitter.Node) *Declaration {
	d := &Declaration{Range: w.rng(n)}
	var first, last *sitter.Node
	afterColon := false
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		kind := child.Kind()
		switch {
		case kind == "property_name":
			d.Property = w.text(child)
			d.PropertyRange = w.rng(child)
		case kind == ":":
			afterColon = true
		case kind == "important":
			d.Important = true
		case kind == ";" || kind == "comment" || child.IsMissing():
		case afterColon:
			if first == nil {
				first = child
			}
			last = child
			if kind != "," {
				d.Values = append(d.Values, w.value(child))
			}
		}
	}
	if first != nil {
		d.Value = normalizeSpace(string(w.src[first.StartByte():last.EndByte()]))
	}
	return d
}

func (w *walker) value(n *sitter.Node) *Value {
	v := &Value{Text: w.text(n), Range: w.rng(n)}
	switch n.Kind() {
	case "plain_value":
		v.Kind = PlainValue
	case "integer_value", "float_value":
		v.Kind = IntegerValue
		if n.Kind() == "float_value" {
			v.Kind = FloatValue
		}
		for i := uint(0); i < n.ChildCount(); i++ {
			if u := n.Child(i); u.Kind() == "unit" {
				v.Unit = w.text(u)
				v.UnitRange = w.rng(u)
			}
		}
	case "color_value":
		v.Kind = ColorValue
	case "string_value":
		v.Kind = StringValue
	case "call_expression":
		v.Kind = CallValue
	default:
		v.Kind = OtherValue
	}
	return v
}

func (w *walker) mediaStatement(n *sitter.Node) {
	m := &MediaStatement{Range: w.rng(n), Empty: true}
	var queryStart, queryEnd uint
	started := false
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		switch child.Kind() {
		case "@media":
		case "block":
			w.block(child, func(grand *sitter.Node) {
				m.Empty = false
				w.statement(grand, m)
			})
		default:
			if !started {
				queryStart, started = child.StartByte(), true
			}
			queryEnd = child.EndByte()
			w.features(child, m)
		}
	}
	if queryEnd > queryStart {
		m.Query = normalizeSpace(string(w.src[queryStart:queryEnd]))
	}
	w.result.Media = append(w.result.Media, m)
}

func (w *walker) features(n *sitter.Node, m *MediaStatement) {
	if n.Kind() == "feature_name" {
		m.Features = append(m.Features, Token{Text: w.text(n), Range: w.rng(n)})
		return
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		w.features(n.Child(i), m)
	}
}

func (w *walker) atRule(n *sitter.Node, media *MediaStatement) {
	a := &AtRule{Range: w.rng(n)}
	var preludeStart, preludeEnd uint
	started := false
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		kind := child.Kind()
		switch {
		case i == 0:
			a.Name = strings.ToLower(w.text(child))
			a.NameRange = w.rng(child)
		case kind == "block" || kind == "keyframe_block_list":
			if kind == "block" {
				w.block(child, func(grand *sitter.Node) {
					if grand.Kind() == "declaration" {
						w.result.Declarations = append(w.result.Declarations, w.declaration(grand))
						return
					}
					w.statement(grand, media)
				})
			}
		case kind == ";":
		default:
			if !started {
				preludeStart, started = child.StartByte(), true
			}
			preludeEnd = child.EndByte()
		}
	}
	if preludeEnd > preludeStart {
		a.Prelude = normalizeSpace(string(w.src[preludeStart:preludeEnd]))
	}
	w.result.AtRules = append(w.result.AtRules, a)
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
