package css

import "github.com/brianc020801/INFO-340-Problem-4/internal/position"

// Range is a span in the parsed stylesheet
type Range = position.Range

// ValueKind classifies a single component of a declaration value
type ValueKind string

const (
	PlainValue   ValueKind = "plain"
	IntegerValue ValueKind = "integer"
	FloatValue   ValueKind = "float"
	ColorValue   ValueKind = "color"
	StringValue  ValueKind = "string"
	CallValue    ValueKind = "call"
	OtherValue   ValueKind = "other"
)

// Value is one component of a declaration value, e.g. `2.5rem` or `#fff`
type Value struct {
	Kind ValueKind
	Text string
	// Unit is set for numbers with a unit suffix ("rem" for 2.5rem)
	Unit      string
	UnitRange Range
	Range     Range
}

// Declaration is a `property: value` pair inside a block
type Declaration struct {
	Property      string
	PropertyRange Range
	Value         string
	Values        []*Value
	Important     bool
	Range         Range
}

// Selector is one comma-separated part of a rule's selector list
type Selector struct {
	Text string
	// TypeNames holds the element names the selector mentions
	TypeNames []Token
	// PseudoClasses and PseudoElements hold names without their colons
	PseudoClasses  []Token
	PseudoElements []Token
	Range          Range
}

// Token is a piece of source text with its range
type Token struct {
	Text  string
	Range Range
}

// RuleSet is a qualified rule: selectors and a declaration block
type RuleSet struct {
	SelectorText string
	Selectors    []*Selector
	Declarations []*Declaration
	// Empty is true when the block holds nothing at all, not even comments
	Empty      bool
	BlockRange Range
	Range      Range
	// Media is the enclosing media statement, nil for top-level rules
	Media *MediaStatement
}

// MediaStatement is an @media block
type MediaStatement struct {
	Query    string
	Features []Token
	Rules    []*RuleSet
	// Empty is true when the block holds nothing at all
	Empty bool
	Range Range
}

// AtRule is any other at-rule (@import, @font-face, @keyframes, unknown ones)
type AtRule struct {
	Name      string
	Prelude   string
	NameRange Range
	Range     Range
}

// Comment is a /* */ comment
type Comment struct {
	Text string
	// Body is the comment text without delimiters, trimmed
	Body  string
	Range Range
}

// SyntaxError is an ERROR or MISSING node in the syntax tree
type SyntaxError struct {
	Text    string
	Missing bool
	Range   Range
}

// ParseResult contains the results of parsing CSS
type ParseResult struct {
	RuleSets     []*RuleSet
	Media        []*MediaStatement
	AtRules      []*AtRule
	Comments     []*Comment
	Declarations []*Declaration
	Errors       []*SyntaxError
}

// AllRuleSets returns top-level rule sets followed by rule sets nested in
// media statements, in source order within each group.
func (r *ParseResult) AllRuleSets() []*RuleSet {
	out := append([]*RuleSet{}, r.RuleSets...)
	for _, m := range r.Media {
		out = append(out, m.Rules...)
	}
	return out
}

// Shift moves every range in the result by origin, for CSS embedded in
// another document.
func (r *ParseResult) Shift(origin position.Position) {
	sh := func(rg *Range) { *rg = position.ShiftRange(*rg, origin) }
	seen := map[*Declaration]bool{}
	shiftDecl := func(d *Declaration) {
		if seen[d] {
			return
		}
		seen[d] = true
		sh(&d.Range)
		sh(&d.PropertyRange)
		for _, v := range d.Values {
			sh(&v.Range)
			sh(&v.UnitRange)
		}
	}
	shiftRule := func(rs *RuleSet) {
		sh(&rs.Range)
		sh(&rs.BlockRange)
		for _, s := range rs.Selectors {
			sh(&s.Range)
			for _, toks := range [][]Token{s.TypeNames, s.PseudoClasses, s.PseudoElements} {
				for i := range toks {
					sh(&toks[i].Range)
				}
			}
		}
		for _, d := range rs.Declarations {
			shiftDecl(d)
		}
	}
	for _, rs := range r.RuleSets {
		shiftRule(rs)
	}
	for _, m := range r.Media {
		sh(&m.Range)
		for i := range m.Features {
			sh(&m.Features[i].Range)
		}
		for _, rs := range m.Rules {
			shiftRule(rs)
		}
	}
	for _, d := range r.Declarations {
		shiftDecl(d)
	}
	for _, a := range r.AtRules {
		sh(&a.Range)
		sh(&a.NameRange)
	}
	for _, c := range r.Comments {
		sh(&c.Range)
	}
	for _, e := range r.Errors {
		sh(&e.Range)
	}
}
