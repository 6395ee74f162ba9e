/*
Package cssom holds the rule tree of a stylesheet: plain rules with their
selectors and declarations, and at-rules (most importantly @media) with
their nested rules. Comments never appear as rules.

The tree is built with douceur and is read-only once parsed. It is the
structure rubrics inspect when they ask questions like "is there exactly
one media rule for min-width:768px, and does its body rule set a cover
background?".
*/
package cssom

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Kind tells plain rules from at-rules
type Kind int

const (
	// PlainRule is a selector list with a declaration block
	PlainRule Kind = iota
	// AtRule is an @-rule such as @media or @font-face
	AtRule
)

// StyleSheet is an ordered list of rules
type StyleSheet struct {
	rules []*Rule
}

// Rule is a plain rule or an at-rule
type Rule struct {
	Kind Kind
	// Name is the at-keyword including '@', lower-cased; empty for plain rules
	Name string
	// Prelude is the whitespace-normalised text before the block
	Prelude      string
	Selectors    []string
	Declarations []*Declaration
	Rules        []*Rule
}

// Declaration is a property/value pair
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// String renders the declaration as `property:value`, the form rubrics
// compare against.
func (d *Declaration) String() string {
	return d.Property + ":" + d.Value
}

// Parse parses a stylesheet
func Parse(source string) (*StyleSheet, error) {
	sheet, err := parser.Parse(source)
	if err != nil {
		return &StyleSheet{}, fmt.Errorf("failed to parse stylesheet: %w", err)
	}
	return Wrap(sheet), nil
}

// Wrap converts a douceur stylesheet
func Wrap(sheet *css.Stylesheet) *StyleSheet {
	s := &StyleSheet{}
	if sheet == nil {
		return s
	}
	s.rules = wrapRules(sheet.Rules)
	return s
}

func wrapRules(in []*css.Rule) []*Rule {
	out := make([]*Rule, 0, len(in))
	for _, r := range in {
		out = append(out, wrapRule(r))
	}
	return out
}

func wrapRule(r *css.Rule) *Rule {
	rule := &Rule{
		Prelude:      NormalizeValue(r.Prelude),
		Declarations: wrapDeclarations(r.Declarations),
		Rules:        wrapRules(r.Rules),
	}
	if r.Kind == css.AtRule {
		rule.Kind = AtRule
		rule.Name = strings.ToLower(r.Name)
	} else {
		for _, sel := range r.Selectors {
			rule.Selectors = append(rule.Selectors, NormalizeValue(sel))
		}
	}
	return rule
}

func wrapDeclarations(in []*css.Declaration) []*Declaration {
	out := make([]*Declaration, 0, len(in))
	for _, d := range in {
		out = append(out, &Declaration{
			Property:  strings.ToLower(strings.TrimSpace(d.Property)),
			Value:     NormalizeValue(d.Value),
			Important: d.Important,
		})
	}
	return out
}

// ParseDeclarations parses the body of a declaration block or a style
// attribute.
func ParseDeclarations(source string) ([]*Declaration, error) {
	// douceur drops the value of a final declaration without ";"
	source = strings.TrimSpace(source)
	if source != "" && !strings.HasSuffix(source, ";") {
		source += ";"
	}
	decls, err := parser.ParseDeclarations(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse declarations: %w", err)
	}
	return wrapDeclarations(decls), nil
}

// NormalizeValue collapses runs of whitespace into single spaces
func NormalizeValue(v string) string {
	return strings.Join(strings.Fields(v), " ")
}

// Empty checks if this stylesheet contains any rules
func (s *StyleSheet) Empty() bool {
	return len(s.rules) == 0
}

// AppendRules appends the rules of another stylesheet
func (s *StyleSheet) AppendRules(other *StyleSheet) {
	if other == nil {
		return
	}
	s.rules = append(s.rules, other.rules...)
}

// Rules returns all top-level rules in source order
func (s *StyleSheet) Rules() []*Rule {
	return s.rules
}

// PlainRules returns the top-level rules that are not at-rules
func (s *StyleSheet) PlainRules() []*Rule {
	return Filter(s.rules, func(r *Rule) bool { return r.Kind == PlainRule })
}

// MediaRules returns the top-level @media rules
func (s *StyleSheet) MediaRules() []*Rule {
	return Filter(s.rules, (*Rule).IsMedia)
}

// MediaMatching returns the media rules whose condition, with all
// whitespace removed, contains feature (e.g. "min-width:768px").
func (s *StyleSheet) MediaMatching(feature string) []*Rule {
	feature = stripSpace(feature)
	return Filter(s.MediaRules(), func(r *Rule) bool {
		return strings.Contains(stripSpace(r.Media()), feature)
	})
}

// IsMedia reports whether r is an @media rule
func (r *Rule) IsMedia() bool {
	return r.Kind == AtRule && r.Name == "@media"
}

// Media returns the condition of a media rule
func (r *Rule) Media() string {
	if !r.IsMedia() {
		return ""
	}
	return r.Prelude
}

// SelectorText returns the selectors joined with commas
func (r *Rule) SelectorText() string {
	return strings.Join(r.Selectors, ",")
}

// Declaration returns the first declaration of prop
func (r *Rule) Declaration(prop string) (*Declaration, bool) {
	for _, d := range r.Declarations {
		if d.Property == prop {
			return d, true
		}
	}
	return nil, false
}

// Value returns the value of the first declaration of prop, or ""
func (r *Rule) Value(prop string) string {
	if d, ok := r.Declaration(prop); ok {
		return d.Value
	}
	return ""
}

// DeclarationsMatching returns the declarations whose property contains substr
func (r *Rule) DeclarationsMatching(substr string) []*Declaration {
	var out []*Declaration
	for _, d := range r.Declarations {
		if strings.Contains(d.Property, substr) {
			out = append(out, d)
		}
	}
	return out
}

// DeclarationPairs returns every declaration as `property:value`
func (r *Rule) DeclarationPairs() []string {
	out := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		out = append(out, d.String())
	}
	return out
}

// Filter returns the rules satisfying pred
func Filter(rules []*Rule, pred func(*Rule) bool) []*Rule {
	var out []*Rule
	for _, r := range rules {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Find returns the first rule satisfying pred
func Find(rules []*Rule, pred func(*Rule) bool) (*Rule, bool) {
	for _, r := range rules {
		if pred(r) {
			return r, true
		}
	}
	return nil, false
}

// FindSelector returns the first rule whose joined selector text contains substr
func FindSelector(rules []*Rule, substr string) (*Rule, bool) {
	return Find(rules, func(r *Rule) bool {
		return strings.Contains(r.SelectorText(), substr)
	})
}

// FindSelectorMatch returns the first rule whose joined selector text matches re
func FindSelectorMatch(rules []*Rule, re *regexp.Regexp) (*Rule, bool) {
	return Find(rules, func(r *Rule) bool {
		return re.MatchString(r.SelectorText())
	})
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
