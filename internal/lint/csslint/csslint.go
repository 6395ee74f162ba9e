// Package csslint checks stylesheets against the rules of
// stylelint-config-recommended.
//
// Rules register themselves from init functions; Lint runs the ones enabled
// in the given options over a positioned syntax tree.
package csslint

import (
	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/brianc020801/INFO-340-Problem-4/internal/parser/css"
	"github.com/brianc020801/INFO-340-Problem-4/internal/position"
)

// RuleDef is a stylesheet rule
type RuleDef = diagnostic.RuleDef[*css.ParseResult]

// SyntaxErrorRule reports unparseable CSS and runs regardless of options
const SyntaxErrorRule = "CssSyntaxError"

var registry = diagnostic.NewRegistry[*css.ParseResult]()

// Register adds a rule to the stylesheet linter
func Register(def RuleDef) {
	registry.Register(def)
}

// Rules returns every registered rule ordered by id
func Rules() []RuleDef {
	return registry.All()
}

// DefaultOptions enables every registered rule, as the recommended config does
func DefaultOptions() diagnostic.Options {
	opts := diagnostic.Options{}
	for _, def := range registry.All() {
		opts[def.ID] = true
	}
	return opts
}

// Lint runs the enabled rules over a parsed stylesheet. nil options mean
// DefaultOptions.
func Lint(result *css.ParseResult, opts diagnostic.Options) []diagnostic.Diagnostic {
	if result == nil {
		return nil
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	return registry.Run(result, opts)
}

// LintSource parses and lints a stylesheet
func LintSource(source string, opts diagnostic.Options) ([]diagnostic.Diagnostic, error) {
	result, err := css.Parse(source)
	if err != nil {
		return nil, err
	}
	return Lint(result, opts), nil
}

var startOfFile = position.Position{Line: 1, Column: 1}

// startOf is the zero-width range at the start of r
func startOf(r css.Range) css.Range {
	return css.Range{Start: r.Start, End: r.Start}
}
