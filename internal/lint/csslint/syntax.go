package csslint

import (
	"strings"

	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/brianc020801/INFO-340-Problem-4/internal/parser/css"
)

func init() {
	Register(SyntaxError)
	Register(NoEmptySource)
}

// SyntaxError reports ERROR and MISSING nodes of the syntax tree
var SyntaxError = RuleDef{
	ID:          SyntaxErrorRule,
	Description: "Stylesheets must parse.",
	AlwaysOn:    true,
	Check:       checkSyntax,
}

func checkSyntax(result *css.ParseResult, _ any) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, e := range result.Errors {
		switch {
		case e.Missing && e.Text == "}":
			out = append(out, diagnostic.New("", e.Range, "Unclosed block"))
		case e.Missing:
			out = append(out, diagnostic.New("", e.Range, "Missing %q", e.Text))
		default:
			out = append(out, diagnostic.New("", e.Range, "Unknown word %q", firstWord(e.Text)))
		}
	}
	return out
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}
	return fields[0]
}

// NoEmptySource disallows stylesheets without any rules or comments
var NoEmptySource = RuleDef{
	ID:          "no-empty-source",
	Description: "Disallow empty sources.",
	Check: func(result *css.ParseResult, _ any) []diagnostic.Diagnostic {
		if len(result.RuleSets) > 0 || len(result.Media) > 0 || len(result.AtRules) > 0 ||
			len(result.Comments) > 0 || len(result.Declarations) > 0 || len(result.Errors) > 0 {
			return nil
		}
		return []diagnostic.Diagnostic{diagnostic.New("", css.Range{
			Start: startOfFile, End: startOfFile,
		}, "Unexpected empty source")}
	},
}
