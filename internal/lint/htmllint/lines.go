package htmllint

import (
	"strings"
	"unicode/utf8"

	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/brianc020801/INFO-340-Problem-4/internal/position"
)

func init() {
	Register(LineNoTrailingWhitespace)
}

// LineNoTrailingWhitespace disallows spaces and tabs at the end of a line
var LineNoTrailingWhitespace = RuleDef{
	ID:          "line-no-trailing-whitespace",
	Description: "Disallow trailing whitespace.",
	Check: func(doc *Document, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for n := 1; n <= doc.Lines.Lines(); n++ {
			line := doc.Lines.Line(n)
			trimmed := strings.TrimRight(line, " \t")
			if trimmed == line {
				continue
			}
			start := position.Position{Line: n, Column: utf8.RuneCountInString(trimmed) + 1}
			end := position.Position{Line: n, Column: utf8.RuneCountInString(line) + 1}
			out = append(out, diagnostic.New("", position.Range{Start: start, End: end}, "trailing whitespace"))
		}
		return out
	},
}
