package csslint

import (
	"github.com/brianc020801/INFO-340-Problem-4/internal/color"
	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/brianc020801/INFO-340-Problem-4/internal/parser/css"
)

func init() {
	Register(ColorNoInvalidHex)
}

// ColorNoInvalidHex disallows hex colours with the wrong digit count or
// non-hex digits
var ColorNoInvalidHex = RuleDef{
	ID:          "color-no-invalid-hex",
	Description: "Disallow invalid hex colors.",
	Check:       checkInvalidHex,
}

func checkInvalidHex(result *css.ParseResult, _ any) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, d := range result.Declarations {
		for _, run := range adjacentRuns(d.Values) {
			words, offsets := color.HexCandidates(run.Text)
			for i, word := range words {
				if color.IsValidHex(word) {
					continue
				}
				start := run.Range.Start
				start.Column += offsets[i]
				r := css.Range{Start: start, End: start}
				r.End.Column += len(word)
				out = append(out, diagnostic.New("", r, "Unexpected invalid hex color %q", word))
			}
		}
	}
	return out
}

// adjacentRuns glues value tokens that touch each other back together.
// Error recovery splits "#xyz" into "#" and "xyz".
func adjacentRuns(values []*css.Value) []css.Token {
	var runs []css.Token
	for _, v := range values {
		if n := len(runs); n > 0 && runs[n-1].Range.End == v.Range.Start {
			runs[n-1].Text += v.Text
			runs[n-1].Range.End = v.Range.End
			continue
		}
		runs = append(runs, css.Token{Text: v.Text, Range: v.Range})
	}
	return runs
}
