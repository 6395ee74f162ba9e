package csslint

import (
	"strings"

	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/brianc020801/INFO-340-Problem-4/internal/parser/css"
	"github.com/brianc020801/INFO-340-Problem-4/internal/position"
)

func init() {
	Register(NoDuplicateAtImportRules)
	Register(NoInvalidPositionAtImportRule)
}

// NoDuplicateAtImportRules disallows importing the same stylesheet twice
var NoDuplicateAtImportRules = RuleDef{
	ID:          "no-duplicate-at-import-rules",
	Description: "Disallow duplicate @import rules.",
	Check: func(result *css.ParseResult, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		seen := map[string]bool{}
		for _, a := range result.AtRules {
			if a.Name != "@import" {
				continue
			}
			key := importKey(a.Prelude)
			if seen[key] {
				out = append(out, diagnostic.New("", startOf(a.Range), "Unexpected duplicate @import rule %s", a.Prelude))
			}
			seen[key] = true
		}
		return out
	},
}

// importKey reduces `url("a.css") screen` and `'a.css' screen` to one form
func importKey(prelude string) string {
	p := strings.TrimSpace(prelude)
	if strings.HasPrefix(strings.ToLower(p), "url(") {
		if end := strings.IndexByte(p, ')'); end > 0 {
			p = p[4:end] + p[end+1:]
		}
	}
	p = strings.NewReplacer(`"`, "", "'", "").Replace(p)
	return strings.ToLower(strings.Join(strings.Fields(p), " "))
}

// NoInvalidPositionAtImportRule requires @import before every other
// statement except @charset and @layer
var NoInvalidPositionAtImportRule = RuleDef{
	ID:          "no-invalid-position-at-import-rule",
	Description: "Disallow invalid position @import rules.",
	Check: func(result *css.ParseResult, _ any) []diagnostic.Diagnostic {
		first, ok := firstStatement(result)
		if !ok {
			return nil
		}
		var out []diagnostic.Diagnostic
		for _, a := range result.AtRules {
			if a.Name == "@import" && first.Before(a.Range.Start) {
				out = append(out, diagnostic.New("", startOf(a.Range), "Unexpected invalid position @import rule"))
			}
		}
		return out
	},
}

// firstStatement finds where the first statement that must follow every
// @import starts
func firstStatement(result *css.ParseResult) (position.Position, bool) {
	var starts []position.Position
	for _, rs := range result.RuleSets {
		starts = append(starts, rs.Range.Start)
	}
	for _, m := range result.Media {
		starts = append(starts, m.Range.Start)
	}
	for _, a := range result.AtRules {
		switch a.Name {
		case "@import", "@charset", "@layer":
		default:
			starts = append(starts, a.Range.Start)
		}
	}
	if len(starts) == 0 {
		return position.Position{}, false
	}
	first := starts[0]
	for _, p := range starts[1:] {
		if p.Before(first) {
			first = p
		}
	}
	return first, true
}
