package csslint

import (
	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/brianc020801/INFO-340-Problem-4/internal/parser/css"
)

func init() {
	Register(BlockNoEmpty)
	Register(CommentNoEmpty)
}

// BlockNoEmpty disallows `{}` blocks, including empty @media blocks
var BlockNoEmpty = RuleDef{
	ID:          "block-no-empty",
	Description: "Disallow empty blocks.",
	Check: func(result *css.ParseResult, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, rs := range result.AllRuleSets() {
			if rs.Empty {
				out = append(out, diagnostic.New("", startOf(rs.BlockRange), "Unexpected empty block"))
			}
		}
		for _, m := range result.Media {
			if m.Empty {
				out = append(out, diagnostic.New("", startOf(m.Range), "Unexpected empty block"))
			}
		}
		return out
	},
}

// CommentNoEmpty disallows comments with only whitespace inside
var CommentNoEmpty = RuleDef{
	ID:          "comment-no-empty",
	Description: "Disallow empty comments.",
	Check: func(result *css.ParseResult, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, c := range result.Comments {
			if c.Body == "" {
				out = append(out, diagnostic.New("", startOf(c.Range), "Unexpected empty comment"))
			}
		}
		return out
	},
}
