package htmllint

import (
	"regexp"
	"strings"

	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/brianc020801/INFO-340-Problem-4/internal/parser/html"
	"github.com/brianc020801/INFO-340-Problem-4/internal/position"
)

func init() {
	Register(DoctypeFirst)
	Register(DoctypeHTML5)
	Register(HTMLReqLang)
	Register(LangStyle)
	Register(HeadReqTitle)
	Register(TitleNoDup)
	Register(TitleMaxLen)
}

var documentStart = position.Range{
	Start: position.Position{Line: 1, Column: 1},
	End:   position.Position{Line: 1, Column: 1},
}

// DoctypeFirst requires the doctype before anything but comments and
// whitespace
var DoctypeFirst = RuleDef{
	ID:          "doctype-first",
	Description: "Require <!DOCTYPE> as the first element.",
	Check: func(doc *Document, _ any) []diagnostic.Diagnostic {
		first := doc.HTML.First
		if first != nil && first.Kind == "doctype" {
			return nil
		}
		r := documentStart
		if first != nil {
			r = startOf(first.Range)
		}
		return []diagnostic.Diagnostic{diagnostic.New("", r, "<!DOCTYPE> should be the first element seen")}
	},
}

var html5Doctype = regexp.MustCompile(`(?i)^<!doctype\s+html\s*>$`)

// DoctypeHTML5 requires the doctype, when present, to be <!DOCTYPE html>
var DoctypeHTML5 = RuleDef{
	ID:          "doctype-html5",
	Description: "Require the HTML5 doctype.",
	Check: func(doc *Document, _ any) []diagnostic.Diagnostic {
		dt := doc.HTML.Doctype
		if dt == nil || html5Doctype.MatchString(strings.TrimSpace(dt.Text)) {
			return nil
		}
		return []diagnostic.Diagnostic{diagnostic.New("", startOf(dt.Range), "the doctype must conform to the HTML5 standard")}
	},
}

func htmlElements(doc *Document) []*html.Element {
	return doc.HTML.ElementsByTag("html")
}

// HTMLReqLang requires a lang attribute on <html>
var HTMLReqLang = RuleDef{
	ID:          "html-req-lang",
	Description: "Require a lang attribute on the html element.",
	Check: func(doc *Document, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, el := range htmlElements(doc) {
			if a, ok := el.Attr("lang"); ok && a.Value != "" {
				continue
			}
			out = append(out, diagnostic.New("", startOf(el.TagRange), "html tag should specify the language of the page using the lang attribute"))
		}
		return out
	},
}

var langCode = regexp.MustCompile(`^[a-z]{2,3}(-[A-Z]{2}|-[0-9]{3})?$`)

// LangStyle checks lang values are language tags. With "case" the tag must
// also be cased the usual way (en-US).
var LangStyle = RuleDef{
	ID:          "lang-style",
	Description: "Require valid language tags in lang attributes.",
	Check: func(doc *Document, opt any) []diagnostic.Diagnostic {
		strict := opt == "case"
		var out []diagnostic.Diagnostic
		for _, a := range doc.attrs("lang") {
			v := a.Value
			if v == "" {
				continue
			}
			if !strict {
				lower := strings.ToLower(v)
				if i := strings.IndexByte(lower, '-'); i > 0 {
					v = lower[:i] + strings.ToUpper(lower[i:])
				} else {
					v = lower
				}
			}
			if !langCode.MatchString(v) {
				out = append(out, diagnostic.New("", startOf(a.ValueRange), "%q is not a valid language tag", a.Value))
			}
		}
		return out
	},
}

// HeadReqTitle requires a non-empty <title> in <head>
var HeadReqTitle = RuleDef{
	ID:          "head-req-title",
	Description: "Require a title in the head.",
	Check: func(doc *Document, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, head := range doc.HTML.ElementsByTag("head") {
			found := false
			for _, child := range head.Children {
				if child.Tag == "title" && strings.TrimSpace(child.Text) != "" {
					found = true
				}
			}
			if !found {
				out = append(out, diagnostic.New("", startOf(head.TagRange), "<head> must contain a non-empty <title>"))
			}
		}
		return out
	},
}

// TitleNoDup allows at most one <title>
var TitleNoDup = RuleDef{
	ID:          "title-no-dup",
	Description: "Disallow more than one title.",
	Check: func(doc *Document, _ any) []diagnostic.Diagnostic {
		titles := doc.HTML.ElementsByTag("title")
		var out []diagnostic.Diagnostic
		for _, t := range titles[min(1, len(titles)):] {
			out = append(out, diagnostic.New("", startOf(t.TagRange), "multiple <title> tags in the document"))
		}
		return out
	},
}

// TitleMaxLen limits the length of the title text
var TitleMaxLen = RuleDef{
	ID:          "title-max-len",
	Description: "Limit the length of the title.",
	Check: func(doc *Document, opt any) []diagnostic.Diagnostic {
		limit, ok := opt.(float64)
		if !ok || limit <= 0 {
			return nil
		}
		var out []diagnostic.Diagnostic
		for _, t := range doc.HTML.ElementsByTag("title") {
			text := strings.TrimSpace(t.Text)
			if n := len([]rune(text)); float64(n) > limit {
				out = append(out, diagnostic.New("", startOf(t.TagRange),
					"title is %d characters long, the limit is %d", n, int(limit)))
			}
		}
		return out
	},
}
