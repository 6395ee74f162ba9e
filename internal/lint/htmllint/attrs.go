package htmllint

import (
	"strings"

	"github.com/brianc020801/INFO-340-Problem-4/internal/collections"
	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
)

func init() {
	Register(AttrBans)
	Register(AttrNoDup)
	Register(AttrQuoteStyle)
	Register(AttrReqValue)
}

// AttrBans disallows the attributes named in the option list
var AttrBans = RuleDef{
	ID:          "attr-bans",
	Description: "Disallow the listed attributes.",
	Check: func(doc *Document, opt any) []diagnostic.Diagnostic {
		banned := collections.NewSet[string]()
		for _, name := range (diagnostic.Options{"attr-bans": opt}).Strings("attr-bans", nil) {
			banned.Add(strings.ToLower(name))
		}
		var out []diagnostic.Diagnostic
		for _, el := range doc.HTML.Elements {
			for _, a := range el.Attributes {
				if banned.Has(a.Name) {
					out = append(out, diagnostic.New("", startOf(a.NameRange), "the %q attribute is banned", a.Name))
				}
			}
		}
		return out
	},
}

// AttrNoDup disallows repeating an attribute on one element
var AttrNoDup = RuleDef{
	ID:          "attr-no-dup",
	Description: "Disallow duplicate attributes on an element.",
	Check: func(doc *Document, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, el := range doc.HTML.Elements {
			seen := collections.NewSet[string]()
			for _, a := range el.Attributes {
				if seen.Has(a.Name) {
					out = append(out, diagnostic.New("", startOf(a.NameRange), "duplicate attribute %q on <%s>", a.Name, el.Tag))
				}
				seen.Add(a.Name)
			}
		}
		return out
	},
}

// AttrQuoteStyle requires attribute values to be quoted: "double",
// "single" or "quoted" (either)
var AttrQuoteStyle = RuleDef{
	ID:          "attr-quote-style",
	Description: "Require a quote style for attribute values.",
	Check: func(doc *Document, opt any) []diagnostic.Diagnostic {
		style, _ := opt.(string)
		if style == "" {
			style = "quoted"
		}
		var out []diagnostic.Diagnostic
		for _, el := range doc.HTML.Elements {
			for _, a := range el.Attributes {
				if !a.HasValue {
					continue
				}
				var ok bool
				switch style {
				case "double":
					ok = a.Quote == '"'
				case "single":
					ok = a.Quote == '\''
				default:
					ok = a.Quote != 0
				}
				switch {
				case ok:
				case style == "quoted":
					out = append(out, diagnostic.New("", startOf(a.ValueRange), "the value of %q is not quoted", a.Name))
				default:
					out = append(out, diagnostic.New("", startOf(a.ValueRange),
						"the value of %q is not %s quoted", a.Name, style))
				}
			}
		}
		return out
	},
}

// booleanAttrs may appear without a value
var booleanAttrs = collections.NewSet(
	"allowfullscreen", "async", "autofocus", "autoplay", "checked", "controls",
	"crossorigin", "default", "defer", "disabled", "download", "formnovalidate",
	"hidden", "inert", "ismap", "itemscope", "loop", "multiple", "muted",
	"nomodule", "novalidate", "open", "playsinline", "readonly", "required",
	"reversed", "selected",
)

// AttrReqValue disallows bare attributes unless they are boolean
var AttrReqValue = RuleDef{
	ID:          "attr-req-value",
	Description: "Require a value for non-boolean attributes.",
	Check: func(doc *Document, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, el := range doc.HTML.Elements {
			for _, a := range el.Attributes {
				if a.HasValue || booleanAttrs.Has(a.Name) || strings.HasPrefix(a.Name, "data-") {
					continue
				}
				out = append(out, diagnostic.New("", startOf(a.NameRange), "attribute %q has no value", a.Name))
			}
		}
		return out
	},
}
