package htmllint

import (
	"strings"

	"github.com/brianc020801/INFO-340-Problem-4/internal/collections"
	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
)

func init() {
	Register(TagBans)
	Register(TagNameLowercase)
	Register(TagNameMatch)
	Register(ImgReqAlt)
	Register(ImgReqSrc)
	Register(InputRadioReqName)
	Register(LinkReqNoopener)
}

// TagBans disallows the elements named in the option list
var TagBans = RuleDef{
	ID:          "tag-bans",
	Description: "Disallow the listed elements.",
	Check: func(doc *Document, opt any) []diagnostic.Diagnostic {
		banned := collections.NewSet[string]()
		for _, name := range (diagnostic.Options{"tag-bans": opt}).Strings("tag-bans", nil) {
			banned.Add(strings.ToLower(name))
		}
		var out []diagnostic.Diagnostic
		for _, el := range doc.HTML.Elements {
			if banned.Has(el.Tag) {
				out = append(out, diagnostic.New("", startOf(el.TagRange), "the <%s> tag is banned", el.Tag))
			}
		}
		return out
	},
}

// TagNameLowercase requires lower-case element names
var TagNameLowercase = RuleDef{
	ID:          "tag-name-lowercase",
	Description: "Require lower-case tag names.",
	Check: func(doc *Document, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, el := range doc.HTML.Elements {
			if el.RawTag != el.Tag {
				out = append(out, diagnostic.New("", startOf(el.TagRange), "tag name <%s> is not lower case", el.RawTag))
			}
		}
		return out
	},
}

// TagNameMatch disallows end tags that close nothing
var TagNameMatch = RuleDef{
	ID:          "tag-name-match",
	Description: "Require end tags to match an open element.",
	Check: func(doc *Document, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, e := range doc.HTML.Errors {
			if e.EndTag {
				out = append(out, diagnostic.New("", startOf(e.Range), "end tag %s does not match an open element", e.Text))
			}
		}
		return out
	},
}

// ImgReqAlt requires alt text on images. true requires a non-empty value,
// "allownull" accepts alt="".
var ImgReqAlt = RuleDef{
	ID:          "img-req-alt",
	Description: "Require alt text on images.",
	Check: func(doc *Document, opt any) []diagnostic.Diagnostic {
		allowNull := opt == "allownull"
		var out []diagnostic.Diagnostic
		for _, el := range doc.HTML.ElementsByTag("img") {
			a, ok := el.Attr("alt")
			switch {
			case !ok:
				out = append(out, diagnostic.New("", startOf(el.TagRange), "<img> must have an alt attribute"))
			case a.Value == "" && !allowNull:
				out = append(out, diagnostic.New("", startOf(a.Range), "<img> alt text must not be empty"))
			}
		}
		return out
	},
}

// ImgReqSrc requires a non-empty src on images
var ImgReqSrc = RuleDef{
	ID:          "img-req-src",
	Description: "Require a src on images.",
	Check: func(doc *Document, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, el := range doc.HTML.ElementsByTag("img") {
			if a, ok := el.Attr("src"); ok && strings.TrimSpace(a.Value) != "" {
				continue
			}
			out = append(out, diagnostic.New("", startOf(el.TagRange), "<img> must have a non-empty src attribute"))
		}
		return out
	},
}

// InputRadioReqName requires radio buttons to belong to a named group
var InputRadioReqName = RuleDef{
	ID:          "input-radio-req-name",
	Description: "Require a name on radio inputs.",
	Check: func(doc *Document, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, el := range doc.HTML.ElementsByTag("input") {
			typ, ok := el.Attr("type")
			if !ok || !strings.EqualFold(typ.Value, "radio") {
				continue
			}
			if name, ok := el.Attr("name"); ok && name.Value != "" {
				continue
			}
			out = append(out, diagnostic.New("", startOf(el.TagRange), "radio inputs must have a name"))
		}
		return out
	},
}

// LinkReqNoopener requires rel="noopener" or rel="noreferrer" on links
// that open a new browsing context
var LinkReqNoopener = RuleDef{
	ID:          "link-req-noopener",
	Description: "Require rel=noopener on target=_blank links.",
	Check: func(doc *Document, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, el := range doc.HTML.ElementsByTag("a") {
			target, ok := el.Attr("target")
			if !ok || !strings.EqualFold(target.Value, "_blank") {
				continue
			}
			rel, _ := el.Attr("rel")
			if rel != nil {
				tokens := collections.NewSet(strings.Fields(strings.ToLower(rel.Value))...)
				if tokens.Has("noopener") || tokens.Has("noreferrer") {
					continue
				}
			}
			out = append(out, diagnostic.New("", startOf(el.TagRange), `links with target="_blank" must have rel="noopener" or rel="noreferrer"`))
		}
		return out
	},
}
