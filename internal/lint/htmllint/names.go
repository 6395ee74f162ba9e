package htmllint

import (
	"regexp"
	"strings"

	"github.com/brianc020801/INFO-340-Problem-4/internal/collections"
	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/brianc020801/INFO-340-Problem-4/internal/parser/html"
)

func init() {
	Register(IDNoDup)
	Register(ClassNoDup)
	Register(IDClassStyle)
	Register(ClassStyle)
	Register(IDClassNoAd)
}

// nameStyles are the formats id-class-style and class-style accept
var nameStyles = map[string]*regexp.Regexp{
	"lowercase":  regexp.MustCompile(`^[a-z][a-z\d]*$`),
	"underscore": regexp.MustCompile(`^[a-z][a-z\d]*(_[a-z\d]+)*$`),
	"dash":       regexp.MustCompile(`^[a-z][a-z\d]*(-[a-z\d]+)*$`),
	"camel":      regexp.MustCompile(`^[a-zA-Z][a-zA-Z\d]*$`),
	"bem":        regexp.MustCompile(`^[a-z][a-z\d]*(-[a-z\d]+)*(__[a-z\d]+(-[a-z\d]+)*)?(--[a-z\d]+(-[a-z\d]+)*)?$`),
}

// styleOf resolves a style option; ok is false for false, "none" or
// unknown styles
func styleOf(opt any) (name string, re *regexp.Regexp, ok bool) {
	name, _ = opt.(string)
	re, ok = nameStyles[name]
	return name, re, ok
}

// IDNoDup disallows reusing an id
var IDNoDup = RuleDef{
	ID:          "id-no-dup",
	Description: "Disallow duplicate ids.",
	Check: func(doc *Document, _ any) []diagnostic.Diagnostic {
		first := map[string]*html.Attribute{}
		var out []diagnostic.Diagnostic
		for _, a := range doc.attrs("id") {
			if prev, ok := first[a.Value]; ok {
				out = append(out, diagnostic.New("", startOf(a.ValueRange),
					"the id %q is already in use at line %d", a.Value, prev.Range.Start.Line))
				continue
			}
			first[a.Value] = a
		}
		return out
	},
}

// ClassNoDup disallows listing a class twice in one class attribute
var ClassNoDup = RuleDef{
	ID:          "class-no-dup",
	Description: "Disallow duplicate classes on an element.",
	Check: func(doc *Document, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, a := range doc.attrs("class") {
			seen := collections.NewSet[string]()
			for _, c := range strings.Fields(a.Value) {
				if seen.Has(c) {
					out = append(out, diagnostic.New("", startOf(a.ValueRange), "duplicate class %q", c))
				}
				seen.Add(c)
			}
		}
		return out
	},
}

// IDClassStyle checks id and class names against a naming style. Classes
// are left to class-style when that rule is configured.
var IDClassStyle = RuleDef{
	ID:          "id-class-style",
	Description: "Require a naming style for ids and classes.",
	Check: func(doc *Document, opt any) []diagnostic.Diagnostic {
		name, re, ok := styleOf(opt)
		if !ok {
			return nil
		}
		out := checkNames(doc.attrs("id"), name, re)
		if !doc.classStyle {
			out = append(out, checkNames(doc.attrs("class"), name, re)...)
		}
		return out
	},
}

// ClassStyle checks class names against a naming style
var ClassStyle = RuleDef{
	ID:          "class-style",
	Description: "Require a naming style for classes.",
	Check: func(doc *Document, opt any) []diagnostic.Diagnostic {
		name, re, ok := styleOf(opt)
		if !ok {
			return nil
		}
		return checkNames(doc.attrs("class"), name, re)
	},
}

func checkNames(attrs []*html.Attribute, style string, re *regexp.Regexp) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, a := range attrs {
		for _, v := range strings.Fields(a.Value) {
			if !re.MatchString(v) {
				out = append(out, diagnostic.New("", startOf(a.ValueRange),
					"%s %q does not match the %s style", a.Name, v, style))
			}
		}
	}
	return out
}

var adWords = regexp.MustCompile(`(?i)(^|[-_])(ad|ads|adv|advert|banner|sponsor)([-_]|$)`)

// IDClassNoAd disallows names that ad blockers hide, such as "ad-banner"
var IDClassNoAd = RuleDef{
	ID:          "id-class-no-ad",
	Description: "Disallow ad-like words in ids and classes.",
	Check: func(doc *Document, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, a := range append(doc.attrs("id"), doc.attrs("class")...) {
			for _, v := range strings.Fields(a.Value) {
				if adWords.MatchString(v) {
					out = append(out, diagnostic.New("", startOf(a.ValueRange),
						"%s %q may be hidden by ad blockers", a.Name, v))
				}
			}
		}
		return out
	},
}
