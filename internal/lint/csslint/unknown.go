package csslint

import (
	"strings"

	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/brianc020801/INFO-340-Problem-4/internal/parser/css"
)

func init() {
	Register(PropertyNoUnknown)
	Register(UnitNoUnknown)
	Register(AtRuleNoUnknown)
	Register(MediaFeatureNameNoUnknown)
	Register(SelectorTypeNoUnknown)
	Register(SelectorPseudoClassNoUnknown)
	Register(SelectorPseudoElementNoUnknown)
}

// PropertyNoUnknown disallows misspelt property names. Custom properties
// and vendor-prefixed properties are never reported.
var PropertyNoUnknown = RuleDef{
	ID:          "property-no-unknown",
	Description: "Disallow unknown properties.",
	Check: func(result *css.ParseResult, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, d := range result.Declarations {
			prop := d.Property
			if prop == "" || strings.HasPrefix(prop, "--") || isVendorPrefixed(prop) {
				continue
			}
			if !knownProperties.Has(strings.ToLower(prop)) {
				out = append(out, diagnostic.New("", startOf(d.PropertyRange), "Unexpected unknown property %q", prop))
			}
		}
		return out
	},
}

// UnitNoUnknown disallows unknown units on numbers
var UnitNoUnknown = RuleDef{
	ID:          "unit-no-unknown",
	Description: "Disallow unknown units.",
	Check: func(result *css.ParseResult, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, d := range result.Declarations {
			for _, v := range d.Values {
				if v.Unit == "" || knownUnits.Has(strings.ToLower(v.Unit)) {
					continue
				}
				out = append(out, diagnostic.New("", startOf(v.Range), "Unexpected unknown unit %q", v.Unit))
			}
		}
		return out
	},
}

// AtRuleNoUnknown disallows at-rules that aren't part of CSS
var AtRuleNoUnknown = RuleDef{
	ID:          "at-rule-no-unknown",
	Description: "Disallow unknown at-rules.",
	Check: func(result *css.ParseResult, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, a := range result.AtRules {
			if isVendorPrefixed(strings.TrimPrefix(a.Name, "@")) || knownAtRules.Has(a.Name) {
				continue
			}
			out = append(out, diagnostic.New("", startOf(a.NameRange), "Unexpected unknown at-rule %q", a.Name))
		}
		return out
	},
}

// MediaFeatureNameNoUnknown disallows misspelt media features such as
// min-widht
var MediaFeatureNameNoUnknown = RuleDef{
	ID:          "media-feature-name-no-unknown",
	Description: "Disallow unknown media feature names.",
	Check: func(result *css.ParseResult, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, m := range result.Media {
			for _, f := range m.Features {
				name := strings.ToLower(f.Text)
				if isVendorPrefixed(name) || knownMediaFeatures.Has(name) {
					continue
				}
				out = append(out, diagnostic.New("", startOf(f.Range), "Unexpected unknown media feature name %q", f.Text))
			}
		}
		return out
	},
}

// SelectorTypeNoUnknown disallows element names that HTML, SVG and MathML
// don't define. Custom elements (names with a hyphen) are allowed.
var SelectorTypeNoUnknown = RuleDef{
	ID:          "selector-type-no-unknown",
	Description: "Disallow unknown type selectors.",
	Check: func(result *css.ParseResult, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, rs := range result.AllRuleSets() {
			for _, sel := range rs.Selectors {
				for _, tn := range sel.TypeNames {
					name := strings.ToLower(tn.Text)
					if strings.Contains(name, "-") || knownTypeSelectors.Has(name) {
						continue
					}
					out = append(out, diagnostic.New("", startOf(tn.Range), "Unexpected unknown type selector %q", tn.Text))
				}
			}
		}
		return out
	},
}

// SelectorPseudoClassNoUnknown disallows unknown :pseudo-classes
var SelectorPseudoClassNoUnknown = RuleDef{
	ID:          "selector-pseudo-class-no-unknown",
	Description: "Disallow unknown pseudo-class selectors.",
	Check: func(result *css.ParseResult, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, rs := range result.AllRuleSets() {
			for _, sel := range rs.Selectors {
				for _, p := range sel.PseudoClasses {
					name := strings.ToLower(p.Text)
					if isVendorPrefixed(name) || knownPseudoClasses.Has(name) {
						continue
					}
					out = append(out, diagnostic.New("", startOf(p.Range), "Unexpected unknown pseudo-class selector \":%s\"", p.Text))
				}
			}
		}
		return out
	},
}

// SelectorPseudoElementNoUnknown disallows unknown ::pseudo-elements
var SelectorPseudoElementNoUnknown = RuleDef{
	ID:          "selector-pseudo-element-no-unknown",
	Description: "Disallow unknown pseudo-element selectors.",
	Check: func(result *css.ParseResult, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, rs := range result.AllRuleSets() {
			for _, sel := range rs.Selectors {
				for _, p := range sel.PseudoElements {
					name := strings.ToLower(p.Text)
					if isVendorPrefixed(name) || knownPseudoElements.Has(name) {
						continue
					}
					out = append(out, diagnostic.New("", startOf(p.Range), "Unexpected unknown pseudo-element selector \"::%s\"", p.Text))
				}
			}
		}
		return out
	},
}
