package csslint

import (
	"regexp"
	"strings"

	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/brianc020801/INFO-340-Problem-4/internal/parser/css"
)

func init() {
	Register(DeclarationBlockNoDuplicateProperties)
	Register(DeclarationBlockNoShorthandPropertyOverrides)
	Register(FontFamilyNoMissingGenericFamilyKeyword)
	Register(FontFamilyNoDuplicateNames)
}

// DeclarationBlockNoDuplicateProperties disallows declaring a property twice
// in one block. Consecutive duplicates whose values have a different shape
// (a fallback followed by calc() or a newer colour syntax) are allowed.
var DeclarationBlockNoDuplicateProperties = RuleDef{
	ID:          "declaration-block-no-duplicate-properties",
	Description: "Disallow duplicate properties within declaration blocks.",
	Check:       checkDuplicateProperties,
}

func checkDuplicateProperties(result *css.ParseResult, _ any) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, rs := range result.AllRuleSets() {
		seen := map[string]*css.Declaration{}
		var prev *css.Declaration
		for _, d := range rs.Declarations {
			prop := d.Property
			if !strings.HasPrefix(prop, "--") {
				prop = strings.ToLower(prop)
			}
			_, dup := seen[prop]
			consecutive := prev != nil && strings.EqualFold(prev.Property, d.Property)
			switch {
			case !dup:
				seen[prop] = d
			case consecutive && valueShape(prev) != valueShape(d):
				// fallback pattern
			default:
				out = append(out, diagnostic.New("", startOf(d.PropertyRange), "Unexpected duplicate %q", d.Property))
			}
			prev = d
		}
	}
	return out
}

// valueShape summarises a value by token kinds and units, so `10px` and
// `2em` share a shape but `10px` and `calc(1em + 2px)` don't.
func valueShape(d *css.Declaration) string {
	var b strings.Builder
	for _, v := range d.Values {
		b.WriteString(string(v.Kind))
		b.WriteByte(':')
		b.WriteString(strings.ToLower(v.Unit))
		if v.Kind == css.CallValue {
			if i := strings.IndexByte(v.Text, '('); i > 0 {
				b.WriteString(strings.ToLower(v.Text[:i]))
			}
		}
		b.WriteByte(' ')
	}
	return b.String()
}

// DeclarationBlockNoShorthandPropertyOverrides disallows a shorthand after
// one of its longhands in the same block
var DeclarationBlockNoShorthandPropertyOverrides = RuleDef{
	ID:          "declaration-block-no-shorthand-property-overrides",
	Description: "Disallow shorthand properties that override related longhand properties.",
	Check: func(result *css.ParseResult, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, rs := range result.AllRuleSets() {
			declared := map[string]string{}
			for _, d := range rs.Declarations {
				prop := strings.ToLower(d.Property)
				for _, long := range longhands[prop] {
					if orig, ok := declared[long]; ok {
						out = append(out, diagnostic.New("", startOf(d.PropertyRange),
							"Unexpected shorthand %q after %q", d.Property, orig))
						break
					}
				}
				declared[prop] = d.Property
			}
		}
		return out
	},
}

// FontFamilyNoMissingGenericFamilyKeyword requires a generic family such as
// sans-serif at the end of every font-family list
var FontFamilyNoMissingGenericFamilyKeyword = RuleDef{
	ID:          "font-family-no-missing-generic-family-keyword",
	Description: "Disallow a missing generic family keyword within font families.",
	Check: func(result *css.ParseResult, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		// @font-face descriptors are not inside rule sets and are skipped
		for _, rs := range result.AllRuleSets() {
			for _, d := range rs.Declarations {
				families, ok := fontFamilies(d)
				if !ok || len(families) == 0 {
					continue
				}
				if hasGenericFamily(families) {
					continue
				}
				out = append(out, diagnostic.New("", startOf(d.PropertyRange), "Unexpected missing generic font family"))
			}
		}
		return out
	},
}

func hasGenericFamily(families []string) bool {
	for _, f := range families {
		if isQuoted(f) {
			continue
		}
		if genericFontFamilies.Has(strings.ToLower(f)) {
			return true
		}
	}
	return false
}

// FontFamilyNoDuplicateNames disallows naming the same family twice
var FontFamilyNoDuplicateNames = RuleDef{
	ID:          "font-family-no-duplicate-names",
	Description: "Disallow duplicate names within font families.",
	Check: func(result *css.ParseResult, _ any) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, rs := range result.AllRuleSets() {
			for _, d := range rs.Declarations {
				families, ok := fontFamilies(d)
				if !ok {
					continue
				}
				seen := map[string]bool{}
				for _, f := range families {
					key := unquote(f)
					if !isQuoted(f) && genericFontFamilies.Has(strings.ToLower(f)) {
						key = strings.ToLower(f)
					}
					if seen[key] {
						out = append(out, diagnostic.New("", startOf(d.PropertyRange), "Unexpected duplicate name %q", unquote(f)))
					}
					seen[key] = true
				}
			}
		}
		return out
	},
}

// fontSize matches the size component of a font shorthand, optionally with
// a line height glued to it
var fontSize = regexp.MustCompile(`(?i)^([+-]?(\d+\.?\d*|\.\d+)[a-z%]+|xx-small|x-small|small|medium|large|x-large|xx-large|xxx-large|larger|smaller)(/.*)?$`)

// fontFamilies returns the family list of a font-family or font
// declaration. ok is false for other properties and for values the rule
// can't judge (keywords, var(), system fonts).
func fontFamilies(d *css.Declaration) (families []string, ok bool) {
	value := d.Value
	lower := strings.ToLower(value)
	if strings.Contains(lower, "var(") || strings.Contains(lower, "env(") {
		return nil, false
	}
	switch strings.ToLower(d.Property) {
	case "font-family":
	case "font":
		if systemFonts.Has(lower) || cssWideKeywords.Has(lower) {
			return nil, false
		}
		rest, found := afterFontSize(value)
		if !found {
			return nil, false
		}
		value = rest
	default:
		return nil, false
	}
	if cssWideKeywords.Has(strings.ToLower(strings.TrimSpace(value))) {
		return nil, false
	}
	for _, part := range splitCommas(value) {
		if part = strings.TrimSpace(part); part != "" {
			families = append(families, part)
		}
	}
	return families, true
}

// afterFontSize returns what follows the size and line height of a font
// shorthand
func afterFontSize(value string) (string, bool) {
	fields := strings.Fields(value)
	for i, f := range fields {
		if !fontSize.MatchString(f) {
			continue
		}
		j := i + 1
		// "16px / 1.5" with spaces around the slash
		if strings.HasSuffix(f, "/") {
			j++
		} else if j < len(fields) && strings.HasPrefix(fields[j], "/") {
			if fields[j] == "/" {
				j++
			}
			j++
		}
		if j > len(fields) {
			j = len(fields)
		}
		return strings.Join(fields[j:], " "), true
	}
	return "", false
}

// splitCommas splits on commas outside quotes and parentheses
func splitCommas(s string) []string {
	var parts []string
	depth, start := 0, 0
	var quote rune
	for i, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			depth--
		case r == ',' && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

func isQuoted(s string) bool {
	return len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0]
}

func unquote(s string) string {
	if isQuoted(s) {
		return s[1 : len(s)-1]
	}
	return s
}
