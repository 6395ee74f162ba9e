package csslint

import (
	"regexp"
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"

	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/brianc020801/INFO-340-Problem-4/internal/parser/css"
)

func init() {
	Register(NoDuplicateSelectors)
	Register(NoDescendingSpecificity)
}

// cascadeContext groups rule sets the way the cascade sees them: top-level rules
// together, rules under the same media query together
func cascadeContext(rs *css.RuleSet) string {
	if rs.Media == nil {
		return ""
	}
	return "@media " + strings.ToLower(rs.Media.Query)
}

var combinatorSpace = regexp.MustCompile(`\s*([>+~])\s*`)

// normalizeSelector collapses whitespace so `nav>a` and `nav > a` compare
// equal
func normalizeSelector(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return combinatorSpace.ReplaceAllString(s, " $1 ")
}

// NoDuplicateSelectors disallows repeating a selector list in the same
// context, and repeating a selector within one list
var NoDuplicateSelectors = RuleDef{
	ID:          "no-duplicate-selectors",
	Description: "Disallow duplicate selectors within a stylesheet.",
	Check:       checkDuplicateSelectors,
}

func checkDuplicateSelectors(result *css.ParseResult, _ any) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	firstSeen := map[string]map[string]*css.RuleSet{}
	for _, rs := range result.AllRuleSets() {
		ctx := cascadeContext(rs)
		if firstSeen[ctx] == nil {
			firstSeen[ctx] = map[string]*css.RuleSet{}
		}

		inList := map[string]bool{}
		var keys []string
		for _, sel := range rs.Selectors {
			norm := normalizeSelector(sel.Text)
			if inList[norm] {
				out = append(out, diagnostic.New("", startOf(sel.Range),
					"Unexpected duplicate selector %q, first used at line %d", sel.Text, rs.Range.Start.Line))
				continue
			}
			inList[norm] = true
			keys = append(keys, norm)
		}
		sort.Strings(keys)
		key := strings.Join(keys, ",")

		if prev, ok := firstSeen[ctx][key]; ok {
			out = append(out, diagnostic.New("", startOf(rs.Range),
				"Unexpected duplicate selector %q, first used at line %d", rs.SelectorText, prev.Range.Start.Line))
			continue
		}
		firstSeen[ctx][key] = rs
	}
	return out
}

// NoDescendingSpecificity disallows a selector that comes after a more
// specific selector targeting the same compound, e.g. `a` after `nav a`
var NoDescendingSpecificity = RuleDef{
	ID:          "no-descending-specificity",
	Description: "Disallow selectors of lower specificity from coming after overriding selectors of higher specificity.",
	Check:       checkDescendingSpecificity,
}

type specificSelector struct {
	text        string
	specificity cascadia.Specificity
}

func checkDescendingSpecificity(result *css.ParseResult, _ any) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	seen := map[string]map[string][]specificSelector{}
	for _, rs := range result.AllRuleSets() {
		ctx := cascadeContext(rs)
		if seen[ctx] == nil {
			seen[ctx] = map[string][]specificSelector{}
		}
		for _, sel := range rs.Selectors {
			compiled, err := cascadia.ParseWithPseudoElement(sel.Text)
			if err != nil {
				continue
			}
			ref := lastCompound(sel.Text)
			if ref == "" {
				continue
			}
			cur := specificSelector{text: sel.Text, specificity: compiled.Specificity()}
			for _, prior := range seen[ctx][ref] {
				if cur.specificity.Less(prior.specificity) {
					out = append(out, diagnostic.New("", startOf(sel.Range),
						"Expected selector %q to come before selector %q", sel.Text, prior.text))
					break
				}
			}
			seen[ctx][ref] = append(seen[ctx][ref], cur)
		}
	}
	return out
}

var pseudoClass = regexp.MustCompile(`(^|[^:]):[a-zA-Z-]+(\([^)]*\))?`)

// lastCompound returns the compound selector after the last combinator,
// without pseudo-classes: `nav a:hover` gives `a`
func lastCompound(sel string) string {
	depth, bracket := 0, 0
	start := 0
	for i, r := range sel {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case '[':
			bracket++
		case ']':
			bracket--
		case ' ', '>', '+', '~', '\t', '\n':
			if depth == 0 && bracket == 0 {
				start = i + 1
			}
		}
	}
	last := strings.TrimSpace(sel[start:])
	return strings.TrimSpace(pseudoClass.ReplaceAllString(last, "$1"))
}
