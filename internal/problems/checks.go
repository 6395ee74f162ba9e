package problems

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/brianc020801/INFO-340-Problem-4/internal/color"
	"github.com/brianc020801/INFO-340-Problem-4/internal/cssom"
	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/brianc020801/INFO-340-Problem-4/internal/documents"
	"github.com/brianc020801/INFO-340-Problem-4/internal/dom"
	"github.com/brianc020801/INFO-340-Problem-4/internal/exercise"
	"github.com/brianc020801/INFO-340-Problem-4/internal/lint"
	"github.com/brianc020801/INFO-340-Problem-4/internal/rubric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noLintErrors fails when doc has error-severity diagnostics, listing them
func noLintErrors(t *rubric.T, doc *documents.Document, missing string, cfg lint.Config) {
	require.NotNil(t, doc, "%s is missing", missing)
	diags, err := lint.Document(t.Context(), doc, cfg)
	require.NoError(t, err)

	var errs []string
	for _, d := range diags {
		if d.Severity == diagnostic.SeverityError {
			errs = append(errs, d.String())
		}
	}
	if len(errs) > 0 {
		t.Errorf("expected no lint errors, found %d:\n%s", len(errs), strings.Join(errs, "\n"))
	}
}

// viewportMeta checks for the single responsive viewport tag
func viewportMeta(doc *dom.Document) rubric.CheckFunc {
	return func(t *rubric.T) {
		meta := doc.Find(`meta[name="viewport"]`)
		require.Equal(t, 1, meta.Length(), "number of viewport meta tags")

		content, _ := meta.Attr("content")
		attrs := strings.Split(content, ",")
		for i := range attrs {
			attrs[i] = strings.TrimSpace(attrs[i])
		}
		slices.Sort(attrs)
		require.GreaterOrEqual(t, len(attrs), 3, "viewport content %q", content)
		assert.Equal(t, "initial-scale=1", attrs[0])
		assert.Equal(t, "shrink-to-fit=no", attrs[1])
		assert.Equal(t, "width=device-width", attrs[2])
	}
}

// assertColor compares colours by value, so "white", "#fff" and
// "rgb(255, 255, 255)" all match
func assertColor(t *rubric.T, want, got, name string) bool {
	if color.Equal(want, got) {
		return true
	}
	hex, err := color.Hex(got)
	if err != nil {
		hex = "not a color"
	}
	return assert.Fail(t, fmt.Sprintf("%s: expected %s, got %q (%s)", name, want, got, hex))
}

// requireSheet fails with the CSS parse error, if any. The sheet is empty
// after a parse error, so later checks would only report missing rules.
func requireSheet(t *rubric.T, ex *exercise.Exercise) {
	require.NoError(t, ex.SheetErr, "stylesheet could not be parsed")
}

// firstMedia returns the first media rule for feature, failing when there
// is none
func firstMedia(t *rubric.T, ex *exercise.Exercise, feature string) *cssom.Rule {
	requireSheet(t, ex)
	matching := ex.Sheet.MediaMatching(feature)
	require.NotEmpty(t, matching, "no media rule for %s", feature)
	return matching[0]
}

// mediaQuery checks that exactly one single-condition media rule targets
// feature and that it holds n rules
func mediaQuery(ex *exercise.Exercise, feature string, n int) rubric.CheckFunc {
	return func(t *rubric.T) {
		requireSheet(t, ex)
		matching := ex.Sheet.MediaMatching(feature)
		require.Len(t, matching, 1, "media rules for %s", feature)
		m := matching[0]
		assert.NotContains(t, m.Media(), "and", "only one condition for size")
		assert.Len(t, m.Rules, n, "rules inside @media %s", m.Media())
	}
}

// ruleSelecting returns the first rule whose selectors mention substr
func ruleSelecting(t *rubric.T, rules []*cssom.Rule, substr string) *cssom.Rule {
	r, ok := cssom.FindSelector(rules, substr)
	require.True(t, ok, "no rule selects %q", substr)
	return r
}

// ruleMatching returns the first rule whose selectors match re
func ruleMatching(t *rubric.T, rules []*cssom.Rule, re *regexp.Regexp) *cssom.Rule {
	r, ok := cssom.FindSelectorMatch(rules, re)
	require.True(t, ok, "no rule selector matches /%s/", re)
	return r
}

// value returns the value rule declares for prop
func value(t *rubric.T, r *cssom.Rule, prop string) string {
	d, ok := r.Declaration(prop)
	require.True(t, ok, "rule %q has no %s declaration", r.SelectorText(), prop)
	return d.Value
}

func cardLabel(i int) string {
	return fmt.Sprintf("card %d", i+1)
}
