package problems_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/brianc020801/INFO-340-Problem-4/internal/exercise"
	"github.com/brianc020801/INFO-340-Problem-4/internal/problems"
	"github.com/brianc020801/INFO-340-Problem-4/internal/rubric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(parts ...string) string {
	return filepath.Join(append([]string{"..", "..", "test", "fixtures"}, parts...)...)
}

func grade(t *testing.T, id, dir string) *rubric.Report {
	t.Helper()
	def, err := problems.Lookup(id)
	require.NoError(t, err)
	ex, err := exercise.Load(context.Background(), dir, def.Layout)
	require.NoError(t, err)
	report, err := def.Build(ex).Run(context.Background())
	require.NoError(t, err)
	return report
}

func failedNames(r *rubric.Report) []string {
	var out []string
	for _, f := range r.Failed() {
		out = append(out, f.FullName())
	}
	return out
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{problems.ProblemA, problems.ProblemB}, problems.IDs())

	def, err := problems.Lookup("Problem-B")
	require.NoError(t, err)
	assert.Equal(t, "index.html", def.Layout.HTMLFile)
	assert.False(t, def.Layout.Inline)

	_, err = problems.Lookup("problem-z")
	require.ErrorIs(t, err, problems.ErrUnknownProblem)
}

func TestInfer(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{dir: fixture("problem-a", "solution"), want: problems.ProblemA},
		{dir: fixture("problem-b", "starter"), want: problems.ProblemB},
		{dir: filepath.Join("submissions", "alice-problem-b"), want: problems.ProblemB},
	}
	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			got, err := problems.Infer(tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := problems.Infer(t.TempDir())
	assert.ErrorIs(t, err, problems.ErrUnknownProblem)
}

func TestWithOverrides(t *testing.T) {
	def, err := problems.Lookup(problems.ProblemB)
	require.NoError(t, err)

	over := def.With(problems.Overrides{
		HTMLFile: "home.html",
		HTMLLint: diagnostic.Options{"img-req-alt": true},
	})
	assert.Equal(t, "home.html", over.Layout.HTMLFile)
	assert.Equal(t, true, over.Lint.HTML["img-req-alt"])
	assert.Equal(t, true, over.Lint.HTML["doctype-first"])

	// the registered definition is unchanged
	assert.Equal(t, "index.html", def.Layout.HTMLFile)
	assert.Equal(t, false, def.Lint.HTML["img-req-alt"])

	// problem-b has no CSS options of its own; overrides apply over the defaults
	css := def.With(problems.Overrides{CSSLint: diagnostic.Options{"block-no-empty": false}}).Lint.CSS
	assert.False(t, css.Enabled("block-no-empty"))
	assert.True(t, css.Enabled("property-no-unknown"))
}

func TestProblemASolution(t *testing.T) {
	report := grade(t, problems.ProblemA, fixture("problem-a", "solution"))
	assert.Empty(t, failedNames(report))

	passed, failed := report.Counts()
	assert.Equal(t, 18, passed)
	assert.Zero(t, failed)
}

func TestProblemAStarter(t *testing.T) {
	report := grade(t, problems.ProblemA, fixture("problem-a", "starter"))

	body, ok := report.Check("for the overall body")
	require.True(t, ok)
	assert.True(t, body.Passed, body.Failures)

	lint, ok := report.Check("Source code is valid › CSS validates without errors")
	require.True(t, ok)
	require.False(t, lint.Passed)
	assert.Contains(t, lint.Failures[0], "property-no-unknown")
	assert.Contains(t, lint.Failures[0], "color-no-invalid-hex")

	viewport, _ := report.Check("HTML includes viewport meta")
	assert.False(t, viewport.Passed)

	links, _ := report.Check("for the navigation links")
	assert.False(t, links.Passed)
	assert.Len(t, links.Failures, 2, "margin-right and hidden social links")

	media, _ := report.Check("3. Has appropriate styling on screens 598px or larger › for icon links")
	require.False(t, media.Passed)
	assert.Contains(t, media.Failures[0], "no media rule for min-width:598px")

	passed, _ := report.Counts()
	assert.Equal(t, 1, passed)
}

func TestProblemAUnparsableStylesheet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "problem-a")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	page, err := os.ReadFile(fixture("problem-a", "solution", "index.html"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), page, 0o600))
	css, err := os.ReadFile(fixture("problem-a", "solution", "css", "style.css"))
	require.NoError(t, err)
	broken := "body { color: red; }\n}\n" + string(css)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "style.css"), []byte(broken), 0o600))

	report := grade(t, problems.ProblemA, dir)
	for _, name := range []string{
		"3. Has appropriate styling on screens 598px or larger › using media queries",
		"for the overall body",
		"for the footer (hidden)",
	} {
		r, ok := report.Check(name)
		require.True(t, ok, name)
		require.False(t, r.Passed, name)
		assert.True(t, strings.Contains(strings.Join(r.Failures, "\n"), "stylesheet could not be parsed"), "%s: %v", name, r.Failures)
	}
}

func TestProblemBSolution(t *testing.T) {
	report := grade(t, problems.ProblemB, fixture("problem-b", "solution"))
	assert.Empty(t, failedNames(report))

	passed, _ := report.Counts()
	assert.Equal(t, 22, passed)
}

func TestProblemBStarter(t *testing.T) {
	report := grade(t, problems.ProblemB, fixture("problem-b", "starter"))

	lint, ok := report.Check("HTML validates without errors")
	require.True(t, ok)
	require.False(t, lint.Passed)
	assert.Contains(t, lint.Failures[0], "doctype-first")
	assert.Contains(t, lint.Failures[0], "attr-bans")

	count, _ := report.Check("Main contains four card divs")
	assert.True(t, count.Passed, "the starter has four cards")

	body, _ := report.Check(`Cards include "card-body" elements for padding`)
	require.False(t, body.Passed)
	assert.Contains(t, body.Failures[0], "card 1 has one card-body")

	bodies, _ := report.Check("Card body contains a responsive grid")
	require.False(t, bodies.Passed)
	assert.Contains(t, bodies.Failures[0], "number of card bodies")

	for _, name := range []string{
		"HTML links (only) the Bootstrap stylesheet",
		"HTML includes viewport meta",
		"header includes container div",
		"The header is full-width",
	} {
		r, ok := report.Check(name)
		require.True(t, ok, name)
		assert.False(t, r.Passed, name)
	}
}

func TestOutline(t *testing.T) {
	def, err := problems.Lookup(problems.ProblemB)
	require.NoError(t, err)

	outline := def.Outline()
	assert.Equal(t, problems.ProblemB, outline.Suite)
	require.Len(t, outline.Groups, 7)
	assert.Equal(t, "Source code is valid", outline.Groups[0].Title)
	assert.Equal(t, []string{"HTML validates without errors"}, outline.Groups[0].Checks)
	assert.Len(t, outline.Groups[4].Checks, 6)
}
