package integration_test

import (
	"testing"

	"github.com/brianc020801/INFO-340-Problem-4/internal/grader"
	"github.com/brianc020801/INFO-340-Problem-4/internal/problems"
	"github.com/brianc020801/INFO-340-Problem-4/test/integration/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mutation struct {
	name   string
	file   string
	old    string
	new    string
	failed []string
}

// runMutations grades a copy of the solution with one edit applied and
// expects exactly the listed checks to fail, or none when failed is empty
func runMutations(t *testing.T, problem string, tests []mutation) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := testutil.CopyExercise(t, t.TempDir(), "student", problem, "solution")
			testutil.Edit(t, dir, tt.file, tt.old, tt.new)

			report := testutil.Grade(t, dir, grader.Config{})
			assert.ElementsMatch(t, tt.failed, testutil.FailedNames(report))
			for _, f := range report.Failed() {
				assert.NotEmpty(t, f.Failures, "%s has no failure message", f.FullName())
			}
		})
	}
}

func TestSolutionsPass(t *testing.T) {
	for _, problem := range problems.IDs() {
		t.Run(problem, func(t *testing.T) {
			report := testutil.Grade(t, testutil.Fixture(problem, "solution"), grader.Config{})
			assert.Empty(t, testutil.FailedNames(report))
			assert.True(t, report.Passed())
		})
	}
}

func TestProblemAMutations(t *testing.T) {
	const (
		html = "index.html"
		css  = "css/style.css"
	)
	runMutations(t, problems.ProblemA, []mutation{
		{
			name:   "viewport meta removed",
			file:   html,
			old:    `<meta name="viewport" content="width=device-width, initial-scale=1, shrink-to-fit=no">`,
			new:    "",
			failed: []string{"1. HTML supports responsive design › HTML includes viewport meta"},
		},
		{
			name:   "unknown property",
			file:   css,
			old:    "margin: .5rem;",
			new:    "margin: .5rem;\n  colr: red;",
			failed: []string{"Source code is valid › CSS validates without errors"},
		},
		{
			name: "background colour as rgb",
			file: css,
			old:  "background-color: #93B8D7;",
			new:  "background-color: rgb(147, 184, 215);",
		},
		{
			name: "body colour as hex",
			file: css,
			old:  "color: white;",
			new:  "color: #FFF;",
		},
		{
			name:   "background colour off by one",
			file:   css,
			old:    "background-color: #93B8D7;",
			new:    "background-color: #93B8D8;",
			failed: []string{`2. Has appropriate mobile-first "default" styling › for the overall body`},
		},
		{
			name:   "nav link spacing",
			file:   css,
			old:    "margin-right: .5em;",
			new:    "margin-right: 1em;",
			failed: []string{`2. Has appropriate mobile-first "default" styling › for the navigation links`},
		},
		{
			name:   "footer shown on mobile",
			file:   css,
			old:    "footer {\n  display: none;\n}",
			new:    "footer {\n  display: flex;\n}",
			failed: []string{`2. Has appropriate mobile-first "default" styling › for the footer (hidden)`},
		},
		{
			name: "wrong breakpoint",
			file: css,
			old:  "@media (min-width: 598px)",
			new:  "@media (min-width: 600px)",
			failed: []string{
				"3. Has appropriate styling on screens 598px or larger › using media queries",
				"3. Has appropriate styling on screens 598px or larger › for icon links",
			},
		},
		{
			name:   "text shadow offset",
			file:   css,
			old:    "text-shadow: 1px 1px #153C43;",
			new:    "text-shadow: 2px 2px #153C43;",
			failed: []string{"4. Has appropriate styling on screens 768px or larger › for the text shadow"},
		},
		{
			name:   "double quoted background url",
			file:   css,
			old:    "url('../img/splash-lg.jpg')",
			new:    `url("../img/splash-lg.jpg")`,
			failed: []string{"5. Has appropriate styling on screens 992px or larger › for the background image"},
		},
	})
}

func TestProblemBMutations(t *testing.T) {
	const html = "index.html"
	runMutations(t, problems.ProblemB, []mutation{
		{
			name:   "second stylesheet",
			file:   html,
			old:    "</title>",
			new:    "</title>\n    <link rel=\"stylesheet\" href=\"css/style.css\">",
			failed: []string{"1. Page utilizes the Bootstrap CSS framework › HTML links (only) the Bootstrap stylesheet"},
		},
		{
			name:   "banned attribute",
			file:   html,
			old:    `alt="Drip icon" class="pb-3"`,
			new:    `alt="Drip icon" class="pb-3" width="64"`,
			failed: []string{"Source code is valid › HTML validates without errors"},
		},
		{
			name:   "plain subtitle",
			file:   html,
			old:    `<p class="lead">`,
			new:    "<p>",
			failed: []string{`3. The header is styled as a Jumbotron component › The subtitle is a "lead"`},
		},
		{
			name:   "light button",
			file:   html,
			old:    `class="btn btn-dark"`,
			new:    `class="btn btn-light"`,
			failed: []string{`4. "Cards" are styled as Card components › Links are styled as dark colored buttons`},
		},
		{
			name:   "card without margin",
			file:   html,
			old:    `<div class="card mb-4">`,
			new:    `<div class="card">`,
			failed: []string{`4. "Cards" are styled as Card components › Utility class is used to add spacing below card elements`},
		},
		{
			name:   "three columns on extra-large screens",
			file:   html,
			old:    "col-md-6 col-xl-3 d-flex",
			new:    "col-md-6 col-xl-4 d-flex",
			failed: []string{"5. Cards are organized into a responsive grid › On extra-large+ screens, cards take up 1/4 the screen"},
		},
	})
}

func TestStarterFailures(t *testing.T) {
	report := testutil.Grade(t, testutil.Fixture(problems.ProblemB, "starter"), grader.Config{})
	require.False(t, report.Passed())

	lint, ok := report.Check("HTML validates without errors")
	require.True(t, ok)
	require.NotEmpty(t, lint.Failures)
	assert.Contains(t, lint.Failures[0], "expected no lint errors")
}
