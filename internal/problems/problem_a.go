package problems

import (
	"regexp"
	"strings"

	"github.com/brianc020801/INFO-340-Problem-4/internal/dom"
	"github.com/brianc020801/INFO-340-Problem-4/internal/exercise"
	"github.com/brianc020801/INFO-340-Problem-4/internal/lint"
	"github.com/brianc020801/INFO-340-Problem-4/internal/lint/csslint"
	"github.com/brianc020801/INFO-340-Problem-4/internal/rubric"
	"github.com/stretchr/testify/assert"
)

// ProblemA is the hand-written responsive layout
const ProblemA = "problem-a"

var (
	kaushanFont = regexp.MustCompile(`'Kaushan Script', *fantasy`)
	navLinks    = regexp.MustCompile(`nav .*a`)
)

func init() {
	Register(Definition{
		ID:    ProblemA,
		Title: "Responsive CSS layout",
		Layout: exercise.Layout{
			HTMLFile: "index.html",
			CSSFile:  "css/style.css",
			Inline:   true,
		},
		Lint:   lint.Config{CSS: csslint.DefaultOptions()},
		Rubric: problemA,
	})
}

func problemA(ex *exercise.Exercise, lintCfg lint.Config) *rubric.Suite {
	s := rubric.NewSuite(ProblemA)
	styled := ex.Inlined
	if styled == nil {
		styled = ex.DOM
	}

	s.Describe("Source code is valid", func(g *rubric.Group) {
		g.Test("CSS validates without errors", func(t *rubric.T) {
			noLintErrors(t, ex.CSS, ex.Layout.CSSFile, lintCfg)
		})
	})

	s.Describe("1. HTML supports responsive design", func(g *rubric.Group) {
		g.Test("HTML includes viewport meta", viewportMeta(ex.DOM))
	})

	s.Describe(`2. Has appropriate mobile-first "default" styling`, func(g *rubric.Group) {
		g.Test("for the overall body", func(t *rubric.T) {
			requireSheet(t, ex)
			body := styled.Find("body")
			assert.Equal(t, ".5rem", dom.CSS(body, "margin"), "body margin")
			assertColor(t, "#93b8d7", dom.CSS(body, "background-color"), "body background-color")
			assertColor(t, "white", dom.CSS(body, "color"), "body color")
		})

		g.Test("for the navigation links", func(t *rubric.T) {
			requireSheet(t, ex)
			links := styled.Find("nav a")
			assertColor(t, "white", dom.CSS(links, "color"), "nav link color")
			assert.Equal(t, "2.5rem", dom.CSS(links, "font-size"), "nav link font-size")
			assert.Equal(t, ".5em", dom.CSS(links, "margin-right"), "nav link margin-right")

			assert.Equal(t, "none", dom.CSS(styled.Find("#social-links"), "display"), "social links are hidden")
		})

		g.Test("for the main content", func(t *rubric.T) {
			requireSheet(t, ex)
			main := styled.Find("main")
			assert.Equal(t, "center", dom.CSS(main, "text-align"), "main text-align")
			font := strings.ReplaceAll(dom.CSS(main, "font-family"), `"`, "'")
			assert.Regexp(t, kaushanFont, font, "main font-family")
			assert.Equal(t, "23vh", dom.CSS(main, "margin-top"), "main margin-top")

			assert.Equal(t, "4rem", dom.CSS(main.ChildrenFiltered("h1"), "font-size"), "h1 font-size")
			h2 := main.ChildrenFiltered("h2")
			assert.Equal(t, "2rem", dom.CSS(h2, "font-size"), "h2 font-size")
			assert.Equal(t, "2em", dom.CSS(h2, "margin-top"), "h2 margin-top")
		})

		g.Test("for the footer (hidden)", func(t *rubric.T) {
			requireSheet(t, ex)
			assert.Equal(t, "none", dom.CSS(styled.Find("footer"), "display"), "footer display")
		})
	})

	s.Describe("3. Has appropriate styling on screens 598px or larger", func(g *rubric.Group) {
		const feature = "min-width:598px"
		g.Test("using media queries", mediaQuery(ex, feature, 2))

		g.Test("for icon links", func(t *rubric.T) {
			rules := firstMedia(t, ex, feature).Rules
			assert.Equal(t, "none", value(t, ruleSelecting(t, rules, "#hamburger-menu"), "display"))
			assert.Equal(t, "block", value(t, ruleSelecting(t, rules, "#social-links"), "display"))
		})
	})

	s.Describe("4. Has appropriate styling on screens 768px or larger", func(g *rubric.Group) {
		const feature = "min-width:768px"
		g.Test("using media queries", mediaQuery(ex, feature, 4))

		g.Test("for the background image", func(t *rubric.T) {
			rules := firstMedia(t, ex, feature).Rules
			body := ruleSelecting(t, rules, "body")
			var values []string
			for _, d := range body.DeclarationsMatching("background") {
				values = append(values, d.Value)
			}
			background := strings.Join(values, " ")
			assert.Contains(t, background, "url('../img/splash-md.jpg')", "background has url; use single quotes")
			assert.Contains(t, background, "center", "background is centered")
			assert.Contains(t, background, "cover", "background covers")

			assert.Equal(t, "100%", value(t, ruleSelecting(t, rules, "html"), "height"))
		})

		g.Test("for the footer (displayed)", func(t *rubric.T) {
			footer := ruleSelecting(t, firstMedia(t, ex, feature).Rules, "footer")
			pairs := footer.DeclarationPairs()
			for _, want := range []string{"display:block", "position:fixed", "bottom:0", "right:0"} {
				assert.Contains(t, pairs, want)
			}
		})

		g.Test("for the text shadow", func(t *rubric.T) {
			main := ruleSelecting(t, firstMedia(t, ex, feature).Rules, "main")
			assert.Equal(t, "1px 1px #153c43", strings.ToLower(value(t, main, "text-shadow")))
		})
	})

	s.Describe("5. Has appropriate styling on screens 992px or larger", func(g *rubric.Group) {
		const feature = "min-width:992px"
		g.Test("using media queries", mediaQuery(ex, feature, 4))

		g.Test("for the background image", func(t *rubric.T) {
			body := ruleSelecting(t, firstMedia(t, ex, feature).Rules, "body")
			assert.Equal(t, "url('../img/splash-lg.jpg')", value(t, body, "background-image"), "use single quotes")
		})

		g.Test("for the nav links", func(t *rubric.T) {
			links := ruleMatching(t, firstMedia(t, ex, feature).Rules, navLinks)
			assert.Equal(t, "1.5rem", value(t, links, "font-size"))
		})

		g.Test("for the text content", func(t *rubric.T) {
			rules := firstMedia(t, ex, feature).Rules
			assert.Equal(t, "5rem", value(t, ruleSelecting(t, rules, "h1"), "font-size"))
			assert.Equal(t, "3rem", value(t, ruleSelecting(t, rules, "h2"), "font-size"))
		})
	})

	s.Describe("6. Has appropriate styling on screens 1200px or larger", func(g *rubric.Group) {
		const feature = "min-width:1200px"
		g.Test("using media queries", mediaQuery(ex, feature, 1))

		g.Test("for the background image", func(t *rubric.T) {
			body := ruleSelecting(t, firstMedia(t, ex, feature).Rules, "body")
			assert.Contains(t, value(t, body, "background-image"), "url('../img/splash-xl.jpg')", "use single quotes")
		})
	})

	return s
}
