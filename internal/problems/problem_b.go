package problems

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/brianc020801/INFO-340-Problem-4/internal/dom"
	"github.com/brianc020801/INFO-340-Problem-4/internal/exercise"
	"github.com/brianc020801/INFO-340-Problem-4/internal/lint"
	"github.com/brianc020801/INFO-340-Problem-4/internal/rubric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ProblemB is the Bootstrap layout
const ProblemB = "problem-b"

var (
	bootstrapHref = regexp.MustCompile(`bootstrap@5.*bootstrap\.(min\.)?css$`)
	colClass      = regexp.MustCompile(`col`)
	colSmAuto     = regexp.MustCompile(`col-sm-auto`)
	colXL12       = regexp.MustCompile(`col-xl-12`)
)

// problemBLint relaxes the formatting rules and bans presentational
// attributes. img-req-alt is graded separately.
var problemBLint = diagnostic.Options{
	"attr-bans": []any{
		"align", "background", "bgcolor", "border", "frameborder",
		"marginwidth", "marginheight", "scrolling", "style", "width", "height",
	},
	"doctype-first":               true,
	"doctype-html5":               true,
	"html-req-lang":               true,
	"attr-name-style":             false,
	"line-end-style":              false,
	"indent-style":                false,
	"indent-width":                false,
	"line-no-trailing-whitespace": false,
	"class-style":                 "none",
	"img-req-alt":                 false,
}

func init() {
	Register(Definition{
		ID:     ProblemB,
		Title:  "Bootstrap layout",
		Layout: exercise.Layout{HTMLFile: "index.html"},
		Lint:   lint.Config{HTML: problemBLint},
		Rubric: problemB,
	})
}

func problemB(ex *exercise.Exercise, lintCfg lint.Config) *rubric.Suite {
	s := rubric.NewSuite(ProblemB)
	doc := ex.DOM

	s.Describe("Source code is valid", func(g *rubric.Group) {
		g.Test("HTML validates without errors", func(t *rubric.T) {
			noLintErrors(t, ex.HTML, ex.Layout.HTMLFile, lintCfg)
		})
	})

	s.Describe("1. Page utilizes the Bootstrap CSS framework", func(g *rubric.Group) {
		g.Test("HTML links (only) the Bootstrap stylesheet", func(t *rubric.T) {
			links := doc.Find("link")
			require.Equal(t, 1, links.Length(), "only links to one CSS file")
			href, _ := links.Attr("href")
			assert.Regexp(t, bootstrapHref, href, "links to Bootstrap 5")
		})
		g.Test("HTML includes viewport meta", viewportMeta(doc))
	})

	s.Describe("2. Content is inside of containers for spacing", func(g *rubric.Group) {
		g.Test("header includes container div", func(t *rubric.T) {
			container := doc.Find("header > div")
			require.Equal(t, 1, container.Length(), "header contains 1 container")
			assert.Equal(t, "container", dom.Class(container))
			children := container.Children()
			assert.Equal(t, "h1", dom.TagName(children, 0), "first child of the container")
			assert.Equal(t, "p", dom.TagName(children, 1), "second child of the container")
		})

		g.Test("main includes container div", func(t *rubric.T) {
			container := doc.Find("main > div")
			require.Equal(t, 1, container.Length(), "main contains 1 container")
			assert.Equal(t, "container", dom.Class(container))
			assert.Equal(t, 4, container.Find("img").Length(), "images inside the container")
		})
	})

	s.Describe("3. The header is styled as a Jumbotron component", func(g *rubric.Group) {
		header := doc.Find("header")
		g.Test("The header is full-width", func(t *rubric.T) {
			assert.True(t, header.HasClass("container-fluid"), "header has class container-fluid")
		})
		g.Test("The header has white text on a dark background", func(t *rubric.T) {
			assert.Empty(t, dom.Classes(header).Missing("bg-dark", "text-white"), "header classes missing")
		})
		g.Test("The header has appropriate padding", func(t *rubric.T) {
			assert.True(t, header.HasClass("py-5"), "header has class py-5")
		})
		g.Test(`The subtitle is a "lead"`, func(t *rubric.T) {
			assert.True(t, doc.Find("header p").HasClass("lead"), "subtitle has class lead")
		})
	})

	s.Describe(`4. "Cards" are styled as Card components`, func(g *rubric.Group) {
		cards := doc.Find("main div.card")
		eachCard := func(t *rubric.T, fn func(i int, card *goquery.Selection)) {
			require.Equal(t, 4, cards.Length(), "number of cards")
			cards.Each(fn)
		}

		g.Test("Main contains four card divs", func(t *rubric.T) {
			assert.Equal(t, 4, cards.Length(), "number of cards")
		})
		g.Test(`Cards include "card-body" elements for padding`, func(t *rubric.T) {
			eachCard(t, func(i int, card *goquery.Selection) {
				require.Equal(t, 1, card.ChildrenFiltered("div.card-body").Length(), "%s has one card-body", cardLabel(i))
			})
		})
		g.Test("Card title and text is styled", func(t *rubric.T) {
			eachCard(t, func(i int, card *goquery.Selection) {
				require.True(t, card.Find("h2").HasClass("card-title"), "%s: h2 is a card-title", cardLabel(i))
				require.True(t, card.Find("p").HasClass("card-text"), "%s: p is a card-text", cardLabel(i))
			})
		})
		g.Test("Links are styled as dark colored buttons", func(t *rubric.T) {
			eachCard(t, func(i int, card *goquery.Selection) {
				link := card.Find("a")
				require.True(t, link.HasClass("btn"), "%s: link has class btn", cardLabel(i))
				require.True(t, link.HasClass("btn-dark"), "%s: link has class btn-dark", cardLabel(i))
			})
		})
		g.Test("Utility class is used to add spacing below images", func(t *rubric.T) {
			eachCard(t, func(i int, card *goquery.Selection) {
				require.True(t, card.Find("img").HasClass("pb-3"), "%s: img has class pb-3", cardLabel(i))
			})
		})
		g.Test("Utility class is used to add spacing below card elements", func(t *rubric.T) {
			eachCard(t, func(i int, card *goquery.Selection) {
				require.True(t, card.HasClass("mb-4"), "%s has class mb-4", cardLabel(i))
			})
		})
	})

	s.Describe("5. Cards are organized into a responsive grid", func(g *rubric.Group) {
		cards := doc.Find("main div.card")
		eachColumn := func(t *rubric.T, fn func(i int, col *goquery.Selection)) {
			require.Equal(t, 4, cards.Length(), "number of cards")
			cards.Each(func(i int, card *goquery.Selection) {
				fn(i, card.Parent())
			})
		}

		g.Test("All cards are contained in a grid row", func(t *rubric.T) {
			row := doc.Find("main .container > .row")
			require.Equal(t, 1, row.Length(), "rows in the container")
			assert.Equal(t, 4, row.Find(".card").Length(), "cards in the row")
		})
		g.Test("Each card is wrapped in a grid column div", func(t *rubric.T) {
			eachColumn(t, func(i int, col *goquery.Selection) {
				require.Regexp(t, colClass, dom.Class(col), "%s parent has a column class", cardLabel(i))
			})
		})
		g.Test("On medium+ screens, cards take up 1/2 the screen", func(t *rubric.T) {
			eachColumn(t, func(i int, col *goquery.Selection) {
				require.True(t, col.HasClass("col-md-6"), "%s column has class col-md-6", cardLabel(i))
			})
		})
		g.Test("On extra-large+ screens, cards take up 1/4 the screen", func(t *rubric.T) {
			eachColumn(t, func(i int, col *goquery.Selection) {
				require.True(t, col.HasClass("col-xl-3"), "%s column has class col-xl-3", cardLabel(i))
			})
		})
		g.Test("Cards are same height on larger screens", func(t *rubric.T) {
			eachColumn(t, func(i int, col *goquery.Selection) {
				require.True(t, col.HasClass("d-flex"), "%s column has class d-flex", cardLabel(i))
			})
		})
	})

	s.Describe("6. Icon image position is responsive", func(g *rubric.Group) {
		bodies := doc.Find("main div.card .card-body")

		g.Test("Card body contains a responsive grid", func(t *rubric.T) {
			require.Equal(t, 4, bodies.Length(), "number of card bodies")
			bodies.Each(func(i int, body *goquery.Selection) {
				label := cardLabel(i)
				row := body.Children()
				require.True(t, row.HasClass("row"), "%s: card-body has a row as child", label)
				require.Equal(t, 1, row.Length(), "%s: card-body only has the row as child", label)

				cols := row.Children()
				require.Equal(t, 2, cols.Length(), "%s: columns in the row", label)
				cols.Each(func(_ int, col *goquery.Selection) {
					require.Regexp(t, colClass, dom.Class(col), "%s: each row child is a column", label)
				})

				require.Regexp(t, colClass, dom.Class(body.Find("img").Parent()), "%s: img is inside a column", label)
				body.Find("h2, p, a").Each(func(_ int, el *goquery.Selection) {
					require.Regexp(t, colClass, dom.Class(el.Parent()), "%s: <%s> is inside a column", label, goquery.NodeName(el))
				})
			})
		})

		g.Test("Card body columns are correct sizes", func(t *rubric.T) {
			require.Equal(t, 4, bodies.Length(), "number of card bodies")
			bodies.Each(func(i int, body *goquery.Selection) {
				label := cardLabel(i)
				cols := body.Children().Children()
				first := dom.Class(cols.Eq(0))
				require.Regexp(t, colSmAuto, first, "%s: first column is auto", label)
				require.Regexp(t, colXL12, first, "%s: first column is xl-12", label)
				require.Equal(t, "col-sm", dom.Class(cols.Eq(1)), "%s: second column fills", label)
			})
		})
	})

	return s
}
