package dom_test

import (
	"regexp"
	"testing"

	"github.com/brianc020801/INFO-340-Problem-4/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html>
<body style="margin: .5rem; background-color: #93b8d7; color: white;">
  <nav><a href="#" style="font-size: 2.5rem; margin-right: .5em;">A</a><a href="#">B</a></nav>
  <main style="padding: 1px 2px; font-family: 'Kaushan Script', cursive !important;">
    <div class="col-sm-auto col-xl-12"><h1>t</h1><p>p</p></div>
  </main>
</body>
</html>`

func load(t *testing.T) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(page)
	require.NoError(t, err)
	return doc
}

func TestCSS(t *testing.T) {
	doc := load(t)

	tests := []struct {
		name     string
		selector string
		prop     string
		want     string
	}{
		{"direct", "body", "background-color", "#93b8d7"},
		{"first element of selection", "nav a", "font-size", "2.5rem"},
		{"margin longhand from shorthand", "body", "margin-top", ".5rem"},
		{"padding longhand", "main", "padding-left", "2px"},
		{"important is stripped", "main", "font-family", "'Kaushan Script', cursive"},
		{"missing property", "body", "display", ""},
		{"no style attribute", "h1", "color", ""},
		{"empty selection", "footer", "display", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dom.CSS(doc.Find(tt.selector), tt.prop))
		})
	}
}

func TestCSSLastDeclarationWithoutSemicolon(t *testing.T) {
	doc, err := dom.ParseString(`<footer style="color: white; display: none"></footer>`)
	require.NoError(t, err)
	footer := doc.Find("footer")
	assert.Equal(t, "none", dom.CSS(footer, "display"))
	assert.Equal(t, "white", dom.CSS(footer, "color"))
}

func TestTagNameAndClass(t *testing.T) {
	doc := load(t)

	children := doc.Find("main > div").Children()
	assert.Equal(t, "h1", dom.TagName(children, 0))
	assert.Equal(t, "p", dom.TagName(children, 1))
	assert.Equal(t, "", dom.TagName(children, 2))

	div := doc.Find("main > div")
	assert.Equal(t, "col-sm-auto col-xl-12", dom.Class(div))
	assert.True(t, dom.ClassMatches(div, regexp.MustCompile(`col`)))
	assert.False(t, dom.ClassMatches(doc.Find("h1"), regexp.MustCompile(`col`)))

	classes := dom.Classes(div)
	assert.True(t, classes.Has("col-xl-12"))
	assert.Equal(t, []string{"col-sm"}, classes.Missing("col-sm-auto", "col-sm"))
	assert.Empty(t, dom.Classes(doc.Find("nonexistent")))
}

func TestHTMLRoundTrip(t *testing.T) {
	doc := load(t)
	out, err := doc.HTML()
	require.NoError(t, err)
	assert.Contains(t, out, `<main style=`)
	assert.Equal(t, 1, dom.FromNode(doc.Root().Get(0)).Find("main").Length())
}
