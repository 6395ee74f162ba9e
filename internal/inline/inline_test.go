package inline_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/brianc020801/INFO-340-Problem-4/internal/cssom"
	"github.com/brianc020801/INFO-340-Problem-4/internal/inline"
	"github.com/brianc020801/INFO-340-Problem-4/internal/uriutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func styleOf(t *testing.T, root *html.Node, selector string) string {
	t.Helper()
	n := cascadia.Query(root, cascadia.MustCompile(selector))
	require.NotNil(t, n, "no element for %s", selector)
	for _, a := range n.Attr {
		if a.Key == "style" {
			return a.Val
		}
	}
	return ""
}

func applySource(t *testing.T, page, sheet string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	parsed, err := cssom.Parse(sheet)
	require.NoError(t, err)
	inline.Apply(root, parsed)
	return root
}

func TestApplyCascade(t *testing.T) {
	page := `<main><h1 id="t" class="big">x</h1><p>y</p></main>`

	tests := []struct {
		name     string
		css      string
		selector string
		want     string
	}{
		{"source order", `h1 { color: red; } h1 { color: blue; }`, "h1", "color: blue;"},
		{"specificity beats order", `#t { color: red; } h1 { color: blue; }`, "h1", "color: red;"},
		{"class beats type", `.big { color: red; } main h1 { color: blue; }`, "h1", "color: red;"},
		{"important beats specificity", `h1 { color: red !important; } #t { color: blue; }`, "h1", "color: red !important;"},
		{"media rules are not inlined", `@media (min-width: 1px) { p { color: red; } }`, "p", ""},
		{"unknown selectors are skipped", `h1:nth-foo(2) { color: red; } p { color: blue; }`, "p", "color: blue;"},
		{"pseudo elements are skipped", `p::before { content: "x"; }`, "p", ""},
		{"dynamic pseudo classes never match", `p:hover { color: red; }`, "p", ""},
		{"property order follows first appearance", `h1 { margin: 0; color: red; } #t { margin: 1px; }`, "h1", "margin: 1px; color: red;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := applySource(t, page, tt.css)
			assert.Equal(t, tt.want, styleOf(t, root, tt.selector))
		})
	}
}

func TestApplyExistingStyle(t *testing.T) {
	page := `<p style="color: green; margin: 0">x</p>`

	root := applySource(t, page, `p { color: red; padding: 1px; }`)
	assert.Equal(t, "color: green; padding: 1px; margin: 0;", styleOf(t, root, "p"),
		"the style attribute beats normal declarations")

	root = applySource(t, page, `p { color: red !important; }`)
	assert.Equal(t, "color: red !important; margin: 0;", styleOf(t, root, "p"),
		"important sheet declarations beat the style attribute")
}

func TestApplyStyleWithoutTrailingSemicolon(t *testing.T) {
	root := applySource(t, `<footer style="display: none">x</footer>`, `p { color: red; }`)
	assert.Equal(t, "display: none", styleOf(t, root, "footer"), "elements no rule selects are left alone")

	root = applySource(t, `<footer style="display: none">x</footer>`, `footer { display: block; color: red; }`)
	assert.Equal(t, "display: none; color: red;", styleOf(t, root, "footer"))
}

func TestDocument(t *testing.T) {
	source, err := os.ReadFile("testdata/index.html")
	require.NoError(t, err)

	opts := inline.DefaultOptions()
	opts.BaseURL = uriutil.DirURI("testdata")
	opts.ExtraCSS = `main > h1 { color: purple; }`

	root, err := inline.Document(context.Background(), string(source), opts)
	require.NoError(t, err)

	assert.Equal(t, "font-size: 4rem; color: purple;", styleOf(t, root, "h1"))
	assert.Equal(t, "color: green;", styleOf(t, root, "p"))
	assert.Nil(t, cascadia.Query(root, cascadia.MustCompile("style")), "style tags are removed")
	assert.Len(t, cascadia.QueryAll(root, cascadia.MustCompile("link")), 2, "link tags are kept")
}

func TestDocumentLinkTagsDisabled(t *testing.T) {
	source, err := os.ReadFile("testdata/index.html")
	require.NoError(t, err)

	opts := inline.DefaultOptions()
	opts.BaseURL = uriutil.DirURI("testdata")
	opts.ApplyLinkTags = false
	opts.RemoveLinkTags = true

	root, err := inline.Document(context.Background(), string(source), opts)
	require.NoError(t, err)
	assert.Equal(t, "", styleOf(t, root, "h1"))
	assert.Empty(t, cascadia.QueryAll(root, cascadia.MustCompile("link")))
}

func TestDocumentReadFile(t *testing.T) {
	var read []string
	opts := inline.DefaultOptions()
	opts.BaseURL = "file:///exercise/"
	opts.ReadFile = func(path string) ([]byte, error) {
		read = append(read, path)
		return []byte(`body { margin: .5rem; }`), nil
	}

	out, err := inline.Inline(context.Background(),
		`<html><head><link rel="stylesheet" href="css/style.css"></head><body></body></html>`, opts)
	require.NoError(t, err)
	require.Len(t, read, 1)
	assert.True(t, strings.HasSuffix(read[0], "style.css"))
	assert.Contains(t, out, `<body style="margin: .5rem;">`)
}

func TestDocumentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := inline.Document(ctx, `<p>x</p>`, inline.DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}
