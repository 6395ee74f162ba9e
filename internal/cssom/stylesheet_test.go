package cssom_test

import (
	"os"
	"regexp"
	"testing"

	"github.com/brianc020801/INFO-340-Problem-4/internal/cssom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSheet(t *testing.T) *cssom.StyleSheet {
	t.Helper()
	content, err := os.ReadFile("testdata/style.css")
	require.NoError(t, err)
	sheet, err := cssom.Parse(string(content))
	require.NoError(t, err)
	return sheet
}

func TestParseRules(t *testing.T) {
	sheet := loadSheet(t)

	assert.False(t, sheet.Empty())
	assert.Len(t, sheet.Rules(), 6, "comments are not rules")
	assert.Len(t, sheet.PlainRules(), 4)
	assert.Len(t, sheet.MediaRules(), 2)

	body := sheet.Rules()[0]
	assert.Equal(t, cssom.PlainRule, body.Kind)
	assert.Equal(t, []string{"body"}, body.Selectors)
	assert.Equal(t, ".5rem", body.Value("margin"))
	assert.Equal(t, "#93B8D7", body.Value("background-color"))
	assert.Equal(t, "", body.Value("padding"))
}

func TestMediaMatching(t *testing.T) {
	sheet := loadSheet(t)

	tests := []struct {
		feature string
		want    int
	}{
		{"min-width:598px", 1},
		{"min-width:768px", 1},
		{"min-width: 768px", 1},
		{"min-width:992px", 0},
	}
	for _, tt := range tests {
		t.Run(tt.feature, func(t *testing.T) {
			assert.Len(t, sheet.MediaMatching(tt.feature), tt.want)
		})
	}

	md := sheet.MediaMatching("min-width:768px")[0]
	assert.True(t, md.IsMedia())
	assert.Equal(t, "@media", md.Name)
	assert.Equal(t, "(min-width:768px)", md.Media())
	assert.Len(t, md.Rules, 4)
}

func TestFindSelector(t *testing.T) {
	sheet := loadSheet(t)
	md := sheet.MediaMatching("min-width:768px")[0]

	body, ok := cssom.FindSelector(md.Rules, "body")
	require.True(t, ok)
	var backgrounds []string
	for _, d := range body.DeclarationsMatching("background") {
		backgrounds = append(backgrounds, d.Value)
	}
	assert.Equal(t, []string{"url('../img/splash-md.jpg')", "center", "cover"}, backgrounds)

	footer, ok := cssom.FindSelector(md.Rules, "footer")
	require.True(t, ok)
	assert.Equal(t, []string{"display:block", "position:fixed", "bottom:0", "right:0"}, footer.DeclarationPairs())

	_, ok = cssom.FindSelector(md.Rules, "aside")
	assert.False(t, ok)

	nav, ok := cssom.FindSelectorMatch(sheet.Rules(), regexp.MustCompile(`nav .*a`))
	require.True(t, ok)
	assert.Equal(t, "nav a", nav.SelectorText())
}

func TestAppendRules(t *testing.T) {
	a, err := cssom.Parse("a { color: red; }")
	require.NoError(t, err)
	b, err := cssom.Parse("b { color: blue; } @media print { a { display: none; } }")
	require.NoError(t, err)

	a.AppendRules(b)
	assert.Len(t, a.Rules(), 3)
	assert.Len(t, a.MediaRules(), 1)
}

func TestParseDeclarations(t *testing.T) {
	decls, err := cssom.ParseDeclarations("color:  white ; margin: 0 auto !important")
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, "white", decls[0].Value)
	assert.Equal(t, "0 auto", decls[1].Value)
	assert.True(t, decls[1].Important)
	assert.Equal(t, "margin:0 auto", decls[1].String())

	decls, err = cssom.ParseDeclarations("display: none")
	require.NoError(t, err)
	require.Len(t, decls, 1)
	assert.Equal(t, "none", decls[0].Value)

	decls, err = cssom.ParseDeclarations("  ")
	require.NoError(t, err)
	assert.Empty(t, decls)
}

func TestSplitShorthand(t *testing.T) {
	tests := []struct {
		prop, value string
		want        map[string]string
	}{
		{"margin", ".5rem", map[string]string{
			"margin-top": ".5rem", "margin-right": ".5rem", "margin-bottom": ".5rem", "margin-left": ".5rem"}},
		{"padding", "1px 2px", map[string]string{
			"padding-top": "1px", "padding-right": "2px", "padding-bottom": "1px", "padding-left": "2px"}},
		{"margin", "1px 2px 3px", map[string]string{
			"margin-top": "1px", "margin-right": "2px", "margin-bottom": "3px", "margin-left": "2px"}},
		{"border-color", "red green blue black", map[string]string{
			"border-top-color": "red", "border-right-color": "green",
			"border-bottom-color": "blue", "border-left-color": "black"}},
	}
	for _, tt := range tests {
		t.Run(tt.prop+" "+tt.value, func(t *testing.T) {
			got, err := cssom.SplitShorthand(tt.prop, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := cssom.SplitShorthand("font", "12px serif")
	assert.Error(t, err)
	_, err = cssom.SplitShorthand("margin", "1 2 3 4 5")
	assert.Error(t, err)

	short, ok := cssom.ShorthandOf("margin-right")
	assert.True(t, ok)
	assert.Equal(t, "margin", short)
	short, ok = cssom.ShorthandOf("border-left-style")
	assert.True(t, ok)
	assert.Equal(t, "border-style", short)
}
