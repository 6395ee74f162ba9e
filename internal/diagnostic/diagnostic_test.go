package diagnostic_test

import (
	"testing"

	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/brianc020801/INFO-340-Problem-4/internal/position"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(line, col int) position.Range {
	p := position.Position{Line: line, Column: col}
	return position.Range{Start: p, End: p}
}

func TestDiagnosticString(t *testing.T) {
	d := diagnostic.New("attr-bans", at(3, 7), "the %q attribute is banned", "style")
	d.File = "index.html"
	d.Severity = diagnostic.SeverityError
	assert.Equal(t, `index.html:3:7 error the "style" attribute is banned (attr-bans)`, d.String())
}

func TestSort(t *testing.T) {
	diags := []diagnostic.Diagnostic{
		{Rule: "b", Range: at(2, 1), File: "a.css"},
		{Rule: "a", Range: at(2, 1), File: "a.css"},
		{Rule: "z", Range: at(1, 9), File: "a.css"},
		{Rule: "z", Range: at(1, 1), File: "0.html"},
	}
	diagnostic.Sort(diags)

	var got []string
	for _, d := range diags {
		got = append(got, d.File+" "+d.Range.Start.String()+" "+d.Rule)
	}
	want := []string{"0.html 1:1 z", "a.css 1:9 z", "a.css 2:1 a", "a.css 2:1 b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
	}
}

func TestHasErrors(t *testing.T) {
	warn := diagnostic.Diagnostic{Severity: diagnostic.SeverityWarning}
	assert.False(t, diagnostic.HasErrors([]diagnostic.Diagnostic{warn}))
	boom := diagnostic.New("x", at(1, 1), "boom")
	boom.Severity = diagnostic.SeverityError
	assert.True(t, diagnostic.HasErrors([]diagnostic.Diagnostic{warn, boom}))
}

func TestOptions(t *testing.T) {
	opts := diagnostic.Options{
		"attr-bans":     []any{"align", "style", 3},
		"doctype-first": true,
		"img-req-alt":   false,
		"indent-style":  nil,
		"class-style":   "dash",
	}

	assert.True(t, opts.Enabled("attr-bans"))
	assert.True(t, opts.Enabled("doctype-first"))
	assert.False(t, opts.Enabled("img-req-alt"))
	assert.False(t, opts.Enabled("indent-style"))
	assert.False(t, opts.Enabled("tag-bans"))

	assert.Equal(t, []string{"align", "style"}, opts.Strings("attr-bans", nil))
	assert.Equal(t, []string{"b"}, opts.Strings("tag-bans", []string{"b"}))
	assert.Equal(t, "dash", opts.String("class-style", "none"))
	assert.Equal(t, "none", opts.String("doctype-first", "none"))
}

func TestMerge(t *testing.T) {
	base := diagnostic.Options{"a": true, "b": true}
	merged := diagnostic.Merge(base, diagnostic.Options{"b": false, "c": "x"})

	assert.Equal(t, diagnostic.Options{"a": true, "b": false, "c": "x"}, merged)
	assert.Equal(t, true, base["b"], "base is not modified")
}

func TestLoadOptions(t *testing.T) {
	t.Run("htmllint layout with comments", func(t *testing.T) {
		opts, err := diagnostic.LoadOptions("testdata/htmllintrc.json")
		require.NoError(t, err)
		assert.Equal(t, []string{"align", "style"}, opts.Strings("attr-bans", nil))
		assert.True(t, opts.Enabled("doctype-first"))
		assert.False(t, opts.Enabled("indent-width"))
	})

	t.Run("stylelint layout", func(t *testing.T) {
		opts, err := diagnostic.LoadOptions("testdata/stylelintrc.json")
		require.NoError(t, err)
		assert.True(t, opts.Enabled("block-no-empty"))
		assert.True(t, opts.Enabled("unit-no-unknown"), "secondary options are unwrapped")
		assert.False(t, opts.Enabled("property-no-unknown"))
		assert.NotContains(t, opts, "extends")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := diagnostic.LoadOptions("testdata/nope.json")
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := diagnostic.ParseOptions([]byte(`{"a": `))
		assert.Error(t, err)
	})
}

func TestRegistryRun(t *testing.T) {
	reg := diagnostic.NewRegistry[[]string]()
	reg.Register(diagnostic.RuleDef[[]string]{
		ID: "no-foo",
		Check: func(in []string, _ any) []diagnostic.Diagnostic {
			var out []diagnostic.Diagnostic
			for i, s := range in {
				if s == "foo" {
					out = append(out, diagnostic.New("", at(i+1, 1), "Unexpected foo"))
				}
			}
			return out
		},
	})
	reg.Register(diagnostic.RuleDef[[]string]{
		ID:       "max-lines",
		Severity: diagnostic.SeverityWarning,
		Check: func(in []string, opt any) []diagnostic.Diagnostic {
			if limit, ok := opt.(float64); ok && float64(len(in)) > limit {
				return []diagnostic.Diagnostic{diagnostic.New("", at(1, 1), "too long")}
			}
			return nil
		},
	})
	reg.Register(diagnostic.RuleDef[[]string]{
		ID:       "syntax",
		AlwaysOn: true,
		Check: func([]string, any) []diagnostic.Diagnostic {
			return []diagnostic.Diagnostic{diagnostic.New("", at(9, 9), "always")}
		},
	})

	in := []string{"a", "foo", "b"}

	diags := reg.Run(in, diagnostic.Options{})
	require.Len(t, diags, 1, "only always-on rules run without options")
	assert.Equal(t, "syntax", diags[0].Rule)

	diags = reg.Run(in, diagnostic.Options{"no-foo": true, "max-lines": float64(2), "unknown-rule": true})
	require.Len(t, diags, 3)
	assert.Equal(t, "max-lines", diags[0].Rule)
	assert.Equal(t, diagnostic.SeverityWarning, diags[0].Severity)
	assert.Equal(t, "no-foo", diags[1].Rule)
	assert.Equal(t, diagnostic.SeverityError, diags[1].Severity)
	assert.Equal(t, 2, diags[1].Range.Start.Line)

	assert.Len(t, reg.All(), 3)
	_, ok := reg.Get("no-foo")
	assert.True(t, ok)
}
