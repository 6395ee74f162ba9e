package parser_test

import (
	"context"
	"testing"

	"github.com/brianc020801/INFO-340-Problem-4/internal/documents"
	"github.com/brianc020801/INFO-340-Problem-4/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSupportedLanguage(t *testing.T) {
	for _, lang := range []string{"css", "html"} {
		assert.True(t, parser.IsSupportedLanguage(lang), lang)
	}
	for _, lang := range []string{"javascript", "json", ""} {
		assert.False(t, parser.IsSupportedLanguage(lang), lang)
	}
}

func TestParseDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("css", func(t *testing.T) {
		result, err := parser.Parse(ctx, "body { color: white; }", documents.LanguageCSS)
		require.NoError(t, err)
		require.NotNil(t, result.CSS)
		assert.Nil(t, result.HTML)
		assert.Len(t, result.CSS.RuleSets, 1)
	})

	t.Run("html with embedded css", func(t *testing.T) {
		doc := documents.NewDocument("/ex/index.html", "file:///ex/index.html", documents.LanguageHTML,
			"<!DOCTYPE html><html><head><style>a{color:red}</style></head></html>")
		result, err := parser.ParseDocument(ctx, doc)
		require.NoError(t, err)
		require.NotNil(t, result.HTML)
		assert.NotNil(t, result.HTML.Doctype)
		require.Len(t, result.Embedded, 1)
		assert.Len(t, result.Embedded[0].Declarations, 1)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := parser.Parse(ctx, "{}", "json")
		assert.Error(t, err)
	})
}
