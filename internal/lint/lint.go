// Package lint runs the HTML and CSS linters over loaded documents.
package lint

import (
	"context"
	"fmt"

	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/brianc020801/INFO-340-Problem-4/internal/documents"
	"github.com/brianc020801/INFO-340-Problem-4/internal/lint/csslint"
	"github.com/brianc020801/INFO-340-Problem-4/internal/lint/htmllint"
	"github.com/brianc020801/INFO-340-Problem-4/internal/log"
	"github.com/brianc020801/INFO-340-Problem-4/internal/parser"
	"github.com/brianc020801/INFO-340-Problem-4/internal/parser/html"
)

// Config selects rule options per language. nil options mean each
// linter's defaults.
type Config struct {
	HTML diagnostic.Options
	CSS  diagnostic.Options
	// EmbeddedCSS lints <style> blocks of HTML documents with the CSS
	// options
	EmbeddedCSS bool
}

// Document lints one document according to its language. Diagnostics carry
// the document path and are sorted by position.
func Document(ctx context.Context, doc *documents.Document, cfg Config) ([]diagnostic.Diagnostic, error) {
	if !parser.IsSupportedLanguage(doc.LanguageID()) {
		return nil, fmt.Errorf("cannot lint %s: unsupported language %q", doc.Path(), doc.LanguageID())
	}
	result, err := parser.ParseDocument(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", doc.Path(), err)
	}

	var diags []diagnostic.Diagnostic
	switch doc.LanguageID() {
	case documents.LanguageCSS:
		diags = csslint.Lint(result.CSS, cfg.CSS)

	case documents.LanguageHTML:
		diags = htmllint.Lint(htmllint.FromParsed(doc.Content(), result.HTML), cfg.HTML)
		if cfg.EmbeddedCSS {
			for _, embedded := range result.Embedded {
				// style attributes are covered by attr-bans, not the CSS rules
				if embedded.Type != html.StyleTag {
					continue
				}
				diags = append(diags, csslint.Lint(embedded.ParseResult, cfg.CSS)...)
			}
		}
	}

	log.Debug("linted %s: %d diagnostics", doc.Path(), len(diags))
	diagnostic.SetFile(diags, doc.Path())
	diagnostic.Sort(diags)
	return diags, nil
}

// Files loads and lints every path with m, stopping at the first file that
// cannot be read
func Files(ctx context.Context, m *documents.Manager, paths []string, cfg Config) ([]diagnostic.Diagnostic, error) {
	var all []diagnostic.Diagnostic
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return all, err
		}
		doc, err := m.Load(path)
		if err != nil {
			return all, err
		}
		diags, err := Document(ctx, doc, cfg)
		if err != nil {
			return all, err
		}
		all = append(all, diags...)
	}
	return all, nil
}
