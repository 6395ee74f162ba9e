package parser

import (
	"context"
	"fmt"

	"github.com/brianc020801/INFO-340-Problem-4/internal/documents"
	"github.com/brianc020801/INFO-340-Problem-4/internal/parser/css"
	"github.com/brianc020801/INFO-340-Problem-4/internal/parser/html"
)

// Result is the syntax tree summary of one document. Exactly one of CSS and
// HTML is set; Embedded holds the CSS found inside an HTML document.
type Result struct {
	LanguageID string
	CSS        *css.ParseResult
	HTML       *html.ParseResult
	Embedded   []*html.EmbeddedCSS
}

// IsSupportedLanguage returns true if gradecheck can parse the language
func IsSupportedLanguage(languageID string) bool {
	return languageID == documents.LanguageCSS || languageID == documents.LanguageHTML
}

// Parse dispatches to the parser for languageID
func Parse(ctx context.Context, content, languageID string) (*Result, error) {
	switch languageID {
	case documents.LanguageCSS:
		p := css.AcquireParser()
		defer css.ReleaseParser(p)
		parsed, err := p.ParseContext(ctx, content)
		if err != nil {
			return nil, err
		}
		return &Result{LanguageID: languageID, CSS: parsed}, nil

	case documents.LanguageHTML:
		p := html.AcquireParser()
		defer html.ReleaseParser(p)
		parsed, err := p.Parse(ctx, content)
		if err != nil {
			return nil, err
		}
		return &Result{
			LanguageID: languageID,
			HTML:       parsed,
			Embedded:   p.ParseCSS(content),
		}, nil

	default:
		return nil, fmt.Errorf("unsupported language %q", languageID)
	}
}

// ParseDocument parses a loaded document
func ParseDocument(ctx context.Context, doc *documents.Document) (*Result, error) {
	return Parse(ctx, doc.Content(), doc.LanguageID())
}
