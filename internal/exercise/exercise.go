// Package exercise loads a student exercise directory once and keeps the
// immutable views every check of a rubric reads: the parsed DOM, the DOM
// with stylesheets inlined and the CSS rule tree.
package exercise

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/brianc020801/INFO-340-Problem-4/internal/cssom"
	"github.com/brianc020801/INFO-340-Problem-4/internal/documents"
	"github.com/brianc020801/INFO-340-Problem-4/internal/dom"
	"github.com/brianc020801/INFO-340-Problem-4/internal/inline"
	"github.com/brianc020801/INFO-340-Problem-4/internal/log"
	"github.com/brianc020801/INFO-340-Problem-4/internal/uriutil"
	"golang.org/x/sync/errgroup"
)

// ErrMissingFile is returned when a file the layout requires does not exist
var ErrMissingFile = errors.New("missing exercise file")

// Layout names the files of an exercise, relative to its directory
type Layout struct {
	HTMLFile string
	// CSSFile is optional; when set, its rules are parsed into Sheet and
	// applied as extra CSS when inlining
	CSSFile string
	// Inline builds the Inlined view
	Inline bool
}

// Exercise is the loaded snapshot of one exercise directory
type Exercise struct {
	Dir     string
	BaseURL string
	Layout  Layout

	Documents *documents.Manager
	HTML      *documents.Document
	// CSS is nil when the layout has no CSS file or it is missing
	CSS *documents.Document

	DOM *dom.Document
	// Inlined is nil unless the layout asks for it
	Inlined *dom.Document
	// Sheet is never nil; it is empty when there is no CSS
	Sheet *cssom.StyleSheet
	// SheetErr records a CSS parse error; Sheet is then empty
	SheetErr error
}

// HTMLPath returns the path of the HTML file
func (e *Exercise) HTMLPath() string {
	return filepath.Join(e.Dir, e.Layout.HTMLFile)
}

// CSSPath returns the path of the CSS file, or "" when the layout has none
func (e *Exercise) CSSPath() string {
	if e.Layout.CSSFile == "" {
		return ""
	}
	return filepath.Join(e.Dir, e.Layout.CSSFile)
}

// Load reads the exercise files concurrently and builds the snapshot.
// A missing HTML file is an error wrapping ErrMissingFile; a missing CSS
// file leaves Sheet empty.
func Load(ctx context.Context, dir string, layout Layout) (*Exercise, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	ex := &Exercise{
		Dir:       abs,
		BaseURL:   uriutil.DirURI(abs),
		Layout:    layout,
		Documents: documents.NewManager(),
		Sheet:     &cssom.StyleSheet{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		doc, err := ex.load(gctx, ex.HTMLPath())
		if err != nil {
			return err
		}
		ex.HTML = doc
		return nil
	})
	if layout.CSSFile != "" {
		g.Go(func() error {
			doc, err := ex.load(gctx, ex.CSSPath())
			if errors.Is(err, ErrMissingFile) {
				log.Warn("%s: %v", dir, err)
				return nil
			}
			if err != nil {
				return err
			}
			ex.CSS = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ex.build(ctx); err != nil {
		return nil, err
	}
	log.Debug("loaded exercise %s", ex.Dir)
	return ex, nil
}

// Empty returns an exercise with no files, enough to build a rubric and
// list its checks
func Empty(layout Layout) *Exercise {
	d, _ := dom.ParseString("")
	ex := &Exercise{
		Layout:    layout,
		Documents: documents.NewManager(),
		DOM:       d,
		Sheet:     &cssom.StyleSheet{},
	}
	if layout.Inline {
		ex.Inlined = d
	}
	return ex
}

func (ex *Exercise) load(ctx context.Context, path string) (*documents.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := ex.Documents.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
	}
	return doc, err
}

// build parses the loaded documents into the views
func (ex *Exercise) build(ctx context.Context) error {
	var extraCSS string
	if ex.CSS != nil {
		extraCSS = ex.CSS.Content()
		sheet, err := cssom.Parse(extraCSS)
		if sheet != nil {
			ex.Sheet = sheet
		}
		if err != nil {
			ex.SheetErr = fmt.Errorf("%s: %w", ex.CSS.Path(), err)
			log.Debug("%v", ex.SheetErr)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := dom.ParseString(ex.HTML.Content())
		if err != nil {
			return fmt.Errorf("%s: %w", ex.HTML.Path(), err)
		}
		ex.DOM = d
		return nil
	})
	if ex.Layout.Inline {
		g.Go(func() error {
			opts := inline.DefaultOptions()
			opts.ExtraCSS = extraCSS
			opts.BaseURL = ex.BaseURL
			root, err := inline.Document(gctx, ex.HTML.Content(), opts)
			if err != nil {
				return fmt.Errorf("failed to inline %s: %w", ex.HTML.Path(), err)
			}
			ex.Inlined = dom.FromNode(root)
			return nil
		})
	}
	return g.Wait()
}
