// Package inline resolves stylesheet rules into per-element style
// attributes.
//
// Only top-level plain rules are inlined: @media and every other at-rule is
// left alone. For each element and property the winning declaration is
// chosen by the cascade: !important first, then the element's own style
// attribute, then selector specificity, then source order.
package inline

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/brianc020801/INFO-340-Problem-4/internal/cssom"
	"github.com/brianc020801/INFO-340-Problem-4/internal/log"
	"github.com/brianc020801/INFO-340-Problem-4/internal/uriutil"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Inline parses source, inlines its stylesheets and renders the result
func Inline(ctx context.Context, source string, opts Options) (string, error) {
	doc, err := Document(ctx, source, opts)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", fmt.Errorf("render HTML: %w", err)
	}
	return buf.String(), nil
}

// Document parses source and returns its tree with stylesheets inlined
func Document(ctx context.Context, source string, opts Options) (*html.Node, error) {
	root, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}
	sheets, err := collectSheets(ctx, root, &opts)
	if err != nil {
		return nil, err
	}
	Apply(root, sheets...)
	return root, nil
}

// collectSheets gathers <style> and <link> sheets in document order,
// followed by the extra CSS, and detaches the tags the options remove.
func collectSheets(ctx context.Context, root *html.Node, opts *Options) ([]*cssom.StyleSheet, error) {
	var sheets []*cssom.StyleSheet
	var remove []*html.Node

	var walk func(*html.Node) error
	walk = func(n *html.Node) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Style:
				if opts.ApplyStyleTags {
					sheets = append(sheets, parseSheet(textContent(n), "<style>"))
				}
				if opts.RemoveStyleTags {
					remove = append(remove, n)
				}
				return nil
			case atom.Link:
				if !isStylesheetLink(n) {
					break
				}
				if opts.ApplyLinkTags {
					if sheet := loadLink(n, opts); sheet != nil {
						sheets = append(sheets, sheet)
					}
				}
				if opts.RemoveLinkTags {
					remove = append(remove, n)
				}
				return nil
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}

	for _, n := range remove {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
	if strings.TrimSpace(opts.ExtraCSS) != "" {
		sheets = append(sheets, parseSheet(opts.ExtraCSS, "extra CSS"))
	}
	return sheets, nil
}

func parseSheet(source, origin string) *cssom.StyleSheet {
	sheet, err := cssom.Parse(source)
	if err != nil {
		log.Warn("%s: %v", origin, err)
	}
	return sheet
}

func loadLink(n *html.Node, opts *Options) *cssom.StyleSheet {
	href := attr(n, "href")
	if href == "" {
		return nil
	}
	target, local := uriutil.Resolve(opts.BaseURL, href)
	if !local {
		log.Debug("not inlining remote stylesheet %s", target)
		return nil
	}
	content, err := opts.readFile(uriutil.URIToPath(target))
	if err != nil {
		log.Warn("could not read stylesheet %s: %v", href, err)
		return nil
	}
	return parseSheet(string(content), href)
}

func isStylesheetLink(n *html.Node) bool {
	for _, rel := range strings.Fields(strings.ToLower(attr(n, "rel"))) {
		if rel == "stylesheet" {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

// candidate is one declaration competing for a property on an element
type candidate struct {
	decl   *cssom.Declaration
	inline bool
	spec   cascadia.Specificity
	order  int
}

// beats reports whether c takes precedence over o
func (c candidate) beats(o candidate) bool {
	if c.decl.Important != o.decl.Important {
		return c.decl.Important
	}
	if c.inline != o.inline {
		return c.inline
	}
	if c.spec != o.spec {
		return o.spec.Less(c.spec)
	}
	return c.order > o.order
}

type elementStyle struct {
	winners map[string]candidate
	props   []string
}

func (es *elementStyle) offer(c candidate) {
	cur, ok := es.winners[c.decl.Property]
	if !ok {
		es.props = append(es.props, c.decl.Property)
		es.winners[c.decl.Property] = c
		return
	}
	if c.beats(cur) {
		es.winners[c.decl.Property] = c
	}
}

func (es *elementStyle) String() string {
	parts := make([]string, 0, len(es.props))
	for _, prop := range es.props {
		d := es.winners[prop].decl
		v := d.Value
		if d.Important {
			v += " !important"
		}
		parts = append(parts, prop+": "+v+";")
	}
	return strings.Join(parts, " ")
}

// Apply inlines the plain rules of sheets into the style attributes of the
// elements under root. Sheets later in the list win ties.
func Apply(root *html.Node, sheets ...*cssom.StyleSheet) {
	styles := map[*html.Node]*elementStyle{}
	var nodes []*html.Node
	styleOf := func(n *html.Node) *elementStyle {
		es, ok := styles[n]
		if !ok {
			es = &elementStyle{winners: map[string]candidate{}}
			styles[n] = es
			nodes = append(nodes, n)
		}
		return es
	}

	order := 0
	for _, sheet := range sheets {
		if sheet == nil {
			continue
		}
		for _, rule := range sheet.PlainRules() {
			for _, text := range rule.Selectors {
				sel, err := cascadia.ParseWithPseudoElement(text)
				if err != nil {
					log.Debug("skipping selector %q: %v", text, err)
					continue
				}
				if sel.PseudoElement() != "" {
					continue
				}
				spec := sel.Specificity()
				for _, n := range cascadia.QueryAll(root, sel) {
					es := styleOf(n)
					for _, d := range rule.Declarations {
						order++
						es.offer(candidate{decl: d, spec: spec, order: order})
					}
				}
			}
		}
	}

	for _, n := range nodes {
		es := styles[n]
		if existing := attr(n, "style"); existing != "" {
			decls, err := cssom.ParseDeclarations(existing)
			if err != nil {
				log.Debug("keeping unparseable style attribute %q: %v", existing, err)
				continue
			}
			for _, d := range decls {
				order++
				es.offer(candidate{decl: d, inline: true, order: order})
			}
		}
		setAttr(n, "style", es.String())
	}
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
