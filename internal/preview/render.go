// Package preview renders an edited Markdown document to a standalone HTML
// page, so the effect of a format can be checked in a browser.
package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
)

// ErrRender indicates the Markdown could not be rendered.
var ErrRender = errors.New("preview rendering failed")

// DefaultStyle is the chroma style used for code blocks.
const DefaultStyle = "github"

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
%s</style>
</head>
<body>
%s</body>
</html>
`

// Renderer converts Markdown to a preview page. It is safe for concurrent use.
type Renderer struct {
	md  goldmark.Markdown
	css string
}

// Option configures a Renderer.
type Option func(*settings)

type settings struct {
	style     string
	pageCSS   string
	hardWraps bool
}

// WithStyle selects the chroma style for code blocks. Unknown names fall
// back to chroma's default style.
func WithStyle(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.style = name
		}
	}
}

// WithPageCSS embeds css in every page ahead of the highlighting rules.
func WithPageCSS(css string) Option {
	return func(s *settings) {
		s.pageCSS = css
	}
}

// WithHardWraps renders single newlines as line breaks.
func WithHardWraps() Option {
	return func(s *settings) {
		s.hardWraps = true
	}
}

// NewRenderer returns a Renderer with GFM, footnotes, heading IDs and
// class-based syntax highlighting. The page stylesheet and the rules for
// the highlight classes are embedded in every page.
func NewRenderer(opts ...Option) (*Renderer, error) {
	s := settings{style: DefaultStyle}
	for _, opt := range opts {
		opt(&s)
	}

	htmlOpts := []renderer.Option{gmhtml.WithXHTML()}
	if s.hardWraps {
		htmlOpts = append(htmlOpts, gmhtml.WithHardWraps())
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(htmlOpts...),
	)

	var css bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&css, styles.Get(s.style)); err != nil {
		return nil, fmt.Errorf("%w: writing %s stylesheet: %v", ErrRender, s.style, err)
	}

	return &Renderer{md: md, css: s.pageCSS + css.String()}, nil
}

// ToHTML renders markdown to a complete HTML page titled after its first
// level-one heading, or "Preview" when there is none.
//
// goldmark has no context support: rendering runs in a goroutine and
// ToHTML returns as soon as ctx is done.
func (r *Renderer) ToHTML(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		page string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		page, err := r.render([]byte(markdown))
		done <- result{page: page, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.page, res.err
	}
}

func (r *Renderer) render(src []byte) (string, error) {
	doc := r.md.Parser().Parse(text.NewReader(src))

	var body bytes.Buffer
	if err := r.md.Renderer().Render(&body, src, doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}

	title := firstHeading(doc, src)
	if title == "" {
		title = "Preview"
	}
	return fmt.Sprintf(pageTemplate, html.EscapeString(title), r.css, body.String()), nil
}

// firstHeading returns the plain text of the first level-one heading.
func firstHeading(doc ast.Node, src []byte) string {
	var title strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !ok || !entering || h.Level != 1 {
			return ast.WalkContinue, nil
		}
		collectText(h, src, &title)
		return ast.WalkStop, nil
	})
	return strings.TrimSpace(title.String())
}

func collectText(n ast.Node, src []byte, w *strings.Builder) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			w.Write(t.Segment.Value(src))
			continue
		}
		collectText(c, src, w)
	}
}
