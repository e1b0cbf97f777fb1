package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkOptions configures the Goldmark converter.
type GoldmarkOptions struct {
	// AllowRawHTML keeps raw HTML blocks written in the Markdown source,
	// such as hand-written tables. Off by default.
	AllowRawHTML bool

	// Typographer turns straight quotes, dashes and ellipses into their
	// typographic forms.
	Typographer bool
}

// GoldmarkConverter converts Markdown to HTML fragments. GFM tables are
// rendered with the closing tag on its own line, which is the shape the
// table decorator matches.
type GoldmarkConverter struct {
	md   goldmark.Markdown
	bufs sync.Pool
}

// NewGoldmarkConverter creates a converter with GFM, footnotes and
// class-based chroma highlighting.
func NewGoldmarkConverter(opts GoldmarkOptions) *GoldmarkConverter {
	exts := []goldmark.Extender{
		extension.GFM,
		extension.Footnote,
		highlighting.NewHighlighting(
			highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
		),
	}
	if opts.Typographer {
		exts = append(exts, extension.Typographer)
	}

	var renderOpts []goldmark.Option
	if opts.AllowRawHTML {
		renderOpts = append(renderOpts, goldmark.WithRendererOptions(html.WithUnsafe()))
	}

	c := &GoldmarkConverter{
		md: goldmark.New(append(renderOpts,
			goldmark.WithExtensions(exts...),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		)...),
	}
	c.bufs.New = func() any { return new(bytes.Buffer) }
	return c
}

// ToHTML converts Markdown content to an HTML fragment. Goldmark takes no
// context, so the conversion is raced against ctx in its own goroutine.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	out := make(chan string, 1)
	fail := make(chan error, 1)
	go func() {
		buf := c.bufs.Get().(*bytes.Buffer)
		buf.Reset()
		defer c.bufs.Put(buf)

		if err := c.md.Convert([]byte(content), buf); err != nil {
			fail <- fmt.Errorf("%w: %v", ErrHTMLConversion, err)
			return
		}
		out <- buf.String()
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case err := <-fail:
		return "", err
	case fragment := <-out:
		return fragment, nil
	}
}

var _ HTMLConverter = (*GoldmarkConverter)(nil)
