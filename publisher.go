package easybook

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/havlicek/easybook/internal/assets"
	"github.com/havlicek/easybook/internal/index"
	"github.com/havlicek/easybook/internal/labels"
	"github.com/havlicek/easybook/internal/pipeline"
	"github.com/havlicek/easybook/internal/render"
	"github.com/havlicek/easybook/internal/slug"
	"github.com/havlicek/easybook/internal/tables"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.TableDecorator       = (*pipeline.TableDecoration)(nil)
)

// Publisher orchestrates the item publishing pipeline.
// Create with NewPublisher and use PublishItem or PublishBook.
// A Publisher is safe for concurrent use.
type Publisher struct {
	cfg            publisherConfig
	templates      *assets.Layered
	preprocessor   pipeline.MarkdownPreprocessor
	htmlConverter  pipeline.HTMLConverter
	tableDecorator pipeline.TableDecorator
	labels         *labels.Provider
	listRenderer   *render.ListRenderer
	pageRenderer   *render.PageRenderer
	registry       *index.Registry
	logger         *log.Logger
}

// NewPublisher creates a Publisher with the default template set and no labels.
// Returns an error if asset loading, template parsing or a label format fails.
func NewPublisher(opts ...Option) (*Publisher, error) {
	p := &Publisher{
		cfg: publisherConfig{
			labelKinds:      make(map[string]bool),
			labelFormats:    make(map[string]string),
			templateSetName: assets.DefaultTemplateSetName,
		},
		preprocessor: &pipeline.CommonMarkPreprocessor{},
		registry:     index.NewRegistry(),
		logger:       log.New(io.Discard),
	}

	for _, opt := range opts {
		opt(p)
	}

	var err error
	p.templates, err = assets.NewLayered(p.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	templateSet, err := p.templates.LoadTemplateSet(p.cfg.templateSetName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplateSet, err)
	}

	p.labels, err = labels.NewProvider(p.cfg.labelFormats)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLabelFormat, err)
	}

	if p.htmlConverter == nil {
		p.htmlConverter = pipeline.NewGoldmarkConverter(pipeline.GoldmarkOptions{
			AllowRawHTML: p.cfg.allowRawHTML,
			Typographer:  p.cfg.typographer,
		})
	}

	if p.tableDecorator == nil {
		tableRenderer, err := render.NewTableRenderer(templateSet.Table)
		if err != nil {
			return nil, fmt.Errorf("initializing table renderer: %w", err)
		}
		p.tableDecorator = &pipeline.TableDecoration{
			Render:  tableRenderer.Render,
			Label:   p.labels.TableLabel(),
			Slugify: slug.New().Slugify,
		}
	}

	p.listRenderer, err = render.NewListRenderer(templateSet.ListOfTables)
	if err != nil {
		return nil, fmt.Errorf("initializing list of tables renderer: %w", err)
	}

	p.pageRenderer, err = render.NewPageRenderer(templateSet.Page)
	if err != nil {
		return nil, fmt.Errorf("initializing page renderer: %w", err)
	}

	p.logger.Debug("publisher ready",
		"templateSet", templateSet.Name,
		"sources", p.templates.Sources(),
		"labelFormats", p.labels.Kinds(),
		"tableLabels", p.cfg.tableLabels())

	return p, nil
}

// Registry returns the registry the publisher publishes lists into.
func (p *Publisher) Registry() *Registry {
	return p.registry
}

// PublishItem runs the pipeline on one item and registers its tables under
// KeyTables when it has any. Recovers from internal panics to prevent
// crashes from propagating to callers.
func (p *Publisher) PublishItem(ctx context.Context, item Item) (result *ItemResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("internal error: %v", r)
		}
	}()

	result, err = p.publish(ctx, item)
	if err != nil {
		return nil, err
	}
	p.register(result)
	return result, nil
}

// publish runs the pipeline without touching the registry.
func (p *Publisher) publish(ctx context.Context, item Item) (*ItemResult, error) {
	if item.Markdown == "" {
		return nil, ErrEmptyContent
	}

	mdContent := p.preprocessor.PreprocessMarkdown(ctx, item.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	htmlContent, err := p.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	// Placeholders become <mark> after Goldmark to avoid needing html.WithUnsafe().
	htmlContent = pipeline.ConvertMarkPlaceholders(htmlContent)

	rewriter := pipeline.PathRewriter{SourceDir: item.SourceDir, BaseURL: p.cfg.baseURL}
	htmlContent, err = rewriter.Rewrite(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("rewriting relative paths: %w", err)
	}

	out, err := p.tableDecorator.DecorateTables(ctx, tables.Input{
		Content:      htmlContent,
		ParentNumber: item.Number,
		Labels:       p.cfg.tableLabels(),
	})
	if err != nil {
		return nil, fmt.Errorf("decorating tables: %w", err)
	}

	p.logger.Debug("item published", "item", item.Number, "title", item.Title, "tables", len(out.Tables))

	return &ItemResult{
		Item:    item,
		Content: out.Content,
		Tables:  out.Tables,
	}, nil
}

// register appends the item's tables to the registry. Items without tables
// leave the registry untouched.
func (p *Publisher) register(result *ItemResult) {
	if len(result.Tables) == 0 {
		return
	}
	p.registry.AppendTables(result.Item.Number, result.Item.Page, result.Item.Title, result.Tables)
}

// ListOfTables renders the list of tables currently in the registry.
// Returns an empty string when no table was published.
func (p *Publisher) ListOfTables() (string, error) {
	if !p.registry.Has(KeyTables) {
		return "", nil
	}
	entries := p.registry.Tables()

	var items []render.ItemTables
	for _, e := range entries {
		last := len(items) - 1
		if last >= 0 && items[last].Page == e.Page && items[last].Title == e.Title {
			items[last].Tables = append(items[last].Tables, e.Record)
			continue
		}
		items = append(items, render.ItemTables{
			Page:   e.Page,
			Title:  e.Title,
			Tables: []tables.Record{e.Record},
		})
	}

	return p.listRenderer.Render(p.cfg.listTitle, items)
}

// RenderPage wraps published content into a standalone HTML document using
// the page template of the template set.
func (p *Publisher) RenderPage(title, content string) (string, error) {
	if content == "" {
		return "", ErrEmptyContent
	}
	page, err := p.pageRenderer.Render(title, content)
	if err != nil {
		return "", fmt.Errorf("rendering page %q: %w", title, err)
	}
	return page, nil
}

// isCancellation reports whether err comes from context cancellation.
func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
