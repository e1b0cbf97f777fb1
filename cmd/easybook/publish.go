package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/havlicek/easybook"
	"github.com/havlicek/easybook/internal/config"
	"github.com/havlicek/easybook/internal/fileutil"
	"github.com/havlicek/easybook/internal/hints"
	"github.com/havlicek/easybook/internal/render"
	"github.com/havlicek/easybook/internal/yamlutil"
)

// Sentinel errors for publishing.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteOutput  = errors.New("failed to write output file")
)

// Output file names written next to the item pages.
const (
	defaultOutputDir = "Output"
	listOfTablesFile = "list-of-tables.html"
	tablesIndexFile  = "tables.yaml"
)

// publishParams is the merged result of config and flags.
type publishParams struct {
	input        string
	outputDir    string
	workers      int
	labels       []string
	labelFormats map[string]string
	listOfTables bool
	assetPath    string
	templateSet  string
	baseURL      string
	rawHTML      bool
	smartQuotes  bool
}

// tableIndexEntry is one table in tables.yaml.
type tableIndexEntry struct {
	Item    string `yaml:"item"`
	Page    string `yaml:"page"`
	Title   string `yaml:"title,omitempty"`
	Number  int    `yaml:"number"`
	Label   string `yaml:"label,omitempty"`
	Caption string `yaml:"caption,omitempty"`
	Slug    string `yaml:"slug"`
}

func runPublishCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePublishFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	return runPublish(ctx, positional, flags, env)
}

// runPublish orchestrates publishing a book directory or a single file.
func runPublish(ctx context.Context, positional []string, flags *publishFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}

	params, err := mergePublishParams(positional, flags, cfg)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common)
	start := env.Now()

	files, err := discoverItems(params.input)
	if err != nil {
		return err
	}
	items, err := loadItems(files)
	if err != nil {
		return err
	}
	logger.Debug("items discovered", "count", len(items), "input", params.input)

	opts := []easybook.Option{
		easybook.WithLabels(params.labels...),
		easybook.WithAssetPath(params.assetPath),
		easybook.WithWorkers(params.workers),
		easybook.WithBaseURL(params.baseURL),
		easybook.WithRawHTML(params.rawHTML),
		easybook.WithTypographer(params.smartQuotes),
		easybook.WithLogger(logger),
	}
	if params.templateSet != "" {
		opts = append(opts, easybook.WithTemplateSet(params.templateSet))
	}
	for kind, format := range params.labelFormats {
		opts = append(opts, easybook.WithLabelFormat(kind, format))
	}

	pub, err := easybook.NewPublisher(opts...)
	if err != nil {
		if errors.Is(err, easybook.ErrInvalidTemplateSet) {
			return fmt.Errorf("%w%s", err, hints.ForTemplateSet(params.templateSet))
		}
		return err
	}

	book, err := pub.PublishBook(ctx, items)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(params.outputDir, fileutil.DirPermissions); err != nil {
		return fmt.Errorf("%w: creating %s: %v%s", ErrWriteOutput, params.outputDir, err, hints.ForOutputDirectory())
	}

	for _, res := range book.Items {
		page, err := pub.RenderPage(res.Item.Title, res.Content)
		if err != nil {
			return err
		}
		if err := writeOutput(filepath.Join(params.outputDir, res.Item.Page), []byte(page)); err != nil {
			return err
		}
	}

	written := len(book.Items)
	if params.listOfTables && book.ListOfTables != "" {
		if err := writeListOfTables(pub, book, params.outputDir); err != nil {
			return err
		}
		written += 2
	}

	logger.Debug("publish finished", "duration", env.Now().Sub(start))
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Published %d items (%d tables), %d files written to %s\n",
			len(book.Items), book.TableCount(), written, params.outputDir)
	}
	return nil
}

// writeListOfTables writes the list of tables page and the registry index.
func writeListOfTables(pub *easybook.Publisher, book *easybook.BookResult, outputDir string) error {
	page, err := pub.RenderPage(render.DefaultListTitle, book.ListOfTables)
	if err != nil {
		return err
	}
	if err := writeOutput(filepath.Join(outputDir, listOfTablesFile), []byte(page)); err != nil {
		return err
	}

	reg := pub.Registry()
	index := make(map[string][]tableIndexEntry)
	for _, key := range reg.Keys() {
		for _, e := range reg.List(key) {
			index[key] = append(index[key], tableIndexEntry{
				Item:    e.Item,
				Page:    e.Page,
				Title:   e.Title,
				Number:  e.Record.Number,
				Label:   e.Record.Label,
				Caption: e.Record.Caption,
				Slug:    e.Record.Slug,
			})
		}
	}

	data, err := yamlutil.Encode(index)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", tablesIndexFile, err)
	}
	return writeOutput(filepath.Join(outputDir, tablesIndexFile), data)
}

func writeOutput(path string, data []byte) error {
	if err := os.WriteFile(path, data, fileutil.FilePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// mergePublishParams merges flags over config values. CLI flags win.
func mergePublishParams(positional []string, flags *publishFlags, cfg *config.Config) (*publishParams, error) {
	p := &publishParams{
		workers:      flags.workers,
		labels:       cfg.Edition.Labels,
		labelFormats: make(map[string]string, len(cfg.Edition.LabelFormats)+1),
		listOfTables: cfg.Output.ListOfTables || flags.labels.listOfTables,
		assetPath:    cfg.Assets.BasePath,
		templateSet:  cfg.Assets.TemplateSet,
		baseURL:      flags.assets.baseURL,
		rawHTML:      flags.assets.rawHTML,
		smartQuotes:  flags.assets.smartQuotes,
	}

	switch {
	case len(positional) > 0:
		p.input = positional[0]
	case cfg.Input.DefaultDir != "":
		p.input = cfg.Input.DefaultDir
	default:
		return nil, ErrNoInput
	}

	p.outputDir = defaultOutputDir
	if cfg.Output.DefaultDir != "" {
		p.outputDir = cfg.Output.DefaultDir
	}
	if flags.output != "" {
		p.outputDir = flags.output
	}

	for kind, format := range cfg.Edition.LabelFormats {
		p.labelFormats[strings.ToLower(kind)] = format
	}
	if flags.labels.tableFormat != "" {
		p.labelFormats["table"] = flags.labels.tableFormat
	}

	if len(flags.labels.kinds) > 0 {
		p.labels = make([]string, 0, len(flags.labels.kinds))
		for _, k := range flags.labels.kinds {
			if !isKnownLabelKind(k) {
				return nil, fmt.Errorf("%w: --labels %q%s", config.ErrInvalidLabelKind, k, hints.ForLabelKinds(config.LabelKinds))
			}
			p.labels = append(p.labels, strings.ToLower(k))
		}
	}
	if flags.labels.noLabels {
		p.labels = nil
	}

	if flags.assets.assetPath != "" {
		p.assetPath = flags.assets.assetPath
	}
	if flags.assets.templateSet != "" {
		p.templateSet = flags.assets.templateSet
	}

	return p, nil
}

func isKnownLabelKind(kind string) bool {
	for _, k := range config.LabelKinds {
		if strings.EqualFold(k, kind) {
			return true
		}
	}
	return false
}
