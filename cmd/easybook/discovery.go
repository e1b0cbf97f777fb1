package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/havlicek/easybook"
)

// Sentinel errors for item discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrNoMarkdownFiles    = errors.New("no markdown files found")
	ErrDuplicatePage      = errors.New("items publish to the same page")
)

// numberPrefix matches an "NN-" style item number at the start of a file name.
var numberPrefix = regexp.MustCompile(`^(\d+)[-_. ]`)

// ItemFile is one markdown file to publish as a book item.
type ItemFile struct {
	Path   string
	Number string // "3" for 03-results.md
	Page   string // output file name, e.g. "03-results.html"
}

// discoverItems finds the markdown files at the top level of a book
// directory, sorted by name. Files named with a numeric prefix keep that
// number; the others are numbered by their position. Subdirectories are
// not scanned.
func discoverItems(inputPath string) ([]ItemFile, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	var paths []string
	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		paths = []string{inputPath}
	} else {
		entries, err := os.ReadDir(inputPath)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", inputPath, err)
		}
		for _, e := range entries {
			if e.IsDir() || !isMarkdown(e.Name()) {
				continue
			}
			paths = append(paths, filepath.Join(inputPath, e.Name()))
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}
	sort.Strings(paths)

	items := make([]ItemFile, len(paths))
	pages := make(map[string]string, len(paths))
	for i, path := range paths {
		items[i] = newItemFile(path, i+1)
		if prev, ok := pages[items[i].Page]; ok {
			return nil, fmt.Errorf("%w: %s and %s both publish to %s", ErrDuplicatePage, prev, path, items[i].Page)
		}
		pages[items[i].Page] = path
	}
	return items, nil
}

func newItemFile(path string, position int) ItemFile {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if m := numberPrefix.FindStringSubmatch(base + " "); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return ItemFile{Path: path, Number: strconv.Itoa(n), Page: base + ".html"}
		}
	}

	return ItemFile{
		Path:   path,
		Number: strconv.Itoa(position),
		Page:   fmt.Sprintf("%02d-%s.html", position, base),
	}
}

// loadItems reads the files and builds book items. The title is the first
// level-one heading, falling back to the file name.
func loadItems(files []ItemFile) ([]easybook.Item, error) {
	items := make([]easybook.Item, len(files))
	for i, f := range files {
		content, err := os.ReadFile(f.Path) // #nosec G304 -- discovered input file
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadMarkdown, f.Path, err)
		}

		md := string(content)
		title := extractFirstHeading(md)
		if title == "" {
			title = strings.TrimSuffix(filepath.Base(f.Path), filepath.Ext(f.Path))
		}

		items[i] = easybook.Item{
			Title:     title,
			Number:    f.Number,
			Markdown:  md,
			SourceDir: filepath.Dir(f.Path),
			Page:      f.Page,
		}
	}
	return items, nil
}

var firstHeading = regexp.MustCompile(`(?m)^#\s+(.+?)\s*#*\s*$`)

// extractFirstHeading returns the text of the first "# " heading.
func extractFirstHeading(markdown string) string {
	m := firstHeading.FindStringSubmatch(markdown)
	if m == nil {
		return ""
	}
	return m[1]
}

func isMarkdown(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".md" || ext == ".markdown"
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !isMarkdown(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > easybook.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, easybook.MaxWorkers)
	}
	return nil
}
