package assets

import (
	"fmt"
	"strings"
)

// TemplateSet holds the HTML templates used to publish a book.
type TemplateSet struct {
	Name         string
	Table        string // decoration of one table
	ListOfTables string
	Page         string // standalone page wrapping one item
}

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// Template file names inside a set directory.
const (
	TableFile        = "table.html"
	ListOfTablesFile = "list-of-tables.html"
	PageFile         = "page.html"
)

// setFiles is the order in which missing files are reported.
var setFiles = []string{TableFile, ListOfTablesFile, PageFile}

// Loader loads a template set by name.
type Loader interface {
	LoadTemplateSet(name string) (*TemplateSet, error)
}

// LoadTemplateSet loads a built-in template set by name.
func LoadTemplateSet(name string) (*TemplateSet, error) {
	return Embedded().LoadTemplateSet(name)
}

// Default returns the built-in default template set.
// It panics if the embedded assets are broken, which is a build defect.
func Default() *TemplateSet {
	ts, err := LoadTemplateSet(DefaultTemplateSetName)
	if err != nil {
		panic("assets: embedded default template set: " + err.Error())
	}
	return ts
}

// checkSetName rejects names that could address anything but a direct child
// of the templates directory.
func checkSetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidSetName, name)
	}
	return nil
}

// buildSet turns collected files into a set, failing on the first gap.
func buildSet(name string, files map[string]string) (*TemplateSet, error) {
	var missing []string
	for _, f := range setFiles {
		if _, ok := files[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, strings.Join(missing, ", "))
	}
	return &TemplateSet{
		Name:         name,
		Table:        files[TableFile],
		ListOfTables: files[ListOfTablesFile],
		Page:         files[PageFile],
	}, nil
}
