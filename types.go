package easybook

import (
	"github.com/havlicek/easybook/internal/index"
	"github.com/havlicek/easybook/internal/tables"
)

// KeyTables is the registry key under which published tables are listed.
const KeyTables = index.KeyTables

// TableRecord describes one decorated table.
type TableRecord = tables.Record

// Registry collects the lists published while items are processed.
type Registry = index.Registry

// RegistryEntry is one table of the list of tables with its item.
type RegistryEntry = index.Entry

// NewRegistry returns an empty registry for WithRegistry.
func NewRegistry() *Registry {
	return index.NewRegistry()
}

// Item is one unit of book content, such as a chapter or an appendix.
type Item struct {
	Title     string
	Number    string // parent number used in labels and slugs, e.g. "3" or "A"
	Markdown  string
	SourceDir string // resolves relative image and link paths; empty disables rewriting
	Page      string // published page name, used for links in the list of tables
}

// ItemResult is the published form of an Item.
type ItemResult struct {
	Item    Item
	Content string // decorated HTML fragment
	Tables  []TableRecord
}

// BookResult aggregates the published items of a book, in input order.
type BookResult struct {
	Items []*ItemResult

	// ListOfTables is the rendered list of the tables in the registry,
	// empty when nothing was registered.
	ListOfTables string
}

// TableCount returns the number of tables across all items.
func (r *BookResult) TableCount() int {
	n := 0
	for _, it := range r.Items {
		n += len(it.Tables)
	}
	return n
}
