package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/havlicek/easybook/internal/tables"
)

// DefaultListTitle heads the list of tables when no title is configured.
const DefaultListTitle = "List of Tables"

// ListEntry is one line of the list of tables.
type ListEntry struct {
	Href   string
	Label  string
	Title  string
	Number int
}

// ListData is the data passed to the list-of-tables template.
type ListData struct {
	Title   string
	Entries []ListEntry
}

// ItemTables groups the tables of one published item.
type ItemTables struct {
	Page   string // file or URL of the item page; empty for same-page anchors
	Title  string // item title, used when a table has no label
	Tables []tables.Record
}

// ListRenderer renders the list of tables page.
type ListRenderer struct {
	tmpl *template.Template
}

// NewListRenderer parses the list-of-tables template content.
func NewListRenderer(tmplContent string) (*ListRenderer, error) {
	tmpl, err := template.New("list-of-tables").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing list of tables template: %w", err)
	}
	return &ListRenderer{tmpl: tmpl}, nil
}

// Entries flattens grouped records into list entries in book order.
func Entries(items []ItemTables) []ListEntry {
	var entries []ListEntry
	for _, it := range items {
		for _, rec := range it.Tables {
			title := rec.Caption
			if title == "" && rec.Label == "" {
				title = fmt.Sprintf("%s, table %d", it.Title, rec.Number)
			}
			entries = append(entries, ListEntry{
				Href:   it.Page + "#" + rec.Slug,
				Label:  rec.Label,
				Title:  title,
				Number: rec.Number,
			})
		}
	}
	return entries
}

// Render returns the list of tables markup. An empty title uses DefaultListTitle.
func (r *ListRenderer) Render(title string, items []ItemTables) (string, error) {
	if title == "" {
		title = DefaultListTitle
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, ListData{Title: title, Entries: Entries(items)}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrListRender, err)
	}
	return buf.String(), nil
}
