// Package render turns decorated tables and table indexes into HTML
// using the templates of an asset template set.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"github.com/havlicek/easybook/internal/tables"
)

// Sentinel errors for template rendering.
var (
	ErrTableRender = errors.New("table template rendering failed")
	ErrListRender  = errors.New("list of tables rendering failed")
	ErrPageRender  = errors.New("page template rendering failed")
)

// TableItem is the template view of a tables.Record. Content is trusted
// markup produced by the markdown converter and is not escaped.
type TableItem struct {
	Caption string
	Content template.HTML
	Label   string
	Number  int
	Slug    string
}

// TableData is the data passed to the table template.
type TableData struct {
	Item    TableItem
	Element tables.Element
}

// TableRenderer renders one table with the set's table template.
type TableRenderer struct {
	tmpl *template.Template
}

// NewTableRenderer parses the table template content.
func NewTableRenderer(tmplContent string) (*TableRenderer, error) {
	tmpl, err := template.New("table").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing table template: %w", err)
	}
	return &TableRenderer{tmpl: tmpl}, nil
}

// Render returns the decorated markup of rec.
func (r *TableRenderer) Render(rec tables.Record, elem tables.Element) (string, error) {
	data := TableData{
		Item: TableItem{
			Caption: rec.Caption,
			Content: template.HTML(rec.Content), // #nosec G203 -- converter output, not user HTML
			Label:   rec.Label,
			Number:  rec.Number,
			Slug:    rec.Slug,
		},
		Element: elem,
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTableRender, err)
	}
	return buf.String(), nil
}
