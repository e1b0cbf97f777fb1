package render

import (
	"bytes"
	"fmt"
	"html/template"
)

// PageData is the data passed to the page template.
type PageData struct {
	Title   string
	Content template.HTML
}

// PageRenderer wraps published content in a standalone HTML document.
type PageRenderer struct {
	tmpl *template.Template
}

// NewPageRenderer parses the page template content.
func NewPageRenderer(tmplContent string) (*PageRenderer, error) {
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &PageRenderer{tmpl: tmpl}, nil
}

// Render returns the full document for content.
func (r *PageRenderer) Render(title, content string) (string, error) {
	var buf bytes.Buffer
	data := PageData{Title: title, Content: template.HTML(content)} // #nosec G203 -- published item markup
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}
