// Package labels formats the auto-numbered labels of book elements
// such as "Table 3.2".
//
// Formats are text/template strings executed against the labelled item and
// the element (chapter, appendix) that contains it:
//
//	Table {{.Element.Number}}.{{.Item.Number}}
//
// The prefix helper emits its argument followed by a suffix only when the
// argument is non-empty, for items without a parent number:
//
//	Table {{prefix .Element.Number "."}}{{.Item.Number}}
package labels

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"sync"
	"text/template"

	"github.com/havlicek/easybook/internal/tables"
)

// Label kinds.
const (
	KindTable  = "table"
	KindFigure = "figure"
)

// Sentinel errors for label formatting.
var (
	ErrUnknownLabelKind = errors.New("unknown label kind")
	ErrLabelFormat      = errors.New("label format failed")
)

// DefaultFormats returns the built-in label formats by kind.
func DefaultFormats() map[string]string {
	return map[string]string{
		KindTable:  "Table {{.Element.Number}}.{{.Item.Number}}",
		KindFigure: "Figure {{.Element.Number}}.{{.Item.Number}}",
	}
}

var funcs = template.FuncMap{
	"prefix": func(s, suffix string) string {
		if s == "" {
			return ""
		}
		return s + suffix
	},
}

// Data is the template data of a label format.
type Data struct {
	Item    tables.Record
	Element tables.Element
}

// Provider formats labels from parsed templates. It is safe for concurrent use.
type Provider struct {
	mu    sync.RWMutex
	tmpls map[string]*template.Template
}

// NewProvider parses DefaultFormats overridden by formats.
// Returns an error wrapping ErrLabelFormat if a format does not parse.
func NewProvider(formats map[string]string) (*Provider, error) {
	p := &Provider{tmpls: make(map[string]*template.Template)}

	merged := DefaultFormats()
	for kind, f := range formats {
		merged[kind] = f
	}
	for kind, f := range merged {
		if err := p.set(kind, f); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Validate reports whether format parses as a label template.
func Validate(format string) error {
	_, err := parse("label", format)
	return err
}

func parse(kind, format string) (*template.Template, error) {
	tmpl, err := template.New(kind).Funcs(funcs).Option("missingkey=error").Parse(format)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s format: %v", ErrLabelFormat, kind, err)
	}
	return tmpl, nil
}

func (p *Provider) set(kind, format string) error {
	tmpl, err := parse(kind, format)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.tmpls[kind] = tmpl
	p.mu.Unlock()
	return nil
}

// Kinds returns the configured label kinds, sorted.
func (p *Provider) Kinds() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	kinds := make([]string, 0, len(p.tmpls))
	for k := range p.tmpls {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Label formats the label of rec inside elem for the given kind.
func (p *Provider) Label(kind string, rec tables.Record, elem tables.Element) (string, error) {
	p.mu.RLock()
	tmpl, ok := p.tmpls[kind]
	p.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLabelKind, kind)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, Data{Item: rec, Element: elem}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrLabelFormat, err)
	}
	return buf.String(), nil
}

// TableLabel adapts the provider to tables.LabelFunc.
func (p *Provider) TableLabel() tables.LabelFunc {
	return func(rec tables.Record, elem tables.Element) (string, error) {
		return p.Label(KindTable, rec, elem)
	}
}
