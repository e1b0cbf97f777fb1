// Package tables decorates the HTML tables of a rendered book item.
//
// Decorate scans item content for table blocks, numbers them in document
// order, and replaces each block with the markup produced by a caller-supplied
// renderer. Labels, slugs and markup all come from injected collaborators, so
// the scan itself is a pure function of its inputs.
package tables

import (
	"regexp"
	"strconv"
	"strings"
)

// tablePattern matches a table block: it opens with <table and closes at the
// first </table> that starts a line. Nested tables end at the inner close tag.
var tablePattern = regexp.MustCompile(`(?is)<table.*?\n</table>`)

// Record describes one decorated table.
type Record struct {
	Caption string
	Content string // raw matched table markup
	Label   string
	Number  int // 1-based position within the item
	Slug    string
}

// Element describes the book item that contains the tables.
type Element struct {
	Number string
}

// Input is the content to decorate plus its context.
type Input struct {
	Content      string
	ParentNumber string
	Labels       bool // compute a label for every table
}

// Output holds the decorated content and the tables found, in document order.
type Output struct {
	Content string
	Tables  []Record
}

// RenderFunc produces the final markup of one table.
type RenderFunc func(rec Record, elem Element) (string, error)

// LabelFunc produces the numbered label of one table.
type LabelFunc func(rec Record, elem Element) (string, error)

// SlugFunc turns text into an anchor-safe token.
type SlugFunc func(text string) string

// Decorate replaces every table block of in.Content with its rendered form.
//
// Unterminated blocks are left untouched. Errors returned by render or label
// are returned as-is and the partial output is discarded. label is only
// called when in.Labels is true and may be nil otherwise.
func Decorate(in Input, render RenderFunc, label LabelFunc, slugify SlugFunc) (Output, error) {
	matches := tablePattern.FindAllStringIndex(in.Content, -1)
	if len(matches) == 0 {
		return Output{Content: in.Content}, nil
	}

	elem := Element{Number: in.ParentNumber}
	records := make([]Record, 0, len(matches))

	var buf strings.Builder
	buf.Grow(len(in.Content))

	last := 0
	for i, m := range matches {
		number := i + 1
		rec := Record{
			Content: in.Content[m[0]:m[1]],
			Number:  number,
			Slug:    slugify("Table " + in.ParentNumber + "-" + strconv.Itoa(number)),
		}

		if in.Labels {
			l, err := label(rec, elem)
			if err != nil {
				return Output{}, err
			}
			rec.Label = l
		}

		markup, err := render(rec, elem)
		if err != nil {
			return Output{}, err
		}

		buf.WriteString(in.Content[last:m[0]])
		buf.WriteString(markup)
		last = m[1]

		records = append(records, rec)
	}
	buf.WriteString(in.Content[last:])

	return Output{Content: buf.String(), Tables: records}, nil
}

