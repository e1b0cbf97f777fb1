package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/havlicek/easybook/internal/tables"
)

var _ TableDecorator = (*TableDecoration)(nil)

func TestTableDecoration_DecorateTables(t *testing.T) {
	t.Parallel()

	d := &TableDecoration{
		Render: func(rec tables.Record, _ tables.Element) (string, error) {
			return `<div id="` + rec.Slug + `">` + rec.Content + "</div>", nil
		},
		Label:   func(tables.Record, tables.Element) (string, error) { return "L", nil },
		Slugify: func(s string) string { return strings.ToLower(strings.ReplaceAll(s, " ", "-")) },
	}

	out, err := d.DecorateTables(context.Background(), tables.Input{
		Content:      "<table>\n<tr><td>a</td></tr>\n</table>",
		ParentNumber: "2",
		Labels:       true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Tables) != 1 || out.Tables[0].Label != "L" {
		t.Fatalf("Tables = %+v, want one labelled record", out.Tables)
	}
	if !strings.HasPrefix(out.Content, `<div id="table-2-1">`) {
		t.Errorf("Content = %q, want decorated block", out.Content)
	}
}

func TestTableDecoration_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	d := &TableDecoration{
		Render: func(tables.Record, tables.Element) (string, error) {
			calls++
			return "", nil
		},
		Slugify: strings.ToLower,
	}

	_, err := d.DecorateTables(ctx, tables.Input{Content: "<table>\n</table>", ParentNumber: "1"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if calls != 0 {
		t.Errorf("render called %d times, want 0", calls)
	}
}
