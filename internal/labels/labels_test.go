package labels

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/havlicek/easybook/internal/tables"
)

func TestProvider_DefaultFormats(t *testing.T) {
	t.Parallel()

	p, err := NewProvider(nil)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	tests := []struct {
		name string
		kind string
		rec  tables.Record
		elem tables.Element
		want string
	}{
		{name: "table", kind: KindTable, rec: tables.Record{Number: 2}, elem: tables.Element{Number: "3"}, want: "Table 3.2"},
		{name: "figure", kind: KindFigure, rec: tables.Record{Number: 1}, elem: tables.Element{Number: "A"}, want: "Figure A.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := p.Label(tt.kind, tt.rec, tt.elem)
			if err != nil {
				t.Fatalf("Label: %v", err)
			}
			if got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProvider_CustomFormat(t *testing.T) {
	t.Parallel()

	p, err := NewProvider(map[string]string{
		KindTable: `Tabla {{prefix .Element.Number "-"}}{{.Item.Number}}: {{.Item.Slug}}`,
	})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	tests := []struct {
		name string
		elem tables.Element
		want string
	}{
		{name: "with parent", elem: tables.Element{Number: "4"}, want: "Tabla 4-1: table-4-1"},
		{name: "without parent", elem: tables.Element{}, want: "Tabla 1: table-4-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := p.Label(KindTable, tables.Record{Number: 1, Slug: "table-4-1"}, tt.elem)
			if err != nil {
				t.Fatalf("Label: %v", err)
			}
			if got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProvider_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()

		p, _ := NewProvider(nil)
		_, err := p.Label("equation", tables.Record{Number: 1}, tables.Element{})
		if !errors.Is(err, ErrUnknownLabelKind) {
			t.Errorf("error = %v, want ErrUnknownLabelKind", err)
		}
	})

	t.Run("unparsable format", func(t *testing.T) {
		t.Parallel()

		_, err := NewProvider(map[string]string{KindTable: "Table {{.Item.Number"})
		if !errors.Is(err, ErrLabelFormat) {
			t.Errorf("error = %v, want ErrLabelFormat", err)
		}
	})

	t.Run("unknown field at execution", func(t *testing.T) {
		t.Parallel()

		p, err := NewProvider(map[string]string{KindTable: "Table {{.Item.Missing}}"})
		if err != nil {
			t.Fatalf("NewProvider: %v", err)
		}
		_, err = p.Label(KindTable, tables.Record{Number: 1}, tables.Element{})
		if !errors.Is(err, ErrLabelFormat) {
			t.Errorf("error = %v, want ErrLabelFormat", err)
		}
	})
}

func TestProvider_Kinds(t *testing.T) {
	t.Parallel()

	p, err := NewProvider(map[string]string{"equation": "Eq. {{.Item.Number}}"})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	want := []string{"equation", KindFigure, KindTable}
	if diff := cmp.Diff(want, p.Kinds()); diff != "" {
		t.Errorf("Kinds() mismatch (-want +got):\n%s", diff)
	}
}

func TestProvider_TableLabel(t *testing.T) {
	t.Parallel()

	p, _ := NewProvider(nil)
	label := p.TableLabel()

	got, err := label(tables.Record{Number: 7}, tables.Element{Number: "1"})
	if err != nil {
		t.Fatalf("label: %v", err)
	}
	if got != "Table 1.7" {
		t.Errorf("label() = %q, want %q", got, "Table 1.7")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	if err := Validate("Table {{.Item.Number}}"); err != nil {
		t.Errorf("Validate(valid) = %v", err)
	}
	if err := Validate("{{if}}"); !errors.Is(err, ErrLabelFormat) {
		t.Errorf("Validate(invalid) = %v, want ErrLabelFormat", err)
	}
}
