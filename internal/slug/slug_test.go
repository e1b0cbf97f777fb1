package slug

import "testing"

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "table reference", input: "Table 1-2", want: "table-1-2"},
		{name: "dotted numbers", input: "Table 3.2-1", want: "table-3-2-1"},
		{name: "accents folded", input: "Tabla de Café", want: "tabla-de-cafe"},
		{name: "punctuation collapsed", input: "  Hello,   World!! ", want: "hello-world"},
		{name: "leading and trailing symbols", input: "--Intro--", want: "intro"},
		{name: "non latin dropped", input: "表 1", want: "1"},
		{name: "only symbols", input: "?!", want: ""},
		{name: "empty", input: "", want: ""},
	}

	s := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := s.Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugifier_Separator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		separator string
		want      string
	}{
		{name: "underscore", separator: "_", want: "table_2_1"},
		{name: "empty falls back to default", separator: "", want: "table-2-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := &Slugifier{Separator: tt.separator}
			if got := s.Slugify("Table 2-1"); got != tt.want {
				t.Errorf("Slugify() = %q, want %q", got, tt.want)
			}
		})
	}
}
