package pipeline

import (
	"context"
	"testing"
)

func TestCommonMarkPreprocessor_PreprocessMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "CRLF normalized",
			input: "a\r\nb\r\n",
			want:  "a\nb\n",
		},
		{
			name:  "lone CR normalized",
			input: "a\rb",
			want:  "a\nb",
		},
		{
			name:  "highlight converted to placeholders",
			input: "some ==marked== text",
			want:  "some " + MarkStartPlaceholder + "marked" + MarkEndPlaceholder + " text",
		},
		{
			name:  "blank lines compressed",
			input: "a\n\n\n\n\nb",
			want:  "a\n\nb",
		},
		{
			name:  "table untouched",
			input: "| A | B |\n|---|---|\n| 1 | 2 |\n",
			want:  "| A | B |\n|---|---|\n| 1 | 2 |\n",
		},
	}

	p := &CommonMarkPreprocessor{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := p.PreprocessMarkdown(context.Background(), tt.input); got != tt.want {
				t.Errorf("PreprocessMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommonMarkPreprocessor_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := "a\r\n==b=="
	if got := (&CommonMarkPreprocessor{}).PreprocessMarkdown(ctx, input); got != input {
		t.Errorf("PreprocessMarkdown() = %q, want input unchanged", got)
	}
}

func TestConvertMarkPlaceholders(t *testing.T) {
	t.Parallel()

	input := "<p>" + MarkStartPlaceholder + "x" + MarkEndPlaceholder + "</p>"
	want := "<p><mark>x</mark></p>"
	if got := ConvertMarkPlaceholders(input); got != want {
		t.Errorf("ConvertMarkPlaceholders() = %q, want %q", got, want)
	}
}
