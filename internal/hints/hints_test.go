package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		paths        []string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "suggests user config path",
			paths:        []string{"print.yaml", "print.yml", "/home/me/.config/easybook/print.yaml"},
			wantContains: []string{"hint:", "--config", "or create /home/me/.config/easybook/print.yaml"},
		},
		{
			name:         "local paths only",
			paths:        []string{"print.yaml", "print.yml"},
			wantContains: []string{"--config"},
			wantExcludes: []string{"or create"},
		},
		{
			name:         "no paths",
			wantContains: []string{"--config"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			for _, want := range tt.wantContains {
				if !strings.Contains(hint, want) {
					t.Errorf("hint %q missing %q", hint, want)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(hint, exclude) {
					t.Errorf("hint %q should not contain %q", hint, exclude)
				}
			}
		})
	}
}

func TestForTemplateSet(t *testing.T) {
	t.Parallel()

	if hint := ForTemplateSet("print"); !strings.Contains(hint, "templates/print/") {
		t.Errorf("hint %q does not name the set directory", hint)
	}
	if hint := ForTemplateSet(""); !strings.Contains(hint, "templates/<name>/") {
		t.Errorf("hint %q lacks placeholder", hint)
	}
}

func TestForLabelKinds(t *testing.T) {
	t.Parallel()

	if got := ForLabelKinds(nil); got != "" {
		t.Errorf("ForLabelKinds(nil) = %q, want empty", got)
	}
	if got := ForLabelKinds([]string{"table", "figure"}); got != "\n  hint: supported kinds: table, figure" {
		t.Errorf("ForLabelKinds() = %q", got)
	}
}

func TestForPackageSource(t *testing.T) {
	t.Parallel()

	hint := ForPackageSource()
	if !strings.HasPrefix(hint, "\n  hint: ") || !strings.Contains(hint, "; ") {
		t.Errorf("ForPackageSource() = %q, want joined hints", hint)
	}
}

func TestForOutputDirectory(t *testing.T) {
	t.Parallel()

	if !strings.Contains(ForOutputDirectory(), "writable") {
		t.Error("expected writable hint")
	}
}
