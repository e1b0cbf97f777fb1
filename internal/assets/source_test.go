package assets

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeSet writes the given template files under base/templates/name.
func writeSet(t *testing.T, base, name string, files map[string]string) {
	t.Helper()

	dir := filepath.Join(base, "templates", name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for file, content := range files {
		if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", file, err)
		}
	}
}

func completeSet(marker string) map[string]string {
	return map[string]string{
		TableFile:        marker + "-table",
		ListOfTablesFile: marker + "-list",
		PageFile:         marker + "-page",
	}
}

func TestEmbedded_DefaultSet(t *testing.T) {
	t.Parallel()

	ts := Default()
	if ts.Name != DefaultTemplateSetName {
		t.Errorf("Name = %q, want %q", ts.Name, DefaultTemplateSetName)
	}
	checks := map[string]string{
		"table":          ts.Table,
		"list of tables": ts.ListOfTables,
		"page":           ts.Page,
	}
	for name, content := range checks {
		if strings.TrimSpace(content) == "" {
			t.Errorf("%s template is empty", name)
		}
	}
	if !strings.Contains(ts.Table, "{{.Item.Slug}}") {
		t.Errorf("table template does not use the slug:\n%s", ts.Table)
	}
}

func TestEmbedded_UnknownSet(t *testing.T) {
	t.Parallel()

	_, err := LoadTemplateSet("nope")
	if !errors.Is(err, ErrTemplateSetNotFound) {
		t.Errorf("error = %v, want ErrTemplateSetNotFound", err)
	}
}

func TestDir(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "valid directory", path: t.TempDir()},
		{name: "empty path", path: "", wantErr: ErrInvalidBasePath},
		{name: "missing directory", path: "/nonexistent/path/abc123xyz", wantErr: ErrInvalidBasePath},
		{name: "regular file", path: file, wantErr: ErrInvalidBasePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := Dir(tt.path)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Dir() error = %v", err)
				}
				if s.String() == "" {
					t.Error("String() is empty")
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Dir() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSource_LoadTemplateSet(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeSet(t, base, "print", completeSet("print"))
	writeSet(t, base, "partial", map[string]string{PageFile: "page"})

	s, err := Dir(base)
	if err != nil {
		t.Fatalf("Dir() error = %v", err)
	}

	tests := []struct {
		name      string
		set       string
		wantTable string
		wantErr   error
	}{
		{name: "complete set", set: "print", wantTable: "print-table"},
		{name: "partial set", set: "partial", wantErr: ErrIncompleteTemplateSet},
		{name: "missing set", set: "web", wantErr: ErrTemplateSetNotFound},
		{name: "empty name", set: "", wantErr: ErrInvalidSetName},
		{name: "traversal", set: "..", wantErr: ErrInvalidSetName},
		{name: "separator", set: "a/b", wantErr: ErrInvalidSetName},
		{name: "backslash", set: "a\\b", wantErr: ErrInvalidSetName},
		{name: "dotted", set: "theme.v2", wantErr: ErrInvalidSetName},
		{name: "nul byte", set: "pr\x00int", wantErr: ErrInvalidSetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts, err := s.LoadTemplateSet(tt.set)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTemplateSet() error = %v", err)
			}
			if ts.Table != tt.wantTable {
				t.Errorf("Table = %q, want %q", ts.Table, tt.wantTable)
			}
		})
	}
}

func TestSource_IncompleteListsMissingFiles(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeSet(t, base, "web", map[string]string{TableFile: "t"})

	s, err := Dir(base)
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.LoadTemplateSet("web")
	if err == nil {
		t.Fatal("expected error")
	}
	for _, f := range []string{ListOfTablesFile, PageFile} {
		if !strings.Contains(err.Error(), f) {
			t.Errorf("error %q does not name %s", err, f)
		}
	}
}

func TestSource_SymlinkEscape(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}

	outside := t.TempDir()
	writeSet(t, outside, "evil", completeSet("evil"))

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "templates"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(outside, "templates", "evil"), filepath.Join(base, "templates", "evil")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	s, err := Dir(base)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.LoadTemplateSet("evil"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("error = %v, want ErrPathTraversal", err)
	}
}
