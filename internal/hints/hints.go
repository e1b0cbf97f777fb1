// Package hints builds the "hint:" suffixes appended to CLI error messages.
// Every hint renders as "\n  hint: <text>", several joined with "; ".
package hints

import (
	"path/filepath"
	"strings"
)

const prefix = "\n  hint: "

// ForConfigNotFound suggests --config, or creating the first searched path
// that lives in the user config directory.
func ForConfigNotFound(searched []string) string {
	text := "use --config /path/to/file.yaml"
	for _, p := range searched {
		if strings.Contains(filepath.ToSlash(p), "/easybook/") {
			text += " or create " + p
			break
		}
	}
	return join(text)
}

// ForOutputDirectory is appended when the output directory cannot be created.
func ForOutputDirectory() string {
	return join("check parent directory exists and is writable")
}

// ForTemplateSet describes the layout of a template set directory.
func ForTemplateSet(name string) string {
	if name == "" {
		name = "<name>"
	}
	return join("a template set is a directory templates/" + name +
		"/ under --asset-path with table.html, list-of-tables.html and page.html")
}

// ForLabelKinds lists the supported kinds, or nothing when kinds is empty.
func ForLabelKinds(kinds []string) string {
	if len(kinds) == 0 {
		return ""
	}
	return join("supported kinds: " + strings.Join(kinds, ", "))
}

func ForPackageSource() string {
	return join(
		"run from the application root or set --root",
		"paths in package.include are relative to the root",
	)
}

func join(texts ...string) string {
	if len(texts) == 0 {
		return ""
	}
	return prefix + strings.Join(texts, "; ")
}
