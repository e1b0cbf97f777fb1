package packager

import (
	"path/filepath"
	"strings"
)

// Rule selects files under the package root.
//
// Path is relative to the root and names a file or a directory. Files are
// added as-is. Directories are walked: a file is kept when its base name
// matches one Include glob (all files when Include is empty) and no Exclude
// glob. ExcludeDirs entries skip directories by name ("docs") or by path
// suffix relative to Path ("twig/doc"), at any depth.
type Rule struct {
	Path        string
	Include     []string
	Exclude     []string
	ExcludeDirs []string
	Flat        bool // only the files directly inside Path
	Optional    bool // a missing Path is skipped instead of failing the build
}

// Manifest is the ordered list of rules of a package.
type Manifest struct {
	Rules []Rule
}

// Files and directories never packaged.
var (
	vcsDirs      = []string{".git", ".svn", ".hg", ".bzr", "CVS", "_darcs"}
	ignoredFiles = []string{".DS_Store"}
)

// DefaultManifest returns the rules of the easybook distribution: the module
// files, command and library sources without tests, embedded templates,
// sample books, vendored dependencies without docs and tests, and the
// license and readme.
func DefaultManifest() Manifest {
	goSources := []string{"*.go"}
	noTests := []string{"*_test.go"}

	return Manifest{Rules: []Rule{
		{Path: "go.mod"},
		{Path: "go.sum", Optional: true},
		{Path: ".", Include: goSources, Exclude: noTests, Flat: true},
		{Path: "cmd", Exclude: noTests, ExcludeDirs: []string{"testdata"}},
		{Path: "internal", Exclude: noTests, ExcludeDirs: []string{"testdata"}},
		{Path: "doc", ExcludeDirs: []string{"Output", "Resources"}, Optional: true},
		{
			Path:        "vendor",
			Exclude:     []string{"README*", "CHANGELOG*", "AUTHORS", "*_test.go", "*.md"},
			ExcludeDirs: []string{"docs", "doc", "testdata", "_examples"},
			Optional:    true,
		},
		{Path: "LICENSE", Optional: true},
		{Path: "LICENSE.md", Optional: true},
		{Path: "README.md", Optional: true},
	}}
}

// Extend returns a copy of m with a rule per include path and the exclude
// globs added to every rule.
func (m Manifest) Extend(include, exclude []string) Manifest {
	rules := make([]Rule, 0, len(m.Rules)+len(include))
	rules = append(rules, m.Rules...)
	for _, inc := range include {
		rules = append(rules, Rule{Path: inc})
	}

	if len(exclude) > 0 {
		for i := range rules {
			ex := make([]string, 0, len(rules[i].Exclude)+len(exclude))
			ex = append(ex, rules[i].Exclude...)
			rules[i].Exclude = append(ex, exclude...)
		}
	}
	return Manifest{Rules: rules}
}

// keepFile reports whether a walked file with the given base name is kept.
func (r Rule) keepFile(name string) bool {
	for _, ignored := range ignoredFiles {
		if name == ignored {
			return false
		}
	}
	if len(r.Include) > 0 && !matchAny(r.Include, name) {
		return false
	}
	return !matchAny(r.Exclude, name)
}

// skipDir reports whether a walked directory is skipped. rel is its
// slash-separated path relative to the rule's Path.
func (r Rule) skipDir(name, rel string) bool {
	for _, vcs := range vcsDirs {
		if name == vcs {
			return true
		}
	}
	for _, ex := range r.ExcludeDirs {
		ex = strings.Trim(filepath.ToSlash(ex), "/")
		if rel == ex || strings.HasSuffix(rel, "/"+ex) {
			return true
		}
	}
	return false
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}
