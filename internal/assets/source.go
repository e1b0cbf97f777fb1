package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed templates
var embedded embed.FS

// Source reads template sets from templates/{name}/ inside a filesystem.
type Source struct {
	label string
	fsys  fs.FS
	root  string // real directory on disk, empty for embedded sources
}

// Embedded returns the source compiled into the binary.
func Embedded() *Source {
	return &Source{label: "embedded", fsys: embedded}
}

// Dir returns a source rooted at basePath. The path must be a readable
// directory; symlinks are resolved so set directories can be checked for
// containment.
func Dir(basePath string) (*Source, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	root, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	info, err := os.Stat(root)
	switch {
	case os.IsNotExist(err):
		return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, root)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, root)
	}
	if _, err := os.ReadDir(root); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &Source{label: root, fsys: os.DirFS(root), root: root}, nil
}

// String returns "embedded" or the source directory.
func (s *Source) String() string { return s.label }

// LoadTemplateSet loads a set that must be complete in this source.
func (s *Source) LoadTemplateSet(name string) (*TemplateSet, error) {
	files, found, err := s.readSet(name)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}
	return buildSet(name, files)
}

// readSet returns the files of the set present in this source. found is
// false when the set directory does not exist.
func (s *Source) readSet(name string) (files map[string]string, found bool, err error) {
	if err := checkSetName(name); err != nil {
		return nil, false, err
	}

	dir := path.Join("templates", name)
	info, err := fs.Stat(s.fsys, dir)
	if err != nil || !info.IsDir() {
		return nil, false, nil
	}
	if err := s.contain(dir); err != nil {
		return nil, false, err
	}

	files = make(map[string]string, len(setFiles))
	for _, f := range setFiles {
		content, err := fs.ReadFile(s.fsys, path.Join(dir, f))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, false, fmt.Errorf("%w: reading %s: %v", ErrAssetRead, f, err)
		}
		files[f] = string(content)
	}
	return files, true, nil
}

// contain checks that dir still resolves under the source root.
func (s *Source) contain(dir string) error {
	if s.root == "" {
		return nil
	}
	resolved, err := filepath.EvalSymlinks(filepath.Join(s.root, filepath.FromSlash(dir)))
	if err != nil {
		return fmt.Errorf("%w: cannot resolve %s", ErrPathTraversal, dir)
	}
	// Separator suffix prevents /base/path matching /base/pathevil
	if !strings.HasPrefix(resolved+string(filepath.Separator), s.root+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s escapes %s", ErrPathTraversal, dir, s.root)
	}
	return nil
}

var _ Loader = (*Source)(nil)
