package packager

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/havlicek/easybook/internal/fileutil"
)

// collector copies the files selected by rules into the staging directory.
type collector struct {
	p       *Packager
	staging string
	skip    []string // absolute paths never collected
	seen    map[string]bool
}

func (c *collector) addRule(ctx context.Context, rule Rule) error {
	src := filepath.Join(c.p.root, filepath.FromSlash(rule.Path))

	info, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) && rule.Optional {
			return nil
		}
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSourceMissing, rule.Path)
		}
		return fmt.Errorf("reading %s: %w", rule.Path, err)
	}

	if !info.IsDir() {
		return c.addFile(ctx, src)
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if c.skipped(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path == src {
				return nil
			}
			if rule.Flat {
				return filepath.SkipDir
			}
			rel, err := filepath.Rel(src, path)
			if err != nil {
				return err
			}
			if rule.skipDir(d.Name(), filepath.ToSlash(rel)) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !rule.keepFile(d.Name()) {
			return nil
		}
		return c.addFile(ctx, path)
	})
}

// addFile copies src into the staging directory under its path relative to
// the root. Files selected by several rules are added once.
func (c *collector) addFile(ctx context.Context, src string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.seen[src] || c.skipped(src) {
		return nil
	}

	rel, err := filepath.Rel(c.p.root, src)
	if err != nil {
		return fmt.Errorf("failed to get relative path: %w", err)
	}
	if err := fileutil.CopyFile(src, filepath.Join(c.staging, rel)); err != nil {
		return fmt.Errorf("copying %s: %w", filepath.ToSlash(rel), err)
	}

	c.seen[src] = true
	c.p.progress()
	return nil
}

func (c *collector) skipped(path string) bool {
	for _, s := range c.skip {
		if path == s {
			return true
		}
	}
	return false
}
