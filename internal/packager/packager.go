// Package packager builds the distributable ZIP archive of easybook.
//
// Files selected by a Manifest are first copied into a fresh staging
// directory, keeping their path relative to the root, and the staging
// directory is then compressed into the archive and removed.
package packager

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/klauspost/compress/flate"

	"github.com/havlicek/easybook/internal/fileutil"
)

// Sentinel errors for package building.
var (
	ErrSourceMissing  = errors.New("package source not found")
	ErrEmptyPackage   = errors.New("package has no files")
	ErrInvalidRoot    = errors.New("invalid package root")
	ErrInvalidStaging = errors.New("invalid staging directory")
)

// progressLineWidth is the number of progress dots per line.
const progressLineWidth = 80

// Config configures a Packager.
type Config struct {
	RootDir  string
	Version  string
	Manifest Manifest

	// StagingDir is recreated on every build. Empty uses a new temporary
	// directory.
	StagingDir string

	// Progress receives one dot per file and the build summary. Nil discards.
	Progress io.Writer
	Logger   *log.Logger

	// Level is the deflate level, flate.DefaultCompression when zero.
	Level int
}

// Result describes a built archive.
type Result struct {
	Files int
	Path  string
	Size  int64
}

// Packager builds archives from a manifest.
type Packager struct {
	cfg   Config
	root  string
	files int
}

// New validates the root directory and returns a Packager.
func New(cfg Config) (*Packager, error) {
	root := cfg.RootDir
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	if !fileutil.DirExists(abs) {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidRoot, abs)
	}

	if cfg.Progress == nil {
		cfg.Progress = io.Discard
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Level == 0 {
		cfg.Level = flate.DefaultCompression
	}

	return &Packager{cfg: cfg, root: abs}, nil
}

// DefaultOutput returns the archive path used when Build gets no output.
func DefaultOutput(root, version string) string {
	return filepath.Join(root, fmt.Sprintf("easybook-%s.zip", version))
}

// Build copies the manifest files into the staging directory and compresses
// them into output, replacing any existing archive. An empty output selects
// DefaultOutput. The staging directory is removed in every case.
func (p *Packager) Build(ctx context.Context, output string) (result *Result, err error) {
	if output == "" {
		output = DefaultOutput(p.root, p.cfg.Version)
	}
	output, err = filepath.Abs(output)
	if err != nil {
		return nil, fmt.Errorf("resolving output path: %w", err)
	}

	if err := os.Remove(output); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("removing previous archive: %w", err)
	}

	staging, err := p.prepareStaging()
	if err != nil {
		return nil, err
	}
	defer func() {
		if rmErr := os.RemoveAll(staging); rmErr != nil && err == nil {
			err = fmt.Errorf("removing staging directory: %w", rmErr)
		}
	}()

	p.files = 0
	c := &collector{p: p, staging: staging, skip: []string{staging, output}, seen: make(map[string]bool)}
	for _, rule := range p.cfg.Manifest.Rules {
		if err := c.addRule(ctx, rule); err != nil {
			return nil, err
		}
	}
	if p.files == 0 {
		return nil, ErrEmptyPackage
	}

	if err := p.zipDir(ctx, staging, output); err != nil {
		return nil, err
	}

	info, err := os.Stat(output)
	if err != nil {
		return nil, fmt.Errorf("reading archive: %w", err)
	}

	result = &Result{Files: p.files, Path: output, Size: info.Size()}
	fmt.Fprintf(p.cfg.Progress, "\n %d files added\n\n %s (%.2f MB) package built successfully\n\n",
		result.Files, result.Path, float64(result.Size)/(1024*1024))
	p.cfg.Logger.Info("package built", "files", result.Files, "path", result.Path, "bytes", result.Size)
	return result, nil
}

// prepareStaging recreates the configured staging directory or creates a
// temporary one.
func (p *Packager) prepareStaging() (string, error) {
	if p.cfg.StagingDir == "" {
		dir, err := os.MkdirTemp("", "easybook-package-")
		if err != nil {
			return "", fmt.Errorf("creating staging directory: %w", err)
		}
		return dir, nil
	}

	dir, err := filepath.Abs(p.cfg.StagingDir)
	if err != nil {
		return "", fmt.Errorf("resolving staging directory: %w", err)
	}
	if containsPath(resolveLinks(dir), resolveLinks(p.root)) {
		return "", fmt.Errorf("%w: %s contains the package root", ErrInvalidStaging, dir)
	}
	if err := os.RemoveAll(dir); err != nil {
		return "", fmt.Errorf("removing staging directory: %w", err)
	}
	if err := os.MkdirAll(dir, fileutil.DirPermissions); err != nil {
		return "", fmt.Errorf("creating staging directory: %w", err)
	}
	return dir, nil
}

// containsPath reports whether target is dir or lies below it.
func containsPath(dir, target string) bool {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// resolveLinks returns path with symlinks evaluated, or path itself when it
// does not exist yet.
func resolveLinks(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return path
}

// progress prints one dot per added file, wrapping lines.
func (p *Packager) progress() {
	p.files++
	fmt.Fprint(p.cfg.Progress, ".")
	if p.files%progressLineWidth == 0 {
		fmt.Fprint(p.cfg.Progress, "\n")
	}
}

// zipDir compresses every file under dir into output. Entry names are
// slash-separated paths relative to dir. A failed archive is removed.
func (p *Packager) zipDir(ctx context.Context, dir, output string) (err error) {
	if err := os.MkdirAll(filepath.Dir(output), fileutil.DirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	zipFile, err := os.Create(output) // #nosec G304 -- output chosen by the caller
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}
	defer func() {
		if closeErr := zipFile.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		if err != nil {
			_ = os.Remove(output)
		}
	}()

	zipWriter := zip.NewWriter(zipFile)
	zipWriter.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, p.cfg.Level)
	})
	defer func() {
		if closeErr := zipWriter.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return fmt.Errorf("failed to get relative path: %w", relErr)
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return fmt.Errorf("failed to get file info: %w", infoErr)
		}

		header, headerErr := zip.FileInfoHeader(info)
		if headerErr != nil {
			return fmt.Errorf("failed to create file header: %w", headerErr)
		}
		header.Name = filepath.ToSlash(rel)
		header.Method = zip.Deflate

		writer, writerErr := zipWriter.CreateHeader(header)
		if writerErr != nil {
			return fmt.Errorf("failed to create ZIP entry: %w", writerErr)
		}

		f, openErr := os.Open(path) // #nosec G304 -- staging file
		if openErr != nil {
			return fmt.Errorf("failed to open %s: %w", rel, openErr)
		}
		defer f.Close()

		if _, copyErr := io.Copy(writer, f); copyErr != nil {
			return fmt.Errorf("failed to write %s: %w", rel, copyErr)
		}
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("failed to archive package: %w", walkErr)
	}
	return nil
}
