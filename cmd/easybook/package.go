package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/havlicek/easybook/internal/hints"
	"github.com/havlicek/easybook/internal/packager"
)

func runPackageCmd(ctx context.Context, args []string, env *Environment) error {
	flags, _, err := parsePackageFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	return runPackage(ctx, flags, env)
}

// runPackage builds the distribution archive. CLI flags win over config.
func runPackage(ctx context.Context, flags *packageFlags, env *Environment) error {
	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}

	root := firstNonEmpty(flags.root, cfg.Package.RootDir, ".")
	output := firstNonEmpty(flags.output, cfg.Package.Output)
	version := firstNonEmpty(flags.version, cfg.Package.Version, Version)

	var progress io.Writer = env.Stdout
	if flags.common.quiet {
		progress = io.Discard
	}

	p, err := packager.New(packager.Config{
		RootDir:    root,
		Version:    version,
		Manifest:   packager.DefaultManifest().Extend(cfg.Package.Include, cfg.Package.Exclude),
		StagingDir: flags.staging,
		Progress:   progress,
		Logger:     newLogger(env.Stderr, flags.common),
	})
	if err != nil {
		return err
	}

	if _, err := p.Build(ctx, output); err != nil {
		if errors.Is(err, packager.ErrSourceMissing) {
			return fmt.Errorf("%w%s", err, hints.ForPackageSource())
		}
		return err
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
