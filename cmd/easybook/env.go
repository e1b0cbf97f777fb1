package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/havlicek/easybook/internal/config"
	"github.com/havlicek/easybook/internal/fileutil"
	"github.com/havlicek/easybook/internal/hints"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Config *config.Config // used when no --config is given
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Config: config.DefaultConfig(),
	}
}

// newLogger returns the command logger writing to w. --verbose enables debug
// output and --quiet keeps errors only.
func newLogger(w io.Writer, f commonFlags) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "easybook",
	})
	switch {
	case f.quiet:
		logger.SetLevel(log.ErrorLevel)
	case f.verbose:
		logger.SetLevel(log.DebugLevel)
	default:
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// loadConfig returns the config named by --config, or env.Config.
func loadConfig(name string, env *Environment) (*config.Config, error) {
	if name == "" {
		if env.Config != nil {
			return env.Config, nil
		}
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if errors.Is(err, config.ErrConfigNotFound) {
		var searched []string
		if !fileutil.IsFilePath(name) {
			searched = config.SearchPaths(name)
		}
		return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(searched))
	}
	return cfg, err
}
