package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/havlicek/easybook/internal/config"
)

// newTestEnv returns an environment writing to buffers.
func newTestEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
		Stdout: &stdout,
		Stderr: &stderr,
		Config: config.DefaultConfig(),
	}
	return env, &stdout, &stderr
}

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no command shows usage",
			args:         []string{"easybook"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: easybook"},
		},
		{
			name:         "version command exits 0",
			args:         []string{"easybook", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"easybook dev"},
		},
		{
			name:         "help command exits 0",
			args:         []string{"easybook", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: easybook", "Commands:"},
		},
		{
			name:         "help publish shows publish help",
			args:         []string{"easybook", "help", "publish"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: easybook publish", "--list-of-tables"},
		},
		{
			name:         "help package shows package help",
			args:         []string{"easybook", "help", "package"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: easybook package"},
		},
		{
			name:         "unknown command exits with ExitUsage",
			args:         []string{"easybook", "unknown"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Unknown command: unknown"},
		},
		{
			name:         "publish without input",
			args:         []string{"easybook", "publish"},
			wantCode:     ExitIO,
			wantInStderr: []string{"no input specified"},
		},
		{
			name:         "publish missing file",
			args:         []string{"easybook", "publish", filepath.Join(os.TempDir(), "easybook-missing.md")},
			wantCode:     ExitIO,
		},
		{
			name:         "publish bad flag",
			args:         []string{"easybook", "publish", "--nope"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"invalid usage"},
		},
		{
			name:         "publish help flag",
			args:         []string{"easybook", "publish", "--help"},
			wantCode:     ExitSuccess,
			wantInStderr: []string{"Usage: easybook publish"},
		},
		{
			name:         "publish too many workers",
			args:         []string{"easybook", "publish", "-w", "99", "book"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"invalid worker count"},
		},
		{
			name:         "publish unknown label kind",
			args:         []string{"easybook", "publish", "--labels", "poem", "book"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"invalid label kind", "hint: supported kinds"},
		},
		{
			name:         "missing config",
			args:         []string{"easybook", "publish", "-c", "no-such-config-name", "book"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"config file not found", "hint:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv()
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout)
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr)
				}
			}
		})
	}
}

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"easybook", "publish", "-v"}, true},
		{[]string{"easybook", "publish", "--verbose", "book"}, true},
		{[]string{"easybook", "publish", "book"}, false},
		{[]string{"easybook", "publish", "--", "-v"}, false},
	}
	for _, tt := range tests {
		if got := hasVerboseFlag(tt.args); got != tt.want {
			t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}
