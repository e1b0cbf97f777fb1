// Package yamlutil keeps the YAML library behind a small API so the rest of
// the module never imports it directly.
package yamlutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps decoded documents (1MB).
var MaxInputSize = 1 << 20

var (
	ErrEmptyInput    = errors.New("yamlutil: empty document")
	ErrNilTarget     = errors.New("yamlutil: nil decode target")
	ErrInputTooLarge = errors.New("yamlutil: input exceeds maximum size")
	ErrRead          = errors.New("yamlutil: reading document")
)

// DecodeOption tunes a single Decode call.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	strict bool
}

// Strict makes unknown fields an error.
func Strict() DecodeOption {
	return func(c *decodeConfig) { c.strict = true }
}

// Decode parses data into v. Unknown fields are ignored unless Strict is given.
func Decode(data []byte, v any, opts ...DecodeOption) error {
	var cfg decodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	switch {
	case len(data) == 0:
		return ErrEmptyInput
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	case v == nil:
		return ErrNilTarget
	}

	var yopts []yaml.DecodeOption
	if cfg.strict {
		yopts = append(yopts, yaml.Strict())
	}
	if err := yaml.UnmarshalWithOptions(data, v, yopts...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// DecodeFile reads at most MaxInputSize+1 bytes from path and decodes them.
// A missing file is reported with an error matching os.ErrNotExist.
func DecodeFile(path string, v any, opts ...DecodeOption) error {
	f, err := os.Open(path) // #nosec G304 -- caller-provided path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, int64(MaxInputSize)+1))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}
	return Decode(data, v, opts...)
}

// Encode writes v with two-space indentation. Multi-line strings such as
// table markup become literal blocks.
func Encode(v any) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.UseLiteralStyleIfMultiline(true))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}
