// Package yamlutil wraps YAML parsing to isolate the external dependency.
// This allows swapping the underlying YAML library without modifying callers.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrNotMapping     = errors.New("yamlutil: document is not a mapping")
	ErrUnclosedBlock  = errors.New("yamlutil: unclosed frontmatter block")
)

// frontmatterDelim opens and closes a frontmatter block on its own line.
var frontmatterDelim = []byte("---")

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

func Marshal(v any) ([]byte, error) {
	result, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalMap decodes a YAML mapping into a fresh map.
// Blank input (only whitespace or comments) yields an empty map, not an error.
func UnmarshalMap(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var raw any
	if err := Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return map[string]any{}, nil
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, raw)
	}
	return m, nil
}

// SplitFrontmatter separates a leading "---" delimited YAML block from the body.
// Returns a nil head when the content has no frontmatter.
// The opening delimiter must be the first line; the closing one must sit on its own line.
func SplitFrontmatter(content []byte) (head, body []byte, err error) {
	content = bytes.TrimPrefix(content, []byte("\ufeff"))

	first, rest, found := cutLine(content)
	if !isDelim(first) {
		return nil, content, nil
	}
	if !found {
		return nil, nil, ErrUnclosedBlock
	}

	offset := 0
	for {
		line, next, more := cutLine(rest[offset:])
		if isDelim(line) {
			return rest[:offset], next, nil
		}
		if !more {
			return nil, nil, ErrUnclosedBlock
		}
		offset = len(rest) - len(next)
	}
}

func isDelim(line []byte) bool {
	return bytes.Equal(bytes.TrimRight(line, " \t"), frontmatterDelim)
}

// cutLine splits off the first line, accepting both \n and \r\n endings.
func cutLine(b []byte) (line, rest []byte, found bool) {
	line, rest, found = bytes.Cut(b, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line, rest, found
}
