package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a theme file format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// ErrUnknownFormat is returned for formats other than json, yaml and toml.
var ErrUnknownFormat = errors.New("theme: unknown format")

// ParseFormat parses a format name, case-insensitively. "yml" means YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatOf infers the format from a file extension. Files without an
// extension are JSON.
func FormatOf(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return JSON, nil
	}
	return ParseFormat(ext)
}

// Encode writes v in the given format. v is usually a Theme; TOML needs
// something that encodes as a table.
func Encode(w io.Writer, v interface{}, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if e := enc.Encode(v); e != nil {
			return e
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(v)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Decode reads a theme in the given format.
func Decode(r io.Reader, f Format) (Theme, error) {
	t := make(Theme)
	var e error
	switch f {
	case JSON:
		e = json.NewDecoder(r).Decode(&t)
	case YAML:
		e = yaml.NewDecoder(r).Decode(&t)
	case TOML:
		e = toml.NewDecoder(r).Decode(&t)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	if e != nil {
		return nil, fmt.Errorf("parse %s theme: %w", f, e)
	}
	return t, nil
}

// ReadFile reads a theme, picking the format from the file extension.
func ReadFile(path string) (Theme, error) {
	f, e := FormatOf(path)
	if e != nil {
		return nil, e
	}

	file, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer file.Close()

	return Decode(file, f)
}

// WriteFile writes a theme, picking the format from the file extension.
// Missing parent directories are created.
func WriteFile(path string, t Theme) error {
	f, e := FormatOf(path)
	if e != nil {
		return e
	}

	if e := os.MkdirAll(filepath.Dir(path), 0755); e != nil {
		return e
	}

	file, e := os.Create(path)
	if e != nil {
		return e
	}
	if e := Encode(file, t, f); e != nil {
		file.Close()
		return e
	}
	return file.Close()
}
