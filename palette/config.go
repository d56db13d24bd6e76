package palette

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/matcolor"
)

// ErrUnknownFormat is returned for palette files that are neither YAML nor JSON.
var ErrUnknownFormat = errors.New("palette: unknown format")

// Format selects the palette file encoding.
type Format uint8

const (
	// FormatYAML is the default palette file format.
	FormatYAML Format = iota
	// FormatJSON encodes the palette as JSON.
	FormatJSON
)

// String returns the format name as used on the command line.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat parses "yaml", "yml" or "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// File is the on-disk palette layout:
//
//	default: "#ffffff"
//	categories:
//	  sk:
//	    sedlova: "#66c2a5"
//
// Hex values must be quoted in YAML, an unquoted '#' starts a comment.
type File struct {
	Default    string `yaml:"default,omitempty" json:"default,omitempty"`
	Categories Table  `yaml:"categories" json:"categories"`
}

// Resolver builds a Resolver from the file's table and default color.
func (f File) Resolver() (*Resolver, error) {
	return NewResolver(f.Categories, WithDefault(f.Default))
}

// Load reads and validates a palette file. The format follows the extension.
func Load(path string) (File, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return File{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("palette: %w", err)
	}
	f, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return File{}, fmt.Errorf("palette: %s: %w", path, err)
	}
	matcolor.Logger().Debug("palette: loaded", "path", path, "categories", len(f.Categories))
	return f, nil
}

// Decode reads a palette, rejecting unknown fields, malformed colors and
// names that collide after normalization.
func Decode(r io.Reader, format Format) (File, error) {
	var f File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return File{}, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return File{}, fmt.Errorf("decode json: %w", err)
		}
	default:
		return File{}, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	if f.Default != "" {
		if _, err := matcolor.ParseHex(f.Default); err != nil {
			return File{}, fmt.Errorf("default: %w", err)
		}
	}
	if err := f.Categories.Validate(); err != nil {
		return File{}, err
	}
	t, err := f.Categories.Normalize()
	if err != nil {
		return File{}, err
	}
	f.Categories = t
	return f, nil
}

// Encode writes f in the given format.
func Encode(w io.Writer, format Format, f File) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("palette: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("palette: encode json: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
}
