package tree

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/indent/pkg/errors"
)

// Format is an input document format
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// Formats lists the supported input formats
var Formats = []Format{FormatYAML, FormatTOML, FormatJSON, FormatXML}

// ParseFormat parses a format name; "yml" is accepted for YAML
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	default:
		return "", errors.Newf(errors.ErrInputFormat, "unknown input format: %q", s)
	}
}

// FormatFromPath detects the format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", errors.Newf(errors.ErrInputFormat, "cannot detect the format of %q without an extension", path).
			WithDetail("path", path)
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInputFormat, "cannot detect the format of %q", path).
			WithDetail("path", path)
	}
	return f, nil
}
