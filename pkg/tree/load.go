package tree

import (
	"io"

	"github.com/spf13/afero"

	"github.com/arthur-debert/indent/pkg/errors"
	"github.com/arthur-debert/indent/pkg/logging"
)

// Load reads and parses the document at path on fsys. An empty format is
// detected from the file extension.
func Load(fsys afero.Fs, path string, format Format) (*Node, error) {
	logger := logging.GetLogger("tree")

	if format == "" {
		detected, err := FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	info, err := fsys.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputRead, "cannot read %s", path).WithDetail("path", path)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrInputRead, "%s is a directory", path).WithDetail("path", path)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputRead, "cannot read %s", path).WithDetail("path", path)
	}
	logger.Debug().Str("path", path).Str("format", string(format)).Int("bytes", len(data)).Msg("Loaded document")

	root, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputParse, "cannot parse %s", path).WithDetail("path", path)
	}
	return root, nil
}

// LoadReader parses a document read from r, such as standard input
func LoadReader(r io.Reader, format Format) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInputRead, "cannot read input")
	}
	return Parse(data, format)
}
