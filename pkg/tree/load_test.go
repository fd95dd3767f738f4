package tree

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/indent/pkg/errors"
)

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("docs", 0755))
	require.NoError(t, afero.WriteFile(fs, "docs/tree.yaml", []byte("a: 1\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "docs/tree.data", []byte(`{"a": 1}`), 0644))
	require.NoError(t, afero.WriteFile(fs, "docs/broken.json", []byte(`{`), 0644))

	t.Run("detects_format", func(t *testing.T) {
		root, err := Load(fs, "docs/tree.yaml", "")
		require.NoError(t, err)
		assert.Equal(t, "1", root.Get("a").Value)
	})

	t.Run("explicit_format", func(t *testing.T) {
		root, err := Load(fs, "docs/tree.data", FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, "1", root.Get("a").Value)
	})

	t.Run("unknown_extension", func(t *testing.T) {
		_, err := Load(fs, "docs/tree.data", "")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInputFormat))
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := Load(fs, "docs/missing.yaml", "")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInputRead))
		assert.Equal(t, "docs/missing.yaml", errors.GetErrorDetails(err)["path"])
	})

	t.Run("directory", func(t *testing.T) {
		_, err := Load(fs, "docs", FormatYAML)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInputRead))
	})

	t.Run("parse_failure", func(t *testing.T) {
		_, err := Load(fs, "docs/broken.json", "")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInputParse))
	})
}

func TestLoadReader(t *testing.T) {
	root, err := LoadReader(strings.NewReader("[servers]\nhost = \"a\"\n"), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, "a", root.Get("servers").Get("host").Value)
}
