package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/indent/pkg/errors"
	"github.com/arthur-debert/indent/pkg/style"
	"github.com/arthur-debert/indent/pkg/testutil"
	"github.com/arthur-debert/indent/pkg/tree"
)

func TestLoad_Defaults(t *testing.T) {
	testutil.Isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "  ", cfg.Indent.Base)
	assert.Equal(t, "├── ", cfg.Indent.Branches.Tee)
	assert.Equal(t, "└── ", cfg.Indent.Branches.Elbow)
	assert.Equal(t, tree.StylePlain, cfg.Tree.Style)
	assert.False(t, cfg.Tree.ShowTypes)
	assert.Equal(t, ".", cfg.Tree.RootLabel)
	assert.Equal(t, style.FormatAuto, cfg.Output.Format)
	assert.Equal(t, 0, cfg.Logging.Verbosity)
}

func TestLoad_Layers(t *testing.T) {
	t.Run("xdg toml file", func(t *testing.T) {
		env := testutil.Isolate(t)
		testutil.CreateFile(t, env.ConfigHome, "indent/config.toml", `
[indent]
base = "    "

[tree]
style = "branch"
`)
		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, "    ", cfg.Indent.Base)
		assert.Equal(t, tree.StyleBranch, cfg.Tree.Style)
		assert.Equal(t, "│   ", cfg.Indent.Branches.Pipe, "untouched keys keep their defaults")
	})

	t.Run("explicit yaml file", func(t *testing.T) {
		testutil.Isolate(t)
		path := testutil.CreateFile(t, t.TempDir(), "indent.yaml", "tree:\n  show_types: true\noutput:\n  format: text\n")

		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert.True(t, cfg.Tree.ShowTypes)
		assert.Equal(t, style.FormatText, cfg.Output.Format)
	})

	t.Run("env beats file", func(t *testing.T) {
		env := testutil.Isolate(t)
		testutil.CreateFile(t, env.ConfigHome, "indent/config.toml", "[tree]\nsort_keys = false\n")
		t.Setenv("INDENT_TREE_SORT_KEYS", "true")
		t.Setenv("INDENT_INDENT_BASE", "\t")
		t.Setenv("INDENT_OUTPUT_FORMAT", "term")
		t.Setenv("INDENT_NOT_A_KEY", "ignored")

		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.True(t, cfg.Tree.SortKeys)
		assert.Equal(t, "\t", cfg.Indent.Base)
		assert.Equal(t, style.FormatTerminal, cfg.Output.Format)
	})

	t.Run("overrides beat env", func(t *testing.T) {
		testutil.Isolate(t)
		t.Setenv("INDENT_TREE_STYLE", "branch")

		cfg, err := Load("", map[string]interface{}{
			"tree.style":        "plain",
			"logging.verbosity": 2,
		})
		require.NoError(t, err)
		assert.Equal(t, tree.StylePlain, cfg.Tree.Style)
		assert.Equal(t, 2, cfg.Logging.Verbosity)
	})
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    errors.ErrorCode
	}{
		{"unsupported extension", "config.ini", "base = 1", errors.ErrConfigLoad},
		{"malformed toml", "config.toml", "[indent\nbase =", errors.ErrConfigParse},
		{"unknown style", "config.toml", "[tree]\nstyle = \"fancy\"\n", errors.ErrConfigInvalid},
		{"unknown format", "config.toml", "[output]\nformat = \"html\"\n", errors.ErrConfigInvalid},
		{"newline in base", "config.toml", "[indent]\nbase = \"a\\nb\"\n", errors.ErrConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.Isolate(t)
			path := testutil.CreateFile(t, t.TempDir(), tt.file, tt.content)

			_, err := Load(path, nil)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err), "error: %v", err)
		})
	}

	t.Run("missing explicit file", func(t *testing.T) {
		testutil.Isolate(t)
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"), nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestValidate(t *testing.T) {
	testutil.Isolate(t)
	cfg, err := Load("", nil)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	bad := *cfg
	bad.Logging.Verbosity = -1
	assert.True(t, errors.IsErrorCode(bad.Validate(), errors.ErrConfigInvalid))

	bad = *cfg
	bad.Indent.Branches.Pipe = "|\n"
	err = bad.Validate()
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	assert.Equal(t, "indent.branches.pipe", errors.GetErrorDetails(err)["key"])
}

func TestTreeOptions(t *testing.T) {
	testutil.Isolate(t)
	cfg, err := Load("", map[string]interface{}{
		"tree.style":            "branch",
		"tree.root_label":       "root",
		"indent.branches.tee":   "+-- ",
		"indent.branches.elbow": "`-- ",
	})
	require.NoError(t, err)

	painter := tree.PainterFunc(func(_ tree.Role, s string) string { return s })
	opts := cfg.TreeOptions(painter)

	assert.Equal(t, tree.StyleBranch, opts.Style)
	assert.Equal(t, "root", opts.RootLabel)
	assert.Equal(t, "+-- ", opts.Branches.Tee)
	assert.Equal(t, "`-- ", opts.Branches.Elbow)
	assert.Equal(t, "│   ", opts.Branches.Pipe)
	assert.NotNil(t, opts.Painter)
}

func TestDump(t *testing.T) {
	testutil.Isolate(t)
	cfg, err := Load("", map[string]interface{}{"output.format": "text"})
	require.NoError(t, err)

	out, err := Dump(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "[tree]")
	assert.Contains(t, out, "style = 'plain'")
	assert.Contains(t, out, "format = 'text'")

	// A dump is itself a valid config file
	path := testutil.CreateFile(t, t.TempDir(), "dump.toml", out)
	again, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestEnvKeys(t *testing.T) {
	m := envKeys([]string{"tree.show_types", "indent.branches.tee"})
	assert.Equal(t, "tree.show_types", m["tree_show_types"])
	assert.Equal(t, "indent.branches.tee", m["indent_branches_tee"])
	assert.Empty(t, m["tree_style"])
}
