// Package config loads the settings of the indent command.
//
// Settings are layered, later layers winning:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the user config file, either given explicitly or found at
//     $XDG_CONFIG_HOME/indent/config.{toml,yaml,yml}
//  3. INDENT_<SECTION>_<KEY> environment variables
//  4. overrides passed by the caller, usually from command line flags
package config

import (
	"strings"

	"github.com/arthur-debert/indent/pkg/errors"
	"github.com/arthur-debert/indent/pkg/style"
	"github.com/arthur-debert/indent/pkg/tree"
)

// Config is the effective configuration
type Config struct {
	Indent  Indent  `koanf:"indent" toml:"indent"`
	Tree    Tree    `koanf:"tree" toml:"tree"`
	Output  Output  `koanf:"output" toml:"output"`
	Logging Logging `koanf:"logging" toml:"logging"`
}

// Indent holds the indentation strings
type Indent struct {
	Base     string   `koanf:"base" toml:"base"`
	Branches Branches `koanf:"branches" toml:"branches"`
}

// Branches are the strings drawn by the branch tree style
type Branches struct {
	Tee   string `koanf:"tee" toml:"tee"`
	Elbow string `koanf:"elbow" toml:"elbow"`
	Pipe  string `koanf:"pipe" toml:"pipe"`
	Space string `koanf:"space" toml:"space"`
}

// Tree holds the tree rendering settings
type Tree struct {
	Style     tree.Style `koanf:"style" toml:"style"`
	ShowTypes bool       `koanf:"show_types" toml:"show_types"`
	SortKeys  bool       `koanf:"sort_keys" toml:"sort_keys"`
	RootLabel string     `koanf:"root_label" toml:"root_label"`
}

// Output holds the presentation settings
type Output struct {
	Format style.Format `koanf:"format" toml:"format"`
	// Styles is an optional YAML file replacing the built-in styles
	Styles string `koanf:"styles" toml:"styles"`
}

// Logging holds the logging settings
type Logging struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// Validate checks the values that cannot be caught while decoding
func (c *Config) Validate() error {
	strs := map[string]string{
		"indent.base":           c.Indent.Base,
		"indent.branches.tee":   c.Indent.Branches.Tee,
		"indent.branches.elbow": c.Indent.Branches.Elbow,
		"indent.branches.pipe":  c.Indent.Branches.Pipe,
		"indent.branches.space": c.Indent.Branches.Space,
		"tree.root_label":       c.Tree.RootLabel,
	}
	for key, s := range strs {
		if strings.Contains(s, "\n") {
			return errors.Newf(errors.ErrConfigInvalid, "%s must not contain a newline", key).
				WithDetail("key", key)
		}
	}

	switch c.Tree.Style {
	case tree.StylePlain, tree.StyleBranch:
	default:
		return errors.Newf(errors.ErrConfigInvalid, "unknown tree style %q", c.Tree.Style).
			WithDetail("key", "tree.style")
	}

	if c.Logging.Verbosity < 0 {
		return errors.New(errors.ErrConfigInvalid, "logging.verbosity must not be negative").
			WithDetail("key", "logging.verbosity")
	}
	return nil
}

// TreeOptions builds the tree rendering options described by the config
func (c *Config) TreeOptions(painter tree.Painter) tree.Options {
	opts := tree.DefaultOptions()
	opts.Style = c.Tree.Style
	opts.ShowTypes = c.Tree.ShowTypes
	opts.SortKeys = c.Tree.SortKeys
	opts.RootLabel = c.Tree.RootLabel
	opts.Branches = tree.Branches{
		Tee:   c.Indent.Branches.Tee,
		Elbow: c.Indent.Branches.Elbow,
		Pipe:  c.Indent.Branches.Pipe,
		Space: c.Indent.Branches.Space,
	}
	opts.Painter = painter
	return opts
}
