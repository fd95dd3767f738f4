// Package style defines the visual styling for indent's terminal output.
//
// Styles use semantic names and adaptive colors that adjust to light and
// dark terminal themes. The names of the tree roles (Key, Scalar, Null,
// Type, Branch) double as style names, so a Painter can map one to the
// other directly.
package style

import (
	_ "embed"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/indent/pkg/errors"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to style definitions
type Registry struct {
	colors map[string]lipgloss.AdaptiveColor
	defs   map[string]StyleDef
}

//go:embed styles.yaml
var embeddedStyles []byte

// Default returns the registry built from the embedded styles, or an empty
// registry (every style plain) if they cannot be parsed
func Default() *Registry {
	r, err := Load(embeddedStyles)
	if err != nil {
		return &Registry{colors: map[string]lipgloss.AdaptiveColor{}, defs: map[string]StyleDef{}}
	}
	return r
}

// LoadFile loads a style registry from a YAML file
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStyleLoad, "failed to read styles file %s", path)
	}
	return Load(data)
}

// Load parses a YAML style configuration
func Load(data []byte) (*Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, errors.ErrStyleLoad, "failed to parse styles data")
	}

	r := &Registry{
		colors: make(map[string]lipgloss.AdaptiveColor, len(config.Colors)),
		defs:   make(map[string]StyleDef, len(config.Styles)),
	}
	for name, def := range config.Colors {
		r.colors[name] = lipgloss.AdaptiveColor{
			Light: def.Light,
			Dark:  def.Dark,
		}
	}
	for name, def := range config.Styles {
		if name == "" {
			return nil, errors.New(errors.ErrStyleLoad, `empty style name; quote names YAML reads as null, e.g. "Null"`)
		}
		if def.Foreground != "" {
			if _, ok := r.colors[def.Foreground]; !ok {
				return nil, errors.Newf(errors.ErrStyleLoad, "style %s uses undefined color %s", name, def.Foreground)
			}
		}
		r.defs[name] = def
	}
	return r, nil
}

// Names returns the defined style names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a style is defined
func (r *Registry) Has(name string) bool {
	_, ok := r.defs[name]
	return ok
}

// Style builds the named style for a renderer; undefined names yield a
// plain style
func (r *Registry) Style(renderer *lipgloss.Renderer, name string) lipgloss.Style {
	style := renderer.NewStyle()
	def, ok := r.defs[name]
	if !ok {
		return style
	}

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if color, ok := r.colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := r.colors[def.Background]; ok {
		style = style.Background(color)
	}
	return style
}
