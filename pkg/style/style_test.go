package style_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/indent/pkg/errors"
	"github.com/arthur-debert/indent/pkg/style"
	"github.com/arthur-debert/indent/pkg/tree"
)

func colorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	return r
}

func TestDefaultRegistry(t *testing.T) {
	reg := style.Default()

	for _, name := range []string{"Key", "Scalar", "Null", "Type", "Branch", "Error", "Header", "Topic"} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, reg.Has(name), "style %s should be defined", name)
		})
	}
	assert.Contains(t, reg.Names(), "Key")

	p := style.NewPainter(reg, colorRenderer())
	assert.NotEqual(t, "null", p.Paint(tree.RoleNull, "null"), "null values are painted")
}

func TestRegistry_Style(t *testing.T) {
	reg := style.Default()
	r := colorRenderer()

	rendered := reg.Style(r, "Error").Render("boom")
	assert.Contains(t, rendered, "boom")
	assert.Contains(t, rendered, "\x1b[", "colors should be applied with a TrueColor profile")

	assert.Equal(t, "plain", reg.Style(r, "DoesNotExist").Render("plain"))
}

func TestLoad(t *testing.T) {
	t.Run("custom_styles", func(t *testing.T) {
		reg, err := style.Load([]byte(`
colors:
  pink: {light: "#FF00FF", dark: "#FF87FF"}
styles:
  Key: {bold: true, foreground: pink}
`))
		require.NoError(t, err)
		assert.Equal(t, []string{"Key"}, reg.Names())
	})

	t.Run("undefined_color", func(t *testing.T) {
		_, err := style.Load([]byte("styles:\n  Key: {foreground: nowhere}\n"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrStyleLoad))
	})

	t.Run("null_style_name", func(t *testing.T) {
		_, err := style.Load([]byte("styles:\n  Null: {italic: true}\n"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrStyleLoad))

		reg, err := style.Load([]byte("styles:\n  \"Null\": {italic: true}\n"))
		require.NoError(t, err)
		assert.True(t, reg.Has("Null"))
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		_, err := style.Load([]byte("styles: [unclosed"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrStyleLoad))
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := style.LoadFile(t.TempDir() + "/missing.yaml")
		assert.True(t, errors.IsErrorCode(err, errors.ErrStyleLoad))
	})
}

func TestPainter(t *testing.T) {
	p := style.NewPainter(style.Default(), colorRenderer())

	key := p.Paint(tree.RoleKey, "name")
	assert.Contains(t, key, "name")
	assert.True(t, strings.HasPrefix(key, "\x1b["))

	unknown := p.Paint(tree.Role("Other"), "text")
	assert.Equal(t, "text", unknown)
}

func TestPainterFor(t *testing.T) {
	var buf bytes.Buffer
	assert.Nil(t, style.PainterFor(style.Default(), &buf, style.FormatText))
	assert.NotNil(t, style.PainterFor(style.Default(), &buf, style.FormatTerminal))
}

func TestPaintedTreeKeepsLayout(t *testing.T) {
	root, err := tree.Parse([]byte("a:\n  b: 1\n"), tree.FormatYAML)
	require.NoError(t, err)

	opts := tree.DefaultOptions()
	opts.Painter = style.NewPainter(style.Default(), colorRenderer())

	var buf bytes.Buffer
	require.NoError(t, tree.Render(&buf, root, "  ", opts))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "  \x1b["), "indentation stays outside the painted text")
}

func TestFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    style.Format
		wantErr bool
	}{
		{"auto", style.FormatAuto, false},
		{"", style.FormatAuto, false},
		{"term", style.FormatTerminal, false},
		{"terminal", style.FormatTerminal, false},
		{"TEXT", style.FormatText, false},
		{"plain", style.FormatText, false},
		{"html", style.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := style.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "term", style.FormatTerminal.String())
	assert.Equal(t, "unknown", style.Format(42).String())
}

func TestResolve(t *testing.T) {
	assert.Equal(t, style.FormatTerminal, style.Resolve(style.FormatTerminal, nil))

	t.Setenv("NO_COLOR", "1")
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, style.FormatText, style.Resolve(style.FormatAuto, f))
}
