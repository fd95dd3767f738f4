package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/indent/pkg/tree"
)

var roles = []tree.Role{tree.RoleKey, tree.RoleScalar, tree.RoleNull, tree.RoleType, tree.RoleBranch}

// Painter colors tree output with lipgloss styles
type Painter struct {
	styles map[tree.Role]lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for w. FormatTerminal forces color
// even when w is not detected as a terminal.
func NewRenderer(w io.Writer, format Format) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if format == FormatTerminal && r.ColorProfile() == termenv.Ascii {
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}

// NewPainter builds a painter for the tree roles from reg
func NewPainter(reg *Registry, renderer *lipgloss.Renderer) *Painter {
	p := &Painter{styles: make(map[tree.Role]lipgloss.Style, len(roles))}
	for _, role := range roles {
		if reg.Has(string(role)) {
			p.styles[role] = reg.Style(renderer, string(role))
		}
	}
	return p
}

// PainterFor returns the painter for a resolved output format, or nil for
// plain text
func PainterFor(reg *Registry, w io.Writer, format Format) tree.Painter {
	if format != FormatTerminal {
		return nil
	}
	return NewPainter(reg, NewRenderer(w, format))
}

// Paint implements tree.Painter
func (p *Painter) Paint(role tree.Role, text string) string {
	s, ok := p.styles[role]
	if !ok {
		return text
	}
	return s.Render(text)
}
