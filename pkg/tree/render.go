package tree

import (
	"fmt"
	"io"

	"github.com/arthur-debert/indent/pkg/indent"
)

// Style selects the layout of a rendered tree
type Style string

const (
	// StylePlain renders "key: value" lines, nesting by indentation
	StylePlain Style = "plain"
	// StyleBranch renders box-drawing branches in the manner of tree(1)
	StyleBranch Style = "branch"
)

// Role names the part of the output a piece of text plays, for painting
type Role string

const (
	RoleKey    Role = "Key"
	RoleScalar Role = "Scalar"
	RoleNull   Role = "Null"
	RoleType   Role = "Type"
	RoleBranch Role = "Branch"
)

// Painter decorates text before it is written, e.g. with terminal colors.
// Paint must not add newlines.
type Painter interface {
	Paint(role Role, text string) string
}

// PainterFunc adapts a function to a Painter
type PainterFunc func(role Role, text string) string

// Paint calls f
func (f PainterFunc) Paint(role Role, text string) string {
	return f(role, text)
}

// Branches are the strings drawn by StyleBranch
type Branches struct {
	// Tee prefixes every child but the last
	Tee string
	// Elbow prefixes the last child
	Elbow string
	// Pipe indents the subtree of a child that has later siblings
	Pipe string
	// Space indents the subtree of the last child
	Space string
}

// DefaultBranches draws with box-drawing characters
var DefaultBranches = Branches{
	Tee:   "├── ",
	Elbow: "└── ",
	Pipe:  "│   ",
	Space: "    ",
}

// Options control rendering and are carried by the indent session
type Options struct {
	Style     Style
	ShowTypes bool
	SortKeys  bool
	Branches  Branches
	Painter   Painter
	// RootLabel names the root in StyleBranch
	RootLabel string
}

// DefaultOptions returns plain, unpainted options
func DefaultOptions() Options {
	return Options{
		Style:     StylePlain,
		Branches:  DefaultBranches,
		RootLabel: ".",
	}
}

func (o Options) paint(role Role, text string) string {
	if o.Painter == nil || text == "" {
		return text
	}
	return o.Painter.Paint(role, text)
}

func (o Options) children(n *Node) []*Node {
	if o.SortKeys && n.Kind == Mapping {
		return n.sortedChildren()
	}
	return n.Children
}

// scalarText renders a leaf, with its type tag when asked for
func (o Options) scalarText(n *Node) string {
	var text string
	if n.Kind == Null {
		text = o.paint(RoleNull, "null")
	} else {
		text = o.paint(RoleScalar, n.Value)
	}
	if o.ShowTypes && n.Tag != "" {
		text += " " + o.paint(RoleType, "<"+n.Tag+">")
	}
	return text
}

// Render writes root to w, indenting each level with indentStr
func Render(w io.Writer, root *Node, indentStr string, opts Options) error {
	return indent.Render(w, indentStr, opts, root)
}

// Indent renders the node into ind using the session's options
func (n *Node) Indent(ind *indent.Indenter[Options]) error {
	opts := ind.Options()
	if opts.Style == StyleBranch {
		if err := ind.Printf("%s\n", opts.paint(RoleKey, opts.RootLabel)); err != nil {
			return err
		}
		if !n.IsComposite() {
			// a leaf document hangs as the only child of the root label
			return ind.Printf("%s%s\n", opts.paint(RoleBranch, opts.Branches.Elbow), opts.scalarText(n))
		}
		return branches(ind, n)
	}

	switch n.Kind {
	case Mapping:
		return mapping(ind, n)
	case Sequence:
		return sequence(ind, n)
	default:
		return ind.Printf("%s\n", opts.scalarText(n))
	}
}

func mapping(ind *indent.Indenter[Options], n *Node) error {
	opts := ind.Options()
	for _, c := range opts.children(n) {
		if err := ind.Printf("%s:", opts.paint(RoleKey, c.Key)); err != nil {
			return err
		}
		if err := entry(ind, c); err != nil {
			return err
		}
	}
	return nil
}

// entry renders a value after its "key:" label
func entry(ind *indent.Indenter[Options], c *Node) error {
	opts := ind.Options()
	switch {
	case !c.IsComposite():
		return ind.Printf(" %s\n", opts.scalarText(c))
	case c.Kind == Mapping && len(c.Children) == 0:
		return ind.Printf(" {}\n")
	case c.Kind == Sequence && scalarsOnly(c):
		if _, err := ind.WriteString(" "); err != nil {
			return err
		}
		items := make([]string, len(c.Children))
		for i, item := range c.Children {
			items[i] = opts.scalarText(item)
		}
		return indent.DisplaySlice(ind, items)
	default:
		if _, err := ind.WriteString("\n"); err != nil {
			return err
		}
		return nested(ind, c)
	}
}

func sequence(ind *indent.Indenter[Options], n *Node) error {
	for _, c := range n.Children {
		if err := ind.Printf("%s", ind.Options().paint(RoleBranch, "-")); err != nil {
			return err
		}
		if err := entry(ind, c); err != nil {
			return err
		}
	}
	return nil
}

// nested renders the children of c one level deeper
func nested(ind *indent.Indenter[Options], c *Node) error {
	sub := ind.Sub()
	defer sub.Close()
	if c.Kind == Mapping {
		return mapping(sub, c)
	}
	return sequence(sub, c)
}

func branches(ind *indent.Indenter[Options], n *Node) error {
	opts := ind.Options()
	children := opts.children(n)
	for i, c := range children {
		marker, rest := opts.Branches.Tee, opts.Branches.Pipe
		if i == len(children)-1 {
			marker, rest = opts.Branches.Elbow, opts.Branches.Space
		}
		if err := ind.Printf("%s%s\n", opts.paint(RoleBranch, marker), label(opts, n, i, c)); err != nil {
			return err
		}
		if !c.IsComposite() || len(c.Children) == 0 {
			continue
		}
		if err := subtree(ind, rest, c); err != nil {
			return err
		}
	}
	return nil
}

func subtree(ind *indent.Indenter[Options], prefix string, c *Node) error {
	sub := ind.Push(prefix)
	defer sub.Close()
	return branches(sub, c)
}

// label is the text shown next to a branch marker
func label(opts Options, parent *Node, i int, c *Node) string {
	name := c.Key
	if parent.Kind == Sequence {
		name = fmt.Sprintf("[%d]", i)
	}
	if c.IsComposite() {
		return opts.paint(RoleKey, name)
	}
	if parent.Kind == Sequence {
		return opts.scalarText(c)
	}
	return opts.paint(RoleKey, name) + ": " + opts.scalarText(c)
}

func scalarsOnly(n *Node) bool {
	for _, c := range n.Children {
		if c.IsComposite() {
			return false
		}
	}
	return true
}
