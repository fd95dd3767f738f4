// Package tree loads structured documents (YAML, TOML, JSON, XML) into a
// uniform node tree and renders that tree through an indent session.
package tree

import "sort"

// Kind classifies a node
type Kind int

const (
	// Null is an absent or empty value
	Null Kind = iota
	// Scalar is a leaf value with a textual form
	Scalar
	// Mapping is a keyed collection; children carry their keys
	Mapping
	// Sequence is an ordered collection; children have no keys
	Sequence
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Scalar:
		return "scalar"
	case Mapping:
		return "mapping"
	case Sequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Node is one value of a document
type Node struct {
	// Key is the mapping key this node is stored under, empty otherwise
	Key  string
	Kind Kind
	// Value is the text of a scalar
	Value string
	// Tag names the source type of a scalar (str, int, float, bool, ...)
	Tag      string
	Children []*Node
}

// IsComposite reports whether the node can hold children
func (n *Node) IsComposite() bool {
	return n.Kind == Mapping || n.Kind == Sequence
}

// Get returns the child stored under key, or nil
func (n *Node) Get(key string) *Node {
	for _, c := range n.Children {
		if c.Key == key {
			return c
		}
	}
	return nil
}

// Count returns the number of nodes in the subtree rooted at n
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// sortedChildren returns the children ordered by key, leaving n untouched
func (n *Node) sortedChildren() []*Node {
	out := make([]*Node, len(n.Children))
	copy(out, n.Children)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
