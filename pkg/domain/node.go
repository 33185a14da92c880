package domain

import "strings"

// NodeKind discriminates the catalog node union.
type NodeKind string

const (
	// KindInterior is a branching node mapping labels to children.
	KindInterior NodeKind = "interior"
	// KindLeaf is terminal content.
	KindLeaf NodeKind = "leaf"
	// KindIndirection names an externally stored sub-tree or text.
	// It is dereferenced lazily during resolution.
	KindIndirection NodeKind = "indirection"
)

// NoContentText is rendered for leaf boundaries that carry no content,
// e.g. an interior node without children.
const NoContentText = "No content available yet."

// Child pairs a selectable label with its node. Order is display order.
type Child struct {
	Label string
	Node  *Node
}

// Node is one element of the content catalog. Exactly one of the
// kind-specific fields is meaningful, discriminated by Kind.
type Node struct {
	Kind NodeKind

	// Children holds the ordered label → node mapping (KindInterior).
	Children []Child

	// Text is the leaf content (KindLeaf).
	Text string

	// Resource addresses the external sub-resource (KindIndirection).
	Resource string
}

// Interior builds a branching node from ordered children.
func Interior(children ...Child) *Node {
	return &Node{Kind: KindInterior, Children: children}
}

// Leaf builds a terminal content node.
func Leaf(text string) *Node {
	return &Node{Kind: KindLeaf, Text: text}
}

// Indirection builds a node pointing at an external resource.
func Indirection(resource string) *Node {
	return &Node{Kind: KindIndirection, Resource: resource}
}

// Child looks up a child by label, case-insensitively, and returns the
// catalog's canonical entry so callers record the canonical spelling.
func (n *Node) Child(label string) (Child, bool) {
	for _, c := range n.Children {
		if strings.EqualFold(c.Label, label) {
			return c, true
		}
	}
	return Child{}, false
}

// Labels returns the child labels in display order.
func (n *Node) Labels() []string {
	if len(n.Children) == 0 {
		return nil
	}
	labels := make([]string, len(n.Children))
	for i, c := range n.Children {
		labels[i] = c.Label
	}
	return labels
}

// IsLeafBoundary reports whether no further drill-down is possible.
// An interior node without children is a boundary too.
func (n *Node) IsLeafBoundary() bool {
	if n.Kind == KindInterior {
		return len(n.Children) == 0
	}
	return true
}

// LeafText returns the displayable content of a leaf boundary.
func (n *Node) LeafText() string {
	switch n.Kind {
	case KindLeaf:
		if n.Text == "" {
			return NoContentText
		}
		return n.Text
	case KindIndirection:
		return n.Resource
	default:
		return NoContentText
	}
}
