// Package sizetree transforms a parsed JSON value into a tree of
// size-annotated nodes. Each node carries two aggregate metrics computed
// bottom-up: a byte weight (how much textual payload the subtree holds) and
// a structural weight (how many elements the subtree contains). The tree is
// immutable after construction.
package sizetree

import (
	"unicode/utf8"

	"github.com/kweiler/jsonheat/pkg/jsonval"
)

// boolWeight is the byte weight assigned to a boolean leaf. Booleans have no
// meaningful textual length, so they count as a flat four bytes ("true").
const boolWeight = 4

// Node is the contribution of one JSON value, and the object key it was
// reached through, to the overall document size.
//
// Children is non-nil (possibly empty) for object nodes, preserving member
// order, and nil for arrays and leaves: an array's elements are folded into
// the array's own metrics and then discarded, with only Elems recording how
// many there were. An array therefore always renders as a single line; the
// structure inside its elements contributes weight but is never shown.
type Node struct {
	// Label is the object key this node was reached through, or the
	// synthetic root label. Empty for array elements.
	Label string

	// Elems is the element count of an array node. Objects and leaves
	// leave it at zero; the cardinality marker in the output is
	// array-specific.
	Elems int

	// ByteSize is the aggregate byte weight: the kind-specific weight of a
	// leaf, or the sum of the children's byte weights.
	ByteSize int

	// ChildSize is the aggregate structural weight: zero for a leaf, or
	// the number of direct children plus the sum of their structural
	// weights.
	ChildSize int

	// KeyFootprint is the total length of all object keys in the subtree,
	// including the key this node was reached through. Computed for
	// reporting completeness; the renderer does not consume it.
	KeyFootprint int

	// Children holds the retained object members, in document order.
	Children []Node
}

// Build maps a JSON value to its size-annotated node. keyLen is the length
// of the object key the value was reached through (0 at the root or through
// an array index) and label is that key, or empty for non-keyed values.
//
// Build is total over the closed set of JSON kinds and has no failure modes.
func Build(v jsonval.Value, keyLen int, label string) Node {
	switch v := v.(type) {
	case jsonval.Null:
		return leaf(keyLen, 0, label)
	case jsonval.Bool:
		return leaf(keyLen, boolWeight, label)
	case jsonval.Number:
		return leaf(keyLen, len(v), label)
	case jsonval.String:
		return leaf(keyLen, utf8.RuneCountInString(string(v)), label)
	case jsonval.Array:
		n := Node{
			Label:        label,
			Elems:        len(v),
			ChildSize:    len(v),
			KeyFootprint: keyLen,
		}
		for _, el := range v {
			c := Build(el, 0, "")
			n.ByteSize += c.ByteSize
			n.ChildSize += c.ChildSize
			n.KeyFootprint += c.KeyFootprint
		}
		// Elements are not retained: Children stays nil.
		return n
	case jsonval.Object:
		n := Node{
			Label:        label,
			ChildSize:    len(v),
			KeyFootprint: keyLen,
			Children:     make([]Node, 0, len(v)),
		}
		for _, m := range v {
			c := Build(m.Value, utf8.RuneCountInString(m.Key), m.Key)
			n.ByteSize += c.ByteSize
			n.ChildSize += c.ChildSize
			n.KeyFootprint += c.KeyFootprint
			n.Children = append(n.Children, c)
		}
		return n
	}
	// Unreachable: jsonval.Value is a closed union.
	return Node{Label: label, KeyFootprint: keyLen}
}

func leaf(keyLen, weight int, label string) Node {
	return Node{
		Label:        label,
		ByteSize:     weight,
		KeyFootprint: keyLen,
	}
}

// MaxDepth returns the maximum depth of the tree rooted at n. A node without
// retained children contributes 0; a node with retained children contributes
// one more than the deepest child, or 1 if it has none.
func MaxDepth(n Node) int {
	if n.Children == nil {
		return 0
	}
	depth := 1
	for _, c := range n.Children {
		if d := 1 + MaxDepth(c); d > depth {
			depth = d
		}
	}
	return depth
}
