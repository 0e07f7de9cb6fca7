// Package tree holds the nested translation model shared by the parser, the
// serializer and the flat-table codecs.
//
// A Value is either a Leaf (a translation string) or a *Node (an ordered
// mapping of keys to Values). Insertion order of a Node is significant and is
// preserved by every transformation in locsheet.
package tree

import "iter"

// Value is a Leaf or a *Node. No other implementations exist.
type Value interface {
	value()
}

// Leaf is a terminal translation string.
type Leaf string

func (Leaf) value() {}

// Node is an ordered mapping from keys to Values.
// The zero value is an empty node ready to use.
type Node struct {
	keys     []string
	children map[string]Value
}

func (*Node) value() {}

// NewNode returns an empty node.
func NewNode() *Node {
	return &Node{}
}

// Set stores v under key. A key that is already present keeps its position.
func (n *Node) Set(key string, v Value) {
	if n.children == nil {
		n.children = make(map[string]Value)
	}
	if _, ok := n.children[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.children[key] = v
}

// Get returns the value stored under key.
func (n *Node) Get(key string) (Value, bool) {
	v, ok := n.children[key]
	return v, ok
}

// Delete removes key from the node.
func (n *Node) Delete(key string) {
	if _, ok := n.children[key]; !ok {
		return
	}
	delete(n.children, key)
	for i, k := range n.keys {
		if k == key {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (n *Node) Len() int {
	return len(n.keys)
}

// Keys returns the keys in insertion order.
func (n *Node) Keys() []string {
	keys := make([]string, len(n.keys))
	copy(keys, n.keys)
	return keys
}

// All iterates over the entries in insertion order.
func (n *Node) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range n.keys {
			if !yield(k, n.children[k]) {
				return
			}
		}
	}
}

// Equal reports whether a and b are structurally equal. Sibling order is
// part of the structure.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Leaf:
		y, ok := b.(Leaf)
		return ok && x == y
	case *Node:
		y, ok := b.(*Node)
		if !ok || x == nil || y == nil {
			return ok && x == y
		}
		if len(x.keys) != len(y.keys) {
			return false
		}
		for i, k := range x.keys {
			if y.keys[i] != k {
				return false
			}
			if !Equal(x.children[k], y.children[k]) {
				return false
			}
		}
		return true
	}
	return false
}

// Depth returns the nesting depth of v. A Leaf has depth 0 and a Node one
// more than its deepest child.
func Depth(v Value) int {
	n, ok := v.(*Node)
	if !ok || n == nil {
		return 0
	}
	depth := 1
	for _, child := range n.All() {
		if d := Depth(child) + 1; d > depth {
			depth = d
		}
	}
	return depth
}
