package locsheet

import (
	"fmt"
	"slices"
	"strings"

	"github.com/KimNorgaard/go-locsheet/tree"
)

// PathSeparator joins the keys of nested nodes into a dot-path.
const PathSeparator = "."

// Entry is one flattened translation: a dot-path and its string.
type Entry struct {
	Key   string
	Value string
}

// Flatten lists the leaves of v as dot-path entries in depth-first,
// pre-order sequence. A bare Leaf has no path and yields no entries.
func Flatten(v tree.Value) []Entry {
	return FlattenPrefix(v, "")
}

// FlattenPrefix is like Flatten but prepends prefix to every path.
func FlattenPrefix(v tree.Value, prefix string) []Entry {
	out := []Entry{}

	root, ok := v.(*tree.Node)
	if !ok {
		if leaf, ok := v.(tree.Leaf); ok && prefix != "" {
			out = append(out, Entry{Key: prefix, Value: string(leaf)})
		}
		return out
	}
	if root == nil {
		return out
	}

	// An explicit stack keeps deep trees off the goroutine stack while
	// producing the same order as a recursive walk.
	type frame struct {
		node   *tree.Node
		keys   []string
		next   int
		prefix string
	}
	stack := []frame{{node: root, keys: root.Keys(), prefix: prefix}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.keys) {
			stack = stack[:len(stack)-1]
			continue
		}
		key := top.keys[top.next]
		top.next++
		path := joinPath(top.prefix, key)

		child, _ := top.node.Get(key)
		switch c := child.(type) {
		case tree.Leaf:
			out = append(out, Entry{Key: path, Value: string(c)})
		case *tree.Node:
			if c != nil {
				stack = append(stack, frame{node: c, keys: c.Keys(), prefix: path})
			}
		}
	}
	return out
}

// splitPath breaks a dot-path into its segments. It reports false when the
// path is empty or any segment is.
func splitPath(key string) ([]string, bool) {
	segments := strings.Split(key, PathSeparator)
	return segments, !slices.Contains(segments, "")
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + PathSeparator + key
}

// Unflatten rebuilds a tree from dot-path entries, creating intermediate
// nodes as needed. Entries are applied in order; a repeated path takes the
// last value.
//
// When a path runs through an existing leaf, or a leaf is set where a node
// already is, the later entry replaces the earlier one. With StrictPaths
// this fails with ErrPathConflict instead. An empty key, or one with an
// empty segment such as "a." or "a..b", fails with ErrInvalidKey.
func Unflatten(entries []Entry, opts ...Option) (*tree.Node, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	root := tree.NewNode()
	for n, e := range entries {
		segments, ok := splitPath(e.Key)
		if !ok {
			return nil, fmt.Errorf("%w: %q in entry %d has an empty path segment", ErrInvalidKey, e.Key, n+1)
		}
		cur := root
		for i, seg := range segments[:len(segments)-1] {
			child, exists := cur.Get(seg)
			next, isNode := child.(*tree.Node)
			if !isNode {
				if exists && o.strictPaths {
					return nil, fmt.Errorf("%w: %q has a value, so %q cannot be nested under it",
						ErrPathConflict, strings.Join(segments[:i+1], PathSeparator), e.Key)
				}
				next = tree.NewNode()
				cur.Set(seg, next)
			}
			cur = next
		}

		last := segments[len(segments)-1]
		if existing, ok := cur.Get(last); ok && o.strictPaths {
			if _, isNode := existing.(*tree.Node); isNode {
				return nil, fmt.Errorf("%w: %q groups other keys and cannot also have a value",
					ErrPathConflict, e.Key)
			}
		}
		cur.Set(last, tree.Leaf(e.Value))
	}
	return root, nil
}
