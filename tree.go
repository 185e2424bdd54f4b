package htmlwriter

import "fmt"

// The search and splice functions below operate on an ordered node list so
// that Node children and the document body share one implementation.

// findByID walks nodes depth-first in pre-order and returns the first node
// whose id attribute equals id, or nil.
func findByID(nodes []*Node, id string) *Node {
	for _, n := range nodes {
		if v, ok := n.attrs.Get("id"); ok && v == id {
			return n
		}
		if n.kind == Tree {
			if m := findByID(n.children, id); m != nil {
				return m
			}
		}
	}
	return nil
}

// collect appends every node in the subtree rooted at nodes that satisfies
// match, in pre-order traversal order. It never stops at the first hit:
// all matching descendants are returned.
func collect(nodes []*Node, match func(*Node) bool, out []*Node) []*Node {
	for _, n := range nodes {
		if match(n) {
			out = append(out, n)
		}
		if n.kind == Tree {
			out = collect(n.children, match, out)
		}
	}
	return out
}

// spliceBefore inserts insert immediately preceding before, which must be
// present in list. Fails with ErrNotChild otherwise.
func spliceBefore(list []*Node, before, insert *Node) ([]*Node, error) {
	for i, n := range list {
		if n == before {
			list = append(list, nil)
			copy(list[i+1:], list[i:])
			list[i] = insert
			return list, nil
		}
	}
	return list, fmt.Errorf("%w: insertion point not found", ErrNotChild)
}

// spliceOut removes node from list, closing the gap and preserving the
// order of the remaining entries. Fails with ErrNotChild if node is not a
// member of list.
func spliceOut(list []*Node, node *Node) ([]*Node, error) {
	for i, n := range list {
		if n == node {
			return append(list[:i], list[i+1:]...), nil
		}
	}
	return list, fmt.Errorf("%w: node to remove not found", ErrNotChild)
}
