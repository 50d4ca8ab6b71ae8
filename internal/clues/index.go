// Package clues keeps the clues collected during an exploration in a binary
// search tree ordered by clue text.
package clues

import "iter"

type node struct {
	text  string
	left  *node
	right *node
}

// Index is an unbalanced binary search tree of unique clue texts. The zero
// value is an empty index ready to use. It is not safe for concurrent use.
type Index struct {
	root *node
	size int
}

// Insert adds text if it is not already present and reports whether it was
// added. Inserting a known text leaves the index unchanged.
func (x *Index) Insert(text string) bool {
	var added bool
	x.root, added = insert(x.root, text)
	if added {
		x.size++
	}
	return added
}

func insert(n *node, text string) (*node, bool) {
	if n == nil {
		return &node{text: text}, true
	}
	var added bool
	switch {
	case text < n.text:
		n.left, added = insert(n.left, text)
	case text > n.text:
		n.right, added = insert(n.right, text)
	}
	return n, added
}

func (x *Index) Contains(text string) bool {
	n := x.root
	for n != nil {
		switch {
		case text < n.text:
			n = n.left
		case text > n.text:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Len returns the number of distinct clues stored.
func (x *Index) Len() int {
	return x.size
}

// All yields the clues in ascending order. The sequence is lazy and can be
// ranged over any number of times.
func (x *Index) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		var stack []*node
		n := x.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.text) {
				return
			}
			n = n.right
		}
	}
}

// Release empties the index, unlinking nodes in post-order, and returns the
// number of nodes released.
func (x *Index) Release() int {
	released := release(x.root)
	x.root = nil
	x.size = 0
	return released
}

func release(n *node) int {
	if n == nil {
		return 0
	}
	released := release(n.left) + release(n.right)
	n.left = nil
	n.right = nil
	return released + 1
}
