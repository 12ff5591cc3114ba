package bintree

import (
	"github.com/goose-lang/primitive"
	"golang.org/x/exp/constraints"
)

// A node is occupied (hasValue) or empty. An empty node exists only
// transiently inside a single operation; prune removes it on the way back
// up, so callers never observe one. Absent children are nil pointers.
type node[T constraints.Ordered] struct {
	value    T
	hasValue bool
	left     *node[T]
	right    *node[T]
}

// takeValue empties n and returns the value it held.
func (n *node[T]) takeValue() T {
	v := n.value
	var zero T
	n.value = zero
	n.hasValue = false
	return v
}

// splice replaces n's contents with c's, discarding the c wrapper. The
// subtrees under c are adopted, not copied.
func (n *node[T]) splice(c *node[T]) {
	n.value, n.hasValue = c.value, c.hasValue
	n.left, n.right = c.left, c.right
}

func (n *node[T]) isEmpty() bool {
	return !n.hasValue && n.left == nil && n.right == nil
}

// prune drops any child that has become fully empty. Idempotent.
func (n *node[T]) prune() {
	if n.left != nil && n.left.isEmpty() {
		n.left = nil
	}
	if n.right != nil && n.right.isEmpty() {
		n.right = nil
	}
}

func (n *node[T]) insert(v T) (T, error) {
	if !n.hasValue {
		n.value = v
		n.hasValue = true
		return v, nil
	}
	if v < n.value {
		if n.left == nil {
			n.left = &node[T]{}
		}
		return n.left.insert(v)
	}
	if n.value < v {
		if n.right == nil {
			n.right = &node[T]{}
		}
		return n.right.insert(v)
	}
	return n.value, ErrDuplicate
}

func (n *node[T]) contains(v T) bool {
	if n == nil {
		return false
	}
	if v == n.value {
		return true
	}
	if v < n.value {
		return n.left.contains(v)
	}
	return n.right.contains(v)
}

func (n *node[T]) remove(v T) (T, error) {
	if !n.hasValue {
		return v, ErrNotFound
	}
	var out T
	var err error
	switch {
	case v < n.value:
		if n.left == nil {
			return v, ErrNotFound
		}
		out, err = n.left.remove(v)
	case n.value < v:
		if n.right == nil {
			return v, ErrNotFound
		}
		out, err = n.right.remove(v)
	default:
		out = n.takeValue()
		switch {
		case n.left != nil && n.right != nil:
			// The hard case: promote the in-order predecessor. The
			// left subtree is mutated in place and kept; the right
			// subtree is untouched.
			n.value = n.left.collapseRightmost()
			n.hasValue = true
		case n.left != nil:
			n.splice(n.left)
		case n.right != nil:
			n.splice(n.right)
		}
		// With no children, n stays empty and the parent prunes it.
	}
	n.prune()
	return out, err
}

// collapseRightmost removes the largest value in the subtree rooted at n
// and returns it. The vacated node adopts its left child, if any; a vacated
// leaf is left empty for the caller's prune.
func (n *node[T]) collapseRightmost() T {
	primitive.Assert(n.hasValue)
	if n.right != nil {
		v := n.right.collapseRightmost()
		n.prune()
		return v
	}
	v := n.takeValue()
	if n.left != nil {
		n.splice(n.left)
	}
	return v
}
