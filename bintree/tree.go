// Package bintree provides an unbalanced binary search tree with set
// semantics: insertion, lookup by comparison, and removal covering all
// three deletion shapes (leaf, one child, two children).
package bintree

import (
	"errors"

	"github.com/goose-lang/std"
	"golang.org/x/exp/constraints"
)

var (
	// ErrDuplicate reports an insert of a value already in the tree.
	ErrDuplicate = errors.New("bintree: duplicate value")
	// ErrNotFound reports a remove of a value not in the tree.
	ErrNotFound = errors.New("bintree: value not found")
)

// Tree is an ordered binary search tree over T. Values are unique; a
// duplicate insert fails rather than storing a second copy. The tree does
// not rebalance, so depth depends on insertion order. Not safe for
// concurrent use.
type Tree[T constraints.Ordered] struct {
	root *node[T]
	size uint64
}

// New returns an empty tree.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Insert adds v and returns it. If v is already present, Insert returns
// the stored value with ErrDuplicate and leaves the tree unchanged.
func (t *Tree[T]) Insert(v T) (T, error) {
	if t.root == nil {
		t.root = &node[T]{}
	}
	got, err := t.root.insert(v)
	if err != nil {
		return got, err
	}
	t.size = std.SumAssumeNoOverflow(t.size, 1)
	return got, nil
}

// Remove deletes v and returns the value that was stored at the matched
// node. If v is not present, Remove returns v with ErrNotFound and leaves
// the tree unchanged.
func (t *Tree[T]) Remove(v T) (T, error) {
	if t.root == nil {
		return v, ErrNotFound
	}
	got, err := t.root.remove(v)
	if err != nil {
		return got, err
	}
	if t.root.isEmpty() {
		t.root = nil
	}
	t.size = t.size - 1
	return got, nil
}

// Contains reports whether v is in the tree.
func (t *Tree[T]) Contains(v T) bool {
	return t.root.contains(v)
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() uint64 {
	return t.size
}
