// Package stack provides a singly linked LIFO stack.
package stack

import (
	"iter"

	"github.com/goose-lang/std"
)

type node[T any] struct {
	val  T
	next *node[T]
}

// Stack is a last-in-first-out stack backed by a linked list. Not safe for
// concurrent use.
type Stack[T any] struct {
	top *node[T]
	len uint64
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push puts v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.top = &node[T]{val: v, next: s.top}
	s.len = std.SumAssumeNoOverflow(s.len, 1)
}

// Pop removes and returns the top value. The second return is false if the
// stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.top == nil {
		var zero T
		return zero, false
	}
	n := s.top
	s.top = n.next
	s.len = s.len - 1
	return n.val, true
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() uint64 {
	return s.len
}

// Drain returns an iterator that pops values until the stack is empty,
// yielding them newest first. Every value yielded is removed from the
// stack, so draining is destructive; stopping early leaves the remaining
// values in place.
func (s *Stack[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Pop()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
