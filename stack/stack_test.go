package stack_test

import (
	"testing"

	"containers/stack"

	"github.com/stretchr/testify/assert"
)

func TestPushPopIntegers(t *testing.T) {
	assert := assert.New(t)

	s := stack.New[int]()
	_, ok := s.Pop()
	assert.False(ok)

	s.Push(5)
	s.Push(11)
	assert.Equal(uint64(2), s.Len())

	v, ok := s.Pop()
	assert.True(ok)
	assert.Equal(11, v)
	v, ok = s.Pop()
	assert.True(ok)
	assert.Equal(5, v)
	_, ok = s.Pop()
	assert.False(ok)
	assert.Equal(uint64(0), s.Len())
}

func TestPushPopPointers(t *testing.T) {
	assert := assert.New(t)

	type item struct {
		a int
	}
	a := item{a: 5}
	b := item{a: 9}

	s := stack.New[*item]()
	_, ok := s.Pop()
	assert.False(ok)

	s.Push(&a)
	s.Push(&b)

	v, ok := s.Pop()
	assert.True(ok)
	assert.Same(&b, v)
	v, ok = s.Pop()
	assert.True(ok)
	assert.Same(&a, v)
	_, ok = s.Pop()
	assert.False(ok)
}

func TestDrain(t *testing.T) {
	assert := assert.New(t)

	s := stack.New[int]()
	for _, v := range []int{1, 2, 3} {
		s.Push(v)
	}

	var got []int
	for v := range s.Drain() {
		got = append(got, v)
	}
	assert.Equal([]int{3, 2, 1}, got)
	assert.Equal(uint64(0), s.Len())

	// A drained stack yields nothing more.
	for range s.Drain() {
		t.Fatal("drained stack yielded a value")
	}
}

func TestDrainStopsEarly(t *testing.T) {
	assert := assert.New(t)

	s := stack.New[int]()
	for _, v := range []int{1, 2, 3} {
		s.Push(v)
	}

	for v := range s.Drain() {
		assert.Equal(3, v)
		break
	}

	// Only the yielded value was consumed.
	assert.Equal(uint64(2), s.Len())
	v, ok := s.Pop()
	assert.True(ok)
	assert.Equal(2, v)
}
