// Package treeset provides an ordered set backed by the same balanced
// search tree as treemap. It is not safe to call any method concurrently
// from different goroutines unless all of them are read-only.
package treeset

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/ddirect/ordered"
	"github.com/ddirect/ordered/internal/aatree"
)

type Set[T any] struct {
	t *aatree.Tree[T, struct{}]
}

// New creates an empty set ordered by the natural order of its elements.
func New[T cmp.Ordered]() *Set[T] {
	return NewFunc[T](ordered.Natural[T]())
}

// NewFunc creates an empty set ordered by cmp.
func NewFunc[T any](cmp ordered.Compare[T]) *Set[T] {
	if cmp == nil {
		panic(fmt.Errorf("treeset: nil comparison function"))
	}
	return &Set[T]{t: aatree.New[T, struct{}](cmp)}
}

// Collect builds a naturally ordered set from a sequence. Duplicates are
// discarded.
func Collect[T cmp.Ordered](seq iter.Seq[T]) *Set[T] {
	s := New[T]()
	for t := range seq {
		s.Insert(t)
	}
	return s
}

func (s *Set[T]) Len() int {
	return s.t.Len()
}

func (s *Set[T]) Empty() bool {
	return s.t.Len() == 0
}

// Cmp returns the set's comparison function.
func (s *Set[T]) Cmp() ordered.Compare[T] {
	return s.t.Cmp()
}

func (s *Set[T]) Clear() {
	s.t.Clear()
}

// Insert adds t to the set and reports whether it was absent. Inserting an
// element equivalent to one already present leaves the stored element
// untouched.
func (s *Set[T]) Insert(t T) bool {
	_, replaced := s.t.Set(t, struct{}{})
	return !replaced
}

func (s *Set[T]) Delete(t T) bool {
	_, ok := s.t.Delete(t)
	return ok
}

func (s *Set[T]) Exists(t T) bool {
	return s.t.Has(t)
}

func (s *Set[T]) Min() (T, bool) {
	t, _, ok := s.t.Min()
	return t, ok
}

func (s *Set[T]) Max() (T, bool) {
	t, _, ok := s.t.Max()
	return t, ok
}

func (s *Set[T]) DeleteMin() (T, bool) {
	t, _, ok := s.t.DeleteMin()
	return t, ok
}

func (s *Set[T]) DeleteMax() (T, bool) {
	t, _, ok := s.t.DeleteMax()
	return t, ok
}

// Pred returns the greatest element sorting before t, or equivalent to it
// when inclusive is set. t itself need not be present.
func (s *Set[T]) Pred(t T, inclusive bool) (T, bool) {
	p, _, ok := s.t.Pred(t, inclusive)
	return p, ok
}

// Succ returns the smallest element sorting after t, or equivalent to it
// when inclusive is set. t itself need not be present.
func (s *Set[T]) Succ(t T, inclusive bool) (T, bool) {
	p, _, ok := s.t.Succ(t, inclusive)
	return p, ok
}

// Values iterates the elements in ascending order. The sequence is
// restartable; mutating the set while ranging over it is not supported.
func (s *Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for t := range s.t.All() {
			if !yield(t) {
				return
			}
		}
	}
}

// Backward iterates the elements in descending order.
func (s *Set[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for t := range s.t.Backward() {
			if !yield(t) {
				return
			}
		}
	}
}

// Range iterates in ascending order over the elements with from <= t < to.
func (s *Set[T]) Range(from, to T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for t := range s.t.Ascend(&from, &to) {
			if !yield(t) {
				return
			}
		}
	}
}

// Equal reports whether both sets hold equivalent elements in the same
// order. Elements are compared with the receiver's comparison function.
func (s *Set[T]) Equal(o *Set[T]) bool {
	if s.Len() != o.Len() {
		return false
	}
	cmp := s.t.Cmp()
	next, stop := iter.Pull(o.Values())
	defer stop()
	for t := range s.Values() {
		ot, _ := next()
		if cmp(t, ot) != 0 {
			return false
		}
	}
	return true
}

func (s *Set[T]) String() string {
	var b strings.Builder
	b.WriteString("treeset[")
	first := true
	for t := range s.Values() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v", t)
	}
	b.WriteByte(']')
	return b.String()
}
