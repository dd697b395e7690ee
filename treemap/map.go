// Package treemap provides an ordered map backed by a balanced search
// tree. Entries are kept sorted by a pluggable comparison strategy, so in
// addition to the usual map operations it supports ordered iteration,
// minimum/maximum access and predecessor/successor queries, all in
// O(log n). It is not safe to call any method concurrently from different
// goroutines unless all of them are read-only.
package treemap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/ddirect/ordered"
	"github.com/ddirect/ordered/internal/aatree"
)

type Map[K, V any] struct {
	t *aatree.Tree[K, V]
}

// Entry is a key/value pair reported by the positional queries.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// New creates an empty map ordered by the natural order of its keys.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](ordered.Natural[K]())
}

// NewFunc creates an empty map ordered by cmp.
func NewFunc[K, V any](cmp ordered.Compare[K]) *Map[K, V] {
	if cmp == nil {
		panic(fmt.Errorf("treemap: nil comparison function"))
	}
	return &Map[K, V]{t: aatree.New[K, V](cmp)}
}

// Collect builds a naturally ordered map from a key/value sequence. Later
// pairs overwrite the values of earlier ones with an equivalent key.
func Collect[K cmp.Ordered, V any](seq iter.Seq2[K, V]) *Map[K, V] {
	m := New[K, V]()
	for k, v := range seq {
		m.Set(k, v)
	}
	return m
}

func (m *Map[K, V]) Len() int {
	return m.t.Len()
}

func (m *Map[K, V]) Empty() bool {
	return m.t.Len() == 0
}

// Cmp returns the map's comparison function.
func (m *Map[K, V]) Cmp() ordered.Compare[K] {
	return m.t.Cmp()
}

func (m *Map[K, V]) Clear() {
	m.t.Clear()
}

// Set associates value with key. If an equivalent key is already present
// its value is overwritten, the stored key is kept, and the previous value
// is returned with replaced set.
func (m *Map[K, V]) Set(key K, value V) (previous V, replaced bool) {
	return m.t.Set(key, value)
}

// GetOrSet returns the value stored under key, inserting value first if the
// key is absent. loaded reports whether the key was already present.
func (m *Map[K, V]) GetOrSet(key K, value V) (actual V, loaded bool) {
	if actual, loaded = m.t.Get(key); loaded {
		return actual, true
	}
	m.t.Set(key, value)
	return value, false
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.t.Get(key)
}

func (m *Map[K, V]) Exists(key K) bool {
	return m.t.Has(key)
}

// Delete removes the entry with an equivalent key, returning its value.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	return m.t.Delete(key)
}

func (m *Map[K, V]) Min() (Entry[K, V], bool) {
	k, v, ok := m.t.Min()
	return Entry[K, V]{k, v}, ok
}

func (m *Map[K, V]) Max() (Entry[K, V], bool) {
	k, v, ok := m.t.Max()
	return Entry[K, V]{k, v}, ok
}

func (m *Map[K, V]) DeleteMin() (Entry[K, V], bool) {
	k, v, ok := m.t.DeleteMin()
	return Entry[K, V]{k, v}, ok
}

func (m *Map[K, V]) DeleteMax() (Entry[K, V], bool) {
	k, v, ok := m.t.DeleteMax()
	return Entry[K, V]{k, v}, ok
}

// Pred returns the entry with the greatest key sorting before key, or
// equivalent to it when inclusive is set. key itself need not be present.
func (m *Map[K, V]) Pred(key K, inclusive bool) (Entry[K, V], bool) {
	k, v, ok := m.t.Pred(key, inclusive)
	return Entry[K, V]{k, v}, ok
}

// Succ returns the entry with the smallest key sorting after key, or
// equivalent to it when inclusive is set. key itself need not be present.
func (m *Map[K, V]) Succ(key K, inclusive bool) (Entry[K, V], bool) {
	k, v, ok := m.t.Succ(key, inclusive)
	return Entry[K, V]{k, v}, ok
}

// All iterates the entries in ascending key order. The sequence is
// restartable; mutating the map while ranging over it is not supported.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.t.All()
}

// Backward iterates the entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return m.t.Backward()
}

// Range iterates in ascending order over the entries with from <= key < to.
func (m *Map[K, V]) Range(from, to K) iter.Seq2[K, V] {
	return m.t.Ascend(&from, &to)
}

// From iterates in ascending order over the entries with key >= from.
func (m *Map[K, V]) From(from K) iter.Seq2[K, V] {
	return m.t.Ascend(&from, nil)
}

func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.t.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Equal reports whether two maps hold equal entries in the same order.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq. Keys are compared
// with the receiver's comparison function.
func (m *Map[K, V]) EqualFunc(o *Map[K, V], eq func(V, V) bool) bool {
	if m.Len() != o.Len() {
		return false
	}
	cmp := m.t.Cmp()
	next, stop := iter.Pull2(o.All())
	defer stop()
	for k, v := range m.All() {
		ok, ov, _ := next()
		if cmp(k, ok) != 0 || !eq(v, ov) {
			return false
		}
	}
	return true
}

func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("treemap[")
	first := true
	for k, v := range m.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v:%v", k, v)
	}
	b.WriteByte(']')
	return b.String()
}
