// Package aatree implements the balanced search tree backing the ordered
// containers. Balancing follows the Arne Andersson scheme: every node
// carries a level, horizontal links may only go right, and at most one in a
// row, which bounds the height to O(log n) with only two rotations (skew
// and split) to maintain.
package aatree

import "iter"

type Tree[K, V any] struct {
	root *node[K, V]
	len  int
	cmp  func(a, b K) int
}

func New[K, V any](cmp func(a, b K) int) *Tree[K, V] {
	return &Tree[K, V]{cmp: cmp}
}

func (t *Tree[K, V]) Len() int {
	return t.len
}

// Cmp returns the tree's comparison function.
func (t *Tree[K, V]) Cmp() func(a, b K) int {
	return t.cmp
}

func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.len = 0
}

// Set inserts key with value. If an equivalent key is already present, only
// its value is overwritten - the stored key is kept - and the previous
// value is returned with replaced set.
func (t *Tree[K, V]) Set(key K, value V) (old V, replaced bool) {
	t.root, old, replaced = t.insert(t.root, key, value)
	if !replaced {
		t.len++
	}
	return
}

func (t *Tree[K, V]) insert(n *node[K, V], key K, value V) (_ *node[K, V], old V, replaced bool) {
	if n == nil {
		return &node[K, V]{level: 1, key: key, value: value}, old, false
	}
	switch c := t.cmp(key, n.key); {
	case c < 0:
		n.left, old, replaced = t.insert(n.left, key, value)
	case c > 0:
		n.right, old, replaced = t.insert(n.right, key, value)
	default:
		old, n.value = n.value, value
		return n, old, true
	}
	if replaced {
		return n, old, true
	}
	return split(skew(n)), old, false
}

// Delete removes the entry with an equivalent key, returning its value.
func (t *Tree[K, V]) Delete(key K) (removed V, ok bool) {
	t.root, removed, ok = t.remove(t.root, key)
	if ok {
		t.len--
	}
	return
}

func (t *Tree[K, V]) remove(n *node[K, V], key K) (_ *node[K, V], removed V, ok bool) {
	if n == nil {
		return nil, removed, false
	}
	switch c := t.cmp(key, n.key); {
	case c < 0:
		n.left, removed, ok = t.remove(n.left, key)
	case c > 0:
		n.right, removed, ok = t.remove(n.right, key)
	default:
		removed = n.value
		switch {
		case n.left != nil:
			// replace with the in-order predecessor
			p := n.left
			for p.right != nil {
				p = p.right
			}
			n.key, n.value = p.key, p.value
			n.left, _, _ = t.remove(n.left, p.key)
		case n.right != nil:
			s := n.right
			for s.left != nil {
				s = s.left
			}
			n.key, n.value = s.key, s.value
			n.right, _, _ = t.remove(n.right, s.key)
		default:
			return nil, removed, true
		}
		ok = true
	}
	if !ok {
		return n, removed, false
	}
	return rebalance(n), removed, true
}

func (t *Tree[K, V]) Get(key K) (value V, ok bool) {
	n := t.root
	for n != nil {
		switch c := t.cmp(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.value, true
		}
	}
	return value, false
}

func (t *Tree[K, V]) Has(key K) bool {
	_, ok := t.Get(key)
	return ok
}

func (t *Tree[K, V]) Min() (key K, value V, ok bool) {
	n := t.root
	if n == nil {
		return key, value, false
	}
	for n.left != nil {
		n = n.left
	}
	return n.key, n.value, true
}

func (t *Tree[K, V]) Max() (key K, value V, ok bool) {
	n := t.root
	if n == nil {
		return key, value, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.key, n.value, true
}

func (t *Tree[K, V]) DeleteMin() (key K, value V, ok bool) {
	if key, _, ok = t.Min(); !ok {
		return key, value, false
	}
	value, _ = t.Delete(key)
	return key, value, true
}

func (t *Tree[K, V]) DeleteMax() (key K, value V, ok bool) {
	if key, _, ok = t.Max(); !ok {
		return key, value, false
	}
	value, _ = t.Delete(key)
	return key, value, true
}

// Pred returns the greatest entry whose key sorts before key, or is
// equivalent to it when inclusive is set. key itself need not be present.
func (t *Tree[K, V]) Pred(key K, inclusive bool) (K, V, bool) {
	var best *node[K, V]
	n := t.root
	for n != nil {
		c := t.cmp(key, n.key)
		if c > 0 {
			best = n
			n = n.right
		} else if c == 0 && inclusive {
			best = n
			break
		} else {
			n = n.left
		}
	}
	if best == nil {
		var k K
		var v V
		return k, v, false
	}
	return best.key, best.value, true
}

// Succ returns the smallest entry whose key sorts after key, or is
// equivalent to it when inclusive is set. key itself need not be present.
func (t *Tree[K, V]) Succ(key K, inclusive bool) (K, V, bool) {
	var best *node[K, V]
	n := t.root
	for n != nil {
		c := t.cmp(key, n.key)
		if c < 0 {
			best = n
			n = n.left
		} else if c == 0 && inclusive {
			best = n
			break
		} else {
			n = n.right
		}
	}
	if best == nil {
		var k K
		var v V
		return k, v, false
	}
	return best.key, best.value, true
}

// All iterates the entries in ascending key order. The sequence is
// restartable; mutating the tree while ranging over it is not supported.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.root.ascend(yield)
	}
}

// Backward iterates the entries in descending key order.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.root.descend(yield)
	}
}

// Ascend iterates in ascending order over the window bounded below by lo
// (inclusive) and above by hi (exclusive). A nil bound leaves that side
// open.
func (t *Tree[K, V]) Ascend(lo, hi *K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.root.ascendRange(t.cmp, lo, hi, yield)
	}
}

func (n *node[K, V]) ascend(yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return n.left.ascend(yield) && yield(n.key, n.value) && n.right.ascend(yield)
}

func (n *node[K, V]) descend(yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return n.right.descend(yield) && yield(n.key, n.value) && n.left.descend(yield)
}

func (n *node[K, V]) ascendRange(cmp func(a, b K) int, lo, hi *K, yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if lo != nil && cmp(n.key, *lo) < 0 {
		return n.right.ascendRange(cmp, lo, hi, yield)
	}
	if hi != nil && cmp(n.key, *hi) >= 0 {
		return n.left.ascendRange(cmp, lo, hi, yield)
	}
	return n.left.ascendRange(cmp, lo, hi, yield) &&
		yield(n.key, n.value) &&
		n.right.ascendRange(cmp, lo, hi, yield)
}
