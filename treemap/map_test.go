package treemap_test

import (
	"maps"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/ddirect/ordered"
	"github.com/ddirect/ordered/treemap"
	"github.com/stretchr/testify/assert"
)

func Test_Basic(t *testing.T) {
	m := treemap.New[string, int]()

	assert.True(t, m.Empty())
	assert.False(t, m.Exists("a"))

	_, replaced := m.Set("a", 1)
	assert.False(t, replaced)
	prev, replaced := m.Set("a", 2)
	assert.True(t, replaced)
	assert.Equal(t, 1, prev)

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	actual, loaded := m.GetOrSet("a", 99)
	assert.True(t, loaded)
	assert.Equal(t, 2, actual)

	actual, loaded = m.GetOrSet("b", 3)
	assert.False(t, loaded)
	assert.Equal(t, 3, actual)
	assert.Equal(t, 2, m.Len())

	v, ok = m.Delete("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = m.Delete("a")
	assert.False(t, ok)

	m.Clear()
	assert.True(t, m.Empty())
}

func Test_Order(t *testing.T) {
	const n = 1000

	m := treemap.New[uint32, uint64]()
	ref := make(map[uint32]uint64)

	for range n {
		k := rand.Uint32N(n / 2)
		v := rand.Uint64()
		m.Set(k, v)
		ref[k] = v
	}
	assert.Equal(t, len(ref), m.Len())

	want := slices.Sorted(maps.Keys(ref))
	assert.Equal(t, want, slices.Collect(m.Keys()))

	for k, v := range m.All() {
		assert.Equal(t, ref[k], v)
	}

	var back []uint32
	for k := range m.Backward() {
		back = append(back, k)
	}
	slices.Reverse(back)
	assert.Equal(t, slices.Collect(m.Keys()), back)
}

func Test_ReversedOrder(t *testing.T) {
	m := treemap.NewFunc[int, string](ordered.Natural[int]().Reversed())

	m.Set(2, "b")
	m.Set(1, "a")
	m.Set(3, "c")

	assert.Equal(t, []int{3, 2, 1}, slices.Collect(m.Keys()))

	e, ok := m.Min()
	assert.True(t, ok)
	assert.Equal(t, 3, e.Key)
}

func Test_MinMax(t *testing.T) {
	m := treemap.New[int, string]()

	_, ok := m.Min()
	assert.False(t, ok)
	_, ok = m.Max()
	assert.False(t, ok)

	m.Set(2, "b")
	m.Set(1, "a")
	m.Set(3, "c")

	e, ok := m.Min()
	assert.True(t, ok)
	assert.Equal(t, treemap.Entry[int, string]{1, "a"}, e)

	e, ok = m.Max()
	assert.True(t, ok)
	assert.Equal(t, treemap.Entry[int, string]{3, "c"}, e)

	e, ok = m.DeleteMin()
	assert.True(t, ok)
	assert.Equal(t, 1, e.Key)
	e, ok = m.DeleteMax()
	assert.True(t, ok)
	assert.Equal(t, 3, e.Key)
	assert.Equal(t, 1, m.Len())
}

func Test_PredSucc(t *testing.T) {
	m := treemap.New[int, string]()
	m.Set(2, "b")
	m.Set(1, "a")
	m.Set(3, "c")

	_, ok := m.Pred(1, false)
	assert.False(t, ok)

	e, ok := m.Pred(3, false)
	assert.True(t, ok)
	assert.Equal(t, treemap.Entry[int, string]{2, "b"}, e)

	e, ok = m.Pred(3, true)
	assert.True(t, ok)
	assert.Equal(t, 3, e.Key)

	e, ok = m.Succ(0, false)
	assert.True(t, ok)
	assert.Equal(t, 1, e.Key)

	_, ok = m.Succ(3, false)
	assert.False(t, ok)

	// keys absent from the map work as query points
	e, ok = m.Succ(2, true)
	assert.True(t, ok)
	assert.Equal(t, 2, e.Key)
	m.Delete(2)
	e, ok = m.Succ(2, true)
	assert.True(t, ok)
	assert.Equal(t, 3, e.Key)
}

func Test_Range(t *testing.T) {
	m := treemap.New[int, int]()
	for _, k := range []int{10, 30, 20, 50, 40} {
		m.Set(k, k)
	}

	keys := func(seq func(func(int, int) bool)) (s []int) {
		for k := range seq {
			s = append(s, k)
		}
		return
	}

	assert.Equal(t, []int{20, 30, 40}, keys(m.Range(20, 50)))
	assert.Equal(t, []int{20, 30, 40}, keys(m.Range(15, 45)))
	assert.Equal(t, []int{30, 40, 50}, keys(m.From(25)))
	assert.Empty(t, keys(m.Range(21, 21)))
	assert.Empty(t, keys(m.Range(50, 20)))
}

func Test_Equal(t *testing.T) {
	keys := []int{5, 3, 8, 1, 9, 2}

	a := treemap.New[int, string]()
	b := treemap.New[int, string]()

	for _, k := range keys {
		a.Set(k, "v")
	}
	for _, k := range slices.Backward(keys) {
		b.Set(k, "v")
	}

	// same entries, different insertion order
	assert.True(t, treemap.Equal(a, b))

	b.Set(5, "other")
	assert.False(t, treemap.Equal(a, b))
	assert.True(t, a.EqualFunc(b, func(string, string) bool { return true }))

	b.Delete(5)
	assert.False(t, treemap.Equal(a, b))
}

func Test_Collect(t *testing.T) {
	m := treemap.Collect(maps.All(map[int]string{3: "c", 1: "a", 2: "b"}))

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(m.Keys()))
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(m.Values()))
}

func Test_String(t *testing.T) {
	m := treemap.New[int, string]()
	assert.Equal(t, "treemap[]", m.String())

	m.Set(2, "b")
	m.Set(1, "a")
	assert.Equal(t, "treemap[1:a 2:b]", m.String())
}

func Test_NilCmp(t *testing.T) {
	assert.Panics(t, func() {
		treemap.NewFunc[int, int](nil)
	})
}
