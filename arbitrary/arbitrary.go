// Package arbitrary builds randomized treemap and treeset instances for
// property-based tests. The wrapper types implement testing/quick's
// Generator, so they can appear directly as arguments of functions passed
// to quick.Check. Instances are populated through the normal container API,
// which keeps the key-uniqueness invariant intact no matter how many
// duplicates the random sequence contains.
package arbitrary

import (
	"cmp"
	"fmt"
	"math/rand"
	"reflect"
	"testing/quick"

	"github.com/ddirect/ordered/treemap"
	"github.com/ddirect/ordered/treeset"
)

// Map is a naturally ordered treemap.Map with random contents.
type Map[K cmp.Ordered, V any] struct {
	*treemap.Map[K, V]
}

// Set is a naturally ordered treeset.Set with random contents.
type Set[T cmp.Ordered] struct {
	*treeset.Set[T]
}

func (Map[K, V]) Generate(rnd *rand.Rand, size int) reflect.Value {
	m := treemap.New[K, V]()
	var k K
	var v V
	kt, vt := reflect.TypeOf(k), reflect.TypeOf(v)
	for range rnd.Intn(size + 1) {
		m.Set(value(kt, rnd).(K), value(vt, rnd).(V))
	}
	return reflect.ValueOf(Map[K, V]{m})
}

func (Set[T]) Generate(rnd *rand.Rand, size int) reflect.Value {
	s := treeset.New[T]()
	var t T
	tt := reflect.TypeOf(t)
	for range rnd.Intn(size + 1) {
		s.Insert(value(tt, rnd).(T))
	}
	return reflect.ValueOf(Set[T]{s})
}

func value(t reflect.Type, rnd *rand.Rand) any {
	v, ok := quick.Value(t, rnd)
	if !ok {
		panic(fmt.Errorf("arbitrary: cannot generate values of type %v", t))
	}
	return v.Interface()
}
