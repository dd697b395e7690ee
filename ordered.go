package ordered

import "cmp"

// Compare is a three-way comparison strategy: negative if a sorts before b,
// zero if they are equivalent, positive if a sorts after b. It must define a
// strict total order; the containers' behavior is undefined otherwise.
type Compare[T any] func(a, b T) int

// Natural returns the natural ordering of T.
func Natural[T cmp.Ordered]() Compare[T] {
	return cmp.Compare[T]
}

// Reversed returns the opposite ordering.
func (c Compare[T]) Reversed() Compare[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}
