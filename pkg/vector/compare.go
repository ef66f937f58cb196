package vector

import "cmp"

// Equal reports whether a and b have the same length and equal elements in
// the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a.length != b.length {
		return false
	}
	for i := 0; i < a.length; i++ {
		if !eq(a.slots[i], b.slots[i]) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically. The first differing element
// decides; otherwise the shorter vector orders first.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but orders elements with cmp.
func CompareFunc[T any](a, b *Vector[T], cmpFn func(T, T) int) int {
	n := min(a.length, b.length)
	for i := 0; i < n; i++ {
		if c := cmpFn(a.slots[i], b.slots[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.length, b.length)
}
