// File: vector/compare.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Relational operators over vectors. Equality is element-wise over equal
// sizes; ordering is lexicographic, a proper prefix orders first.

package vector

import (
	"cmp"
	"slices"
)

// Equal reports same size and element-wise equality.
func Equal[T comparable](lhs, rhs *Vector[T]) bool {
	return lhs.GetSize() == rhs.GetSize() && slices.Equal(lhs.Data(), rhs.Data())
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](lhs, rhs *Vector[T], eq func(a, b T) bool) bool {
	return slices.EqualFunc(lhs.Data(), rhs.Data(), eq)
}

// NotEqual is !Equal.
func NotEqual[T comparable](lhs, rhs *Vector[T]) bool {
	return !Equal(lhs, rhs)
}

// Less reports whether lhs orders lexicographically before rhs, using only
// the element type's < operator.
func Less[T cmp.Ordered](lhs, rhs *Vector[T]) bool {
	a, b := lhs.Data(), rhs.Data()
	for i := range min(len(a), len(b)) {
		if a[i] < b[i] {
			return true
		}
		if b[i] < a[i] {
			return false
		}
	}
	return len(a) < len(b)
}

// LessOrEqual is !(rhs < lhs).
func LessOrEqual[T cmp.Ordered](lhs, rhs *Vector[T]) bool {
	return !Less(rhs, lhs)
}

// Greater is rhs < lhs.
func Greater[T cmp.Ordered](lhs, rhs *Vector[T]) bool {
	return Less(rhs, lhs)
}

// GreaterOrEqual is !(lhs < rhs).
func GreaterOrEqual[T cmp.Ordered](lhs, rhs *Vector[T]) bool {
	return !Less(lhs, rhs)
}

// Compare returns -1, 0 or +1 by lexicographic order.
func Compare[T cmp.Ordered](lhs, rhs *Vector[T]) int {
	return slices.Compare(lhs.Data(), rhs.Data())
}

// CompareFunc is Compare with a caller-supplied three-way element ordering.
func CompareFunc[T any](lhs, rhs *Vector[T], compare func(a, b T) int) int {
	return slices.CompareFunc(lhs.Data(), rhs.Data(), compare)
}
