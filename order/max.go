package order

import "cmp"

// Max returns b if a < b and a otherwise. Equal inputs, and inputs that
// are unordered such as NaN, return a.
func Max[T cmp.Ordered](a, b T) T {
	if a < b {
		return b
	}
	return a
}

// MaxRef is Max over pointers: it returns whichever of a or b points to
// the larger value, preferring a on a tie. The result aliases one of the
// inputs and is valid as long as that input is.
func MaxRef[T cmp.Ordered](a, b *T) *T {
	if *a < *b {
		return b
	}
	return a
}

// MaxFunc returns b if less(a, b) and a otherwise. less must be a strict
// ordering.
func MaxFunc[T any](a, b T, less func(T, T) bool) T {
	if less(a, b) {
		return b
	}
	return a
}
