package fn

// Filter returns the elements for which keep returns true.
func Filter[T any](items []T, keep func(T, int) bool) []T {
	kept := make([]T, 0, len(items))
	for i := range items {
		if v := items[i]; keep(v, i) {
			kept = append(kept, v)
		}
	}
	return kept
}

// Reject returns the elements for which drop returns false.
func Reject[T any](items []T, drop func(T, int) bool) []T {
	return Filter(items, Not2(drop))
}
