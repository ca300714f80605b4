package fn

// Predicate is a callable that may hold state between calls.
type Predicate[A any] interface {
	Test(a A) bool
}

// PredicateFunc adapts an ordinary function to [Predicate].
type PredicateFunc[A any] func(A) bool

// Test calls f(a).
func (f PredicateFunc[A]) Test(a A) bool { return f(a) }

// Negated is the adapter returned by [Negate]. It holds the wrapped
// predicate exactly as it was passed in. Build it with Negate: the zero
// Negated wraps no predicate and Test panics.
type Negated[A any] struct {
	p Predicate[A]
}

// Negate returns a predicate whose Test reports !p.Test(a).
//
// Passing a pointer shares p's state with the adapter; passing a value
// copies it into the adapter.
func Negate[A any](p Predicate[A]) Negated[A] {
	return Negated[A]{p: p}
}

// Test reports the negation of the wrapped predicate's result.
func (n Negated[A]) Test(a A) bool { return !n.p.Test(a) }

// Unwrap returns the wrapped predicate.
func (n Negated[A]) Unwrap() Predicate[A] { return n.p }

// Func returns n.Test as a plain function value.
func (n Negated[A]) Func() func(A) bool { return n.Test }
