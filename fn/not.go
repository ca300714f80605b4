package fn

// Not0 returns a function reporting the negation of f().
func Not0[R ~bool](f func() R) func() R {
	return func() R { return !f() }
}

// Not returns a function reporting the negation of f(a).
//
//	odd := fn.Not(func(n int) bool { return n%2 == 0 })
func Not[A any, R ~bool](f func(A) R) func(A) R {
	return func(a A) R { return !f(a) }
}

// Not2 returns a function reporting the negation of f(a, b).
func Not2[A, B any, R ~bool](f func(A, B) R) func(A, B) R {
	return func(a A, b B) R { return !f(a, b) }
}

// NotN returns a function reporting the negation of f(args...).
func NotN[A any, R ~bool](f func(...A) R) func(...A) R {
	return func(args ...A) R { return !f(args...) }
}

// NotErr negates the boolean result of f. A non-nil error is passed
// through unchanged together with the negated value.
func NotErr[A any, R ~bool](f func(A) (R, error)) func(A) (R, error) {
	return func(a A) (R, error) {
		ok, err := f(a)
		return !ok, err
	}
}
