// Package fn provides a negation adapter for predicates, the Go
// counterpart of C++17's std::not_fn.
//
// # Function values
//
// Each helper takes a function returning a boolean and returns a function
// of the same signature whose result is negated:
//
//	isEmpty := func(s string) bool { return s == "" }
//	nonEmpty := fn.Not(isEmpty)
//	nonEmpty("x") // → true
//
// Helpers exist per arity ([Not0], [Not], [Not2], [NotN]) plus [NotErr]
// for predicates that can fail. The result type may be any type whose
// underlying type is bool; a function returning anything else does not
// satisfy the ~bool constraint and is rejected at compile time.
//
// # Predicate values
//
// Callables that carry state implement [Predicate]. [Negate] wraps one and
// forwards every call to its Test method through the receiver the caller
// supplied: a pointer keeps mutating the caller's state, a value is copied
// once into the adapter and invoked from there.
//
// Go has no lvalue/rvalue overloading, so the four call forms of not_fn
// (mutable, const, rvalue, const rvalue) reduce to these two: shared by
// pointer, or owned by value.
//
// # Filtering
//
// [Filter] and [Reject] show the adapter in use; Reject is Filter with the
// predicate negated.
package fn
