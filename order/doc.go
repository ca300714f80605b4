// Package order provides a maximum with a strict less-than tie rule,
// matching C++'s std::max: the second argument is chosen only when the
// first compares less than it, so ties return the first.
//
// Generic calls are never constant expressions in Go. Use the builtin max
// where a compile-time constant is needed.
package order
