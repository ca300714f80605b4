// Package size returns the element count of sized values as an unsigned
// integer, uniformly across containers, mirroring C++17's std::size.
//
//	size.Len(&buf)                 // bytes.Buffer → uint(buf.Len())
//	size.Of(set)                   // anything with Size() int
//	size.Slice([]string{"a", "b"}) // 2
//	size.Array(&[4]byte{})         // 4
//
// Values that expose neither a count method nor a slice, string, map or
// array shape do not satisfy any of the constraints and fail to compile.
//
// Go's builtin len already yields a compile-time constant for array
// values; these helpers exist for generic callers that only know the
// constraint.
package size
