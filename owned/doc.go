// Package owned provides sole-owner handles to heap-allocated values and
// arrays, in the spirit of C++'s std::unique_ptr / std::make_unique.
//
// # Single values
//
//	h := owned.New(Config{Name: "primary"})
//	defer h.Close()
//
//	h.Get().Name = "secondary"
//
// [NewFunc] builds the value through a constructor function, which is how
// "forward these arguments to the constructor" is spelled in Go:
//
//	h := owned.NewFunc(func() *Conn { return dial(addr, timeout) })
//
// # Arrays
//
// [Make] allocates a runtime-sized array of zero-valued elements. It takes
// the element type, never an array type, and accepts only a length:
//
//	buf := owned.Make[byte](4096)
//	defer buf.Close()
//
// Fixed-length array types ([N]E) are not accepted by [New] or [NewFunc];
// instantiating either with one panics with an error wrapping
// [ErrFixedArray]. Use [Make] with the element type instead.
//
// # Ownership
//
// Handles are move-only. They embed a noCopy marker so `go vet` reports
// copies, and the only way to hand the owned value to another handle is
// [Unique.Move] / [Array.Move], which leaves the source empty.
//
// Destroying a handle ([Unique.Close], [Unique.Reset], [Array.Close])
// calls Close on the owned value when it implements [io.Closer]. A handle
// that becomes unreachable while still owning a value is reported through
// the logger installed with [SetLogger].
package owned
