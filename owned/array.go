package owned

import (
	"fmt"
	"reflect"
	"runtime"
)

// Array exclusively owns a heap-allocated array of E whose length was
// chosen at run time.
type Array[E any] struct {
	_       noCopy
	elems   []E
	owning  bool
	cleanup runtime.Cleanup
}

// Make allocates n zero-valued elements and returns the handle owning
// them. n == 0 yields a valid, empty array. Panics with an error wrapping
// [ErrNegativeLength] when n < 0.
func Make[E any](n int) *Array[E] {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeLength, n))
	}
	return adoptArray(make([]E, n))
}

func adoptArray[E any](elems []E) *Array[E] {
	a := &Array[E]{elems: elems, owning: true}
	a.cleanup = runtime.AddCleanup(a, reportLeak, leak{
		kind:     "array",
		typeName: reflect.TypeFor[E]().String(),
	})
	return a
}

// Len returns the number of owned elements; 0 for an empty handle.
func (a *Array[E]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.elems)
}

// Valid reports whether the handle currently owns an array, including a
// zero-length one.
func (a *Array[E]) Valid() bool { return a != nil && a.owning }

// At returns a pointer to element i. It panics if i is out of range, like
// an index expression.
func (a *Array[E]) At(i int) *E { return &a.elems[i] }

// Slice returns the owned elements. The slice aliases the owned storage
// and is only valid while the handle owns it.
func (a *Array[E]) Slice() []E {
	if a == nil {
		return nil
	}
	return a.elems
}

// Release gives up ownership without destroying the elements and returns
// them. The handle is empty afterwards.
func (a *Array[E]) Release() []E {
	if a == nil || !a.owning {
		return nil
	}
	elems := a.elems
	a.elems, a.owning = nil, false
	a.cleanup.Stop()
	return elems
}

// Move transfers ownership to a new handle, leaving a empty.
func (a *Array[E]) Move() *Array[E] {
	if !a.Valid() {
		return &Array[E]{}
	}
	return adoptArray(a.Release())
}

// Close destroys the owned elements and leaves the handle empty. Elements
// implementing [io.Closer] are closed in index order; their errors are
// joined. Closing an empty handle returns nil.
func (a *Array[E]) Close() error {
	if !a.Valid() {
		return nil
	}
	return destroyAll(a.Release())
}
