package owned

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"runtime"
)

// noCopy may be embedded in structs that must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Unique exclusively owns a single heap-allocated T.
//
// A nil *Unique and an empty handle behave the same: Get returns nil and
// Close is a no-op.
type Unique[T any] struct {
	_       noCopy
	ptr     *T
	cleanup runtime.Cleanup
}

// New moves value onto the heap and returns the handle owning it.
// Panics with an error wrapping [ErrFixedArray] when T is an array type.
func New[T any](value T) *Unique[T] {
	rejectFixedArray[T]()
	p := new(T)
	*p = value
	return adopt(p)
}

// NewFunc allocates the value returned by ctor and returns the handle
// owning it. Panics with an error wrapping [ErrFixedArray] when T is an
// array type.
func NewFunc[T any](ctor func() T) *Unique[T] {
	rejectFixedArray[T]()
	p := new(T)
	*p = ctor()
	return adopt(p)
}

func rejectFixedArray[T any]() {
	if t := reflect.TypeFor[T](); t.Kind() == reflect.Array {
		panic(fmt.Errorf("%w: %s", ErrFixedArray, t))
	}
}

func adopt[T any](p *T) *Unique[T] {
	h := &Unique[T]{ptr: p}
	h.cleanup = runtime.AddCleanup(h, reportLeak, leak{
		kind:     "unique",
		typeName: reflect.TypeFor[T]().String(),
	})
	return h
}

// Get returns a pointer to the owned value, or nil if the handle is empty.
// The pointer is only valid while the handle owns the value.
func (h *Unique[T]) Get() *T {
	if h == nil {
		return nil
	}
	return h.ptr
}

// Valid reports whether the handle currently owns a value.
func (h *Unique[T]) Valid() bool { return h != nil && h.ptr != nil }

// Release gives up ownership without destroying the value and returns it.
// The handle is empty afterwards.
func (h *Unique[T]) Release() *T {
	if h == nil || h.ptr == nil {
		return nil
	}
	p := h.ptr
	h.ptr = nil
	h.cleanup.Stop()
	return p
}

// Move transfers ownership to a new handle, leaving h empty.
func (h *Unique[T]) Move() *Unique[T] {
	p := h.Release()
	if p == nil {
		return &Unique[T]{}
	}
	return adopt(p)
}

// Reset destroys the owned value, if any. Errors from the value's Close
// method are discarded; use Close to observe them.
func (h *Unique[T]) Reset() {
	_ = h.Close()
}

// Close destroys the owned value and leaves the handle empty. If the
// value implements [io.Closer] its Close method is called exactly once and
// the result is returned unchanged. Closing an empty handle returns nil.
func (h *Unique[T]) Close() error {
	p := h.Release()
	if p == nil {
		return nil
	}
	return destroy(p)
}

// destroy closes *p through whichever of p or *p implements io.Closer.
// A nil *p was never built and is left alone.
func destroy[T any](p *T) error {
	if c, ok := any(p).(io.Closer); ok {
		return c.Close()
	}
	if isNil(any(*p)) {
		return nil
	}
	if c, ok := any(*p).(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	return !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil())
}

// destroyAll closes every element of s, joining the errors.
func destroyAll[E any](s []E) error {
	var errs []error
	for i := range s {
		if err := destroy(&s[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
