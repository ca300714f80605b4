package size

import (
	"fmt"
	"reflect"
)

// Sizer is implemented by containers that report their element count
// through a Size method.
type Sizer interface {
	Size() int
}

// Lener is implemented by containers that report their element count
// through a Len method, such as bytes.Buffer or container/list.List.
type Lener interface {
	Len() int
}

// Of returns c.Size() as a uint. A negative count is not a valid size
// and yields 0.
func Of[C Sizer](c C) uint { return count(c.Size()) }

// Len returns c.Len() as a uint. A negative count yields 0.
func Len[C Lener](c C) uint { return count(c.Len()) }

func count(n int) uint {
	if n < 0 {
		return 0
	}
	return uint(n)
}

// Slice returns the number of elements in s.
func Slice[S ~[]E, E any](s S) uint { return uint(len(s)) }

// String returns the number of bytes in s.
func String[S ~string](s S) uint { return uint(len(s)) }

// Map returns the number of entries in m.
func Map[M ~map[K]V, K comparable, V any](m M) uint { return uint(len(m)) }

// Array returns N for a pointer to an [N]E. The result depends only on
// the type, so p may be nil. Panics with an error wrapping [ErrNotArray]
// when A is not an array type.
func Array[A any](p *A) uint {
	t := reflect.TypeFor[A]()
	if t.Kind() != reflect.Array {
		panic(fmt.Errorf("%w: %s", ErrNotArray, t))
	}
	return uint(t.Len())
}
