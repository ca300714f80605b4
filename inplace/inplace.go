package inplace

import "reflect"

// Tag is the type of [InPlace].
type Tag struct{}

// InPlace is the canonical untyped in-place marker.
var InPlace Tag

// TypeTag marks in-place construction of a T.
type TypeTag[T any] struct{}

// Type returns the marker for T. Go has no generic variables, so this
// function stands in for a per-type constant.
func Type[T any]() TypeTag[T] { return TypeTag[T]{} }

// String returns the name of T, for diagnostics.
func (TypeTag[T]) String() string {
	return "inplace.Type[" + reflect.TypeFor[T]().String() + "]"
}
