// Package inplace defines zero-size marker values that select
// "construct the contained value from these arguments" overloads in
// optional- and variant-style APIs, like C++17's std::in_place and
// std::in_place_type.
//
//	opt := NewOptional(inplace.InPlace, host, port)          // build in place
//	v   := NewVariant(inplace.Type[*net.TCPAddr](), "tcp", addr)
//
// Markers carry no data. Two markers of the same type are
// indistinguishable; they are meant to be passed, not compared.
package inplace
