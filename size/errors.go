package size

import "errors"

// ErrNotArray is carried by the panic raised when [Array] is instantiated
// with a type that is not a fixed-length array.
var ErrNotArray = errors.New("size: type is not a fixed-length array")
