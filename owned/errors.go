package owned

import "errors"

// Sentinel errors used by handle constructors.
//
// Constructor misuse is a programming error, so these are delivered as
// panics carrying an error that wraps the sentinel:
//
//	defer func() {
//	    if err, ok := recover().(error); ok && errors.Is(err, owned.ErrFixedArray) {
//	        // ...
//	    }
//	}()
var (
	// ErrFixedArray is raised when New or NewFunc is instantiated with a
	// fixed-length array type such as [4]int.
	ErrFixedArray = errors.New("owned: fixed-length array types cannot be owned; use Make with the element type")

	// ErrNegativeLength is raised when Make is called with n < 0.
	ErrNegativeLength = errors.New("owned: array length must not be negative")
)
