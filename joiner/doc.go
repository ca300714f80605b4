// Package joiner writes a sequence of values to an [io.Writer] with a
// delimiter between consecutive values, like the Library Fundamentals TS
// std::experimental::ostream_joiner.
//
//	j := joiner.New(os.Stdout, ", ")
//	for _, v := range []int{1, 2, 3} {
//	    if err := j.Assign(v); err != nil {
//	        return err
//	    }
//	}
//	// 1, 2, 3
//
// No delimiter is written before the first value or after the last. An
// empty sequence produces no output.
//
// Values and the delimiter are written as-is when they are a string or a
// []byte and with [fmt.Fprint] otherwise, so [fmt.Stringer] and friends
// are honoured. A rune is an integer to fmt, so joiner.New(w, ',') writes
// "44" between values; pass the delimiter as a string (",") instead.
//
// A Joiner is not safe for concurrent use, and it does not lock or buffer
// the writer it targets. Writer errors are returned unchanged.
package joiner
