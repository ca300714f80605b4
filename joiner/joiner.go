package joiner

import (
	"fmt"
	"io"
	"iter"
)

// Joiner writes values to an underlying writer separated by a delimiter.
// It does not own the writer.
type Joiner[D any] struct {
	w     io.Writer
	delim D
	first bool
}

// New returns a Joiner writing to w with delim between values. delim is
// copied into the Joiner.
func New[D any](w io.Writer, delim D) *Joiner[D] {
	return &Joiner[D]{w: w, delim: delim, first: true}
}

// Assign writes v, preceded by the delimiter unless v is the first value
// assigned since construction.
func (j *Joiner[D]) Assign(v any) error {
	if !j.first {
		if err := insert(j.w, j.delim); err != nil {
			return err
		}
	}
	j.first = false
	return insert(j.w, v)
}

// Deref returns j. Together with Next it gives Joiner the shape of an
// output iterator; both are no-ops.
func (j *Joiner[D]) Deref() *Joiner[D] { return j }

// Next returns j.
func (j *Joiner[D]) Next() *Joiner[D] { return j }

// Pending reports whether no value has been assigned yet.
func (j *Joiner[D]) Pending() bool { return j.first }

// Delimiter returns the delimiter.
func (j *Joiner[D]) Delimiter() D { return j.delim }

// Copy assigns every value of seq to j in order, stopping at the first
// write error.
func Copy[T, D any](seq iter.Seq[T], j *Joiner[D]) error {
	for v := range seq {
		if err := j.Deref().Assign(v); err != nil {
			return err
		}
		j.Next()
	}
	return nil
}

// CopySlice assigns every element of items to j in order.
func CopySlice[T, D any](items []T, j *Joiner[D]) error {
	for _, v := range items {
		if err := j.Assign(v); err != nil {
			return err
		}
	}
	return nil
}

// Join writes items to w separated by delim.
//
//	joiner.Join(os.Stdout, " | ", "a", "b", "c") // a | b | c
func Join[T, D any](w io.Writer, delim D, items ...T) error {
	return CopySlice(items, New(w, delim))
}

func insert(w io.Writer, v any) error {
	var err error
	switch x := v.(type) {
	case string:
		_, err = io.WriteString(w, x)
	case []byte:
		_, err = w.Write(x)
	default:
		_, err = fmt.Fprint(w, x)
	}
	return err
}
