package fn_test

import (
	"fmt"

	"github.com/hasbyte1/go-backport/fn"
)

func ExampleNot() {
	isEmpty := func(s string) bool { return s == "" }
	nonEmpty := fn.Not(isEmpty)
	fmt.Println(nonEmpty("x"), nonEmpty(""))
	// Output: true false
}

func ExampleNegate() {
	positive := fn.PredicateFunc[int](func(n int) bool { return n > 0 })
	nonPositive := fn.Negate[int](positive)
	fmt.Println(nonPositive.Test(-1), nonPositive.Test(1))
	// Output: true false
}

func ExampleReject() {
	odds := fn.Reject([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
	fmt.Println(odds)
	// Output: [1 3 5]
}
