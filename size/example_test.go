package size_test

import (
	"bytes"
	"fmt"

	"github.com/hasbyte1/go-backport/size"
)

func ExampleLen() {
	var buf bytes.Buffer
	buf.WriteString("backport")
	fmt.Println(size.Len(&buf))
	// Output: 8
}

func ExampleArray() {
	var table [12]float64
	fmt.Println(size.Array(&table))
	// Output: 12
}
