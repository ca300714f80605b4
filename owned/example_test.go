package owned_test

import (
	"fmt"

	"github.com/hasbyte1/go-backport/owned"
)

func ExampleNew() {
	type config struct{ Name string }

	h := owned.New(config{Name: "primary"})
	defer h.Close()

	h.Get().Name = "secondary"
	fmt.Println(h.Get().Name)
	// Output: secondary
}

func ExampleMake() {
	buf := owned.Make[int](3)
	defer buf.Close()

	fmt.Println(buf.Len(), buf.Slice())
	// Output: 3 [0 0 0]
}

func ExampleUnique_Move() {
	src := owned.New("payload")
	dst := src.Move()
	defer dst.Close()

	fmt.Println(src.Valid(), *dst.Get())
	// Output: false payload
}
