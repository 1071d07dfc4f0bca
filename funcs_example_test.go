package xpr_test

import (
	"fmt"

	"github.com/zephyrtronium/xpr"
)

func ExampleCall() {
	fmt.Println(xpr.Call("max", 3, 9, 4))
	fmt.Println(xpr.Call("log", 2, 1024))
	fmt.Println(xpr.Call("scale", 0, 10, 32, 212, 5))
	fmt.Println(xpr.Call("min"))

	// Output:
	// 9
	// 10
	// 122
	// NaN
}
