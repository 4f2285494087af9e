// Command pvdemo is a small textual demonstrator for the vector package.
// It builds a Vector from the words on the command line (or, with -n, from
// a generated range of integers), then runs a short scripted sequence of
// Push/Set/Pop operations, printing the vector before and after each step
// so the structural sharing between versions is visible: the "before"
// vector printed at step k is always identical to the "after" vector
// printed at step k-1, yet neither mutates when the next step runs.
//
// It exists only to show the library working, not to exercise anything
// the package's tests don't already cover.
package main

import (
	"flag"
	"fmt"
	"os"

	vector "github.com/arborvector/vector"
)

func main() {
	n := flag.Int("n", 0, "instead of using the words on the command line, build a vector of 0..n-1")
	flag.Parse()

	var v vector.Vector[string]
	if *n > 0 {
		is := make([]string, *n)
		for i := range is {
			is[i] = fmt.Sprint(i)
		}
		v = vector.FromSlice(is)
	} else {
		words := flag.Args()
		if len(words) == 0 {
			words = []string{"Hello", "world!", "How", "is", "it", "going?"}
		}
		v = vector.FromSlice(words)
	}

	fmt.Printf("built:  %s\n", v.String())

	step := func(label string, next vector.Vector[string]) vector.Vector[string] {
		fmt.Printf("before %-6s %s\n", label, v.String())
		fmt.Printf("after  %-6s %s\n", label, next.String())
		return next
	}

	v = step("push", v.Push("!"))
	v = step("set", v.Set(0, "HELLO"))
	if !v.IsEmpty() {
		v = step("pop", v.Pop())
	}

	fmt.Fprintf(os.Stdout, "final:  %s (len=%d)\n", v.String(), v.Len())
}
