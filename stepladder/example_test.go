package stepladder_test

import (
	"os"
	"strings"

	"github.com/katalvlaran/combsearch/stepladder"
)

// ExampleRun filters a small dictionary to length-3 words and prints the
// best stepladder score.
func ExampleRun() {
	input := "3\n5\nCAT\nDAT\nBAT\nBAD\nCAD\n"
	if err := stepladder.Run(strings.NewReader(input), os.Stdout); err != nil {
		panic(err)
	}
	// Output:
	// 6
}
