package nearby_test

import (
	"os"
	"strings"

	"github.com/katalvlaran/combsearch/nearby"
)

// ExampleRun builds a small topic/question population and answers a single
// top-2 proximity query against the topics.
func ExampleRun() {
	input := "3 1 1\n" +
		"1 0 0\n2 1 0\n3 5 5\n" +
		"1 2 1 2\n" +
		"t 2 0 0\n"
	if err := nearby.Run(strings.NewReader(input), os.Stdout); err != nil {
		panic(err)
	}
	// Output:
	// 1 2
}
