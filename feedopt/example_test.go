package feedopt_test

import (
	"os"
	"strings"

	"github.com/katalvlaran/combsearch/feedopt"
)

// ExampleRun stores two stories and reloads the feed twice, the second time
// past both stories' windows.
func ExampleRun() {
	input := "4 3 100\nS 1 60 10\nS 2 100 20\nR 2\nR 10\n"
	if err := feedopt.Run(strings.NewReader(input), os.Stdout); err != nil {
		panic(err)
	}
	// Output:
	// 160 2 1 2
	// 0 0
}
