// Command stepladder is the Stepladder CLI: it reads a length-filtered
// word dictionary and prints the maximum stepladder score reachable.
package main

import (
	"os"

	"github.com/katalvlaran/combsearch/internal/applog"
	"github.com/katalvlaran/combsearch/internal/cliio"
	"github.com/katalvlaran/combsearch/stepladder"
)

func main() {
	log := applog.New("stepladder")
	streams := cliio.Parse(os.Args[1:], log)
	defer streams.Close()

	if err := stepladder.Run(streams.In, streams.Out); err != nil {
		log.Error("stepladder run failed", "error", err)
		os.Exit(1)
	}
}
