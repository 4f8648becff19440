// Command feedopt is the Feed Optimizer CLI: it reads a stream of
// store/reload events and prints the optimal capacity-bounded subset on
// every reload.
package main

import (
	"os"

	"github.com/katalvlaran/combsearch/feedopt"
	"github.com/katalvlaran/combsearch/internal/applog"
	"github.com/katalvlaran/combsearch/internal/cliio"
)

func main() {
	log := applog.New("feedopt")
	streams := cliio.Parse(os.Args[1:], log)
	defer streams.Close()

	if err := feedopt.Run(streams.In, streams.Out); err != nil {
		log.Error("feedopt run failed", "error", err)
		os.Exit(1)
	}
}
