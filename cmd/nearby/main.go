// Command nearby is the Nearby CLI: it reads a topic/question population
// and a stream of top-k proximity queries, printing one answer line per
// query.
package main

import (
	"os"

	"github.com/katalvlaran/combsearch/internal/applog"
	"github.com/katalvlaran/combsearch/internal/cliio"
	"github.com/katalvlaran/combsearch/nearby"
)

func main() {
	log := applog.New("nearby")
	streams := cliio.Parse(os.Args[1:], log)
	defer streams.Close()

	if err := nearby.Run(streams.In, streams.Out); err != nil {
		log.Error("nearby run failed", "error", err)
		os.Exit(1)
	}
}
