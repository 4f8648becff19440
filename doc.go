// Package combsearch is the root of three independent combinatorial-search
// cores, each a standalone batch CLI reading a problem instance from stdin
// (or -f) and writing its answer to stdout (or -o).
//
// The cores share no state and no transport; they share only the I/O
// skeleton (parse a header, parse body records one at a time, emit an
// answer per record) and the module's ambient conventions for errors,
// logging and tests.
//
//	feedopt/     — incremental 0/1 knapsack (Horowitz–Sahni) over a sliding
//	               window of scored, sized "stories"; cmd/feedopt
//	nearby/      — SS-tree backed top-k proximity search over topics and
//	               questions; cmd/nearby
//	stepladder/  — branch-and-bound DFS over a Hamming-distance-1 word
//	               graph; cmd/stepladder
//
// See SPEC_FULL.md and DESIGN.md at the repository root for the full
// requirements and the grounding of each package.
package combsearch
