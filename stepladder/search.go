package stepladder

import "github.com/bits-and-blooms/bitset"

// step is one outward move of the ladder: a word added below the current
// bottom and one added above the current top, in the same move.
type step struct {
	bottomIdx, topIdx int
}

// frame is one node of the explicit DFS stack: the ladder's current
// extremes, its accumulated score, the set of words already used, and the
// sequence of steps taken so far (innermost first) for reconstruction.
type frame struct {
	bottom, top int
	score       int
	used        *bitset.BitSet
	steps       []step
}

// search runs the branch-and-bound DFS over every seed word, returning the
// best score found, the seed it was rooted
// at, and the step sequence needed to reconstruct the winning ladder.
func search(words []word, adj [][]int) (bestScore, bestSeed int, bestSteps []step) {
	n := len(words)

	for seed := 0; seed < n; seed++ {
		sc := words[seed].score
		if sc*sc <= bestScore {
			// words is sorted by non-increasing score, so every remaining
			// seed fails this same prune too.
			break
		}

		if sc > bestScore {
			bestScore, bestSeed, bestSteps = sc, seed, nil
		}

		used := bitset.New(uint(n))
		used.Set(uint(seed))
		stack := []frame{{bottom: seed, top: seed, score: sc, used: used}}

		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			sb, st := words[f.bottom].score, words[f.top].score
			bound := f.score + sb*(sb+1)/2 + st*(st+1)/2
			if bound <= bestScore {
				continue
			}

			for _, wb := range adj[f.bottom] {
				if words[wb].score >= sb || f.used.Test(uint(wb)) {
					continue
				}
				for _, wt := range adj[f.top] {
					if wb == wt || words[wt].score >= st || f.used.Test(uint(wt)) {
						continue
					}

					newScore := f.score + words[wb].score + words[wt].score
					newUsed := f.used.Clone()
					newUsed.Set(uint(wb))
					newUsed.Set(uint(wt))
					newSteps := make([]step, len(f.steps), len(f.steps)+1)
					copy(newSteps, f.steps)
					newSteps = append(newSteps, step{bottomIdx: wb, topIdx: wt})

					if newScore > bestScore {
						bestScore, bestSeed, bestSteps = newScore, seed, newSteps
					}
					stack = append(stack, frame{bottom: wb, top: wt, score: newScore, used: newUsed, steps: newSteps})
				}
			}
		}
	}

	return bestScore, bestSeed, bestSteps
}

// Solve returns the maximum stepladder score reachable over dict, filtered
// to words of length k, or 0 if no valid stepladder exists.
func Solve(rawWords []string, k int) int {
	words := buildDictionary(rawWords, k)
	if len(words) == 0 {
		return 0
	}
	adj := buildAdjacency(words)
	best, _, _ := search(words, adj)
	return best
}

// SolveBest returns the maximum stepladder score together with the
// winning ladder itself, ordered from one extreme to the other.
func SolveBest(rawWords []string, k int) (int, []string) {
	words := buildDictionary(rawWords, k)
	if len(words) == 0 {
		return 0, nil
	}
	adj := buildAdjacency(words)
	best, seed, steps := search(words, adj)
	return best, reconstruct(words, seed, steps)
}

func reconstruct(words []word, seed int, steps []step) []string {
	ladder := make([]string, 0, 1+2*len(steps))
	for i := len(steps) - 1; i >= 0; i-- {
		ladder = append(ladder, words[steps[i].bottomIdx].text)
	}
	ladder = append(ladder, words[seed].text)
	for _, s := range steps {
		ladder = append(ladder, words[s.topIdx].text)
	}
	return ladder
}
