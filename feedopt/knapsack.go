package feedopt

import (
	"math"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// solveKnapsack runs Horowitz–Sahni branch-and-bound over list (which MUST
// already be ordered by non-increasing scaled score) against capacity,
// returning the best feasible subset under the ordering (higher score,
// then smaller size, then lexicographically smaller
// ascending id list). seed is an existing feasible solution — possibly
// empty — used both as the search's initial incumbent (so the search
// never regresses) and as a pruning floor.
//
// The search keeps one "forward move": starting at the current position,
// it greedily takes every story that still fits, until either the list
// ends or a story doesn't fit (the "critical item"). At a critical item,
// the Dantzig bound determines whether continuing past it (skipping it,
// still in the same run) could possibly beat the incumbent; when it
// can't, the search backtracks: it removes the nearest still-included
// story before the current position and resumes the forward move right
// after it, exploring the branch where that story is excluded. The
// search ends when backtracking finds no earlier included story.
func solveKnapsack(list []*Story, capacity int64, seed Solution) Solution {
	n := len(list)
	best := seed

	if n == 0 {
		return best
	}

	mask := bitset.New(uint(n))
	var (
		score, height int64
		size          int
		pos           int
	)

	evaluate := func() {
		ids := collectIDs(list, mask)
		if isBetter(score, size, ids, best) {
			best = Solution{Score: score, Height: height, Size: size, IDs: ids}
		}
	}

	// backtrack undoes the nearest included story strictly before pos and
	// resumes the forward move one past it, so the search explores the
	// "exclude this story" branch it had not yet tried.
	backtrack := func() bool {
		for k := pos - 1; k >= 0; k-- {
			if mask.Test(uint(k)) {
				mask.Clear(uint(k))
				size--
				score -= list[k].Score
				height -= list[k].Height
				pos = k + 1
				return true
			}
		}
		return false
	}

	for {
		if pos >= n {
			evaluate()
			if !backtrack() {
				return best
			}
			continue
		}

		story := list[pos]
		residual := capacity - height
		if story.Height <= residual {
			mask.Set(uint(pos))
			size++
			score += story.Score
			height += story.Height
			pos++
			continue
		}

		// story is the critical item: it cannot be added.
		ub := score + int64(math.Floor(story.ScaledScore*float64(residual)))
		if ub < best.Score || (ub == best.Score && size > best.Size) {
			if !backtrack() {
				return best
			}
			continue
		}

		// Evaluate the run as-is (a valid feasible subset that simply
		// can't extend with this story), then keep scanning past it in
		// case a later, smaller story still fits.
		evaluate()
		pos++
	}
}

// collectIDs returns the ascending story ids selected by mask.
func collectIDs(list []*Story, mask *bitset.BitSet) []int64 {
	ids := make([]int64, 0, mask.Count())
	for i := 0; i < len(list); i++ {
		if mask.Test(uint(i)) {
			ids = append(ids, list[i].ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// isBetter reports whether (score, size, ids) strictly dominates best
// under the total order: higher score first, then smaller size, then
// lexicographically smaller ascending id list.
func isBetter(score int64, size int, ids []int64, best Solution) bool {
	if score != best.Score {
		return score > best.Score
	}
	if size != best.Size {
		return size < best.Size
	}
	return lexLess(ids, best.IDs)
}

// lexLess reports whether a is lexicographically less than b.
func lexLess(a, b []int64) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
