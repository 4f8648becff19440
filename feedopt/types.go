// Package feedopt implements the Feed Optimizer core: an incremental
// engine over a sliding window of scored, sized "stories" that answers
// "reload" queries with the best capacity-bounded subset, solved as a 0/1
// knapsack via Horowitz–Sahni branch-and-bound with incremental reuse of
// the previous optimum across events.
//
// The solver itself is a dense-buffer, explicit-state branch-and-bound
// engine rather than a recursive one, keeping its hot-path state easy to
// follow and test in isolation.
package feedopt

// Story is an immutable record of one feed item: when it was created, how
// much it scores, and how much capacity ("height") it consumes.
type Story struct {
	ID          int64
	T           int64
	Score       int64
	Height      int64
	ScaledScore float64 // Score / Height, the knapsack ordering key.
}

// newStory builds a Story and its derived scaled score.
func newStory(id, t, score, height int64) *Story {
	return &Story{
		ID:          id,
		T:           t,
		Score:       score,
		Height:      height,
		ScaledScore: float64(score) / float64(height),
	}
}

// Solution is the best subset known at a point in time: its aggregate
// score and height, its size, and the ascending list of story ids that
// compose it — exactly the shape emitted on an "R" event.
type Solution struct {
	Score  int64
	Height int64
	Size   int
	IDs    []int64 // ascending
}

// empty returns the canonical empty solution ("0 0" with no ids).
func empty() Solution {
	return Solution{}
}
