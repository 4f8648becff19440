package feedopt

// Engine processes the Feed Optimizer event stream, keeping the live
// story list and the current best subset between events.
type Engine struct {
	window   int64 // W
	capacity int64 // H
	nextID   int64

	list      storyList
	byID      map[int64]*Story
	best      Solution
	recompute bool
}

// NewEngine constructs an Engine for the given time window W and page
// height capacity H.
func NewEngine(window, capacity int64) *Engine {
	return &Engine{
		window:   window,
		capacity: capacity,
		byID:     make(map[int64]*Story),
		best:     empty(),
	}
}

// Store handles an "S t s h" event: create a story and fold it in.
// Height > capacity stories are dropped on arrival — they can never
// contribute.
func (e *Engine) Store(t, score, height int64) {
	e.nextID++
	if height > e.capacity {
		return
	}

	s := newStory(e.nextID, t, score, height)
	e.list.insert(s)
	e.byID[s.ID] = s

	// Fast path: the new story alone extends the current best. This is a
	// valid (feasible, score-improving) candidate but not necessarily the
	// global optimum with the new story folded in, so anything that
	// *doesn't* trivially extend defers to a full recompute on the next
	// reload. A zero-score story never improves the score but still grows
	// Size, which must lose the size tie-break against a smaller-size
	// solution of equal score — only recompute can establish that, so the
	// fast path is restricted to strictly score-improving stories.
	if s.Score > 0 && e.best.Height+s.Height <= e.capacity {
		e.best.Score += s.Score
		e.best.Height += s.Height
		e.best.Size++
		e.best.IDs = append(e.best.IDs, s.ID) // s.ID is the largest id yet, so this keeps IDs ascending.
		return
	}

	e.recompute = true
}

// Reload handles an "R t" event: purge stories too old to matter, refresh
// the best subset if needed, and return it for the caller to emit.
func (e *Engine) Reload(t int64) Solution {
	minTime := t - e.window
	removed := e.list.purge(minTime)
	for _, s := range removed {
		delete(e.byID, s.ID)
		if e.removeFromBest(s) {
			e.recompute = true
		}
	}

	if e.recompute {
		e.best = solveKnapsack(e.list.items, e.capacity, e.best)
		e.recompute = false
	}

	return e.best
}

// Recompute solves the live list from scratch, ignoring any incrementally
// maintained state. It exists so tests can cross-check that re-solving
// from scratch at any reload yields the same score/size/id-list as the
// incremental engine; it is never called from the CLI's normal event loop.
func (e *Engine) Recompute() Solution {
	return solveKnapsack(e.list.items, e.capacity, empty())
}

// removeFromBest strips s out of e.best if present, reporting whether it
// was found (i.e. whether the best subset actually changed).
func (e *Engine) removeFromBest(s *Story) bool {
	for i, id := range e.best.IDs {
		if id == s.ID {
			e.best.Score -= s.Score
			e.best.Height -= s.Height
			e.best.Size--
			e.best.IDs = append(e.best.IDs[:i], e.best.IDs[i+1:]...)
			return true
		}
	}
	return false
}
