package nearby

import (
	"container/heap"
	"math"
	"sort"
)

// Candidate is a ranked (id, distance) pair.
type Candidate struct {
	ID   int64
	Dist float64
}

// candidateLess reports whether a ranks ahead of b under the tolerance
// tie-break rule: distances within tolerance are equal, and equal
// distances resolve by descending id.
func candidateLess(a, b Candidate) bool {
	if math.Abs(a.Dist-b.Dist) < tolerance {
		return a.ID > b.ID
	}
	return a.Dist < b.Dist
}

// boundedTopK keeps the k best-ranked (id, distance) pairs seen so far,
// backed by a max-heap (by the "worst" end of the ranking) so the current
// worst kept candidate — and hence the pruning bound — is a O(1) peek.
// Update is idempotent per id: a later, worse distance for an id already
// held is a no-op, a better one replaces it in place.
type boundedTopK struct {
	k     int
	items []Candidate
}

func newBoundedTopK(k int) *boundedTopK {
	return &boundedTopK{k: k}
}

func (b *boundedTopK) Len() int { return len(b.items) }
func (b *boundedTopK) Less(i, j int) bool {
	return candidateLess(b.items[j], b.items[i]) // root is the worst kept candidate
}
func (b *boundedTopK) Swap(i, j int) { b.items[i], b.items[j] = b.items[j], b.items[i] }
func (b *boundedTopK) Push(x interface{}) {
	b.items = append(b.items, x.(Candidate))
}
func (b *boundedTopK) Pop() interface{} {
	old := b.items
	n := len(old)
	item := old[n-1]
	b.items = old[:n-1]
	return item
}

// Update folds a new (id, dist) observation in, keeping only the best
// distance seen per id and at most k ids overall.
func (b *boundedTopK) Update(id int64, dist float64) {
	cand := Candidate{ID: id, Dist: dist}

	for i, c := range b.items {
		if c.ID == id {
			if cand.Dist >= c.Dist {
				return
			}
			heap.Remove(b, i)
			break
		}
	}

	if b.k <= 0 {
		return
	}
	if len(b.items) < b.k {
		heap.Push(b, cand)
		return
	}
	if candidateLess(cand, b.items[0]) {
		heap.Pop(b)
		heap.Push(b, cand)
	}
}

// Bound returns the current worst kept distance, or +Inf while the set
// hasn't yet reached k members.
func (b *boundedTopK) Bound() float64 {
	if b.k <= 0 || len(b.items) < b.k {
		return math.Inf(1)
	}
	return b.items[0].Dist
}

// Sorted returns the kept candidates in final ranked order.
func (b *boundedTopK) Sorted() []Candidate {
	out := make([]Candidate, len(b.items))
	copy(out, b.items)
	sort.Slice(out, func(i, j int) bool { return candidateLess(out[i], out[j]) })
	return out
}
