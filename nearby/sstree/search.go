package sstree

import "container/heap"

// Tolerance is the distance slack under which two candidates are treated
// as tied; callers performing top-k ranking on Visit results should use
// the same value for their own tie-breaking.
const Tolerance = 0.001

// Visitor drives a best-first Search: Bound reports the current cutoff
// distance (candidates with a lower bound beyond Bound()+Tolerance are
// pruned), and Visit receives every point not pruned, in roughly
// increasing distance order.
type Visitor interface {
	Bound() float64
	Visit(p Point, dist float64)
}

type nodeItem struct {
	n     *node
	bound float64
}

type nodeHeap []nodeItem

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].bound < h[j].bound }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(nodeItem)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Search enumerates the tree's points against the query point (qx, qy),
// descending into regions in order of their lower-bound distance and
// stopping a branch as soon as it can no longer beat v.Bound().
func (t *Tree) Search(qx, qy float64, v Visitor) {
	if t.root == nil {
		return
	}

	pq := &nodeHeap{{n: t.root, bound: lowerBound(t.root, qx, qy)}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(nodeItem)
		if item.bound > v.Bound()+Tolerance {
			break // every remaining node's bound is >= this one's
		}

		n := item.n
		if n.leaf {
			for _, p := range n.points {
				v.Visit(p, dist(p.X, p.Y, qx, qy))
			}
			continue
		}

		bound := v.Bound()
		for _, c := range n.children {
			if lb := lowerBound(c, qx, qy); lb <= bound+Tolerance {
				heap.Push(pq, nodeItem{n: c, bound: lb})
			}
		}
	}
}
