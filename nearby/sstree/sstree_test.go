package sstree_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/combsearch/nearby/sstree"
)

type collector struct {
	found map[int64]float64
}

func (c *collector) Bound() float64 { return math.Inf(1) }
func (c *collector) Visit(p sstree.Point, dist float64) {
	c.found[p.ID] = dist
}

func TestSSTreeFindsEveryPointBelowFanOut(t *testing.T) {
	tree := sstree.New()
	for i := int64(1); i <= 10; i++ {
		tree.Insert(sstree.Point{ID: i, X: float64(i), Y: 0})
	}
	require.Equal(t, 10, tree.Len())

	c := &collector{found: make(map[int64]float64)}
	tree.Search(0, 0, c)
	assert.Len(t, c.found, 10)
	for i := int64(1); i <= 10; i++ {
		assert.InDelta(t, float64(i), c.found[i], 1e-9)
	}
}

func TestSSTreeSplitsPastFanOutAndKeepsAllPoints(t *testing.T) {
	tree := sstree.New(sstree.WithFanOut(4))
	const n = 50
	for i := int64(0); i < n; i++ {
		tree.Insert(sstree.Point{ID: i, X: float64(i % 7), Y: float64(i % 5)})
	}
	require.Equal(t, n, tree.Len())

	c := &collector{found: make(map[int64]float64)}
	tree.Search(0, 0, c)
	assert.Len(t, c.found, n)
}

type topKCollector struct {
	k     int
	items []sstree.Point
	dists []float64
}

func (c *topKCollector) Bound() float64 {
	if len(c.items) < c.k {
		return math.Inf(1)
	}
	worst := 0.0
	for _, d := range c.dists {
		if d > worst {
			worst = d
		}
	}
	return worst
}

func (c *topKCollector) Visit(p sstree.Point, dist float64) {
	c.items = append(c.items, p)
	c.dists = append(c.dists, dist)
}

func TestSSTreeSearchPrunesByBound(t *testing.T) {
	tree := sstree.New(sstree.WithFanOut(4))
	for i := int64(0); i < 40; i++ {
		tree.Insert(sstree.Point{ID: i, X: float64(i), Y: 0})
	}

	c := &topKCollector{k: 3}
	tree.Search(0, 0, c)
	// Once the collector holds k points its bound is the largest distance
	// visited so far, so the search prunes against a finite cutoff; it must
	// still surface the nearest point among whatever it visits.
	seen := make(map[int64]bool)
	for _, p := range c.items {
		seen[p.ID] = true
	}
	assert.True(t, seen[0])
}
