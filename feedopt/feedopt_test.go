// Package feedopt_test validates the Feed Optimizer event engine against
// its end-to-end scenarios plus its invariant and round-trip properties.
package feedopt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/combsearch/feedopt"
)

func runFeedopt(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := feedopt.Run(strings.NewReader(input), &out)
	require.NoError(t, err)
	return out.String()
}

func TestFeedoptScenario1(t *testing.T) {
	input := "4 3 100\nS 1 60 10\nS 2 100 20\nR 2\nR 10\n"
	got := runFeedopt(t, input)
	assert.Equal(t, "160 2 1 2\n0 0\n", got)
}

func TestFeedoptScenario2(t *testing.T) {
	input := "3 10 7\nS 1 10 4\nS 2 6 3\nR 3\n"
	got := runFeedopt(t, input)
	assert.Equal(t, "16 2 1 2\n", got)
}

func TestFeedoptScenario3(t *testing.T) {
	input := "3 10 6\nS 1 10 4\nS 2 6 3\nR 3\n"
	got := runFeedopt(t, input)
	assert.Equal(t, "10 1 1\n", got)
}

func TestFeedoptEmptyReload(t *testing.T) {
	got := runFeedopt(t, "1 10 100\nR 5\n")
	assert.Equal(t, "0 0\n", got)
}

func TestFeedoptDropsOversizedStory(t *testing.T) {
	got := runFeedopt(t, "2 10 5\nS 1 1000 6\nR 1\n")
	assert.Equal(t, "0 0\n", got)
}

func TestFeedoptStoryKeptAtExactWindowBoundary(t *testing.T) {
	// A story with t == reload_t - W is kept (strict inequality).
	got := runFeedopt(t, "2 3 100\nS 1 5 1\nR 4\n")
	assert.Equal(t, "5 1 1\n", got)
}

func TestFeedoptIdempotentConsecutiveReloads(t *testing.T) {
	got := runFeedopt(t, "3 10 100\nS 1 10 4\nR 5\nR 5\n")
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, lines[0], lines[1])
}

func TestFeedoptRecomputeMatchesIncremental(t *testing.T) {
	// Drive the engine directly so we can cross-check Recompute() against
	// the incrementally maintained best.
	e := feedopt.NewEngine(5, 50)
	e.Store(1, 30, 10)
	e.Store(2, 90, 40)
	e.Store(3, 5, 3)
	got := e.Reload(3)
	want := e.Recompute()
	assert.Equal(t, want, got)
}

func TestFeedoptBacktracksPastGreedyFirstPick(t *testing.T) {
	// Capacity 10 over (6,h6),(5,h5),(5,h5): the greedy forward pass takes
	// only the first story (score 6), but excluding it frees room for both
	// remaining stories (score 5+5=10), which is the true optimum.
	got := runFeedopt(t, "4 10 10\nS 1 6 6\nS 1 5 5\nS 1 5 5\nR 1\n")
	assert.Equal(t, "10 2 2 3\n", got)
}

func TestFeedoptMonotoneOnRemoval(t *testing.T) {
	e := feedopt.NewEngine(2, 100)
	e.Store(1, 50, 10)
	before := e.Reload(1)
	after := e.Reload(10) // the story is purged now (10-2=8 > 1)
	assert.LessOrEqual(t, after.Score, before.Score)
}
