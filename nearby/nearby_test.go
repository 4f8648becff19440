// Package nearby_test validates the Nearby engine against its end-to-end
// scenarios plus the tolerance/tie-break invariant.
package nearby_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/combsearch/nearby"
)

func runNearby(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := nearby.Run(strings.NewReader(input), &out)
	require.NoError(t, err)
	return out.String()
}

func TestNearbyScenario1(t *testing.T) {
	input := "3 0 2\n1 0.0 0.0\n2 1.0 0.0\n3 10.0 0.0\nt 2 0.1 0.0\nt 2 10.0 0.0\n"
	got := runNearby(t, input)
	assert.Equal(t, "1 2\n3 2\n", got)
}

func TestNearbyScenario2Tolerance(t *testing.T) {
	input := "2 0 1\n1 0.0 0.0\n2 0.0005 0.0\nt 2 0.0 0.0\n"
	got := runNearby(t, input)
	assert.Equal(t, "2 1\n", got)
}

func TestNearbyZeroK(t *testing.T) {
	input := "2 0 1\n1 0.0 0.0\n2 1.0 0.0\nt 0 0.0 0.0\n"
	got := runNearby(t, input)
	assert.Equal(t, "\n", got)
}

func TestNearbyQuestionWithNoTopicsNeverAnswers(t *testing.T) {
	input := "2 1 1\n1 0.0 0.0\n2 1.0 0.0\n1 0\nq 2 0.0 0.0\n"
	got := runNearby(t, input)
	assert.Equal(t, "\n", got)
}

func TestNearbyQuestionDistanceIsMinOverTopics(t *testing.T) {
	// Question 1 references topics 1 and 2; its distance to the query is
	// the minimum of the two.
	input := "2 1 1\n1 0.0 0.0\n2 5.0 0.0\n1 2 1 2\nq 1 4.9 0.0\n"
	got := runNearby(t, input)
	assert.Equal(t, "1\n", got)
}

func TestNearbyAllIdsWithinToleranceOfKthAreNotSkipped(t *testing.T) {
	input := "4 0 1\n1 0.0 0.0\n2 1.0 0.0\n3 1.0005 0.0\n4 100.0 0.0\nt 2 0.0 0.0\n"
	got := runNearby(t, input)
	lines := strings.TrimRight(got, "\n")
	assert.Equal(t, "1 3", lines)
}
