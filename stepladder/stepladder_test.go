// Package stepladder_test validates the branch-and-bound search against
// its end-to-end scenario plus the structural invariants a winning ladder
// must satisfy.
package stepladder_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/combsearch/stepladder"
)

func runStepladder(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := stepladder.Run(strings.NewReader(input), &out)
	require.NoError(t, err)
	return out.String()
}

func TestStepladderScenario1(t *testing.T) {
	input := "3\n5\nCAT\nDAT\nBAT\nBAD\nCAD\n"
	got := runStepladder(t, input)
	assert.Equal(t, "6\n", got)
}

func TestStepladderEmptyDictionary(t *testing.T) {
	got := runStepladder(t, "3\n0\n")
	assert.Equal(t, "0\n", got)
}

func TestStepladderNoLengthKWords(t *testing.T) {
	got := runStepladder(t, "4\n2\nCAT\nDOG\n")
	assert.Equal(t, "0\n", got)
}

func TestStepladderExtendsPastSeedWhenPossible(t *testing.T) {
	// BAT scores 5 (B=3,A=1,T=1); OAT and EAT each score 3 (vowel+A+T) and
	// both differ from BAT only at the first letter, so either can flank
	// it. Centring on BAT and flanking it with OAT and EAT beats any single
	// word: 5+3+3=11.
	words := []string{"BAT", "OAT", "EAT"}
	input := "3\n" + strconv.Itoa(len(words)) + "\n" + strings.Join(words, "\n") + "\n"
	got := runStepladder(t, input)
	assert.Equal(t, "11\n", got)
}

func TestSolveBestReturnsStructurallyValidLadder(t *testing.T) {
	score, ladder := stepladder.SolveBest([]string{"CAT", "DAT", "BAT", "BAD", "CAD"}, 3)
	require.NotEmpty(t, ladder)
	assert.Equal(t, 6, score)

	seen := make(map[string]bool)
	for _, w := range ladder {
		require.False(t, seen[w], "word %q repeated in ladder", w)
		seen[w] = true
		require.Len(t, w, 3)
	}
	for i := 1; i < len(ladder); i++ {
		assert.True(t, hammingOne(ladder[i-1], ladder[i]), "%q and %q are not adjacent", ladder[i-1], ladder[i])
	}
}

func hammingOne(a, b string) bool {
	diff := 0
	for i := range a {
		if a[i] != b[i] {
			diff++
		}
	}
	return diff == 1
}

