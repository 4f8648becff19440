// Package stepladder finds the highest-scoring "stepladder": an odd-length
// sequence of equal-length, pairwise-distinct words, centred on a word of
// maximal score, each step outward at Hamming distance 1 from the previous
// one and of strictly lower letter score, built by branch-and-bound DFS
// over the dictionary's distance-1 adjacency.
package stepladder

// letterScore is the fixed Scrabble-style per-letter value table.
var letterScore = map[byte]int{
	'A': 1, 'E': 1, 'I': 1, 'L': 1, 'N': 1, 'O': 1, 'R': 1, 'S': 1, 'T': 1, 'U': 1,
	'D': 2, 'G': 2,
	'B': 3, 'C': 3, 'M': 3, 'P': 3,
	'F': 4, 'H': 4, 'V': 4, 'W': 4, 'Y': 4,
	'K': 5,
	'J': 8, 'X': 8,
	'Q': 10, 'Z': 10,
}

// wordScore sums the letter table over w.
func wordScore(w string) int {
	score := 0
	for i := 0; i < len(w); i++ {
		score += letterScore[w[i]]
	}
	return score
}

// word is a dictionary entry with its precomputed score.
type word struct {
	text  string
	score int
}
