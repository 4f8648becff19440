package stepladder

import "sort"

// buildDictionary filters raw to entries of exactly length k, scores them,
// and orders them by descending score — seeds tried first are the ones
// most likely to raise the best-known bound early, sharpening every later
// seed's prune.
func buildDictionary(raw []string, k int) []word {
	words := make([]word, 0, len(raw))
	for _, w := range raw {
		if len(w) != k {
			continue
		}
		words = append(words, word{text: w, score: wordScore(w)})
	}
	sort.Slice(words, func(i, j int) bool { return words[i].score > words[j].score })
	return words
}
