package stepladder

// buildAdjacency returns, for every index into words, the indices of the
// words at Hamming distance exactly 1 — a pairwise scan, adequate for the
// small dictionaries (hundreds of words) this core targets.
func buildAdjacency(words []word) [][]int {
	n := len(words)
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if hamming1(words[i].text, words[j].text) {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}
	return adj
}

// hamming1 reports whether a and b (assumed equal length) differ in
// exactly one position.
func hamming1(a, b string) bool {
	diff := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diff++
			if diff > 1 {
				return false
			}
		}
	}
	return diff == 1
}
