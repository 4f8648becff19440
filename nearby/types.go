// Package nearby answers a stream of top-k proximity queries over two
// populations — topics (2-D points) and questions (groups of up to ten
// topics) — backed by an SS-tree spatial index over the topics.
package nearby

// Topic is a single indexed 2-D point.
type Topic struct {
	ID   int64
	X, Y float64
}

// Question is a named group of relevant topic ids. A question's distance
// to a query point is the minimum distance from any of its topics; a
// question with no relevant topics never appears in any answer.
type Question struct {
	ID     int64
	Topics []int64
}

// tolerance is the distance slack under which two candidates are treated
// as equal; under equality ties resolve by descending id.
const tolerance = 0.001
