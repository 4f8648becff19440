package nearby

import "github.com/katalvlaran/combsearch/nearby/sstree"

// Engine answers top-k queries over a fixed set of topics and questions,
// backed by an SS-tree spatial index over the topics.
type Engine struct {
	tree    *sstree.Tree
	reverse map[int64][]int64 // topic id -> question ids that reference it
}

// Build constructs an Engine by inserting every topic into a fresh SS-tree
// and indexing each question against the topics it references.
func Build(topics []Topic, questions []Question) *Engine {
	tree := sstree.New()
	for _, t := range topics {
		tree.Insert(sstree.Point{ID: t.ID, X: t.X, Y: t.Y})
	}

	reverse := make(map[int64][]int64)
	for _, q := range questions {
		for _, tid := range q.Topics {
			reverse[tid] = append(reverse[tid], q.ID)
		}
	}

	return &Engine{tree: tree, reverse: reverse}
}

// topicVisitor adapts a boundedTopK to sstree.Visitor for direct topic
// queries: every visited point is a candidate in its own right.
type topicVisitor struct{ top *boundedTopK }

func (v topicVisitor) Bound() float64 { return v.top.Bound() }
func (v topicVisitor) Visit(p sstree.Point, dist float64) {
	v.top.Update(p.ID, dist)
}

// questionVisitor adapts a boundedTopK to sstree.Visitor for question
// queries: a visited topic point updates every question that references
// it with the topic's distance, per the reverse index.
type questionVisitor struct {
	top     *boundedTopK
	reverse map[int64][]int64
}

func (v questionVisitor) Bound() float64 { return v.top.Bound() }
func (v questionVisitor) Visit(p sstree.Point, dist float64) {
	for _, qid := range v.reverse[p.ID] {
		v.top.Update(qid, dist)
	}
}

// QueryTopics returns up to k topic ids nearest (x, y), ranked by the
// tolerance tie-break rule.
func (e *Engine) QueryTopics(k int, x, y float64) []int64 {
	if k <= 0 {
		return nil
	}
	top := newBoundedTopK(k)
	e.tree.Search(x, y, topicVisitor{top: top})
	return ids(top.Sorted())
}

// QueryQuestions returns up to k question ids nearest (x, y), where a
// question's distance is the minimum distance from any of its topics.
// Questions with no relevant topics never appear.
func (e *Engine) QueryQuestions(k int, x, y float64) []int64 {
	if k <= 0 {
		return nil
	}
	top := newBoundedTopK(k)
	e.tree.Search(x, y, questionVisitor{top: top, reverse: e.reverse})
	return ids(top.Sorted())
}

func ids(cands []Candidate) []int64 {
	out := make([]int64, len(cands))
	for i, c := range cands {
		out[i] = c.ID
	}
	return out
}
