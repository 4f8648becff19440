package feedopt

import "sort"

// storyList keeps live stories ordered by non-increasing scaled score,
// stable with respect to earlier insertions when tied.
type storyList struct {
	items []*Story
}

// insert places s at the first position whose scaled score is strictly
// less than s's, preserving the non-increasing order and the stability
// of earlier ties (a later tie is inserted after — never before — an
// existing equal-scaled-score story).
func (l *storyList) insert(s *Story) {
	i := sort.Search(len(l.items), func(i int) bool {
		return l.items[i].ScaledScore < s.ScaledScore
	})
	l.items = append(l.items, nil)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = s
}

// purge removes every story whose creation time is strictly older than
// minTime (a story with t == minTime is kept), returning the removed
// stories so the caller can adjust any best subset that held them.
func (l *storyList) purge(minTime int64) []*Story {
	kept := l.items[:0:0]
	var removed []*Story
	for _, s := range l.items {
		if s.T < minTime {
			removed = append(removed, s)
		} else {
			kept = append(kept, s)
		}
	}
	l.items = kept
	return removed
}
