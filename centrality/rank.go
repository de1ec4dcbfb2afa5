// SPDX-License-Identifier: MIT

package centrality

import "container/heap"

// Ranked pairs a node with its score and its position in the nodelist.
type Ranked[K comparable] struct {
	Node  K
	Score float64
	Index int
}

// TopK returns the k highest-scoring nodes, best first. Ties are broken by
// nodelist order, so the result is deterministic even though scores is a map.
// Nodes missing from scores are skipped. k <= 0 returns nil; k > N returns all.
//
// Complexity: O(N log k) time, O(k) space (bounded min-heap).
func TopK[K comparable](nodelist []K, scores map[K]float64, k int) []Ranked[K] {
	if k <= 0 {
		return nil
	}

	h := make(rankedHeap[K], 0, min(k, len(nodelist)))
	var (
		s  float64
		ok bool
		r  Ranked[K]
	)
	for i, id := range nodelist {
		if s, ok = scores[id]; !ok {
			continue
		}
		r = Ranked[K]{Node: id, Score: s, Index: i}
		if h.Len() < k {
			heap.Push(&h, r)
			continue
		}
		if worse(h[0], r) {
			h[0] = r
			heap.Fix(&h, 0)
		}
	}

	out := make([]Ranked[K], h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(Ranked[K])
	}

	return out
}

// worse reports whether a ranks below b: lower score, or equal score and later in the nodelist.
func worse[K comparable](a, b Ranked[K]) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return a.Index > b.Index
}

// rankedHeap is a min-heap on rank: the root is the worst kept entry.
type rankedHeap[K comparable] []Ranked[K]

func (h rankedHeap[K]) Len() int           { return len(h) }
func (h rankedHeap[K]) Less(i, j int) bool { return worse(h[i], h[j]) }
func (h rankedHeap[K]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *rankedHeap[K]) Push(x any) {
	*h = append(*h, x.(Ranked[K]))
}

func (h *rankedHeap[K]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
