package recommend

import (
	"container/heap"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// RankerConfig holds the top-N default for one ranking pass.
type RankerConfig struct {
	TopN int
}

func DefaultRankerConfig() RankerConfig {
	return RankerConfig{TopN: 3}
}

// ScoredIndex pairs a batch position with its mean-similarity score.
type ScoredIndex struct {
	Index int
	Score float64
}

// scoreHeap is a min-heap keeping the running top N. Among equal scores
// the larger batch index sits closer to the root, so later arrivals are
// evicted first and ranking stays stable in batch order.
type scoreHeap []ScoredIndex

func (h scoreHeap) Len() int { return len(h) }
func (h scoreHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].Index > h[j].Index
}
func (h scoreHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *scoreHeap) Push(x interface{}) {
	*h = append(*h, x.(ScoredIndex))
}
func (h *scoreHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// SimilarityMatrix computes the full pairwise cosine matrix over the
// batch. Zero-norm vectors have zero similarity to everything, including
// themselves.
func SimilarityMatrix(vectors []FeatureVector) *mat.Dense {
	n := len(vectors)
	if n == 0 {
		return nil
	}
	norms := make([]float64, n)
	for i, v := range vectors {
		norms[i] = floats.Norm(v, 2)
	}
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s := cosine(vectors[i], vectors[j], norms[i], norms[j])
			m.Set(i, j, s)
			m.Set(j, i, s)
		}
	}
	return m
}

func cosine(a, b FeatureVector, normA, normB float64) float64 {
	if normA == 0 || normB == 0 || len(a) != len(b) {
		return 0
	}
	return floats.Dot(a, b) / (normA * normB)
}

// Rank scores every item by its mean similarity to the whole batch
// (itself included) and returns the top N positions, descending by score
// with batch order breaking ties. An empty or all-zero-norm batch yields
// an empty result.
func Rank(vectors []FeatureVector, cfg RankerConfig) []ScoredIndex {
	sim := SimilarityMatrix(vectors)
	if sim == nil {
		return nil
	}

	anyNorm := false
	for _, v := range vectors {
		if floats.Norm(v, 2) > 0 {
			anyNorm = true
			break
		}
	}
	if !anyNorm {
		return nil
	}

	n := len(vectors)
	topN := cfg.TopN
	if topN <= 0 {
		topN = DefaultRankerConfig().TopN
	}
	if topN > n {
		topN = n
	}

	h := &scoreHeap{}
	heap.Init(h)
	for i := 0; i < n; i++ {
		score := floats.Sum(sim.RawRowView(i)) / float64(n)
		heap.Push(h, ScoredIndex{Index: i, Score: score})
		if h.Len() > topN {
			heap.Pop(h)
		}
	}

	// Popping yields worst-first; fill from the back for the final order.
	out := make([]ScoredIndex, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(ScoredIndex)
	}
	return out
}
