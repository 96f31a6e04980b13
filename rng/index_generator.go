package rng

import "math/rand"

// IndexGenerator yields substream indices; it is the only source of
// substream assignments (spec.md §4.2), ported from mt19937_substreams.py:
// generate_substream_indices.
type IndexGenerator struct {
	indices []int
	pos     int
}

// NewSequentialIndexGenerator yields start, start+1, ..., nstreams-1, then
// wraps to 0, 1, ..., start-1, repeating indefinitely.
func NewSequentialIndexGenerator(nstreams, start int) *IndexGenerator {
	indices := make([]int, 0, nstreams)
	for i := start; i < nstreams; i++ {
		indices = append(indices, i)
	}
	for i := 0; i < start; i++ {
		indices = append(indices, i)
	}
	return &IndexGenerator{indices: indices}
}

// NewShuffledIndexGenerator yields a fixed random permutation of
// 0..nstreams-1, repeating that permutation indefinitely once exhausted.
func NewShuffledIndexGenerator(nstreams int, rng *rand.Rand) *IndexGenerator {
	indices := make([]int, nstreams)
	for i := range indices {
		indices[i] = i
	}
	rng.Shuffle(nstreams, func(i, j int) { indices[i], indices[j] = indices[j], indices[i] })
	return &IndexGenerator{indices: indices}
}

// Next returns the next substream index in sequence.
func (g *IndexGenerator) Next() int {
	idx := g.indices[g.pos%len(g.indices)]
	g.pos++
	return idx
}
