package dist

import "math/rand"

// WeightedChoice draws an index in [0, k) with probability proportional to
// the supplied weights. It is the branch chooser backing Hyperexponential
// (spec.md §4.1), ported from distributions.py: WeightedChoice.
type WeightedChoice struct {
	// normWeights holds the first k-1 weights normalized by the total sum;
	// the k-th outcome is the implicit remainder.
	normWeights []float64
}

// NewWeightedChoice builds a WeightedChoice over the given weights. Weights
// need not sum to 1; they are normalized here. Panics if weights is empty,
// matching the Python source's assert len(weights) >= 1.
func NewWeightedChoice(weights []float64) *WeightedChoice {
	if len(weights) < 1 {
		panic("dist: WeightedChoice requires at least one weight")
	}
	total := 0.0
	for _, w := range weights {
		total += w
	}
	norm := make([]float64, len(weights)-1)
	for i := 0; i < len(weights)-1; i++ {
		norm[i] = weights[i] / total
	}
	return &WeightedChoice{normWeights: norm}
}

// Choice maps a uniform sample in [0,1) to an outcome index. The smallest i
// such that sample < cumulative-prefix-sum up to i is returned; otherwise
// the last index is returned.
func (w *WeightedChoice) Choice(sample float64) int {
	for i, wi := range w.normWeights {
		if sample < wi {
			return i
		}
		sample -= wi
	}
	return len(w.normWeights)
}

// Sample draws a uniform value from rng and maps it to an outcome index.
func (w *WeightedChoice) Sample(rng *rand.Rand) int {
	return w.Choice(rng.Float64())
}
