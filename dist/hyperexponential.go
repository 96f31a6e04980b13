package dist

import (
	"fmt"
	"math/rand"
)

// Hyperexponential is k parallel independent exponential stages; one branch
// is chosen at random per sample, with probability pi and rate scaled so
// the overall mean is 1/lambd (spec.md §4.1).
type Hyperexponential struct {
	lambd         float64
	probabilities []float64
	lambdas       []float64
	choice        *WeightedChoice
}

// NewHyperexponential builds a Hyperexponential(lambd, lambdWeights,
// probWeights) distribution. lambdWeights and probWeights must be the same
// length.
func NewHyperexponential(lambd float64, lambdWeights, probWeights []float64) (*Hyperexponential, error) {
	if len(lambdWeights) != len(probWeights) {
		return nil, fmt.Errorf("%w: Hyperexponential WL and WP must have equal length, got %d and %d",
			ErrInvalidParameter, len(lambdWeights), len(probWeights))
	}
	if len(probWeights) < 1 {
		return nil, fmt.Errorf("%w: Hyperexponential requires at least one weight", ErrInvalidParameter)
	}

	divisor := 0.0
	for _, p := range probWeights {
		divisor += p
	}
	probabilities := make([]float64, len(probWeights))
	for i, p := range probWeights {
		probabilities[i] = p / divisor
	}

	multiplier := 0.0
	for i, p := range probabilities {
		multiplier += p / lambdWeights[i]
	}
	lambdas := make([]float64, len(lambdWeights))
	for i, w := range lambdWeights {
		lambdas[i] = w * multiplier * lambd
	}

	return &Hyperexponential{
		lambd:         lambd,
		probabilities: probabilities,
		lambdas:       lambdas,
		choice:        NewWeightedChoice(probWeights),
	}, nil
}

func (d *Hyperexponential) Mean() float64 { return 1 / d.lambd }

func (d *Hyperexponential) Variance() float64 {
	m2, _ := d.Moment(2)
	mean := d.Mean()
	return m2 - mean*mean
}

func (d *Hyperexponential) Stdev() float64 { return stdevFromVariance(d.Variance()) }

func (d *Hyperexponential) CoeffOfVariation() float64 {
	return d.Stdev() / d.Mean()
}

func (d *Hyperexponential) Moment(n int) (float64, error) {
	nFact := factorial(n)
	sum := 0.0
	for i, p := range d.probabilities {
		sum += nFact / pow(d.lambdas[i], n) * p
	}
	return sum, nil
}

func (d *Hyperexponential) Sample(rng *rand.Rand) float64 {
	branch := d.choice.Sample(rng)
	return rng.ExpFloat64() / d.lambdas[branch]
}

// Lambdas returns the per-branch exponential rates: the configured lambda
// weights scaled so that the overall mean is 1/lambd.
func (d *Hyperexponential) Lambdas() []float64 { return d.lambdas }

// Probabilities returns the normalized branch-selection probabilities.
func (d *Hyperexponential) Probabilities() []float64 { return d.probabilities }
