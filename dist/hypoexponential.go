package dist

import (
	"fmt"
	"math/rand"
)

// Hypoexponential is a sum of k independent exponential stages with
// separate rates, normalized so the overall mean is 1/lambd (spec.md §4.1).
type Hypoexponential struct {
	lambd   float64
	weights []float64
	lambdas []float64
}

// NewHypoexponential builds a Hypoexponential(lambd, weights) distribution.
// Per-stage rates are lambda_i = w_i * (sum 1/w_j) * lambd.
func NewHypoexponential(lambd float64, weights []float64) (*Hypoexponential, error) {
	if len(weights) < 1 {
		return nil, fmt.Errorf("%w: Hypoexponential requires at least one weight", ErrInvalidParameter)
	}
	multiplier := 0.0
	for _, w := range weights {
		multiplier += 1 / w
	}
	lambdas := make([]float64, len(weights))
	for i, w := range weights {
		lambdas[i] = w * multiplier * lambd
	}
	return &Hypoexponential{lambd: lambd, weights: weights, lambdas: lambdas}, nil
}

func (d *Hypoexponential) Mean() float64 { return 1 / d.lambd }

func (d *Hypoexponential) Variance() float64 {
	sum := 0.0
	for _, l := range d.lambdas {
		sum += 1 / (l * l)
	}
	return sum
}

func (d *Hypoexponential) Stdev() float64 { return stdevFromVariance(d.Variance()) }

func (d *Hypoexponential) CoeffOfVariation() float64 {
	return d.Stdev() / d.Mean()
}

// Moment returns the n-th raw moment for n in {1,2,3}; higher orders are not
// implemented, matching distributions.py: HypoexponentialDistribution.moment.
func (d *Hypoexponential) Moment(n int) (float64, error) {
	switch n {
	case 1:
		return d.Mean(), nil
	case 2:
		mean := d.Mean()
		return d.Variance() + mean*mean, nil
	case 3:
		L := d.lambdas
		k := len(L)
		sum1, sum2, sum3 := 0.0, 0.0, 0.0
		for i := 0; i < k; i++ {
			sum1 += 6 / (L[i] * L[i] * L[i])
		}
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				if i == j {
					continue
				}
				sum2 += 2 / (L[i] * L[i] * L[j])
			}
		}
		sum2 *= float64(nCr(3, 2))
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				if j == i {
					continue
				}
				for h := 0; h < k; h++ {
					if h == i || h == j {
						continue
					}
					sum3 += 1 / (L[i] * L[j] * L[h])
				}
			}
		}
		return sum1 + sum2 + sum3, nil
	default:
		return 0, fmt.Errorf("%w: Hypoexponential moment n=%d", ErrNotImplementedMoment, n)
	}
}

func (d *Hypoexponential) Sample(rng *rand.Rand) float64 {
	sum := 0.0
	for _, l := range d.lambdas {
		sum += rng.ExpFloat64() / l
	}
	return sum
}
