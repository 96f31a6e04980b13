package dist

import (
	"math"
	"math/rand"
)

// Distribution is the polymorphic surface every arrival/service process
// distribution satisfies: analytic moments plus a random-variate generator.
type Distribution interface {
	// Mean returns the distribution's expected value, 1/lambd for every
	// variant in this package.
	Mean() float64
	Variance() float64
	Stdev() float64
	// CoeffOfVariation returns Stdev()/Mean().
	CoeffOfVariation() float64
	// Moment returns the n-th raw moment, or ErrNotImplementedMoment if the
	// distribution has no closed form for that order.
	Moment(n int) (float64, error)
	// Sample draws one random variate using rng as the source of randomness.
	// There is no implicit process-wide RNG: callers always supply rng
	// explicitly (spec.md §9, "Global RNG default").
	Sample(rng *rand.Rand) float64
}

func stdevFromVariance(variance float64) float64 {
	if variance < 0 {
		return math.NaN()
	}
	return math.Sqrt(variance)
}
