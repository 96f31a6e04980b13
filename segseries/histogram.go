package segseries

import "fmt"

// Histogram returns the time spent at each integer count value, indexed by
// count (histogram[n] is total time spent with count == n), ported from
// TimeCountSeries.histogram. Count values are assumed to be non-negative
// integers even though they are stored as float64. When normalize is true
// the result is divided by the total observed window and sums to 1; that
// requires a non-zero window, or ErrEmptyOrZeroWindow is returned.
func (s *Series) Histogram(normalize bool) ([]float64, error) {
	totals := make(map[int]float64)
	maxC := 0

	var t, tFront float64
	haveFirst := len(s.points) > 0
	var c float64
	if haveFirst {
		t = s.points[0].T
		tFront = t
		c = s.points[0].C
	}

	for i := 1; i < len(s.points); i++ {
		nt, nc := s.points[i].T, s.points[i].C
		ci := int(c)
		totals[ci] += nt - t
		if ci > maxC {
			maxC = ci
		}
		t, c = nt, nc
	}

	hist := make([]float64, maxC+1)
	for n := 0; n <= maxC; n++ {
		hist[n] = totals[n]
	}

	if normalize {
		var total float64
		if haveFirst {
			total = t - tFront
		}
		if total == 0 {
			return nil, fmt.Errorf("segseries: normalize histogram: %w", ErrEmptyOrZeroWindow)
		}
		for i := range hist {
			hist[i] /= total
		}
	}
	return hist, nil
}
