package segseries

import "math"

// Point is a single breakpoint: the trajectory holds count C starting at
// time T until the next breakpoint (or indefinitely, for the last one).
type Point struct {
	T, C float64
}

// Series is a piecewise-constant time-count trajectory, ported from
// queueing_simulation_common.py's TimeCountSeries. It is the common
// representation behind every time-weighted statistic this module
// produces: jobs waiting, jobs receiving service, jobs in system.
type Series struct {
	points []Point
}

// NewSeries returns an empty series.
func NewSeries() *Series {
	return &Series{}
}

// Points returns the breakpoints currently recorded, oldest first. The
// returned slice is owned by the caller and safe to read; do not mutate it.
func (s *Series) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Len reports the number of breakpoints recorded so far.
func (s *Series) Len() int { return len(s.points) }

// Append records that the count became c at time t. Time must be
// non-decreasing across calls. Two coalescing rules keep the trajectory
// minimal, mirroring TimeCountSeries.append exactly:
//
//   - if the previous breakpoint shares this timestamp, it is replaced
//     (the count changed again before any time elapsed);
//   - otherwise, if the previous breakpoint holds the same count as the one
//     before it, the previous breakpoint is redundant and is dropped.
//
// The newly appended breakpoint is always kept, so the last breakpoint
// marks the end of the observed window.
func (s *Series) Append(t, c float64) {
	n := len(s.points)
	switch {
	case n == 1:
		if s.points[n-1].T == t {
			s.points = s.points[:n-1]
		}
	case n >= 2:
		prev := s.points[n-1]
		prevPrev := s.points[n-2]
		if prev.T == t || prev.C == prevPrev.C {
			s.points = s.points[:n-1]
		}
	}
	s.points = append(s.points, Point{T: t, C: c})
}

// Moment returns the time-weighted n-th moment of f(count) over the
// observed window, i.e. the time-average of f(count)^n weighted by how
// long each count value held. f defaults to the identity when nil. Fewer
// than two breakpoints, or a zero-width window, yield NaN: there is no
// window to average over.
func (s *Series) Moment(n int, f func(float64) float64) float64 {
	if f == nil {
		f = func(x float64) float64 { return x }
	}
	if len(s.points) < 2 {
		return math.NaN()
	}

	tFront := s.points[0].T
	t, c := s.points[0].T, s.points[0].C
	result := 0.0
	for i := 1; i < len(s.points); i++ {
		nt, nc := s.points[i].T, s.points[i].C
		result += math.Pow(f(c), float64(n)) * (nt - t)
		t, c = nt, nc
	}

	width := t - tFront
	if width == 0 {
		return math.NaN()
	}
	return result / width
}

// Mean returns the time-weighted average count.
func (s *Series) Mean() float64 { return s.Moment(1, nil) }

// Var returns the time-weighted variance of the count.
func (s *Series) Var() float64 {
	m1 := s.Moment(1, nil)
	m2 := s.Moment(2, nil)
	return m2 - m1*m1
}

// Std returns the time-weighted standard deviation of the count.
func (s *Series) Std() float64 { return math.Sqrt(s.Var()) }
