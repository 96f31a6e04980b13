package segseries

import "math"

// interval is a half-open [tStart, tEnd) run of constant count c. The
// final interval of a series is open-ended (tEnd = +Inf), matching
// TimeCountSeries.get_segments: the last recorded count is assumed to
// persist until proven otherwise.
type interval struct {
	tStart, tEnd, c float64
}

func toIntervals(points []Point) []interval {
	if len(points) == 0 {
		return nil
	}
	out := make([]interval, 0, len(points))
	for i := 0; i < len(points)-1; i++ {
		out = append(out, interval{tStart: points[i].T, tEnd: points[i+1].T, c: points[i].C})
	}
	last := points[len(points)-1]
	out = append(out, interval{tStart: last.T, tEnd: math.Inf(1), c: last.C})
	return out
}

type rawPoint struct {
	t, c float64
}

// multiplyRaw walks two interval lists in lockstep and emits a breakpoint
// at every moment either side changes value, carrying the product of the
// two counts. This is TimeCountSeries._multiply's do_multiply.
func multiplyRaw(left, right []Point) []rawPoint {
	segL := toIntervals(left)
	segR := toIntervals(right)
	if len(segL) == 0 || len(segR) == 0 {
		return nil
	}

	i, j := 0, 0
	var raw []rawPoint
	for i < len(segL) && j < len(segR) {
		l := segL[i]
		r := segR[j]
		if l.tEnd <= r.tStart {
			i++
			continue
		}
		if r.tEnd <= l.tStart {
			j++
			continue
		}

		t := l.tStart
		if r.tStart > t {
			t = r.tStart
		}
		raw = append(raw, rawPoint{t: t, c: l.c * r.c})

		switch {
		case l.tEnd < r.tEnd:
			i++
		case r.tEnd < l.tEnd:
			j++
		default:
			i++
			j++
		}
	}
	return raw
}

// removeRedundant drops consecutive breakpoints that repeat the previous
// count, keeping only the first occurrence -- except the very last raw
// breakpoint is always kept as a trailing marker, mirroring
// do_remove_redundant's trailing re-yield.
func removeRedundant(raw []rawPoint) []Point {
	if len(raw) == 0 {
		return nil
	}
	out := make([]Point, 0, len(raw))
	haveOut := false
	var outC float64
	for _, rp := range raw {
		if !haveOut || outC != rp.c {
			out = append(out, Point{T: rp.t, C: rp.c})
			outC = rp.c
			haveOut = true
		}
	}
	last := raw[len(raw)-1]
	if out[len(out)-1].T != last.t {
		out = append(out, Point{T: last.t, C: last.c})
	}
	return out
}

// Product returns the segment-intersection product of s and other: a new
// series whose count at every instant is the product of the two input
// counts at that instant. Its mean is E[XY], the building block for Cov.
func (s *Series) Product(other *Series) *Series {
	return &Series{points: removeRedundant(multiplyRaw(s.points, other.points))}
}

// Cov returns the time-weighted covariance of s and other's counts. Unlike
// the generator-based Python original, a stored Series can be traversed
// any number of times, so no duplicate iterator plumbing is needed.
func (s *Series) Cov(other *Series) float64 {
	return s.Product(other).Mean() - s.Mean()*other.Mean()
}
