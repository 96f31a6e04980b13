// Package segseries implements the time-weighted statistics engine: a
// piecewise-constant time-count trajectory ("segment series") supporting
// time-weighted moments, the segment-intersection product of two series
// (for covariance), and occupancy histograms, plus a simple DataArray for
// per-job sample statistics (spec.md §4.3).
package segseries
