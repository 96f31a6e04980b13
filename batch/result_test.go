package batch

import (
	"math"
	"testing"

	"github.com/mhall24/virtqueue-sim/queueing"
	"github.com/mhall24/virtqueue-sim/segseries"
	"github.com/stretchr/testify/assert"
)

func TestWaitServiceCov_MatchesKnownSampleCovariance(t *testing.T) {
	stats := queueing.NewQueueStats()
	stats.JobWaitTime = segseries.DataArray{1, 2, 3, 4}
	stats.JobServiceTime = segseries.DataArray{2, 4, 5, 8}

	// Bessel-corrected (ddof=1) sample covariance, matching numpy's
	// default np.cov behavior and DataArray.Var's convention: sum of
	// (wait_i - mean_wait)*(service_i - mean_service) over (n-1).
	got := waitServiceCov(stats)
	assert.InDelta(t, 9.5/3.0, got, 1e-12)
}

func TestWaitServiceCov_NaNBelowTwoSamples(t *testing.T) {
	stats := queueing.NewQueueStats()
	stats.JobWaitTime = segseries.DataArray{1}
	stats.JobServiceTime = segseries.DataArray{2}

	assert.True(t, math.IsNaN(waitServiceCov(stats)))
}
