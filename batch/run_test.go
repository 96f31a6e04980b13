package batch

import (
	"math"
	"testing"

	"github.com/mhall24/virtqueue-sim/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lightConfig() PointConfig {
	return PointConfig{
		NumReplications: 3,
		N:               2,
		C:               2,
		S:               1,
		Rs:              2,
		FClk:            1,
		ADist:           "M",
		Lambd:           0.1,
		SimClocks:       500,
	}
}

func TestPointConfig_ValidateRejectsBadGeometry(t *testing.T) {
	cfg := lightConfig()
	cfg.C = 3
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidParameter)
}

func TestRunReplication_ProducesOneRecordPerStream(t *testing.T) {
	cfg := lightConfig()
	records, ok, err := RunReplication(cfg, 1)
	require.NoError(t, err)
	if !ok {
		t.Skip("replication discarded as unstable for this seed")
	}
	require.Len(t, records, cfg.N)
	for _, r := range records {
		assert.GreaterOrEqual(t, r.TotalArrivals, 0)
		assert.GreaterOrEqual(t, r.MeanJobsWaiting, 0.0)
	}
}

func TestRunReplications_AggregatesAcrossReplicationsIntoSummary(t *testing.T) {
	cfg := lightConfig()
	perStream, err := RunReplications(cfg)
	require.NoError(t, err)
	require.Len(t, perStream, cfg.N)

	m, err := model.NewFromRho(cfg.N, cfg.C, cfg.S, cfg.Rs, cfg.TClk(), 0.3)
	require.NoError(t, err)

	for _, records := range perStream {
		if len(records) == 0 {
			continue
		}
		summary, err := Summarize(records, m)
		require.NoError(t, err)
		assert.Equal(t, len(records), summary.NumReplications)
		assert.False(t, math.IsNaN(summary.JobsWaiting.Mean))
		assert.Same(t, m, summary.Model)

		total := 0.0
		for _, v := range summary.NormalizedMeanHistogramJobsWaiting {
			total += v
		}
		if len(summary.NormalizedMeanHistogramJobsWaiting) > 0 {
			assert.InDelta(t, 1.0, total, 1e-9)
		}
	}
}

func TestSummarize_ErrorsOnNoRecords(t *testing.T) {
	_, err := Summarize(nil, nil)
	assert.ErrorIs(t, err, ErrAllReplicationsUnstable)
}

func TestMeanSdom_SingleSampleHasNaNSdom(t *testing.T) {
	ms := meanSdom([]float64{4.0})
	assert.Equal(t, 4.0, ms.Mean)
	assert.True(t, math.IsNaN(ms.Sdom))
}

func TestMeanHistogram_ZipsRaggedHistogramsWithZeroFill(t *testing.T) {
	got := meanHistogram([][]float64{{2, 4}, {6}})
	assert.Equal(t, []float64{4, 2}, got)
}

func TestNormHistogram_SumsToOne(t *testing.T) {
	got := normHistogram([]float64{1, 1, 2})
	sum := 0.0
	for _, v := range got {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}
