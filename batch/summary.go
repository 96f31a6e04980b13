package batch

import (
	"math"

	"github.com/mhall24/virtqueue-sim/model"
	"gonum.org/v1/gonum/stat"
)

// MeanSdom bundles a cross-replication mean with its standard deviation
// of the mean (standard error), the pairing every field of SummaryRecord
// reduces to.
type MeanSdom struct {
	Mean float64
	Sdom float64
}

// SummaryRecord is the per-parameter-point summary of spec.md §6: means
// and standard-deviation-of-mean across replications of each
// ResultRecord total, mean and covariance field, plus the normalized mean
// histogram and the analytic model's outputs. The per-replication Std*
// fields are not aggregated.
type SummaryRecord struct {
	NumReplications int

	TotalArrivals   MeanSdom
	TotalDepartures MeanSdom
	ObservationTime MeanSdom

	JobsWaiting          MeanSdom
	JobsReceivingService MeanSdom
	JobsInSystem         MeanSdom

	CovJobsWaitingAndJobsReceivingService MeanSdom

	JobsInBusyPeriod  MeanSdom
	BusyPeriodDuration MeanSdom
	IdlePeriodDuration MeanSdom

	WaitTime     MeanSdom
	ServiceTime  MeanSdom
	ResponseTime MeanSdom

	CovWaitAndServiceTime MeanSdom

	// NormalizedMeanHistogramJobsWaiting is the per-replication
	// HistogramJobsWaiting arrays zipped (ragged, zero-filled past a
	// shorter replication's tail) and averaged elementwise, then
	// normalized to sum to 1, per queueing_simulation_common.py's
	// mean_histogram/norm_histogram.
	NormalizedMeanHistogramJobsWaiting []float64

	Model *model.Model
}

// meanSdom computes the mean and standard-deviation-of-the-mean of xs via
// gonum/stat, the cross-replication aggregation spec.md §6 calls for.
// With fewer than two samples the standard error is undefined, so Sdom is
// NaN (spec.md §7, kind 3) while Mean still reports the single value.
func meanSdom(xs []float64) MeanSdom {
	n := len(xs)
	if n == 0 {
		return MeanSdom{Mean: math.NaN(), Sdom: math.NaN()}
	}
	mean, std := stat.MeanStdDev(xs, nil)
	if n < 2 {
		return MeanSdom{Mean: mean, Sdom: math.NaN()}
	}
	return MeanSdom{Mean: mean, Sdom: std / math.Sqrt(float64(n))}
}

func field(records []ResultRecord, get func(ResultRecord) float64) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = get(r)
	}
	return out
}

// meanHistogram zip-averages a set of ragged histograms, fillvalue 0 past
// a shorter one's end, ported from queueing_simulation_common.py's
// mean_histogram.
func meanHistogram(histograms [][]float64) []float64 {
	maxLen := 0
	for _, h := range histograms {
		if len(h) > maxLen {
			maxLen = len(h)
		}
	}
	out := make([]float64, maxLen)
	for i := 0; i < maxLen; i++ {
		sum := 0.0
		for _, h := range histograms {
			if i < len(h) {
				sum += h[i]
			}
		}
		out[i] = sum / float64(len(histograms))
	}
	return out
}

// normHistogram divides every bin by the histogram's total, ported from
// queueing_simulation_common.py's norm_histogram.
func normHistogram(histogram []float64) []float64 {
	total := 0.0
	for _, v := range histogram {
		total += v
	}
	out := make([]float64, len(histogram))
	for i, v := range histogram {
		out[i] = v / total
	}
	return out
}

// Summarize reduces a stream's ResultRecords across replications (one
// per replication of the same stream index) into a SummaryRecord,
// attaching the analytic model's prediction for the same parameter
// point. It returns ErrAllReplicationsUnstable if records is empty,
// since RunReplication already discards a replication's records when
// any stream is unstable.
func Summarize(records []ResultRecord, m *model.Model) (*SummaryRecord, error) {
	if len(records) == 0 {
		return nil, ErrAllReplicationsUnstable
	}

	histograms := make([][]float64, len(records))
	for i, r := range records {
		histograms[i] = r.HistogramJobsWaiting
	}

	return &SummaryRecord{
		NumReplications: len(records),

		TotalArrivals:   meanSdom(field(records, func(r ResultRecord) float64 { return float64(r.TotalArrivals) })),
		TotalDepartures: meanSdom(field(records, func(r ResultRecord) float64 { return float64(r.TotalDepartures) })),
		ObservationTime: meanSdom(field(records, func(r ResultRecord) float64 { return r.ObservationTime })),

		JobsWaiting:          meanSdom(field(records, func(r ResultRecord) float64 { return r.MeanJobsWaiting })),
		JobsReceivingService: meanSdom(field(records, func(r ResultRecord) float64 { return r.MeanJobsReceivingService })),
		JobsInSystem:         meanSdom(field(records, func(r ResultRecord) float64 { return r.MeanJobsInSystem })),

		CovJobsWaitingAndJobsReceivingService: meanSdom(field(records, func(r ResultRecord) float64 {
			return r.CovJobsWaitingAndJobsReceivingService
		})),

		JobsInBusyPeriod:   meanSdom(field(records, func(r ResultRecord) float64 { return r.MeanJobsInBusyPeriod })),
		BusyPeriodDuration: meanSdom(field(records, func(r ResultRecord) float64 { return r.MeanBusyPeriodDuration })),
		IdlePeriodDuration: meanSdom(field(records, func(r ResultRecord) float64 { return r.MeanIdlePeriodDuration })),

		WaitTime:     meanSdom(field(records, func(r ResultRecord) float64 { return r.MeanWaitTime })),
		ServiceTime:  meanSdom(field(records, func(r ResultRecord) float64 { return r.MeanServiceTime })),
		ResponseTime: meanSdom(field(records, func(r ResultRecord) float64 { return r.MeanResponseTime })),

		CovWaitAndServiceTime: meanSdom(field(records, func(r ResultRecord) float64 { return r.CovWaitAndServiceTime })),

		NormalizedMeanHistogramJobsWaiting: normHistogram(meanHistogram(histograms)),

		Model: m,
	}, nil
}
