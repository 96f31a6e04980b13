package batch

import (
	"math"

	"github.com/mhall24/virtqueue-sim/queueing"
)

// ResultRecord is the per-(replication, stream) result of spec.md §6,
// ported from queueing_simulation_common.py's QueueStats.print payload.
type ResultRecord struct {
	StreamIndex int

	TotalArrivals   int
	TotalDepartures int
	ObservationTime float64

	MeanJobsWaiting float64
	StdJobsWaiting  float64

	MeanJobsReceivingService float64
	StdJobsReceivingService  float64

	MeanJobsInSystem float64
	StdJobsInSystem  float64

	CovJobsWaitingAndJobsReceivingService float64

	MeanJobsInBusyPeriod float64
	StdJobsInBusyPeriod  float64

	MeanBusyPeriodDuration float64
	StdBusyPeriodDuration  float64

	MeanIdlePeriodDuration float64
	StdIdlePeriodDuration  float64

	MeanWaitTime float64
	StdWaitTime  float64

	MeanServiceTime float64
	StdServiceTime  float64

	MeanResponseTime float64
	StdResponseTime  float64

	CovWaitAndServiceTime float64

	HistogramJobsWaiting []float64
}

// newResultRecord reduces one stream's accumulated QueueStats into a
// ResultRecord. Every underlying statistic already carries its own NaN
// sentinel semantics for degenerate inputs (spec.md §7, kind 3), so no
// additional guarding is needed here.
func newResultRecord(index int, s *queueing.Stream) (ResultRecord, error) {
	stats := s.Stats

	histogram, err := stats.HistogramJobsWaiting()
	if err != nil {
		return ResultRecord{}, err
	}

	return ResultRecord{
		StreamIndex: index,

		TotalArrivals:   stats.TotalArrivals,
		TotalDepartures: stats.TotalDepartures,
		ObservationTime: stats.TotalTime,

		MeanJobsWaiting: stats.JobsWaiting.Mean(),
		StdJobsWaiting:  stats.JobsWaiting.Std(),

		MeanJobsReceivingService: stats.JobsReceivingService.Mean(),
		StdJobsReceivingService:  stats.JobsReceivingService.Std(),

		MeanJobsInSystem: stats.JobsInSystem.Mean(),
		StdJobsInSystem:  stats.JobsInSystem.Std(),

		CovJobsWaitingAndJobsReceivingService: stats.CovJobsWaitingAndJobsReceivingService(),

		MeanJobsInBusyPeriod: stats.BusyPeriod.NumJobs.Mean(),
		StdJobsInBusyPeriod:  stats.BusyPeriod.NumJobs.Std(),

		MeanBusyPeriodDuration: stats.BusyPeriod.Duration.Mean(),
		StdBusyPeriodDuration:  stats.BusyPeriod.Duration.Std(),

		MeanIdlePeriodDuration: stats.IdlePeriod.Duration.Mean(),
		StdIdlePeriodDuration:  stats.IdlePeriod.Duration.Std(),

		MeanWaitTime: stats.JobWaitTime.Mean(),
		StdWaitTime:  stats.JobWaitTime.Std(),

		MeanServiceTime: stats.JobServiceTime.Mean(),
		StdServiceTime:  stats.JobServiceTime.Std(),

		MeanResponseTime: stats.JobResponseTime.Mean(),
		StdResponseTime:  stats.JobResponseTime.Std(),

		CovWaitAndServiceTime: waitServiceCov(stats),

		HistogramJobsWaiting: histogram,
	}, nil
}

// waitServiceCov computes the sample covariance between paired wait and
// service time observations. Unlike JobsWaiting/JobsReceivingService (time-
// weighted step functions with a segment-intersection product), wait and
// service time are per-job scalar samples recorded in lockstep, so this is
// an ordinary paired-sample covariance rather than a segseries.Product.
func waitServiceCov(stats *queueing.QueueStats) float64 {
	wait, service := stats.JobWaitTime, stats.JobServiceTime
	n := len(wait)
	if n < 2 || n != len(service) {
		return math.NaN()
	}
	meanWait, meanService := wait.Mean(), service.Mean()
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += (wait[i] - meanWait) * (service[i] - meanService)
	}
	return sum / float64(n-1)
}
