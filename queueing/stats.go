package queueing

import "github.com/mhall24/virtqueue-sim/segseries"

// BusyPeriodData is the append-only record of every busy period a stream
// has completed: when it started, how long it lasted, and how many jobs
// were served during it.
type BusyPeriodData struct {
	Start    segseries.DataArray
	Duration segseries.DataArray
	NumJobs  segseries.DataArray
}

func (b *BusyPeriodData) append(start, duration float64, numJobs int) {
	b.Start = append(b.Start, start)
	b.Duration = append(b.Duration, duration)
	b.NumJobs = append(b.NumJobs, float64(numJobs))
}

// IdlePeriodData is the append-only record of every idle period a stream
// has completed.
type IdlePeriodData struct {
	Start    segseries.DataArray
	Duration segseries.DataArray
}

func (idp *IdlePeriodData) append(start, duration float64) {
	idp.Start = append(idp.Start, start)
	idp.Duration = append(idp.Duration, duration)
}

// QueueStats accumulates everything a result record needs for a single
// stream: time-weighted occupancy series, busy/idle history, and
// per-job wait/service/response samples.
type QueueStats struct {
	JobsWaiting          *segseries.Series
	JobsReceivingService *segseries.Series
	JobsInSystem         *segseries.Series

	BusyPeriod BusyPeriodData
	IdlePeriod IdlePeriodData

	JobWaitTime     segseries.DataArray
	JobServiceTime  segseries.DataArray
	JobResponseTime segseries.DataArray

	TotalArrivals   int
	TotalDepartures int
	TotalTime       float64
}

// NewQueueStats returns an empty stats record with its series initialized.
func NewQueueStats() *QueueStats {
	return &QueueStats{
		JobsWaiting:          segseries.NewSeries(),
		JobsReceivingService: segseries.NewSeries(),
		JobsInSystem:         segseries.NewSeries(),
	}
}

// indicator turns a predicate over the count into the 0/1-valued function
// Series.Moment expects, so that Moment(1, indicator(cond)) computes
// P[cond(count)].
func indicator(cond func(float64) bool) func(float64) float64 {
	return func(c float64) float64 {
		if cond(c) {
			return 1
		}
		return 0
	}
}

// PJobsWaiting returns the fraction of observed time for which
// cond(jobs_waiting) holds.
func (q *QueueStats) PJobsWaiting(cond func(float64) bool) float64 {
	return q.JobsWaiting.Moment(1, indicator(cond))
}

// PJobsInSystem returns the fraction of observed time for which
// cond(jobs_in_system) holds.
func (q *QueueStats) PJobsInSystem(cond func(float64) bool) float64 {
	return q.JobsInSystem.Moment(1, indicator(cond))
}

// MeanP0 returns P[jobs_in_system == 0], the stream's idle probability.
func (q *QueueStats) MeanP0() float64 {
	return q.PJobsInSystem(func(x float64) bool { return x == 0 })
}

// HistogramJobsWaiting returns the cumulative time spent at each jobs_waiting
// count, indexed by count.
func (q *QueueStats) HistogramJobsWaiting() ([]float64, error) {
	return q.JobsWaiting.Histogram(false)
}

// ProbHistogramJobsWaiting is HistogramJobsWaiting normalized to sum to 1.
func (q *QueueStats) ProbHistogramJobsWaiting() ([]float64, error) {
	return q.JobsWaiting.Histogram(true)
}

// CovJobsWaitingAndJobsReceivingService returns the time-weighted
// covariance between the number of jobs waiting and the number receiving
// service.
func (q *QueueStats) CovJobsWaitingAndJobsReceivingService() float64 {
	return q.JobsWaiting.Cov(q.JobsReceivingService)
}

// HistogramJobsInBusyPeriod returns, 1-indexed by job count, how many
// completed busy periods served exactly that many jobs.
func (q *QueueStats) HistogramJobsInBusyPeriod() []int {
	counts := make(map[int]int)
	maxN := 0
	for _, n := range q.BusyPeriod.NumJobs {
		ni := int(n)
		counts[ni]++
		if ni > maxN {
			maxN = ni
		}
	}
	hist := make([]int, maxN)
	for n := 1; n <= maxN; n++ {
		hist[n-1] = counts[n]
	}
	return hist
}
