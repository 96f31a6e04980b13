package queueing

import (
	"math/rand"

	"github.com/mhall24/virtqueue-sim/dist"
)

// Stream is one of the N independent arrival processes sharing the
// physical server. It exclusively owns its waiting queue and statistics;
// nothing outside the owning QueueingSystem's scheduler touches them.
type Stream struct {
	Index       int
	ArrivalDist dist.Distribution
	ArrivalRNG  *rand.Rand

	queue []Job

	TotalArrivals   int
	TotalDepartures int

	JobsReceivingService int

	busyPeriodStart   float64
	busyPeriodNumJobs int
	idlePeriodStart   float64

	Stats *QueueStats
}

func newStream(index int, d dist.Distribution, arrivalRNG *rand.Rand, now float64) *Stream {
	return &Stream{
		Index:           index,
		ArrivalDist:     d,
		ArrivalRNG:      arrivalRNG,
		idlePeriodStart: now,
		Stats:           NewQueueStats(),
	}
}

// JobsWaiting returns the number of jobs currently queued, not yet in
// service.
func (s *Stream) JobsWaiting() int { return len(s.queue) }

// JobsInSystem returns the number of jobs either waiting or in service.
func (s *Stream) JobsInSystem() int { return len(s.queue) + s.JobsReceivingService }

func (s *Stream) pushArrival(j Job) {
	s.queue = append([]Job{j}, s.queue...)
}

// Unstable reports whether the stream's backlog grew unboundedly over the
// run: arrivals outpacing departures by 10% or more (spec.md §4.5/§7.2).
func (s *Stream) Unstable() bool {
	// Integer form of arrivals >= 1.1*departures, exact at the boundary.
	return 10*s.TotalArrivals >= 11*s.TotalDepartures
}
