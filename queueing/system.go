package queueing

import (
	"fmt"
	"math/rand"

	"github.com/mhall24/virtqueue-sim/dist"
	"github.com/mhall24/virtqueue-sim/kernel"
	"github.com/sirupsen/logrus"
)

// QueueingSystem models a single physical server that time-multiplexes
// across N arrival streams in groups of C pipeline slots, grounded on
// original_source/virt_queueing_simulation.py's QueueingSystem.
type QueueingSystem struct {
	N, C, S, Rs int
	FClk, TClk  float64
	SD          ServiceDiscipline
	Warmup      float64

	Streams []*Stream

	sdRand *rand.Rand
	k      *kernel.Kernel
}

// New validates the system parameters, builds N streams, and spawns the
// N arrival processes plus the single server process on k. It returns an
// error rather than panicking so that a batch driver can skip an invalid
// parameter point and move on (spec.md §7, kind 1).
func New(k *kernel.Kernel, n, c, s, rs int, fClk float64, arrivalDists []dist.Distribution,
	sd ServiceDiscipline, warmup float64, arrivalRNGs []*rand.Rand, sdRand *rand.Rand) (*QueueingSystem, error) {

	if c <= 0 || n < c || n%c != 0 {
		return nil, fmt.Errorf("%w: N=%d must be >= C=%d and a multiple of it", ErrInvalidParameter, n, c)
	}
	if !sd.valid() {
		return nil, fmt.Errorf("%w: unknown service discipline %q", ErrInvalidParameter, sd)
	}
	if len(arrivalDists) != n {
		return nil, fmt.Errorf("%w: need %d arrival distributions, got %d", ErrInvalidParameter, n, len(arrivalDists))
	}
	if len(arrivalRNGs) != n {
		return nil, fmt.Errorf("%w: need %d arrival RNGs, got %d", ErrInvalidParameter, n, len(arrivalRNGs))
	}

	qs := &QueueingSystem{
		N: n, C: c, S: s, Rs: rs,
		FClk: fClk, TClk: 1 / fClk,
		SD: sd, Warmup: warmup,
		sdRand: sdRand,
		k:      k,
	}

	qs.Streams = make([]*Stream, n)
	for i := 0; i < n; i++ {
		qs.Streams[i] = newStream(i, arrivalDists[i], arrivalRNGs[i], k.Now())
	}

	k.BeforeRun(qs.onBeforeRun)
	k.AfterRun(qs.onAfterRun)

	for i := 0; i < n; i++ {
		index := i
		k.Spawn(func(k *kernel.Kernel) { qs.arrivalProcess(k, index) })
	}
	k.Spawn(qs.serverProcess)

	return qs, nil
}

// arrivalProcess is stream index's inter-arrival loop: sample a delay,
// suspend for it, record the arrival.
func (qs *QueueingSystem) arrivalProcess(k *kernel.Kernel, index int) {
	stream := qs.Streams[index]
	for {
		delta := stream.ArrivalDist.Sample(stream.ArrivalRNG)
		k.Timeout(delta)

		now := k.Now()
		stream.TotalArrivals++
		jobID := stream.TotalArrivals
		if now >= qs.Warmup {
			stream.Stats.TotalArrivals++
		}
		stream.pushArrival(Job{ID: jobID, ArrivalTime: now})
		qs.onArrival(stream, now)
		logrus.Debugf("[t=%.3f] stream %d: job %d arrived, jobs_waiting=%d", now, index, jobID, stream.JobsWaiting())
	}
}

// serverProcess is the single physical server: round-robin over groups of
// C streams, Rs rounds per group, one context-switch vacation between
// groups.
func (qs *QueueingSystem) serverProcess(k *kernel.Kernel) {
	numGroups := qs.N / qs.C
	logrus.Infof("queueing: server starting, %d groups of %d streams", numGroups, qs.C)
	for {
		for g := 0; g < numGroups; g++ {
			for round := 0; round < qs.Rs; round++ {
				for slot := 0; slot < qs.C; slot++ {
					k.Timeout(qs.TClk)

					i := g*qs.C + slot
					stream := qs.Streams[i]
					if len(stream.queue) == 0 {
						continue
					}

					now := k.Now()
					if stream.JobsReceivingService == 0 {
						if now >= qs.Warmup {
							idleDuration := now - stream.idlePeriodStart
							stream.Stats.IdlePeriod.append(stream.idlePeriodStart, idleDuration)
						}
						stream.busyPeriodStart = now
						stream.busyPeriodNumJobs = 0
					}

					var job Job
					stream.queue, job = qs.SD.pick(stream.queue, qs.sdRand)
					stream.JobsReceivingService++
					stream.busyPeriodNumJobs++
					qs.onEnterService(stream, now)

					jobID, arrivalTime, enteredService := job.ID, job.ArrivalTime, now
					logrus.Debugf("[t=%.3f] stream %d: job %d entered service", now, i, jobID)
					k.Spawn(func(k *kernel.Kernel) {
						qs.serviceTask(k, i, jobID, arrivalTime, enteredService)
					})
				}
			}

			logrus.Debugf("[t=%.3f] context switch past group %d-%d", k.Now(), g*qs.C, (g+1)*qs.C-1)
			k.Timeout(float64(qs.S) * qs.TClk)
		}
	}
}

// serviceTask runs the C-clock virtual computation for one job and
// records its completion.
func (qs *QueueingSystem) serviceTask(k *kernel.Kernel, index, jobID int, arrivalTime, enteredServiceTime float64) {
	k.Timeout(float64(qs.C) * qs.TClk)

	now := k.Now()
	stream := qs.Streams[index]

	waitTime := enteredServiceTime - arrivalTime
	serviceTime := now - enteredServiceTime
	responseTime := now - arrivalTime
	if now >= qs.Warmup {
		stream.Stats.JobWaitTime = append(stream.Stats.JobWaitTime, waitTime)
		stream.Stats.JobServiceTime = append(stream.Stats.JobServiceTime, serviceTime)
		stream.Stats.JobResponseTime = append(stream.Stats.JobResponseTime, responseTime)
	}

	stream.JobsReceivingService--
	stream.TotalDepartures++
	if now >= qs.Warmup {
		stream.Stats.TotalDepartures++
	}
	qs.onCompleteService(stream, now)
	logrus.Debugf("[t=%.3f] stream %d: job %d completed, wait=%.3f service=%.3f response=%.3f",
		now, index, jobID, waitTime, serviceTime, responseTime)

	if len(stream.queue) == 0 {
		if now >= qs.Warmup {
			duration := now - stream.busyPeriodStart
			stream.Stats.BusyPeriod.append(stream.busyPeriodStart, duration, stream.busyPeriodNumJobs)
		}
		stream.idlePeriodStart = now
	}
}

func (qs *QueueingSystem) onArrival(stream *Stream, now float64) {
	if now < qs.Warmup {
		return
	}
	stream.Stats.JobsWaiting.Append(now, float64(stream.JobsWaiting()))
	stream.Stats.JobsInSystem.Append(now, float64(stream.JobsInSystem()))
}

func (qs *QueueingSystem) onEnterService(stream *Stream, now float64) {
	if now < qs.Warmup {
		return
	}
	stream.Stats.JobsWaiting.Append(now, float64(stream.JobsWaiting()))
	stream.Stats.JobsReceivingService.Append(now, float64(stream.JobsReceivingService))
}

func (qs *QueueingSystem) onCompleteService(stream *Stream, now float64) {
	if now < qs.Warmup {
		return
	}
	stream.Stats.JobsReceivingService.Append(now, float64(stream.JobsReceivingService))
	stream.Stats.JobsInSystem.Append(now, float64(stream.JobsInSystem()))
}

func (qs *QueueingSystem) onBeforeRun() {
	now := qs.k.Now()
	if now < qs.Warmup {
		return
	}
	for _, stream := range qs.Streams {
		stream.Stats.JobsWaiting.Append(now, float64(stream.JobsWaiting()))
		stream.Stats.JobsReceivingService.Append(now, float64(stream.JobsReceivingService))
		stream.Stats.JobsInSystem.Append(now, float64(stream.JobsInSystem()))
	}
}

func (qs *QueueingSystem) onAfterRun() {
	now := qs.k.Now()
	if now < qs.Warmup {
		return
	}
	for _, stream := range qs.Streams {
		stream.Stats.JobsWaiting.Append(now, float64(stream.JobsWaiting()))
		stream.Stats.JobsReceivingService.Append(now, float64(stream.JobsReceivingService))
		stream.Stats.JobsInSystem.Append(now, float64(stream.JobsInSystem()))
		stream.Stats.TotalTime = now - qs.Warmup
	}
}

// UnstableStreamIndices returns the indices of streams whose backlog grew
// unboundedly over the run (spec.md §7.2). The batch driver discards a
// replication's result if this is non-empty.
func (qs *QueueingSystem) UnstableStreamIndices() []int {
	var out []int
	for _, s := range qs.Streams {
		if s.Unstable() {
			out = append(out, s.Index)
		}
	}
	return out
}
