package batch

import (
	"fmt"
	"math/rand"

	"github.com/mhall24/virtqueue-sim/dist"
	"github.com/mhall24/virtqueue-sim/kernel"
	"github.com/mhall24/virtqueue-sim/queueing"
	"github.com/sirupsen/logrus"
)

// defaultServiceDiscipline is used whenever a PointConfig leaves
// ServiceDiscipline unset, matching run_single.py's example point (FCFS).
const defaultServiceDiscipline = queueing.FCFS

func (c PointConfig) serviceDiscipline() queueing.ServiceDiscipline {
	if c.ServiceDiscipline == "" {
		return defaultServiceDiscipline
	}
	return queueing.ServiceDiscipline(c.ServiceDiscipline)
}

// RunReplication executes one full replication of cfg: it builds N
// identical-type arrival distributions at cfg.Lambd, runs a fresh
// queueing.QueueingSystem to cfg.HorizonTime() with cfg.WarmupTime()
// warmup, and reduces each stream's accumulated statistics into a
// ResultRecord.
//
// seed seeds every per-stream arrival RNG (offset by stream index) and
// the service-discipline tie-break RNG, so that two calls with the same
// cfg and seed reproduce identical sample paths (spec.md §4.2's
// reproducibility guarantee, realized here with math/rand sources rather
// than a precomputed substream table since no on-disk table is supplied).
//
// If the run is unstable in any stream (spec.md §7, kind 2), the whole
// replication's records are discarded and ok is false; this is reported
// once via logrus rather than retried.
func RunReplication(cfg PointConfig, seed int64) (records []ResultRecord, ok bool, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}

	arrivalDists := make([]dist.Distribution, cfg.N)
	arrivalRNGs := make([]*rand.Rand, cfg.N)
	for i := 0; i < cfg.N; i++ {
		d, err := dist.ParseAndInstantiate(cfg.ADist, cfg.Lambd)
		if err != nil {
			return nil, false, fmt.Errorf("batch: building arrival distribution for stream %d: %w", i, err)
		}
		arrivalDists[i] = d
		arrivalRNGs[i] = rand.New(rand.NewSource(seed + int64(i) + 1))
	}
	sdRand := rand.New(rand.NewSource(seed))

	k := kernel.New()
	qs, err := queueing.New(k, cfg.N, cfg.C, cfg.S, cfg.Rs, cfg.FClk, arrivalDists,
		cfg.serviceDiscipline(), cfg.WarmupTime(), arrivalRNGs, sdRand)
	if err != nil {
		return nil, false, err
	}

	k.RunUntil(cfg.HorizonTime())

	if unstable := qs.UnstableStreamIndices(); len(unstable) > 0 {
		logrus.Infof("batch: replication seed=%d discarded, %d/%d streams unstable", seed, len(unstable), cfg.N)
		return nil, false, nil
	}

	records = make([]ResultRecord, cfg.N)
	for i, stream := range qs.Streams {
		rec, err := newResultRecord(i, stream)
		if err != nil {
			return nil, false, fmt.Errorf("batch: reducing stream %d statistics: %w", i, err)
		}
		records[i] = rec
	}
	return records, true, nil
}

// RunReplications runs cfg.NumReplications independent replications
// (seeded 0..NumReplications-1) and returns, for each stream index, the
// list of ResultRecords collected from every stable replication --
// exactly the input Summarize expects per stream.
func RunReplications(cfg PointConfig) ([][]ResultRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	perStream := make([][]ResultRecord, cfg.N)
	for rep := 0; rep < cfg.NumReplications; rep++ {
		records, ok, err := RunReplication(cfg, int64(rep))
		if err != nil {
			return nil, fmt.Errorf("batch: replication %d: %w", rep, err)
		}
		if !ok {
			continue
		}
		for i, rec := range records {
			perStream[i] = append(perStream[i], rec)
		}
	}
	return perStream, nil
}
