// Command demo runs the parameter point from
// original_source/virt_queueing_simulation/run_single.py (N=100 streams in
// groups of C=10, a 100-clock context switch, 20 rounds per group
// residence, and a total offered load of 0.08) through a handful of
// replications and prints the per-stream summary alongside the analytic
// model's prediction for the same point. There is no flag parsing: the
// parameter point is fixed, matching the source's main_single.
package main

import (
	"fmt"
	"os"

	"github.com/mhall24/virtqueue-sim/batch"
	"github.com/mhall24/virtqueue-sim/model"
	"github.com/sirupsen/logrus"
)

func main() {
	const (
		n           = 100
		c           = 10
		s           = 100
		rs          = 20
		fClk        = 1.0
		offeredLoad = 0.08
	)

	tClk := 1 / fClk
	lambd := offeredLoad / (float64(n) * tClk)

	cfg := batch.PointConfig{
		NumReplications: 5,
		N:               n,
		C:               c,
		S:               s,
		Rs:              rs,
		FClk:            fClk,
		ADist:           "E10",
		Lambd:           lambd,
		SimClocks:       100000,
	}

	logrus.Infof("demo: running %d replications of N=%d C=%d S=%d Rs=%d offered_load=%.2f",
		cfg.NumReplications, n, c, s, rs, offeredLoad)

	perStream, err := batch.RunReplications(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	m, err := model.New(n, c, s, rs, tClk, lambd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Parameters\n----------\n")
	fmt.Printf("N:  %d total data streams\n", n)
	fmt.Printf("C:  %d fine-grain contexts\n", c)
	fmt.Printf("S:  %d clks\n", s)
	fmt.Printf("Rs: %d schedule period rounds\n", rs)
	fmt.Printf("rho (analytic): %.4f, stable=%v\n\n", m.Rho, m.IsStable())

	for i, records := range perStream {
		if len(records) == 0 {
			logrus.Infof("demo: stream %d had no stable replications", i)
			continue
		}
		summary, err := batch.Summarize(records, m)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Stream %d (%d/%d stable replications)\n", i, summary.NumReplications, cfg.NumReplications)
		fmt.Printf("  jobs_waiting:           mean=%.4f sdom=%.4f\n", summary.JobsWaiting.Mean, summary.JobsWaiting.Sdom)
		fmt.Printf("  jobs_receiving_service: mean=%.4f sdom=%.4f\n", summary.JobsReceivingService.Mean, summary.JobsReceivingService.Sdom)
		fmt.Printf("  wait_time:              mean=%.4f sdom=%.4f\n", summary.WaitTime.Mean, summary.WaitTime.Sdom)
		fmt.Printf("  response_time:          mean=%.4f sdom=%.4f\n", summary.ResponseTime.Mean, summary.ResponseTime.Sdom)
	}

	logrus.Infof("demo: done")
}
