// Package batch drives repeated replications of a single queueing.
// QueueingSystem parameter point and aggregates the per-replication
// results into a summary, grounded on
// original_source/virt_queueing_simulation/run_experiments.py's
// generate-parameters/run loop and queueing_simulation_common.py's
// result-record shape. It owns no concurrency, CSV/JSON emission, or CLI
// argument parsing: those are left to a caller.
package batch
