// Package kernel implements a single-threaded cooperative discrete-event
// scheduler: a priority queue of (time, sequence, task) ordered by time
// with FIFO tie-breaking, and tasks that suspend only at explicit
// Timeout calls.
//
// A Task is modeled as a goroutine that the kernel resumes one at a time
// by signalling a private channel; the goroutine blocks again the instant
// it calls Timeout or returns. Because the kernel only ever has one task
// runnable at any moment, this is observably identical to a generator
// that yields at timeout(Δ) and resumes with its local state intact, with
// none of the data races a truly concurrent scheduler would need locks
// for.
package kernel
