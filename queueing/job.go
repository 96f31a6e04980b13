package queueing

// Job is a transient unit of work: created on arrival, destroyed on
// completion, never shared outside the stream that owns it.
type Job struct {
	ID          int
	ArrivalTime float64
}
