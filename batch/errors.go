package batch

import "errors"

// ErrInvalidParameter is returned when a PointConfig fails validation
// before any stream or kernel is constructed.
var ErrInvalidParameter = errors.New("batch: invalid parameter")

// ErrAllReplicationsUnstable is returned by Summarize when every
// replication of a parameter point was discarded as unstable, leaving
// nothing to aggregate.
var ErrAllReplicationsUnstable = errors.New("batch: all replications discarded as unstable")
