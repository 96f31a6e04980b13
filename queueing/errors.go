package queueing

import "errors"

// ErrInvalidParameter is returned by New when N, C, the
// service discipline, or the arrival distribution slice fail construction
// validation (spec.md §7, kind 1: invalid-parameter).
var ErrInvalidParameter = errors.New("queueing: invalid parameter")
