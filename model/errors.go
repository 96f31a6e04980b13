package model

import "errors"

// ErrInvalidParameter is returned when N, C do not satisfy N >= C and
// N mod C == 0 (spec.md §7, kind 1).
var ErrInvalidParameter = errors.New("model: invalid parameter")
