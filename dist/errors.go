package dist

import "errors"

// ErrMalformedType is returned by Parse when a type-code string does not
// match the expected grammar (spec.md §4.1 / §7.1: invalid-parameter).
var ErrMalformedType = errors.New("dist: malformed type string")

// ErrNotImplementedMoment is returned by Moment when a distribution has no
// closed-form expression for the requested moment order (spec.md §7.4).
var ErrNotImplementedMoment = errors.New("dist: moment not implemented")

// ErrInvalidParameter is returned at construction time for out-of-domain
// parameters, e.g. k < 1 for Erlang, or mismatched WL/WP lengths.
var ErrInvalidParameter = errors.New("dist: invalid parameter")
