package segseries

import "errors"

// ErrEmptyOrZeroWindow is returned by Histogram(normalize=true) when the
// series has no observation window to normalize against (spec.md §4.3,
// §7.3: degenerate-statistic).
var ErrEmptyOrZeroWindow = errors.New("segseries: series is empty or has a zero-width window")
