// Package rng provides deterministic, seeded random substreams drawn from a
// precomputed table, per spec.md §4.2/§6. A from-scratch MT19937 generator
// implements math/rand.Source64 so it wraps into an ordinary *rand.Rand the
// same way the rest of the ecosystem wraps math/rand sources.
package rng
