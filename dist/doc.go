// Package dist implements the parametric inter-arrival/service time
// distributions used by the queueing simulator: Deterministic, Exponential,
// Erlang, Hypoexponential, and Hyperexponential, each exposing analytic
// moments plus a random-variate generator, and a textual parser for the
// type-code grammar described in the simulator's external interface.
package dist
