// Package queueing implements the virtualized time-sliced queueing system:
// N independent arrival streams sharing one physical server that
// round-robins across them in groups of C, spending Rs rounds per group
// separated by an S-clock context-switch vacation.
package queueing
