// Package model implements the closed-form M/G/1-with-vacations analytic
// model of the virtualized time-sliced queueing system: given the
// scheduling geometry (N, C, S, Rs, t_clk) and an arrival rate, it
// computes utilization, wait times, queue lengths, and stability without
// running a simulation.
package model
